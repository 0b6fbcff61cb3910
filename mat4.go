package quill

import "fmt"

// Mat4 is a 4x4 matrix stored column-major in a flat 16-slot buffer:
// element (row,col) lives at col*4+row. The buffer matches GPU uniform
// layout and can be uploaded as-is.
type Mat4 [16]float32

// Mat4FromSlice builds a Mat4 from a backing slice of exactly 16 elements.
func Mat4FromSlice(s []float32) (Mat4, error) {
	if len(s) != 16 {
		return Mat4{}, fmt.Errorf("quill: Mat4 needs 16 elements, got %d", len(s))
	}
	var m Mat4
	copy(m[:], s)
	return m, nil
}

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromMat3 embeds the 3x3 matrix m in the upper-left of a 4x4 identity.
func Mat4FromMat3(m *Mat3) Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[4], m[5], m[6], 0,
		m[8], m[9], m[10], 0,
		0, 0, 0, 1,
	}
}

// Mat4FromQuat returns the rotation matrix described by q. q is assumed to
// be unit length.
func Mat4FromQuat(q *Quat) Mat4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return Mat4{
		1 - yy - zz, xy + wz, xz - wy, 0,
		xy - wz, 1 - xx - zz, yz + wx, 0,
		xz + wy, yz - wx, 1 - xx - yy, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns a translation matrix.
func Mat4Translation(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v[0], v[1], v[2], 1,
	}
}

// Mat4RotationX returns a rotation matrix of rad radians around the x axis.
func Mat4RotationX(rad float32) Mat4 {
	s, c := sin(rad), cos(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationY returns a rotation matrix of rad radians around the y axis.
func Mat4RotationY(rad float32) Mat4 {
	s, c := sin(rad), cos(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationZ returns a rotation matrix of rad radians around the z axis.
func Mat4RotationZ(rad float32) Mat4 {
	s, c := sin(rad), cos(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4AxisRotation returns a rotation of rad radians around axis. The axis
// is normalized internally; an axis shorter than Epsilon yields the
// identity matrix.
func Mat4AxisRotation(axis Vec3, rad float32) Mat4 {
	x, y, z := axis[0], axis[1], axis[2]
	n := sqrt(x*x + y*y + z*z)
	if n < Epsilon {
		return Ident4()
	}
	x /= n
	y /= n
	z /= n
	xx, yy, zz := x*x, y*y, z*z
	s, c := sin(rad), cos(rad)
	omc := 1 - c

	return Mat4{
		xx + (1-xx)*c, x*y*omc + z*s, x*z*omc - y*s, 0,
		x*y*omc - z*s, yy + (1-yy)*c, y*z*omc + x*s, 0,
		x*z*omc + y*s, y*z*omc - x*s, zz + (1-zz)*c, 0,
		0, 0, 0, 1,
	}
}

// Mat4Scaling returns a scaling matrix.
func Mat4Scaling(v Vec3) Mat4 {
	return Mat4{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

// Mat4UniformScaling returns a scaling matrix with equal factors.
func Mat4UniformScaling(s float32) Mat4 {
	return Mat4Scaling(Vec3{s, s, s})
}

// Perspective returns a right-handed perspective projection mapping depth
// to GL clip space. fovY is the vertical field of view in radians, aspect
// is width over height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / tan(fovY/2)
	rangeInv := 1 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) * rangeInv, -1,
		0, 0, 2 * near * far * rangeInv, 0,
	}
}

// Ortho returns an orthographic projection over the given box.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)

	return Mat4{
		-2 * lr, 0, 0, 0,
		0, -2 * bt, 0, 0,
		0, 0, 2 * nf, 0,
		(left + right) * lr, (top + bottom) * bt, (far + near) * nf, 1,
	}
}

// Frustum returns an off-axis perspective projection over the given
// frustum planes.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)

	return Mat4{
		2 * near * rl, 0, 0, 0,
		0, 2 * near * tb, 0, 0,
		(right + left) * rl, (top + bottom) * tb, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// LookAt returns the view matrix for a camera at eye looking at target with
// the given up direction. When up is parallel to the view direction the
// basis degenerates: Normalize returns zero vectors and the result is a
// finite but non-orthonormal matrix. Guarding against that is the caller's
// responsibility.
func LookAt(eye, target, up Vec3) Mat4 {
	var z, x, y Vec3
	eye.Sub(&target, &z)
	z.Normalize(&z)
	up.Cross(&z, &x)
	x.Normalize(&x)
	z.Cross(&x, &y)
	y.Normalize(&y)

	return Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(&eye), -y.Dot(&eye), -z.Dot(&eye), 1,
	}
}

// Copy writes m into dst.
func (m *Mat4) Copy(dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	*dst = *m
	return dst
}

// Floats returns the flat serialization of m.
func (m *Mat4) Floats() []float32 {
	return m[:]
}

// Ptr returns a pointer to the first element for uniform uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Mul computes m * b.
func (m *Mat4) Mul(b, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	a := *m
	bb := *b
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[col*4+row] = a[0*4+row]*bb[col*4+0] +
				a[1*4+row]*bb[col*4+1] +
				a[2*4+row]*bb[col*4+2] +
				a[3*4+row]*bb[col*4+3]
		}
	}
	return dst
}

// Add adds b element-wise.
func (m *Mat4) Add(b, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	for i := range m {
		dst[i] = m[i] + b[i]
	}
	return dst
}

// MulScalar multiplies every element by s.
func (m *Mat4) MulScalar(s float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	for i := range m {
		dst[i] = m[i] * s
	}
	return dst
}

// Negate flips the sign of every element.
func (m *Mat4) Negate(dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	for i := range m {
		dst[i] = -m[i]
	}
	return dst
}

// Transpose transposes m.
func (m *Mat4) Transpose(dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	a := *m
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[col*4+row] = a[row*4+col]
		}
	}
	return dst
}

// Determinant returns the determinant of m, computed from the twelve 2x2
// sub-determinants shared with Inverse.
func (m *Mat4) Determinant() float32 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Inverse computes the inverse of m as the adjugate over the determinant.
// A singular matrix (determinant exactly zero) inverts to the identity,
// matching the Mat3 policy.
func (m *Mat4) Inverse(dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		*dst = Ident4()
		return dst
	}
	d := 1 / det

	dst[0] = (a11*b11 - a12*b10 + a13*b09) * d
	dst[1] = (a02*b10 - a01*b11 - a03*b09) * d
	dst[2] = (a31*b05 - a32*b04 + a33*b03) * d
	dst[3] = (a22*b04 - a21*b05 - a23*b03) * d
	dst[4] = (a12*b08 - a10*b11 - a13*b07) * d
	dst[5] = (a00*b11 - a02*b08 + a03*b07) * d
	dst[6] = (a32*b02 - a30*b05 - a33*b01) * d
	dst[7] = (a20*b05 - a22*b02 + a23*b01) * d
	dst[8] = (a10*b10 - a11*b08 + a13*b06) * d
	dst[9] = (a01*b08 - a00*b10 - a03*b06) * d
	dst[10] = (a30*b04 - a31*b02 + a33*b00) * d
	dst[11] = (a21*b02 - a20*b04 - a23*b00) * d
	dst[12] = (a11*b07 - a10*b09 - a12*b06) * d
	dst[13] = (a00*b09 - a01*b07 + a02*b06) * d
	dst[14] = (a31*b01 - a30*b03 - a32*b00) * d
	dst[15] = (a20*b03 - a21*b01 + a22*b00) * d
	return dst
}

// Translate post-multiplies m by a translation. Only the last column
// changes.
func (m *Mat4) Translate(v Vec3, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	x, y, z := v[0], v[1], v[2]
	a := *m
	copy(dst[:12], a[:12])
	dst[12] = a[0]*x + a[4]*y + a[8]*z + a[12]
	dst[13] = a[1]*x + a[5]*y + a[9]*z + a[13]
	dst[14] = a[2]*x + a[6]*y + a[10]*z + a[14]
	dst[15] = a[3]*x + a[7]*y + a[11]*z + a[15]
	return dst
}

// RotateX post-multiplies m by a rotation around the x axis.
func (m *Mat4) RotateX(rad float32, dst *Mat4) *Mat4 {
	r := Mat4RotationX(rad)
	return m.Mul(&r, dst)
}

// RotateY post-multiplies m by a rotation around the y axis.
func (m *Mat4) RotateY(rad float32, dst *Mat4) *Mat4 {
	r := Mat4RotationY(rad)
	return m.Mul(&r, dst)
}

// RotateZ post-multiplies m by a rotation around the z axis.
func (m *Mat4) RotateZ(rad float32, dst *Mat4) *Mat4 {
	r := Mat4RotationZ(rad)
	return m.Mul(&r, dst)
}

// AxisRotate post-multiplies m by a rotation of rad radians around axis.
func (m *Mat4) AxisRotate(axis Vec3, rad float32, dst *Mat4) *Mat4 {
	r := Mat4AxisRotation(axis, rad)
	return m.Mul(&r, dst)
}

// Scale post-multiplies m by a scaling. Each basis column is scaled by the
// matching factor; the translation column is untouched.
func (m *Mat4) Scale(v Vec3, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	x, y, z := v[0], v[1], v[2]
	a := *m
	dst[0] = a[0] * x
	dst[1] = a[1] * x
	dst[2] = a[2] * x
	dst[3] = a[3] * x
	dst[4] = a[4] * y
	dst[5] = a[5] * y
	dst[6] = a[6] * y
	dst[7] = a[7] * y
	dst[8] = a[8] * z
	dst[9] = a[9] * z
	dst[10] = a[10] * z
	dst[11] = a[11] * z
	dst[12] = a[12]
	dst[13] = a[13]
	dst[14] = a[14]
	dst[15] = a[15]
	return dst
}

// UniformScale post-multiplies m by a uniform scaling.
func (m *Mat4) UniformScale(s float32, dst *Mat4) *Mat4 {
	return m.Scale(Vec3{s, s, s}, dst)
}

// GetAxis returns the first three components of column axis.
func (m *Mat4) GetAxis(axis int) Vec3 {
	i := axis * 4
	return Vec3{m[i], m[i+1], m[i+2]}
}

// SetAxis replaces the first three components of column axis.
func (m *Mat4) SetAxis(v Vec3, axis int, dst *Mat4) *Mat4 {
	dst = m.Copy(dst)
	i := axis * 4
	dst[i] = v[0]
	dst[i+1] = v[1]
	dst[i+2] = v[2]
	return dst
}

// GetTranslation returns the translation component of m.
func (m *Mat4) GetTranslation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// SetTranslation replaces the translation component of m.
func (m *Mat4) SetTranslation(v Vec3, dst *Mat4) *Mat4 {
	dst = m.Copy(dst)
	dst[12] = v[0]
	dst[13] = v[1]
	dst[14] = v[2]
	return dst
}

// GetScaling returns the lengths of the three basis columns. The result
// only equals the original scale factors when m has no shear.
func (m *Mat4) GetScaling() Vec3 {
	return Vec3{
		sqrt(m[0]*m[0] + m[1]*m[1] + m[2]*m[2]),
		sqrt(m[4]*m[4] + m[5]*m[5] + m[6]*m[6]),
		sqrt(m[8]*m[8] + m[9]*m[9] + m[10]*m[10]),
	}
}

// Equals reports exact element equality.
func (m *Mat4) Equals(b *Mat4) bool {
	return *m == *b
}

// EqualsApprox reports element equality within Epsilon.
func (m *Mat4) EqualsApprox(b *Mat4) bool {
	for i := range m {
		if abs(m[i]-b[i]) >= Epsilon {
			return false
		}
	}
	return true
}
