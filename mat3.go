package quill

import "fmt"

// Mat3 is a 3x3 matrix stored column-major in a 12-slot buffer, mirroring
// the std140 layout of a mat3x3: element (row,col) lives at col*4+row and
// slots 3, 7 and 11 are alignment padding held at zero. The buffer can be
// uploaded to a GPU uniform as-is, and the logical elements share their
// index arithmetic with the upper-left of Mat4.
type Mat3 [12]float32

// Mat3FromSlice builds a Mat3 from a backing slice of exactly 12 elements.
// The padding slots of the result are pinned to zero regardless of input.
func Mat3FromSlice(s []float32) (Mat3, error) {
	if len(s) != 12 {
		return Mat3{}, fmt.Errorf("quill: Mat3 needs 12 elements, got %d", len(s))
	}
	var m Mat3
	copy(m[:], s)
	m[3], m[7], m[11] = 0, 0, 0
	return m, nil
}

// Ident3 returns the 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// Mat3FromMat4 returns the upper-left 3x3 of m.
func Mat3FromMat4(m *Mat4) Mat3 {
	return Mat3{
		m[0], m[1], m[2], 0,
		m[4], m[5], m[6], 0,
		m[8], m[9], m[10], 0,
	}
}

// Mat3FromQuat returns the rotation matrix described by q. q is assumed to
// be unit length.
func Mat3FromQuat(q *Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return Mat3{
		1 - yy - zz, xy + wz, xz - wy, 0,
		xy - wz, 1 - xx - zz, yz + wx, 0,
		xz + wy, yz - wx, 1 - xx - yy, 0,
	}
}

// Mat3Translation returns a 2D translation matrix.
func Mat3Translation(v Vec2) Mat3 {
	return Mat3{
		1, 0, 0, 0,
		0, 1, 0, 0,
		v[0], v[1], 1, 0,
	}
}

// Mat3Rotation returns a 2D rotation matrix (rotation around z).
func Mat3Rotation(rad float32) Mat3 {
	s, c := sin(rad), cos(rad)
	return Mat3{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
	}
}

// Mat3RotationX returns a rotation matrix of rad radians around the x axis.
func Mat3RotationX(rad float32) Mat3 {
	s, c := sin(rad), cos(rad)
	return Mat3{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
	}
}

// Mat3RotationY returns a rotation matrix of rad radians around the y axis.
func Mat3RotationY(rad float32) Mat3 {
	s, c := sin(rad), cos(rad)
	return Mat3{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
	}
}

// Mat3RotationZ returns a rotation matrix of rad radians around the z axis.
func Mat3RotationZ(rad float32) Mat3 {
	return Mat3Rotation(rad)
}

// Mat3Scaling returns a 2D scaling matrix.
func Mat3Scaling(v Vec2) Mat3 {
	return Mat3{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, 1, 0,
	}
}

// Mat3UniformScaling returns a 2D scaling matrix with equal factors.
func Mat3UniformScaling(s float32) Mat3 {
	return Mat3Scaling(Vec2{s, s})
}

// Copy writes m into dst.
func (m *Mat3) Copy(dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	*dst = *m
	return dst
}

// Floats returns the flat 12-slot serialization of m, padding included.
func (m *Mat3) Floats() []float32 {
	return m[:]
}

// Ptr returns a pointer to the first element for uniform uploads.
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}

// Mul computes m * b.
func (m *Mat3) Mul(b, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	a20, a21, a22 := m[8], m[9], m[10]
	b00, b01, b02 := b[0], b[1], b[2]
	b10, b11, b12 := b[4], b[5], b[6]
	b20, b21, b22 := b[8], b[9], b[10]

	dst[0] = a00*b00 + a10*b01 + a20*b02
	dst[1] = a01*b00 + a11*b01 + a21*b02
	dst[2] = a02*b00 + a12*b01 + a22*b02
	dst[3] = 0
	dst[4] = a00*b10 + a10*b11 + a20*b12
	dst[5] = a01*b10 + a11*b11 + a21*b12
	dst[6] = a02*b10 + a12*b11 + a22*b12
	dst[7] = 0
	dst[8] = a00*b20 + a10*b21 + a20*b22
	dst[9] = a01*b20 + a11*b21 + a21*b22
	dst[10] = a02*b20 + a12*b21 + a22*b22
	dst[11] = 0
	return dst
}

// Add adds b element-wise.
func (m *Mat3) Add(b, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	for _, i := range mat3Indices {
		dst[i] = m[i] + b[i]
	}
	dst[3], dst[7], dst[11] = 0, 0, 0
	return dst
}

// MulScalar multiplies every element by s.
func (m *Mat3) MulScalar(s float32, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	for _, i := range mat3Indices {
		dst[i] = m[i] * s
	}
	dst[3], dst[7], dst[11] = 0, 0, 0
	return dst
}

// Negate flips the sign of every element.
func (m *Mat3) Negate(dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	for _, i := range mat3Indices {
		dst[i] = -m[i]
	}
	dst[3], dst[7], dst[11] = 0, 0, 0
	return dst
}

var mat3Indices = [9]int{0, 1, 2, 4, 5, 6, 8, 9, 10}

// Transpose transposes m.
func (m *Mat3) Transpose(dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	m01, m02, m12 := m[1], m[2], m[6]
	dst[0] = m[0]
	dst[1] = m[4]
	dst[2] = m[8]
	dst[3] = 0
	dst[4] = m01
	dst[5] = m[5]
	dst[6] = m[9]
	dst[7] = 0
	dst[8] = m02
	dst[9] = m12
	dst[10] = m[10]
	dst[11] = 0
	return dst
}

// Determinant returns the determinant of m.
func (m *Mat3) Determinant() float32 {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	a20, a21, a22 := m[8], m[9], m[10]

	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	return a00*b01 + a01*b11 + a02*b21
}

// Inverse computes the inverse of m by cofactor expansion. A singular
// matrix (determinant exactly zero) inverts to the identity.
func (m *Mat3) Inverse(dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	a20, a21, a22 := m[8], m[9], m[10]

	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	det := a00*b01 + a01*b11 + a02*b21
	if det == 0 {
		*dst = Ident3()
		return dst
	}
	d := 1 / det

	dst[0] = b01 * d
	dst[1] = (-a22*a01 + a02*a21) * d
	dst[2] = (a12*a01 - a02*a11) * d
	dst[3] = 0
	dst[4] = b11 * d
	dst[5] = (a22*a00 - a02*a20) * d
	dst[6] = (-a12*a00 + a02*a10) * d
	dst[7] = 0
	dst[8] = b21 * d
	dst[9] = (-a21*a00 + a01*a20) * d
	dst[10] = (a11*a00 - a01*a10) * d
	dst[11] = 0
	return dst
}

// Translate post-multiplies m by a 2D translation.
func (m *Mat3) Translate(v Vec2, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	x, y := v[0], v[1]
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	a20, a21, a22 := m[8], m[9], m[10]

	dst[0] = a00
	dst[1] = a01
	dst[2] = a02
	dst[3] = 0
	dst[4] = a10
	dst[5] = a11
	dst[6] = a12
	dst[7] = 0
	dst[8] = a00*x + a10*y + a20
	dst[9] = a01*x + a11*y + a21
	dst[10] = a02*x + a12*y + a22
	dst[11] = 0
	return dst
}

// Rotate post-multiplies m by a 2D rotation of rad radians.
func (m *Mat3) Rotate(rad float32, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	s, c := sin(rad), cos(rad)
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]

	dst[0] = c*a00 + s*a10
	dst[1] = c*a01 + s*a11
	dst[2] = c*a02 + s*a12
	dst[3] = 0
	dst[4] = c*a10 - s*a00
	dst[5] = c*a11 - s*a01
	dst[6] = c*a12 - s*a02
	dst[7] = 0
	dst[8] = m[8]
	dst[9] = m[9]
	dst[10] = m[10]
	dst[11] = 0
	return dst
}

// Scale post-multiplies m by a 2D scaling.
func (m *Mat3) Scale(v Vec2, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	x, y := v[0], v[1]
	dst[0] = m[0] * x
	dst[1] = m[1] * x
	dst[2] = m[2] * x
	dst[3] = 0
	dst[4] = m[4] * y
	dst[5] = m[5] * y
	dst[6] = m[6] * y
	dst[7] = 0
	dst[8] = m[8]
	dst[9] = m[9]
	dst[10] = m[10]
	dst[11] = 0
	return dst
}

// UniformScale post-multiplies m by a uniform 2D scaling.
func (m *Mat3) UniformScale(s float32, dst *Mat3) *Mat3 {
	return m.Scale(Vec2{s, s}, dst)
}

// GetAxis returns the first two components of column axis.
func (m *Mat3) GetAxis(axis int) Vec2 {
	i := axis * 4
	return Vec2{m[i], m[i+1]}
}

// SetAxis replaces the first two components of column axis.
func (m *Mat3) SetAxis(v Vec2, axis int, dst *Mat3) *Mat3 {
	dst = m.Copy(dst)
	i := axis * 4
	dst[i] = v[0]
	dst[i+1] = v[1]
	return dst
}

// GetTranslation returns the 2D translation component of m.
func (m *Mat3) GetTranslation() Vec2 {
	return Vec2{m[8], m[9]}
}

// SetTranslation replaces the 2D translation component of m.
func (m *Mat3) SetTranslation(v Vec2, dst *Mat3) *Mat3 {
	dst = m.Copy(dst)
	dst[8] = v[0]
	dst[9] = v[1]
	return dst
}

// GetScaling returns the lengths of the two basis columns. The result only
// equals the original scale factors when m has no shear.
func (m *Mat3) GetScaling() Vec2 {
	return Vec2{
		sqrt(m[0]*m[0] + m[1]*m[1]),
		sqrt(m[4]*m[4] + m[5]*m[5]),
	}
}

// Equals reports exact element equality, padding included.
func (m *Mat3) Equals(b *Mat3) bool {
	return *m == *b
}

// EqualsApprox reports element equality within Epsilon.
func (m *Mat3) EqualsApprox(b *Mat3) bool {
	for _, i := range mat3Indices {
		if abs(m[i]-b[i]) >= Epsilon {
			return false
		}
	}
	return true
}
