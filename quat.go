package quill

import (
	"fmt"
	"math"
)

// Quat is a rotation quaternion stored as (x, y, z, w) with w the scalar
// part. Operations assume unit length where they document it but never
// renormalize on the caller's behalf.
type Quat [4]float32

// RotationOrder names the intrinsic axis order used by QuatFromEuler.
type RotationOrder int

const (
	OrderXYZ RotationOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

// QuatFromSlice builds a Quat from a backing slice of exactly 4 elements.
func QuatFromSlice(s []float32) (Quat, error) {
	if len(s) != 4 {
		return Quat{}, fmt.Errorf("quill: Quat needs 4 elements, got %d", len(s))
	}
	return Quat{s[0], s[1], s[2], s[3]}, nil
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle returns the rotation of rad radians around axis. The
// axis must already be unit length.
func QuatFromAxisAngle(axis Vec3, rad float32) Quat {
	half := rad / 2
	s := sin(half)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, cos(half)}
}

// ToAxisAngle decomposes q into a rotation axis and angle. Near-zero (or
// near-2pi) rotations have no meaningful axis; the x axis is returned.
func (q *Quat) ToAxisAngle() (Vec3, float32) {
	angle := acos(Clamp(q[3], -1, 1)) * 2
	s := sin(angle / 2)
	if abs(s) > Epsilon {
		return Vec3{q[0] / s, q[1] / s, q[2] / s}, angle
	}
	return Vec3{1, 0, 0}, angle
}

// QuatFromEuler composes rotations of x, y and z radians around the body
// axes in the given intrinsic order. Each order has its own closed form;
// the sign patterns are not interchangeable.
func QuatFromEuler(x, y, z float32, order RotationOrder) Quat {
	sx, cx := sin(x/2), cos(x/2)
	sy, cy := sin(y/2), cos(y/2)
	sz, cz := sin(z/2), cos(z/2)

	switch order {
	case OrderXYZ:
		return Quat{
			sx*cy*cz + cx*sy*sz,
			cx*sy*cz - sx*cy*sz,
			cx*cy*sz + sx*sy*cz,
			cx*cy*cz - sx*sy*sz,
		}
	case OrderXZY:
		return Quat{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz - sx*cy*sz,
			cx*cy*sz + sx*sy*cz,
			cx*cy*cz + sx*sy*sz,
		}
	case OrderYXZ:
		return Quat{
			sx*cy*cz + cx*sy*sz,
			cx*sy*cz - sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
			cx*cy*cz + sx*sy*sz,
		}
	case OrderYZX:
		return Quat{
			sx*cy*cz + cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
			cx*cy*cz - sx*sy*sz,
		}
	case OrderZXY:
		return Quat{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz + sx*sy*cz,
			cx*cy*cz - sx*sy*sz,
		}
	case OrderZYX:
		return Quat{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
			cx*cy*cz + sx*sy*sz,
		}
	}
	return QuatIdentity()
}

// QuatFromMat3 extracts the rotation of m. m must be a pure rotation
// matrix.
func QuatFromMat3(m *Mat3) Quat {
	return quatFromRotation(m[:])
}

// QuatFromMat4 extracts the rotation of the upper-left 3x3 of m, which must
// be a pure rotation.
func QuatFromMat4(m *Mat4) Quat {
	return quatFromRotation(m[:])
}

// quatFromRotation runs the trace-based extraction on a column-major buffer
// whose (row,col) element lives at col*4+row; Mat3 and Mat4 share that
// indexing. When the trace is non-positive the branch pivots on the largest
// diagonal element, which keeps the square root away from zero for
// rotations near 180 degrees.
func quatFromRotation(m []float32) Quat {
	var q Quat
	trace := m[0] + m[5] + m[10]
	if trace > 0 {
		root := sqrt(trace + 1)
		q[3] = root / 2
		invRoot := 0.5 / root
		q[0] = (m[6] - m[9]) * invRoot
		q[1] = (m[8] - m[2]) * invRoot
		q[2] = (m[1] - m[4]) * invRoot
		return q
	}

	i := 0
	if m[5] > m[0] {
		i = 1
	}
	if m[10] > m[i*4+i] {
		i = 2
	}
	j := (i + 1) % 3
	k := (i + 2) % 3

	root := sqrt(m[i*4+i] - m[j*4+j] - m[k*4+k] + 1)
	q[i] = root / 2
	invRoot := 0.5 / root
	q[3] = (m[j*4+k] - m[k*4+j]) * invRoot
	q[j] = (m[j*4+i] + m[i*4+j]) * invRoot
	q[k] = (m[k*4+i] + m[i*4+k]) * invRoot
	return q
}

// RotationTo returns the shortest rotation taking unit vector a to unit
// vector b. Near-antiparallel inputs rotate pi around an axis orthogonal to
// a, built by crossing with the world x axis or, when that degenerates, the
// world y axis.
func RotationTo(a, b *Vec3) Quat {
	dot := a.Dot(b)

	if dot < -0.999999 {
		var axis Vec3
		xUnit := Vec3{1, 0, 0}
		xUnit.Cross(a, &axis)
		if axis.Len() < Epsilon {
			yUnit := Vec3{0, 1, 0}
			yUnit.Cross(a, &axis)
		}
		axis.Normalize(&axis)
		return QuatFromAxisAngle(axis, math.Pi)
	}

	if dot > 0.999999 {
		return QuatIdentity()
	}

	var axis Vec3
	a.Cross(b, &axis)
	q := Quat{axis[0], axis[1], axis[2], 1 + dot}
	return *q.Normalize(nil)
}

func (q *Quat) X() float32 { return q[0] }
func (q *Quat) Y() float32 { return q[1] }
func (q *Quat) Z() float32 { return q[2] }
func (q *Quat) W() float32 { return q[3] }

// Set assigns all components at once and returns q.
func (q *Quat) Set(x, y, z, w float32) *Quat {
	q[0] = x
	q[1] = y
	q[2] = z
	q[3] = w
	return q
}

// Copy writes q into dst.
func (q *Quat) Copy(dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	*dst = *q
	return dst
}

// Floats returns the flat serialization of q.
func (q *Quat) Floats() []float32 {
	return q[:]
}

// Mul computes the Hamilton product q * b. The product is not commutative
// and does not renormalize.
func (q *Quat) Mul(b, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	ax, ay, az, aw := q[0], q[1], q[2], q[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]

	dst[0] = aw*bx + ax*bw + ay*bz - az*by
	dst[1] = aw*by + ay*bw + az*bx - ax*bz
	dst[2] = aw*bz + az*bw + ax*by - ay*bx
	dst[3] = aw*bw - ax*bx - ay*by - az*bz
	return dst
}

// Add adds b component-wise.
func (q *Quat) Add(b, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	dst[0] = q[0] + b[0]
	dst[1] = q[1] + b[1]
	dst[2] = q[2] + b[2]
	dst[3] = q[3] + b[3]
	return dst
}

// Sub subtracts b component-wise.
func (q *Quat) Sub(b, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	dst[0] = q[0] - b[0]
	dst[1] = q[1] - b[1]
	dst[2] = q[2] - b[2]
	dst[3] = q[3] - b[3]
	return dst
}

// Scale multiplies every component by s.
func (q *Quat) Scale(s float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	dst[0] = q[0] * s
	dst[1] = q[1] * s
	dst[2] = q[2] * s
	dst[3] = q[3] * s
	return dst
}

// Dot returns the 4-component dot product of q and b.
func (q *Quat) Dot(b *Quat) float32 {
	return q[0]*b[0] + q[1]*b[1] + q[2]*b[2] + q[3]*b[3]
}

// LenSq returns the squared length of q.
func (q *Quat) LenSq() float32 {
	return q.Dot(q)
}

// Len returns the length of q.
func (q *Quat) Len() float32 {
	return sqrt(q.LenSq())
}

// Normalize scales q to unit length. A quaternion shorter than Epsilon
// normalizes to the identity rotation (unlike vectors, which go to zero).
func (q *Quat) Normalize(dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	x, y, z, w := q[0], q[1], q[2], q[3]
	l := sqrt(x*x + y*y + z*z + w*w)
	if l > Epsilon {
		dst[0] = x / l
		dst[1] = y / l
		dst[2] = z / l
		dst[3] = w / l
	} else {
		dst[0] = 0
		dst[1] = 0
		dst[2] = 0
		dst[3] = 1
	}
	return dst
}

// Conjugate negates the vector part of q. For unit quaternions this is the
// inverse rotation.
func (q *Quat) Conjugate(dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	dst[0] = -q[0]
	dst[1] = -q[1]
	dst[2] = -q[2]
	dst[3] = q[3]
	return dst
}

// Inverse computes the conjugate divided by the squared length. A
// zero-length quaternion inverts to the zero quaternion.
func (q *Quat) Inverse(dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	x, y, z, w := q[0], q[1], q[2], q[3]
	lenSq := x*x + y*y + z*z + w*w
	if lenSq == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return dst
	}
	dst[0] = -x / lenSq
	dst[1] = -y / lenSq
	dst[2] = -z / lenSq
	dst[3] = w / lenSq
	return dst
}

// RotateX post-multiplies q by a rotation of rad radians around the x axis.
func (q *Quat) RotateX(rad float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	half := rad / 2
	bx, bw := sin(half), cos(half)
	x, y, z, w := q[0], q[1], q[2], q[3]

	dst[0] = x*bw + w*bx
	dst[1] = y*bw + z*bx
	dst[2] = z*bw - y*bx
	dst[3] = w*bw - x*bx
	return dst
}

// RotateY post-multiplies q by a rotation of rad radians around the y axis.
func (q *Quat) RotateY(rad float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	half := rad / 2
	by, bw := sin(half), cos(half)
	x, y, z, w := q[0], q[1], q[2], q[3]

	dst[0] = x*bw - z*by
	dst[1] = y*bw + w*by
	dst[2] = z*bw + x*by
	dst[3] = w*bw - y*by
	return dst
}

// RotateZ post-multiplies q by a rotation of rad radians around the z axis.
func (q *Quat) RotateZ(rad float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	half := rad / 2
	bz, bw := sin(half), cos(half)
	x, y, z, w := q[0], q[1], q[2], q[3]

	dst[0] = x*bw + y*bz
	dst[1] = y*bw - x*bz
	dst[2] = z*bw + w*bz
	dst[3] = w*bw - z*bz
	return dst
}

// Angle returns the rotation angle between q and b in radians. Both must be
// unit length.
func (q *Quat) Angle(b *Quat) float32 {
	d := q.Dot(b)
	return acos(Clamp(2*d*d-1, -1, 1))
}

// Lerp interpolates component-wise towards b. t is not clamped and the
// result is not normalized; use Slerp for constant-speed rotation blending.
func (q *Quat) Lerp(b *Quat, t float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	dst[0] = q[0] + t*(b[0]-q[0])
	dst[1] = q[1] + t*(b[1]-q[1])
	dst[2] = q[2] + t*(b[2]-q[2])
	dst[3] = q[3] + t*(b[3]-q[3])
	return dst
}

// Slerp interpolates along the shorter great-circle arc between q and b.
// When the dot product is negative b is negated first, so interpolation
// never takes the long way around. Nearly identical rotations fall back to
// linear interpolation to avoid dividing by a vanishing sine.
func (q *Quat) Slerp(b *Quat, t float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	ax, ay, az, aw := q[0], q[1], q[2], q[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]

	cosOmega := ax*bx + ay*by + az*bz + aw*bw
	if cosOmega < 0 {
		cosOmega = -cosOmega
		bx, by, bz, bw = -bx, -by, -bz, -bw
	}

	var scale0, scale1 float32
	if 1-cosOmega > Epsilon {
		omega := acos(cosOmega)
		sinOmega := sin(omega)
		scale0 = sin((1-t)*omega) / sinOmega
		scale1 = sin(t*omega) / sinOmega
	} else {
		scale0 = 1 - t
		scale1 = t
	}

	dst[0] = scale0*ax + scale1*bx
	dst[1] = scale0*ay + scale1*by
	dst[2] = scale0*az + scale1*bz
	dst[3] = scale0*aw + scale1*bw
	return dst
}

// Sqlerp interpolates a cubic spline through the control quaternions: the
// path runs from q to d, pulled towards b and c, via two nested Slerps
// blended with 2t(1-t).
func (q *Quat) Sqlerp(b, c, d *Quat, t float32, dst *Quat) *Quat {
	var outer, inner Quat
	q.Slerp(d, t, &outer)
	b.Slerp(c, t, &inner)
	return outer.Slerp(&inner, 2*t*(1-t), dst)
}

// Equals reports exact component equality.
func (q *Quat) Equals(b *Quat) bool {
	return *q == *b
}

// EqualsApprox reports component equality within Epsilon.
func (q *Quat) EqualsApprox(b *Quat) bool {
	return abs(q[0]-b[0]) < Epsilon && abs(q[1]-b[1]) < Epsilon &&
		abs(q[2]-b[2]) < Epsilon && abs(q[3]-b[3]) < Epsilon
}
