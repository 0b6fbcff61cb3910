package quill

import "fmt"

// Vec3 is a 3-component vector of float32.
type Vec3 [3]float32

// Vec3FromSlice builds a Vec3 from a backing slice of exactly 3 elements.
func Vec3FromSlice(s []float32) (Vec3, error) {
	if len(s) != 3 {
		return Vec3{}, fmt.Errorf("quill: Vec3 needs 3 elements, got %d", len(s))
	}
	return Vec3{s[0], s[1], s[2]}, nil
}

func (v *Vec3) X() float32 { return v[0] }
func (v *Vec3) Y() float32 { return v[1] }
func (v *Vec3) Z() float32 { return v[2] }

func (v *Vec3) SetX(x float32) { v[0] = x }
func (v *Vec3) SetY(y float32) { v[1] = y }
func (v *Vec3) SetZ(z float32) { v[2] = z }

// Set assigns all components at once and returns v.
func (v *Vec3) Set(x, y, z float32) *Vec3 {
	v[0] = x
	v[1] = y
	v[2] = z
	return v
}

// Copy writes v into dst.
func (v *Vec3) Copy(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	return dst
}

// Floats returns the flat serialization of v.
func (v *Vec3) Floats() []float32 {
	return v[:]
}

// Add computes v + w.
func (v *Vec3) Add(w, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = v[0] + w[0]
	dst[1] = v[1] + w[1]
	dst[2] = v[2] + w[2]
	return dst
}

// Sub computes v - w.
func (v *Vec3) Sub(w, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = v[0] - w[0]
	dst[1] = v[1] - w[1]
	dst[2] = v[2] - w[2]
	return dst
}

// Mul multiplies component-wise.
func (v *Vec3) Mul(w, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = v[0] * w[0]
	dst[1] = v[1] * w[1]
	dst[2] = v[2] * w[2]
	return dst
}

// Div divides component-wise.
func (v *Vec3) Div(w, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = v[0] / w[0]
	dst[1] = v[1] / w[1]
	dst[2] = v[2] / w[2]
	return dst
}

// Scale multiplies every component by s.
func (v *Vec3) Scale(s float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = v[0] * s
	dst[1] = v[1] * s
	dst[2] = v[2] * s
	return dst
}

// AddScaled computes v + w*s.
func (v *Vec3) AddScaled(w *Vec3, s float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = v[0] + w[0]*s
	dst[1] = v[1] + w[1]*s
	dst[2] = v[2] + w[2]*s
	return dst
}

// Negate flips the sign of every component.
func (v *Vec3) Negate(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = -v[0]
	dst[1] = -v[1]
	dst[2] = -v[2]
	return dst
}

// Dot returns the dot product of v and w.
func (v *Vec3) Dot(w *Vec3) float32 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product v x w.
func (v *Vec3) Cross(w, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	x := v[1]*w[2] - v[2]*w[1]
	y := v[2]*w[0] - v[0]*w[2]
	z := v[0]*w[1] - v[1]*w[0]
	dst[0] = x
	dst[1] = y
	dst[2] = z
	return dst
}

// LenSq returns the squared length of v.
func (v *Vec3) LenSq() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Len returns the length of v.
func (v *Vec3) Len() float32 {
	return sqrt(v.LenSq())
}

// DistSq returns the squared distance between v and w.
func (v *Vec3) DistSq(w *Vec3) float32 {
	dx := v[0] - w[0]
	dy := v[1] - w[1]
	dz := v[2] - w[2]
	return dx*dx + dy*dy + dz*dz
}

// Dist returns the distance between v and w.
func (v *Vec3) Dist(w *Vec3) float32 {
	return sqrt(v.DistSq(w))
}

// Normalize scales v to unit length. A vector shorter than Epsilon
// normalizes to the zero vector.
func (v *Vec3) Normalize(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	x, y, z := v[0], v[1], v[2]
	l := sqrt(x*x + y*y + z*z)
	if l > Epsilon {
		dst[0] = x / l
		dst[1] = y / l
		dst[2] = z / l
	} else {
		dst[0] = 0
		dst[1] = 0
		dst[2] = 0
	}
	return dst
}

// Lerp interpolates towards w. t is not clamped.
func (v *Vec3) Lerp(w *Vec3, t float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = v[0] + t*(w[0]-v[0])
	dst[1] = v[1] + t*(w[1]-v[1])
	dst[2] = v[2] + t*(w[2]-v[2])
	return dst
}

// Clamp limits each component to [min, max].
func (v *Vec3) Clamp(min, max float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = Clamp(v[0], min, max)
	dst[1] = Clamp(v[1], min, max)
	dst[2] = Clamp(v[2], min, max)
	return dst
}

// Min takes the component-wise minimum of v and w.
func (v *Vec3) Min(w, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = min(v[0], w[0])
	dst[1] = min(v[1], w[1])
	dst[2] = min(v[2], w[2])
	return dst
}

// Max takes the component-wise maximum of v and w.
func (v *Vec3) Max(w, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst[0] = max(v[0], w[0])
	dst[1] = max(v[1], w[1])
	dst[2] = max(v[2], w[2])
	return dst
}

// Angle returns the unsigned angle between v and w in radians. When either
// vector is near zero the cosine is treated as 0.
func (v *Vec3) Angle(w *Vec3) float32 {
	mag := sqrt(v.LenSq() * w.LenSq())
	var cosine float32
	if mag > 0 {
		cosine = v.Dot(w) / mag
	}
	return acos(Clamp(cosine, -1, 1))
}

// RotateX rotates v around origin by rad radians in the y/z plane.
func (v *Vec3) RotateX(origin *Vec3, rad float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	px := v[0] - origin[0]
	py := v[1] - origin[1]
	pz := v[2] - origin[2]
	s, c := sin(rad), cos(rad)
	dst[0] = px + origin[0]
	dst[1] = py*c - pz*s + origin[1]
	dst[2] = py*s + pz*c + origin[2]
	return dst
}

// RotateY rotates v around origin by rad radians in the z/x plane.
func (v *Vec3) RotateY(origin *Vec3, rad float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	px := v[0] - origin[0]
	py := v[1] - origin[1]
	pz := v[2] - origin[2]
	s, c := sin(rad), cos(rad)
	dst[0] = pz*s + px*c + origin[0]
	dst[1] = py + origin[1]
	dst[2] = pz*c - px*s + origin[2]
	return dst
}

// RotateZ rotates v around origin by rad radians in the x/y plane.
func (v *Vec3) RotateZ(origin *Vec3, rad float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	px := v[0] - origin[0]
	py := v[1] - origin[1]
	pz := v[2] - origin[2]
	s, c := sin(rad), cos(rad)
	dst[0] = px*c - py*s + origin[0]
	dst[1] = px*s + py*c + origin[1]
	dst[2] = pz + origin[2]
	return dst
}

// TransformMat3 multiplies v by the logical 3x3 part of m.
func (v *Vec3) TransformMat3(m *Mat3, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	x, y, z := v[0], v[1], v[2]
	dst[0] = m[0]*x + m[4]*y + m[8]*z
	dst[1] = m[1]*x + m[5]*y + m[9]*z
	dst[2] = m[2]*x + m[6]*y + m[10]*z
	return dst
}

// TransformMat4 multiplies v by m with point semantics (implicit w=1) and
// performs the perspective divide. A computed w of exactly 0 is replaced by
// 1 so the result stays finite; output for truly degenerate projections is
// then meaningless rather than NaN.
func (v *Vec3) TransformMat4(m *Mat4, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	x, y, z := v[0], v[1], v[2]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	dst[0] = (m[0]*x + m[4]*y + m[8]*z + m[12]) / w
	dst[1] = (m[1]*x + m[5]*y + m[9]*z + m[13]) / w
	dst[2] = (m[2]*x + m[6]*y + m[10]*z + m[14]) / w
	return dst
}

// TransformQuat rotates v by the unit quaternion q.
func (v *Vec3) TransformQuat(q *Quat, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	x, y, z := v[0], v[1], v[2]

	// t = 2 * cross(q.xyz, v)
	tx := 2 * (qy*z - qz*y)
	ty := 2 * (qz*x - qx*z)
	tz := 2 * (qx*y - qy*x)

	// v' = v + w*t + cross(q.xyz, t)
	dst[0] = x + qw*tx + qy*tz - qz*ty
	dst[1] = y + qw*ty + qz*tx - qx*tz
	dst[2] = z + qw*tz + qx*ty - qy*tx
	return dst
}

// Equals reports exact component equality.
func (v *Vec3) Equals(w *Vec3) bool {
	return v[0] == w[0] && v[1] == w[1] && v[2] == w[2]
}

// EqualsApprox reports component equality within Epsilon.
func (v *Vec3) EqualsApprox(w *Vec3) bool {
	return abs(v[0]-w[0]) < Epsilon && abs(v[1]-w[1]) < Epsilon && abs(v[2]-w[2]) < Epsilon
}
