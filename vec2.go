package quill

import "fmt"

// Vec2 is a 2-component vector of float32.
type Vec2 [2]float32

// Vec2FromSlice builds a Vec2 from a backing slice of exactly 2 elements.
func Vec2FromSlice(s []float32) (Vec2, error) {
	if len(s) != 2 {
		return Vec2{}, fmt.Errorf("quill: Vec2 needs 2 elements, got %d", len(s))
	}
	return Vec2{s[0], s[1]}, nil
}

func (v *Vec2) X() float32 { return v[0] }
func (v *Vec2) Y() float32 { return v[1] }

func (v *Vec2) SetX(x float32) { v[0] = x }
func (v *Vec2) SetY(y float32) { v[1] = y }

// Set assigns both components at once and returns v.
func (v *Vec2) Set(x, y float32) *Vec2 {
	v[0] = x
	v[1] = y
	return v
}

// Copy writes v into dst.
func (v *Vec2) Copy(dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = v[0]
	dst[1] = v[1]
	return dst
}

// Floats returns the flat serialization of v.
func (v *Vec2) Floats() []float32 {
	return v[:]
}

// Add computes v + w.
func (v *Vec2) Add(w, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = v[0] + w[0]
	dst[1] = v[1] + w[1]
	return dst
}

// Sub computes v - w.
func (v *Vec2) Sub(w, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = v[0] - w[0]
	dst[1] = v[1] - w[1]
	return dst
}

// Mul multiplies component-wise.
func (v *Vec2) Mul(w, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = v[0] * w[0]
	dst[1] = v[1] * w[1]
	return dst
}

// Div divides component-wise.
func (v *Vec2) Div(w, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = v[0] / w[0]
	dst[1] = v[1] / w[1]
	return dst
}

// Scale multiplies every component by s.
func (v *Vec2) Scale(s float32, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = v[0] * s
	dst[1] = v[1] * s
	return dst
}

// AddScaled computes v + w*s.
func (v *Vec2) AddScaled(w *Vec2, s float32, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = v[0] + w[0]*s
	dst[1] = v[1] + w[1]*s
	return dst
}

// Negate flips the sign of every component.
func (v *Vec2) Negate(dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = -v[0]
	dst[1] = -v[1]
	return dst
}

// Dot returns the dot product of v and w.
func (v *Vec2) Dot(w *Vec2) float32 {
	return v[0]*w[0] + v[1]*w[1]
}

// Cross embeds v and w in 3D and returns their cross product, which only
// has a z component.
func (v *Vec2) Cross(w *Vec2, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	z := v[0]*w[1] - v[1]*w[0]
	dst[0] = 0
	dst[1] = 0
	dst[2] = z
	return dst
}

// LenSq returns the squared length of v.
func (v *Vec2) LenSq() float32 {
	return v[0]*v[0] + v[1]*v[1]
}

// Len returns the length of v.
func (v *Vec2) Len() float32 {
	return sqrt(v.LenSq())
}

// DistSq returns the squared distance between v and w.
func (v *Vec2) DistSq(w *Vec2) float32 {
	dx := v[0] - w[0]
	dy := v[1] - w[1]
	return dx*dx + dy*dy
}

// Dist returns the distance between v and w.
func (v *Vec2) Dist(w *Vec2) float32 {
	return sqrt(v.DistSq(w))
}

// Normalize scales v to unit length. A vector shorter than Epsilon
// normalizes to the zero vector.
func (v *Vec2) Normalize(dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	x, y := v[0], v[1]
	l := sqrt(x*x + y*y)
	if l > Epsilon {
		dst[0] = x / l
		dst[1] = y / l
	} else {
		dst[0] = 0
		dst[1] = 0
	}
	return dst
}

// Lerp interpolates towards w. t is not clamped.
func (v *Vec2) Lerp(w *Vec2, t float32, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = v[0] + t*(w[0]-v[0])
	dst[1] = v[1] + t*(w[1]-v[1])
	return dst
}

// Clamp limits each component to [min, max].
func (v *Vec2) Clamp(min, max float32, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = Clamp(v[0], min, max)
	dst[1] = Clamp(v[1], min, max)
	return dst
}

// Min takes the component-wise minimum of v and w.
func (v *Vec2) Min(w, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = min(v[0], w[0])
	dst[1] = min(v[1], w[1])
	return dst
}

// Max takes the component-wise maximum of v and w.
func (v *Vec2) Max(w, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	dst[0] = max(v[0], w[0])
	dst[1] = max(v[1], w[1])
	return dst
}

// Angle returns the unsigned angle between v and w in radians. When either
// vector is near zero the cosine is treated as 0.
func (v *Vec2) Angle(w *Vec2) float32 {
	mag := sqrt(v.LenSq() * w.LenSq())
	var cosine float32
	if mag > 0 {
		cosine = v.Dot(w) / mag
	}
	return acos(Clamp(cosine, -1, 1))
}

// Rotate rotates v around origin by rad radians.
func (v *Vec2) Rotate(origin *Vec2, rad float32, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	px := v[0] - origin[0]
	py := v[1] - origin[1]
	s, c := sin(rad), cos(rad)
	dst[0] = px*c - py*s + origin[0]
	dst[1] = px*s + py*c + origin[1]
	return dst
}

// TransformMat3 applies the 2D affine transform in m (point semantics,
// implicit third component 1).
func (v *Vec2) TransformMat3(m *Mat3, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	x, y := v[0], v[1]
	dst[0] = m[0]*x + m[4]*y + m[8]
	dst[1] = m[1]*x + m[5]*y + m[9]
	return dst
}

// TransformMat4 applies the x/y part of m to v (point semantics, implicit
// z=0 and w=1, no perspective divide).
func (v *Vec2) TransformMat4(m *Mat4, dst *Vec2) *Vec2 {
	if dst == nil {
		dst = &Vec2{}
	}
	x, y := v[0], v[1]
	dst[0] = m[0]*x + m[4]*y + m[12]
	dst[1] = m[1]*x + m[5]*y + m[13]
	return dst
}

// Equals reports exact component equality.
func (v *Vec2) Equals(w *Vec2) bool {
	return v[0] == w[0] && v[1] == w[1]
}

// EqualsApprox reports component equality within Epsilon.
func (v *Vec2) EqualsApprox(w *Vec2) bool {
	return abs(v[0]-w[0]) < Epsilon && abs(v[1]-w[1]) < Epsilon
}
