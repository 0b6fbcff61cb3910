package quill

import "fmt"

// Vec4 is a 4-component vector of float32.
type Vec4 [4]float32

// Vec4FromSlice builds a Vec4 from a backing slice of exactly 4 elements.
func Vec4FromSlice(s []float32) (Vec4, error) {
	if len(s) != 4 {
		return Vec4{}, fmt.Errorf("quill: Vec4 needs 4 elements, got %d", len(s))
	}
	return Vec4{s[0], s[1], s[2], s[3]}, nil
}

func (v *Vec4) X() float32 { return v[0] }
func (v *Vec4) Y() float32 { return v[1] }
func (v *Vec4) Z() float32 { return v[2] }
func (v *Vec4) W() float32 { return v[3] }

func (v *Vec4) SetX(x float32) { v[0] = x }
func (v *Vec4) SetY(y float32) { v[1] = y }
func (v *Vec4) SetZ(z float32) { v[2] = z }
func (v *Vec4) SetW(w float32) { v[3] = w }

// Set assigns all components at once and returns v.
func (v *Vec4) Set(x, y, z, w float32) *Vec4 {
	v[0] = x
	v[1] = y
	v[2] = z
	v[3] = w
	return v
}

// Copy writes v into dst.
func (v *Vec4) Copy(dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	dst[3] = v[3]
	return dst
}

// Floats returns the flat serialization of v.
func (v *Vec4) Floats() []float32 {
	return v[:]
}

// Add computes v + w.
func (v *Vec4) Add(w, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = v[0] + w[0]
	dst[1] = v[1] + w[1]
	dst[2] = v[2] + w[2]
	dst[3] = v[3] + w[3]
	return dst
}

// Sub computes v - w.
func (v *Vec4) Sub(w, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = v[0] - w[0]
	dst[1] = v[1] - w[1]
	dst[2] = v[2] - w[2]
	dst[3] = v[3] - w[3]
	return dst
}

// Mul multiplies component-wise.
func (v *Vec4) Mul(w, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = v[0] * w[0]
	dst[1] = v[1] * w[1]
	dst[2] = v[2] * w[2]
	dst[3] = v[3] * w[3]
	return dst
}

// Div divides component-wise.
func (v *Vec4) Div(w, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = v[0] / w[0]
	dst[1] = v[1] / w[1]
	dst[2] = v[2] / w[2]
	dst[3] = v[3] / w[3]
	return dst
}

// Scale multiplies every component by s.
func (v *Vec4) Scale(s float32, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = v[0] * s
	dst[1] = v[1] * s
	dst[2] = v[2] * s
	dst[3] = v[3] * s
	return dst
}

// AddScaled computes v + w*s.
func (v *Vec4) AddScaled(w *Vec4, s float32, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = v[0] + w[0]*s
	dst[1] = v[1] + w[1]*s
	dst[2] = v[2] + w[2]*s
	dst[3] = v[3] + w[3]*s
	return dst
}

// Negate flips the sign of every component.
func (v *Vec4) Negate(dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = -v[0]
	dst[1] = -v[1]
	dst[2] = -v[2]
	dst[3] = -v[3]
	return dst
}

// Dot returns the dot product of v and w.
func (v *Vec4) Dot(w *Vec4) float32 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// LenSq returns the squared length of v.
func (v *Vec4) LenSq() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}

// Len returns the length of v.
func (v *Vec4) Len() float32 {
	return sqrt(v.LenSq())
}

// DistSq returns the squared distance between v and w.
func (v *Vec4) DistSq(w *Vec4) float32 {
	dx := v[0] - w[0]
	dy := v[1] - w[1]
	dz := v[2] - w[2]
	dw := v[3] - w[3]
	return dx*dx + dy*dy + dz*dz + dw*dw
}

// Dist returns the distance between v and w.
func (v *Vec4) Dist(w *Vec4) float32 {
	return sqrt(v.DistSq(w))
}

// Normalize scales v to unit length. A vector shorter than Epsilon
// normalizes to the zero vector.
func (v *Vec4) Normalize(dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	x, y, z, w := v[0], v[1], v[2], v[3]
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
		dst[3] = 0
	}
	return dst
}

// Lerp interpolates towards w. t is not clamped.
func (v *Vec4) Lerp(w *Vec4, t float32, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = v[0] + t*(w[0]-v[0])
	dst[1] = v[1] + t*(w[1]-v[1])
	dst[2] = v[2] + t*(w[2]-v[2])
	dst[3] = v[3] + t*(w[3]-v[3])
	return dst
}

// Clamp limits each component to [min, max].
func (v *Vec4) Clamp(min, max float32, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = Clamp(v[0], min, max)
	dst[1] = Clamp(v[1], min, max)
	dst[2] = Clamp(v[2], min, max)
	dst[3] = Clamp(v[3], min, max)
	return dst
}

// Min takes the component-wise minimum of v and w.
func (v *Vec4) Min(w, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = min(v[0], w[0])
	dst[1] = min(v[1], w[1])
	dst[2] = min(v[2], w[2])
	dst[3] = min(v[3], w[3])
	return dst
}

// Max takes the component-wise maximum of v and w.
func (v *Vec4) Max(w, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	dst[0] = max(v[0], w[0])
	dst[1] = max(v[1], w[1])
	dst[2] = max(v[2], w[2])
	dst[3] = max(v[3], w[3])
	return dst
}

// TransformMat4 multiplies v by m.
func (v *Vec4) TransformMat4(m *Mat4, dst *Vec4) *Vec4 {
	if dst == nil {
		dst = &Vec4{}
	}
	x, y, z, w := v[0], v[1], v[2], v[3]
	dst[0] = m[0]*x + m[4]*y + m[8]*z + m[12]*w
	dst[1] = m[1]*x + m[5]*y + m[9]*z + m[13]*w
	dst[2] = m[2]*x + m[6]*y + m[10]*z + m[14]*w
	dst[3] = m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return dst
}

// Equals reports exact component equality.
func (v *Vec4) Equals(w *Vec4) bool {
	return v[0] == w[0] && v[1] == w[1] && v[2] == w[2] && v[3] == w[3]
}

// EqualsApprox reports component equality within Epsilon.
func (v *Vec4) EqualsApprox(w *Vec4) bool {
	return abs(v[0]-w[0]) < Epsilon && abs(v[1]-w[1]) < Epsilon &&
		abs(v[2]-w[2]) < Epsilon && abs(v[3]-w[3]) < Epsilon
}
