package quill

import (
	"math"
	"testing"
)

func TestMat3FromSlice(t *testing.T) {
	t.Run("accepts 12 elements and pins padding", func(t *testing.T) {
		s := []float32{1, 2, 3, 99, 4, 5, 6, 99, 7, 8, 9, 99}
		m, err := Mat3FromSlice(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkMat3Padding(t, &m)
		if m[0] != 1 || m[4] != 4 || m[10] != 9 {
			t.Errorf("logical elements lost: %v", m)
		}
	})

	t.Run("rejects 9 elements", func(t *testing.T) {
		if _, err := Mat3FromSlice(make([]float32, 9)); err == nil {
			t.Error("Mat3FromSlice should reject a 9-slot buffer; the physical layout is 12 slots")
		}
	})
}

func TestMat3IdentityMul(t *testing.T) {
	id := Ident3()
	m := Mat3Rotation(0.7)
	m.Translate(Vec2{3, -2}, &m)

	if got := id.Mul(&m, nil); !mat3AlmostEqual(*got, m, 1e-6) {
		t.Errorf("I * A = %v, want %v", *got, m)
	}
	if got := m.Mul(&id, nil); !mat3AlmostEqual(*got, m, 1e-6) {
		t.Errorf("A * I = %v, want %v", *got, m)
	}
}

func TestMat3PaddingInvariant(t *testing.T) {
	// Every operation must leave slots 3, 7 and 11 at zero; the buffer is
	// uploaded to the GPU as-is.
	a := Mat3Rotation(0.4)
	b := Mat3Translation(Vec2{1, 2})

	results := map[string]*Mat3{
		"Mul":          a.Mul(&b, nil),
		"Add":          a.Add(&b, nil),
		"MulScalar":    a.MulScalar(-2.5, nil),
		"Negate":       a.Negate(nil),
		"Transpose":    a.Transpose(nil),
		"Inverse":      a.Inverse(nil),
		"Translate":    a.Translate(Vec2{5, 6}, nil),
		"Rotate":       a.Rotate(1.2, nil),
		"Scale":        a.Scale(Vec2{2, 3}, nil),
		"UniformScale": a.UniformScale(2, nil),
	}
	for name, m := range results {
		t.Run(name, func(t *testing.T) {
			checkMat3Padding(t, m)
		})
	}

	for name, m := range map[string]Mat3{
		"Mat3Rotation":  Mat3Rotation(0.3),
		"Mat3RotationX": Mat3RotationX(0.3),
		"Mat3RotationY": Mat3RotationY(0.3),
		"Mat3RotationZ": Mat3RotationZ(0.3),
		"Mat3Scaling":   Mat3Scaling(Vec2{2, 3}),
		"Mat3FromQuat":  Mat3FromQuat(&Quat{0.5, 0.5, 0.5, 0.5}),
	} {
		t.Run(name, func(t *testing.T) {
			checkMat3Padding(t, &m)
		})
	}
}

func TestMat3TransposeInvolution(t *testing.T) {
	m := Mat3Rotation(0.9)
	m.Scale(Vec2{2, -3}, &m)
	m.Translate(Vec2{4, 5}, &m)

	var tt, back Mat3
	m.Transpose(&tt)
	tt.Transpose(&back)
	if back != m {
		t.Errorf("transpose(transpose(A)) = %v, want %v exactly", back, m)
	}
}

func TestMat3Determinant(t *testing.T) {
	id := Ident3()
	if got := id.Determinant(); got != 1 {
		t.Errorf("det(I) = %v, want 1", got)
	}

	s := Mat3Scaling(Vec2{2, 3})
	if got := s.Determinant(); got != 6 {
		t.Errorf("det(scale(2,3)) = %v, want 6", got)
	}

	r := Mat3Rotation(1.3)
	if got := r.Determinant(); !almostEqual(got, 1, 1e-6) {
		t.Errorf("det(rotation) = %v, want 1", got)
	}
}

func TestMat3Inverse(t *testing.T) {
	t.Run("inverse times original is identity", func(t *testing.T) {
		m := Mat3Rotation(0.8)
		m.Scale(Vec2{2, 0.5}, &m)
		m.Translate(Vec2{-1, 3}, &m)

		var inv, prod Mat3
		m.Inverse(&inv)
		inv.Mul(&m, &prod)
		if !mat3AlmostEqual(prod, Ident3(), 1e-5) {
			t.Errorf("inv(A) * A = %v, want identity", prod)
		}
	})

	t.Run("singular matrix inverts to identity", func(t *testing.T) {
		var m Mat3 // all zero, det = 0
		got := m.Inverse(nil)
		if *got != Ident3() {
			t.Errorf("inverse of singular = %v, want identity", *got)
		}
	})
}

func TestMat3InstanceOpsMatchConstructors(t *testing.T) {
	base := Mat3Translation(Vec2{1, 2})
	base.Rotate(0.5, &base)

	t.Run("Translate is Mul by Mat3Translation", func(t *testing.T) {
		tr := Mat3Translation(Vec2{3, 4})
		want := base.Mul(&tr, nil)
		got := base.Translate(Vec2{3, 4}, nil)
		if !mat3AlmostEqual(*got, *want, 1e-6) {
			t.Errorf("Translate = %v, want %v", *got, *want)
		}
	})

	t.Run("Rotate is Mul by Mat3Rotation", func(t *testing.T) {
		r := Mat3Rotation(1.1)
		want := base.Mul(&r, nil)
		got := base.Rotate(1.1, nil)
		if !mat3AlmostEqual(*got, *want, 1e-6) {
			t.Errorf("Rotate = %v, want %v", *got, *want)
		}
	})

	t.Run("Scale is Mul by Mat3Scaling", func(t *testing.T) {
		s := Mat3Scaling(Vec2{2, 3})
		want := base.Mul(&s, nil)
		got := base.Scale(Vec2{2, 3}, nil)
		if !mat3AlmostEqual(*got, *want, 1e-6) {
			t.Errorf("Scale = %v, want %v", *got, *want)
		}
	})
}

func TestMat3RotationMatchesMat4(t *testing.T) {
	// The 3x3 rotations must agree with the upper-left of the Mat4 ones;
	// the two types share the wire layout for exactly this reason.
	angles := []float32{0, 0.5, -1.2, math.Pi}
	for _, a := range angles {
		x3, x4 := Mat3RotationX(a), Mat4RotationX(a)
		if got := Mat3FromMat4(&x4); !mat3AlmostEqual(x3, got, 1e-7) {
			t.Errorf("RotationX(%v): mat3 %v vs mat4 upper-left %v", a, x3, got)
		}
		y3, y4 := Mat3RotationY(a), Mat4RotationY(a)
		if got := Mat3FromMat4(&y4); !mat3AlmostEqual(y3, got, 1e-7) {
			t.Errorf("RotationY(%v) mismatch", a)
		}
		z3, z4 := Mat3RotationZ(a), Mat4RotationZ(a)
		if got := Mat3FromMat4(&z4); !mat3AlmostEqual(z3, got, 1e-7) {
			t.Errorf("RotationZ(%v) mismatch", a)
		}
	}
}

func TestMat3FromQuatMatchesMat4FromQuat(t *testing.T) {
	axis := Vec3{1, -2, 0.5}
	axis.Normalize(&axis)
	q := QuatFromAxisAngle(axis, 2.1)

	m3 := Mat3FromQuat(&q)
	m4 := Mat4FromQuat(&q)
	if got := Mat3FromMat4(&m4); !mat3AlmostEqual(m3, got, 1e-6) {
		t.Errorf("Mat3FromQuat = %v, Mat4FromQuat upper-left = %v", m3, got)
	}
}

func TestMat3Accessors(t *testing.T) {
	m := Mat3Translation(Vec2{7, 8})
	m.Rotate(0.3, &m)

	if got := m.GetTranslation(); !vec2AlmostEqual(got, Vec2{7, 8}, 1e-6) {
		t.Errorf("GetTranslation = %v", got)
	}

	m2 := m.SetTranslation(Vec2{-1, -2}, nil)
	if got := m2.GetTranslation(); got != (Vec2{-1, -2}) {
		t.Errorf("SetTranslation/GetTranslation = %v", got)
	}
	checkMat3Padding(t, m2)

	s := Mat3Scaling(Vec2{3, 4})
	if got := s.GetScaling(); !vec2AlmostEqual(got, Vec2{3, 4}, 1e-6) {
		t.Errorf("GetScaling = %v", got)
	}

	if got := s.GetAxis(0); got != (Vec2{3, 0}) {
		t.Errorf("GetAxis(0) = %v", got)
	}
	s2 := s.SetAxis(Vec2{5, 6}, 1, nil)
	if got := s2.GetAxis(1); got != (Vec2{5, 6}) {
		t.Errorf("SetAxis/GetAxis = %v", got)
	}

	f := m.Floats()
	if len(f) != 12 {
		t.Errorf("Floats length = %d, want 12", len(f))
	}
	if m.Ptr() != &m[0] {
		t.Error("Ptr should point at the first element")
	}
}
