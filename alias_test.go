package quill

import (
	"math"
	"testing"
)

// Destination parameters may alias any input. Each operation must read its
// inputs before writing, so op(a, b, &a) produces the same result as
// op(a, b, nil).

func TestVecAliasing(t *testing.T) {
	t.Run("vec3 add into first operand", func(t *testing.T) {
		a := Vec3{1, 2, 3}
		b := Vec3{4, 5, 6}
		want := *a.Add(&b, nil)
		if got := a.Add(&b, &a); *got != want {
			t.Errorf("aliased Add = %v, want %v", *got, want)
		}
	})

	t.Run("vec3 cross into second operand", func(t *testing.T) {
		a := Vec3{1, 2, 3}
		b := Vec3{4, 5, 6}
		want := *a.Cross(&b, nil)
		if got := a.Cross(&b, &b); *got != want {
			t.Errorf("aliased Cross = %v, want %v", *got, want)
		}
	})

	t.Run("vec3 normalize in place", func(t *testing.T) {
		v := Vec3{3, 0, 4}
		want := *v.Normalize(nil)
		if got := v.Normalize(&v); *got != want {
			t.Errorf("aliased Normalize = %v, want %v", *got, want)
		}
	})

	t.Run("vec2 rotate in place", func(t *testing.T) {
		v := Vec2{1, 2}
		origin := Vec2{0.5, -0.5}
		want := *v.Rotate(&origin, 0.9, nil)
		if got := v.Rotate(&origin, 0.9, &v); *got != want {
			t.Errorf("aliased Rotate = %v, want %v", *got, want)
		}
	})

	t.Run("vec4 transform in place", func(t *testing.T) {
		m := Mat4RotationZ(1.1)
		m.Translate(Vec3{1, 2, 3}, &m)
		v := Vec4{1, -1, 2, 1}
		want := *v.TransformMat4(&m, nil)
		if got := v.TransformMat4(&m, &v); *got != want {
			t.Errorf("aliased TransformMat4 = %v, want %v", *got, want)
		}
	})
}

func TestVec3TransformAliasing(t *testing.T) {
	m := Mat4RotationY(0.6)
	m.Translate(Vec3{-1, 0, 2}, &m)
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.6)

	v := Vec3{2, 3, -1}
	want := *v.TransformMat4(&m, nil)
	if got := v.TransformMat4(&m, &v); *got != want {
		t.Errorf("aliased TransformMat4 = %v, want %v", *got, want)
	}

	w := Vec3{2, 3, -1}
	wantQ := *w.TransformQuat(&q, nil)
	if got := w.TransformQuat(&q, &w); *got != wantQ {
		t.Errorf("aliased TransformQuat = %v, want %v", *got, wantQ)
	}
}

func TestMatAliasing(t *testing.T) {
	t.Run("mat4 mul into first operand", func(t *testing.T) {
		a := Mat4RotationX(0.5)
		b := Mat4Translation(Vec3{1, 2, 3})
		want := *a.Mul(&b, nil)
		if got := a.Mul(&b, &a); *got != want {
			t.Errorf("aliased Mul = %v, want %v", *got, want)
		}
	})

	t.Run("mat4 mul into second operand", func(t *testing.T) {
		a := Mat4RotationX(0.5)
		b := Mat4Translation(Vec3{1, 2, 3})
		want := *a.Mul(&b, nil)
		if got := a.Mul(&b, &b); *got != want {
			t.Errorf("aliased Mul = %v, want %v", *got, want)
		}
	})

	t.Run("mat4 square in place", func(t *testing.T) {
		a := Mat4AxisRotation(Vec3{0, 0.6, 0.8}, 1.3)
		want := *a.Mul(&a, nil)
		if got := a.Mul(&a, &a); *got != want {
			t.Errorf("aliased square = %v, want %v", *got, want)
		}
	})

	t.Run("mat4 transpose in place", func(t *testing.T) {
		a := Mat4Translation(Vec3{1, 2, 3})
		want := *a.Transpose(nil)
		if got := a.Transpose(&a); *got != want {
			t.Errorf("aliased Transpose = %v, want %v", *got, want)
		}
	})

	t.Run("mat4 inverse in place", func(t *testing.T) {
		a := Mat4RotationZ(0.8)
		a.Translate(Vec3{2, -1, 4}, &a)
		want := *a.Inverse(nil)
		if got := a.Inverse(&a); *got != want {
			t.Errorf("aliased Inverse = %v, want %v", *got, want)
		}
	})

	t.Run("mat3 mul in place", func(t *testing.T) {
		a := Mat3Rotation(0.5)
		b := Mat3Translation(Vec2{1, 2})
		want := *a.Mul(&b, nil)
		got := a.Mul(&b, &a)
		if *got != want {
			t.Errorf("aliased Mul = %v, want %v", *got, want)
		}
		checkMat3Padding(t, got)
	})

	t.Run("mat3 inverse in place", func(t *testing.T) {
		a := Mat3Rotation(1.2)
		a.Translate(Vec2{3, -2}, &a)
		want := *a.Inverse(nil)
		if got := a.Inverse(&a); *got != want {
			t.Errorf("aliased Inverse = %v, want %v", *got, want)
		}
	})
}

func TestQuatAliasing(t *testing.T) {
	t.Run("mul into first operand", func(t *testing.T) {
		a := QuatFromAxisAngle(Vec3{1, 0, 0}, 0.4)
		b := QuatFromAxisAngle(Vec3{0, 1, 0}, 1.1)
		want := *a.Mul(&b, nil)
		if got := a.Mul(&b, &a); *got != want {
			t.Errorf("aliased Mul = %v, want %v", *got, want)
		}
	})

	t.Run("square in place", func(t *testing.T) {
		a := QuatFromAxisAngle(Vec3{0, 0, 1}, 0.7)
		want := *a.Mul(&a, nil)
		if got := a.Mul(&a, &a); *got != want {
			t.Errorf("aliased square = %v, want %v", *got, want)
		}
	})

	t.Run("slerp into first operand", func(t *testing.T) {
		a := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.3)
		b := QuatFromAxisAngle(Vec3{0, 1, 0}, 2.0)
		want := *a.Slerp(&b, 0.4, nil)
		if got := a.Slerp(&b, 0.4, &a); *got != want {
			t.Errorf("aliased Slerp = %v, want %v", *got, want)
		}
	})

	t.Run("normalize in place", func(t *testing.T) {
		q := Quat{1, 2, 3, 4}
		want := *q.Normalize(nil)
		if got := q.Normalize(&q); *got != want {
			t.Errorf("aliased Normalize = %v, want %v", *got, want)
		}
	})
}

func TestDstPointerIdentity(t *testing.T) {
	// A non-nil dst must be returned as is, never replaced
	var vdst Vec3
	a := Vec3{1, 2, 3}
	if got := a.Scale(2, &vdst); got != &vdst {
		t.Error("Vec3.Scale did not return the provided dst")
	}

	var mdst Mat4
	m := Mat4RotationX(0.3)
	if got := m.Transpose(&mdst); got != &mdst {
		t.Error("Mat4.Transpose did not return the provided dst")
	}

	var qdst Quat
	q := QuatFromAxisAngle(Vec3{1, 0, 0}, 0.5)
	if got := q.Conjugate(&qdst); got != &qdst {
		t.Error("Quat.Conjugate did not return the provided dst")
	}

	// A nil dst allocates a fresh value detached from the inputs
	sum := a.Add(&a, nil)
	if sum == &a {
		t.Error("nil dst must not alias an input")
	}

	theta := float32(math.Pi / 3)
	r := Mat4RotationZ(theta)
	if out := r.Mul(&r, nil); out == &r {
		t.Error("nil dst must not alias the receiver")
	}
}
