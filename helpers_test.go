package quill

import (
	"testing"
)

// Shared comparison helpers. Tolerances are looser than Epsilon because
// float32 arithmetic composed over several operations drifts past 1e-6.

func almostEqual(a, b, epsilon float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

func vec2AlmostEqual(a, b Vec2, epsilon float32) bool {
	return almostEqual(a[0], b[0], epsilon) && almostEqual(a[1], b[1], epsilon)
}

func vec3AlmostEqual(a, b Vec3, epsilon float32) bool {
	return almostEqual(a[0], b[0], epsilon) &&
		almostEqual(a[1], b[1], epsilon) &&
		almostEqual(a[2], b[2], epsilon)
}

func vec4AlmostEqual(a, b Vec4, epsilon float32) bool {
	return almostEqual(a[0], b[0], epsilon) &&
		almostEqual(a[1], b[1], epsilon) &&
		almostEqual(a[2], b[2], epsilon) &&
		almostEqual(a[3], b[3], epsilon)
}

func mat3AlmostEqual(a, b Mat3, epsilon float32) bool {
	for _, i := range mat3Indices {
		if !almostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func mat4AlmostEqual(a, b Mat4, epsilon float32) bool {
	for i := range a {
		if !almostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func quatAlmostEqual(a, b Quat, epsilon float32) bool {
	return almostEqual(a[0], b[0], epsilon) &&
		almostEqual(a[1], b[1], epsilon) &&
		almostEqual(a[2], b[2], epsilon) &&
		almostEqual(a[3], b[3], epsilon)
}

// quatSameRotation compares up to the double cover: q and -q describe the
// same rotation.
func quatSameRotation(a, b Quat, epsilon float32) bool {
	neg := Quat{-b[0], -b[1], -b[2], -b[3]}
	return quatAlmostEqual(a, b, epsilon) || quatAlmostEqual(a, neg, epsilon)
}

func checkMat3Padding(t *testing.T, m *Mat3) {
	t.Helper()
	if m[3] != 0 || m[7] != 0 || m[11] != 0 {
		t.Errorf("Mat3 padding slots must stay zero, got [3]=%v [7]=%v [11]=%v", m[3], m[7], m[11])
	}
}
