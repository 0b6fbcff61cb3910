// Package quill implements the small-vector algebra used by 3D transform
// pipelines: 2/3/4-component vectors, 3x3 and 4x4 column-major matrices,
// and quaternions.
//
// All matrix buffers are flat and column-major (element (row,col) lives at
// index col*4+row) so they can be uploaded to a GPU uniform buffer as-is.
// Mat3 keeps the physical 12-slot layout of a std140 mat3x3: slots 3, 7 and
// 11 are alignment padding and are always zero.
//
// Every operation that produces a vector, matrix or quaternion takes a
// trailing destination pointer. Passing nil allocates a fresh result;
// passing a destination writes into it and returns the same pointer. A
// destination may alias any operand, including the receiver.
//
// Degenerate numeric input never panics and never produces NaN from a
// guarded division: normalizing a near-zero vector yields the zero vector,
// normalizing a near-zero quaternion yields the identity quaternion, and
// inverting a singular matrix yields the identity matrix. The per-operation
// fallbacks are documented where they apply.
package quill

import "math"

// Epsilon is the tolerance below which lengths, determinants and angle
// cosines are treated as degenerate.
const Epsilon = 1e-6

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math.Pi
}

// Lerp linearly interpolates between a and b. t is not clamped, so values
// outside [0,1] extrapolate.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// InverseLerp returns the t for which Lerp(a, b, t) == v. Returns 0 when a
// and b coincide.
func InverseLerp(a, b, v float32) float32 {
	d := b - a
	if d == 0 {
		return 0
	}
	return (v - a) / d
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// EuclideanModulo returns n modulo m with the sign of m, so negative n wraps
// into [0, m) for positive m.
func EuclideanModulo(n, m float32) float32 {
	return float32(math.Mod(math.Mod(float64(n), float64(m))+float64(m), float64(m)))
}

// float32 wrappers around the float64 math package.

func sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func sin(x float32) float32 { return float32(math.Sin(float64(x))) }

func cos(x float32) float32 { return float32(math.Cos(float64(x))) }

func tan(x float32) float32 { return float32(math.Tan(float64(x))) }

func acos(x float32) float32 { return float32(math.Acos(float64(x))) }

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
