package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// WorldUp is the +Y axis every terrain height is measured along.
	WorldUp = mgl64.Vec3{0, 1, 0}
	// WorldForward is the local axis the body and head treat as "ahead".
	WorldForward = mgl64.Vec3{0, 0, 1}
)

// EaseInOutCubic eases t in [0, 1] with a cubic curve that has zero velocity at both ends.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp linearly interpolates between start and end by t.
func Lerp(start, end, t float64) float64 {
	return start*(1-t) + end*t
}

// LerpVec3 linearly interpolates between two vectors by t.
func LerpVec3(start, end mgl64.Vec3, t float64) mgl64.Vec3 {
	return start.Add(end.Sub(start).Mul(t))
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// Clamp01 clamps a blend factor to [0, 1].
func Clamp01(t float64) float64 {
	return ClampFloat(t, 0, 1)
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Float64ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-9.
func Float64ApproxEq(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

// Vec3HzDist returns the horizontal (XZ) distance between two points.
func Vec3HzDist(a, b mgl64.Vec3) float64 {
	dx, dz := b.X()-a.X(), b.Z()-a.Z()
	return math.Sqrt(dx*dx + dz*dz)
}

// SafeNormalize normalizes v, returning false and a zero vector if v has no usable length.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < 1e-9 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// ClampLength scales v down to max if it is longer than max.
func ClampLength(v mgl64.Vec3, max float64) mgl64.Vec3 {
	if l := v.Len(); l > max && l > 0 {
		return v.Mul(max / l)
	}
	return v
}

// QuatFromBasis returns the rotation whose columns are the given orthonormal axes.
func QuatFromBasis(right, up, forward mgl64.Vec3) mgl64.Quat {
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(right, up, forward).Mat4()).Normalize()
}

// LookRotation returns the rotation that points the local +Z axis along dir while keeping
// local +Y as close to up as possible. Degenerate directions are nudged rather than rejected.
func LookRotation(dir, up mgl64.Vec3) mgl64.Quat {
	z, ok := SafeNormalize(dir)
	if !ok {
		z = WorldForward
	}
	x, ok := SafeNormalize(up.Cross(z))
	if !ok {
		if math.Abs(up.Z()) == 1 {
			z[0] += 1e-4
		} else {
			z[2] += 1e-4
		}
		z = z.Normalize()
		x, _ = SafeNormalize(up.Cross(z))
	}
	y := z.Cross(x)
	return QuatFromBasis(x, y, z)
}

// Slerp spherically interpolates from a toward b along the shortest arc. t is clamped to [0, 1].
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// MinVec3 returns the component-wise minimum of the given vectors.
func MinVec3(vecs []mgl32.Vec3) mgl32.Vec3 {
	min := mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	for _, v := range vecs {
		min = mgl32.Vec3{math32.Min(min[0], v[0]), math32.Min(min[1], v[1]), math32.Min(min[2], v[2])}
	}
	return min
}

// MaxVec3 returns the component-wise maximum of the given vectors.
func MaxVec3(vecs []mgl32.Vec3) mgl32.Vec3 {
	max := mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
	for _, v := range vecs {
		max = mgl32.Vec3{math32.Max(max[0], v[0]), math32.Max(max[1], v[1]), math32.Max(max[2], v[2])}
	}
	return max
}
