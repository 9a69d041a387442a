// Package spatial provides world-space pose math for go-arfocus:
// vectors, quaternions and transforms with the interpolation helpers
// the focus controller needs for smooth motion.
package spatial

import (
	"math"
)

// Vec3 is a position or scale in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the magnitude of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// DistanceTo returns the distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalized returns v with unit length.
// Degenerate vectors normalize to the X axis.
func (v Vec3) Normalized() Vec3 {
	mag := v.Length()
	if mag < 1e-10 {
		return Vec3{1, 0, 0}
	}
	return v.Scale(1 / mag)
}

// Uniform returns a vector with all components set to s.
// Useful for uniform scale factors.
func Uniform(s float64) Vec3 {
	return Vec3{s, s, s}
}

// LerpVec3 performs linear interpolation between two vectors.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
	}
}

// Quat is a rotation quaternion (w + xi + yj + zk).
type Quat struct {
	W, X, Y, Z float64
}

// IdentityQuat returns the identity rotation.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(o Quat) float64 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// Normalized returns q with unit magnitude.
// Degenerate quaternions normalize to identity.
func (q Quat) Normalized() Quat {
	mag := math.Sqrt(q.Dot(q))
	if mag < 1e-10 {
		return IdentityQuat()
	}
	return Quat{W: q.W / mag, X: q.X / mag, Y: q.Y / mag, Z: q.Z / mag}
}

// AxisAngle builds a quaternion rotating angle radians around axis.
func AxisAngle(axis Vec3, angle float64) Quat {
	axis = axis.Normalized()
	half := angle / 2
	s := math.Sin(half)
	return Quat{
		W: math.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Slerp performs spherical linear interpolation between two rotations.
// Falls back to normalized lerp when the rotations are nearly parallel,
// which avoids the numerically unstable small-angle division.
func Slerp(a, b Quat, t float64) Quat {
	t = clamp(t, 0, 1)

	dot := a.Dot(b)

	// Take the short way around the sphere
	if dot < 0 {
		b = Quat{W: -b.W, X: -b.X, Y: -b.Y, Z: -b.Z}
		dot = -dot
	}

	if dot > 0.9995 {
		return Quat{
			W: lerp(a.W, b.W, t),
			X: lerp(a.X, b.X, t),
			Y: lerp(a.Y, b.Y, t),
			Z: lerp(a.Z, b.Z, t),
		}.Normalized()
	}

	theta := math.Acos(clamp(dot, -1, 1))
	sinTheta := math.Sin(theta)

	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta

	return Quat{
		W: wa*a.W + wb*b.W,
		X: wa*a.X + wb*b.X,
		Y: wa*a.Y + wb*b.Y,
		Z: wa*a.Z + wb*b.Z,
	}.Normalized()
}

// Transform is a position plus orientation in world space.
type Transform struct {
	Position Vec3
	Rotation Quat
}

// IdentityTransform returns a transform at the origin with no rotation.
func IdentityTransform() Transform {
	return Transform{Rotation: IdentityQuat()}
}

// LerpTransform interpolates position linearly and rotation spherically.
func LerpTransform(a, b Transform, t float64) Transform {
	return Transform{
		Position: LerpVec3(a.Position, b.Position, t),
		Rotation: Slerp(a.Rotation, b.Rotation, t),
	}
}

// lerp performs linear interpolation between two values.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// clamp restricts a value to a range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
