package vec2go

import "math"

// FromAngle creates a unit vector rotated to the given angle in radians.
// This is equivalent to New(cos(angle), sin(angle)).
func FromAngle[T Float](angle T) Vector2[T] {
	s, c := math.Sincos(float64(angle))
	return Vector2[T]{X: T(c), Y: T(s)}
}

// Abs returns v with both components in absolute value.
func Abs[T Float](v Vector2[T]) Vector2[T] {
	return Vector2[T]{X: T(math.Abs(float64(v.X))), Y: T(math.Abs(float64(v.Y)))}
}

// Angle returns v's signed angle with respect to the positive X axis, in
// radians. This is atan2(y, x): Right has angle 0, Down has angle π/2.
func Angle[T Float](v Vector2[T]) T {
	return T(math.Atan2(float64(v.Y), float64(v.X)))
}

// Cross returns the 2D cross product of a and b, a scalar. This is the Z
// component of the 3D cross product of the two vectors embedded at Z=0.
func Cross[T Float](a, b Vector2[T]) T {
	return a.X*b.Y - a.Y*b.X
}

// Dot returns the dot product of a and b.
func Dot[T Float](a, b Vector2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// DistanceTo returns the Euclidean distance from a to b.
func DistanceTo[T Float](a, b Vector2[T]) T {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return T(math.Sqrt(dx*dx + dy*dy))
}

// Length returns the magnitude of v.
func Length[T Float](v Vector2[T]) T {
	return T(math.Sqrt(float64(LengthSquared(v))))
}

// LengthSquared returns the squared magnitude of v. Faster than Length
// when only relative magnitudes matter.
func LengthSquared[T Float](v Vector2[T]) T {
	return v.X*v.X + v.Y*v.Y
}

// LimitLength returns v clamped to the given maximum length, preserving
// direction. Zero-length vectors are returned unchanged rather than
// divided by zero.
func LimitLength[T Float](v Vector2[T], max T) Vector2[T] {
	l := Length(v)
	if l > 0 && max < l {
		return v.DivScalar(l).MulScalar(max)
	}
	return v
}

// Normalized returns v scaled to unit length, equivalent to v / length(v).
// Zero vectors are returned unchanged rather than producing NaN.
//
// Note: denormal components may still underflow during scaling.
func Normalized[T Float](v Vector2[T]) Vector2[T] {
	l := LengthSquared(v)
	if l != 0 {
		return v.DivScalar(T(math.Sqrt(float64(l))))
	}
	return v
}

// Rotated returns v rotated by angle radians.
func Rotated[T Float](v Vector2[T], angle T) Vector2[T] {
	s, c := math.Sincos(float64(angle))
	sin, cos := T(s), T(c)
	return Vector2[T]{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Ceil returns v with both components rounded up, toward positive infinity.
func Ceil[T Float](v Vector2[T]) Vector2[T] {
	return Vector2[T]{X: T(math.Ceil(float64(v.X))), Y: T(math.Ceil(float64(v.Y)))}
}

// Floor returns v with both components rounded down, toward negative
// infinity.
func Floor[T Float](v Vector2[T]) Vector2[T] {
	return Vector2[T]{X: T(math.Floor(float64(v.X))), Y: T(math.Floor(float64(v.Y)))}
}
