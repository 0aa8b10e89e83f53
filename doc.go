// Package vec2go provides a generic 2D vector math primitive for Go.
//
// Vector2 is a plain value type over any integer or floating-point
// component type, with a full componentwise arithmetic surface, scalar
// broadcasting, in-place variants, and floating-point geometry helpers
// (length, normalization, rotation, angles, dot and cross products).
//
// # Quick Start
//
//	v := vec2go.New(5.0, 7.0)
//	v.MulScalarInPlace(2)
//	fmt.Println(v) // (10, 14)
//
//	dir := vec2go.Normalized(vec2go.New(3.0, 4.0))
//	fmt.Println(vec2go.Length(dir)) // 1
//
// # Component Types
//
// The base arithmetic works for every integer and floating-point type:
//
//	px := vec2go.New[int](3, 4).Add(vec2go.Splat(1)) // (4, 5)
//
// Geometry operations that need trigonometry or square roots are
// package-level functions constrained to floating-point components:
//
//	a := vec2go.Angle(vec2go.New(1.0, -1.0)) // -π/4
//	r := vec2go.Rotated(v, math.Pi/2)
//
// # Coordinate Convention
//
// The direction constructors use a Y-down (screen space) convention:
// Up is (0, -1) and Down is (0, 1). Angles still follow atan2, so
// Down has angle +π/2.
//
// # Degenerate Values
//
// Normalized and LimitLength guard against division by zero: a zero
// vector passes through unchanged instead of producing NaN or Inf.
//
// # Approximate Equality
//
// KindaEq and ApproxEq compare vectors componentwise within a tolerance,
// for tests and for code that accumulates floating-point error:
//
//	vec2go.ApproxEq(vec2go.Rotated(v, 2*math.Pi), v) // true
package vec2go
