package vec2go

import "math"

// DefaultTolerance is the tolerance used by ApproxEq and ApproxEqScalar.
const DefaultTolerance = 1e-5

// KindaEqScalar reports whether a and b are exactly equal, or differ by
// less than tolerance.
func KindaEqScalar[T Float](a, b, tolerance T) bool {
	if a == b {
		return true
	}
	return T(math.Abs(float64(a-b))) < tolerance
}

// ApproxEqScalar is KindaEqScalar with DefaultTolerance.
func ApproxEqScalar[T Float](a, b T) bool {
	return KindaEqScalar(a, b, DefaultTolerance)
}

// KindaEq reports whether both components of a and b independently satisfy
// KindaEqScalar with the same tolerance.
func KindaEq[T Float](a, b Vector2[T], tolerance T) bool {
	return KindaEqScalar(a.X, b.X, tolerance) && KindaEqScalar(a.Y, b.Y, tolerance)
}

// ApproxEq is KindaEq with DefaultTolerance.
func ApproxEq[T Float](a, b Vector2[T]) bool {
	return KindaEq(a, b, DefaultTolerance)
}
