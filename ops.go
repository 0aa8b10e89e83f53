package vec2go

import "math"

// The full operator surface is generated through a single code path:
// every binary, scalar-broadcast, and in-place method routes through
// combine/combineScalar/applyInPlace with one of the op functions below,
// so the five arithmetic operations cannot drift in behavior or shape.

func add[T Scalar](a, b T) T { return a + b }
func sub[T Scalar](a, b T) T { return a - b }
func mul[T Scalar](a, b T) T { return a * b }
func div[T Scalar](a, b T) T { return a / b }

// mod is the truncated remainder: identical to Go's % operator for integer
// types and to math.Mod for floating-point types. The branch condition is
// constant per instantiation (integer division truncates 3/2 to 1).
func mod[T Scalar](a, b T) T {
	if T(3)/T(2) == T(1) {
		return a - a/b*b
	}
	return T(math.Mod(float64(a), float64(b)))
}

// combine applies op to each pair of components.
func (v Vector2[T]) combine(o Vector2[T], op func(T, T) T) Vector2[T] {
	return Vector2[T]{X: op(v.X, o.X), Y: op(v.Y, o.Y)}
}

// combineScalar broadcasts s to both components and applies op.
func (v Vector2[T]) combineScalar(s T, op func(T, T) T) Vector2[T] {
	return Vector2[T]{X: op(v.X, s), Y: op(v.Y, s)}
}

// applyInPlace mutates each component of v independently.
func (v *Vector2[T]) applyInPlace(o Vector2[T], op func(T, T) T) {
	v.X = op(v.X, o.X)
	v.Y = op(v.Y, o.Y)
}

// applyScalarInPlace broadcasts s to both components and mutates v.
func (v *Vector2[T]) applyScalarInPlace(s T, op func(T, T) T) {
	v.X = op(v.X, s)
	v.Y = op(v.Y, s)
}

// Add returns the componentwise sum of v and o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return v.combine(o, add[T]) }

// Sub returns the componentwise difference of v and o.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return v.combine(o, sub[T]) }

// Mul returns the componentwise product of v and o.
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] { return v.combine(o, mul[T]) }

// Div returns the componentwise quotient of v and o.
func (v Vector2[T]) Div(o Vector2[T]) Vector2[T] { return v.combine(o, div[T]) }

// Mod returns the componentwise truncated remainder of v and o.
func (v Vector2[T]) Mod(o Vector2[T]) Vector2[T] { return v.combine(o, mod[T]) }

// AddScalar returns v with s added to both components.
func (v Vector2[T]) AddScalar(s T) Vector2[T] { return v.combineScalar(s, add[T]) }

// SubScalar returns v with s subtracted from both components.
func (v Vector2[T]) SubScalar(s T) Vector2[T] { return v.combineScalar(s, sub[T]) }

// MulScalar returns v scaled by s.
func (v Vector2[T]) MulScalar(s T) Vector2[T] { return v.combineScalar(s, mul[T]) }

// DivScalar returns v with both components divided by s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] { return v.combineScalar(s, div[T]) }

// ModScalar returns v with both components reduced modulo s.
func (v Vector2[T]) ModScalar(s T) Vector2[T] { return v.combineScalar(s, mod[T]) }

// AddInPlace adds o to v componentwise.
func (v *Vector2[T]) AddInPlace(o Vector2[T]) { v.applyInPlace(o, add[T]) }

// SubInPlace subtracts o from v componentwise.
func (v *Vector2[T]) SubInPlace(o Vector2[T]) { v.applyInPlace(o, sub[T]) }

// MulInPlace multiplies v by o componentwise.
func (v *Vector2[T]) MulInPlace(o Vector2[T]) { v.applyInPlace(o, mul[T]) }

// DivInPlace divides v by o componentwise.
func (v *Vector2[T]) DivInPlace(o Vector2[T]) { v.applyInPlace(o, div[T]) }

// ModInPlace reduces v modulo o componentwise.
func (v *Vector2[T]) ModInPlace(o Vector2[T]) { v.applyInPlace(o, mod[T]) }

// AddScalarInPlace adds s to both components of v.
func (v *Vector2[T]) AddScalarInPlace(s T) { v.applyScalarInPlace(s, add[T]) }

// SubScalarInPlace subtracts s from both components of v.
func (v *Vector2[T]) SubScalarInPlace(s T) { v.applyScalarInPlace(s, sub[T]) }

// MulScalarInPlace scales both components of v by s.
func (v *Vector2[T]) MulScalarInPlace(s T) { v.applyScalarInPlace(s, mul[T]) }

// DivScalarInPlace divides both components of v by s.
func (v *Vector2[T]) DivScalarInPlace(s T) { v.applyScalarInPlace(s, div[T]) }

// ModScalarInPlace reduces both components of v modulo s.
func (v *Vector2[T]) ModScalarInPlace(s T) { v.applyScalarInPlace(s, mod[T]) }

// Neg returns the negation of v, (-x, -y). For unsigned integer components
// the result wraps, following Go's unsigned negation.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{X: -v.X, Y: -v.Y}
}

// Orthogonal returns the perpendicular vector rotated 90 degrees
// counter-clockwise, (y, -x). The length is preserved. Only negation is
// required, so this is available for all component types.
func (v Vector2[T]) Orthogonal() Vector2[T] {
	return Vector2[T]{X: v.Y, Y: -v.X}
}
