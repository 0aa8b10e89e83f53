package vec2go

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for Vector2 component types. Any integer or
// floating-point type (including named types) qualifies; the base
// arithmetic, comparison, and conversion surface is available for all of
// them. The trigonometry/sqrt operations additionally require Float.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float constrains the operations that need floating-point math
// (trigonometry, square roots, rounding).
type Float interface {
	constraints.Float
}

// Vec2 is an alias for the float32 specialization of Vector2.
type Vec2 = Vector2[float32]

// Vec2d is an alias for the float64 specialization of Vector2.
type Vec2d = Vector2[float64]

// Vector2 is a 2D vector with components of type T.
//
// The memory layout is guaranteed to be exactly two consecutive T values,
// X then Y, with no padding. Callers may rely on this for reinterpretation
// as a flat [2]T array or for FFI-style struct layouts.
//
// Vector2 is a plain value: it is copyable, comparable with == whenever T
// is comparable, and usable as a map key. The zero value is (0, 0).
type Vector2[T Scalar] struct {
	// X is the vector's X component.
	X T
	// Y is the vector's Y component.
	Y T
}

// New constructs a new Vector2 from its components.
func New[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Splat constructs a Vector2 with both components set to v.
func Splat[T Scalar](v T) Vector2[T] {
	return Vector2[T]{X: v, Y: v}
}

// Zero returns the zero vector (0, 0).
func Zero[T Float]() Vector2[T] {
	return Vector2[T]{}
}

// Right returns the right unit vector (1, 0).
func Right[T Float]() Vector2[T] {
	return Vector2[T]{X: 1}
}

// Left returns the left unit vector (-1, 0).
func Left[T Float]() Vector2[T] {
	return Vector2[T]{X: -1}
}

// Up returns the up unit vector. Y grows downward (screen convention),
// so up points -Y: (0, -1).
func Up[T Float]() Vector2[T] {
	return Vector2[T]{Y: -1}
}

// Down returns the down unit vector. Y grows downward (screen convention),
// so down points +Y: (0, 1).
func Down[T Float]() Vector2[T] {
	return Vector2[T]{Y: 1}
}

// XY returns the vector's components as a pair, (x, y).
func (v Vector2[T]) XY() (x, y T) {
	return v.X, v.Y
}

// Compare orders vectors lexicographically on (X, Y). It returns -1 if v
// sorts before o, 0 if the vectors are equal, and +1 if v sorts after o.
// NaN components follow the ordering of cmp.Compare (NaN sorts first).
func (v Vector2[T]) Compare(o Vector2[T]) int {
	if c := cmp.Compare(v.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(v.Y, o.Y)
}

// Less reports whether v sorts lexicographically before o.
func (v Vector2[T]) Less(o Vector2[T]) bool {
	return v.Compare(o) < 0
}

// String returns the vector formatted as "(x, y)".
func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
