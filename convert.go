package vec2go

// FromArray constructs a Vector2 from a fixed 2-element array, [x, y].
func FromArray[T Scalar](a [2]T) Vector2[T] {
	return New(a[0], a[1])
}

// Array returns the vector's components as a fixed array, [x, y].
func (v Vector2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// FromSlice constructs a Vector2 from a slice. It returns ErrInvalidLength
// unless the slice has exactly 2 elements.
func FromSlice[T Scalar](s []T) (Vector2[T], error) {
	if len(s) != 2 {
		return Vector2[T]{}, ErrInvalidLength
	}
	return New(s[0], s[1]), nil
}
