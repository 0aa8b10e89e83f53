package vec2go

import "errors"

var (
	// ErrInvalidLength is returned when constructing a vector from a slice
	// whose length is not exactly 2.
	ErrInvalidLength = errors.New("invalid length")
)
