// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "vector:"; operations wrap
// them with their name, callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates a negative vector size.
	ErrInvalidDimensions = errors.New("vector: size must be >= 0")

	// ErrOutOfRange indicates a component index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes, or a
	// Vec2/Vec3 conversion from a vector of the wrong size.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector indicates a direction was requested from a zero-length vector.
	ErrZeroVector = errors.New("vector: zero-length vector")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf wraps err with an operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
