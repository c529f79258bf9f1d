// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag (see matrixErrorf); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> numeric policy -> structural (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or zero columns are legal (empty grid).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/SetRow/Row/SwapRows) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// Add/Sub with different shapes, Mul where a.Cols != b.Rows, Augment where
	// a.Rows != b.Rows, SetRow with a row of the wrong length, MulVec size mismatch.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotVector signals a vector conversion on a matrix whose column count is not 1.
	ErrNotVector = errors.New("matrix: matrix is not a column vector")

	// ErrSingular is returned by Inverse when the left block of the reduced
	// augmented matrix is not the identity (the input has no inverse).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written while the finite-only
	// numeric policy (WithValidateNaNInf) is enabled, or a bad tolerance was given.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEmptyBuilder is returned by RowBuilder.Build when no row was appended.
	ErrEmptyBuilder = errors.New("matrix: builder has no rows")
)

