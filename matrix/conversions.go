// SPDX-License-Identifier: MIT
// Package matrix - conversions between column matrices and vector.Vector.
//
// A Vector of size n and an n×1 Dense hold the same values in the same order;
// FromVector and AsVector move between the two without sharing storage.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ezvec/vector"
)

// FromVector returns v as an n×1 column matrix (default numeric policy).
// A nil v yields a 0×1 matrix.
// Complexity: O(n).
func FromVector(v *vector.Vector) *Dense {
	if v == nil {
		return newDense(0, 1, DefaultValidateNaNInf)
	}
	res := newDense(v.Len(), 1, DefaultValidateNaNInf)
	copy(res.data, v.Components())

	return res
}

// AsVector converts a column matrix (Cols() == 1) into a Vector of size Rows().
// Errors: ErrNilMatrix, ErrNotVector.
// Complexity: O(r).
func AsVector(m Matrix) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsVector, err)
	}
	if err := ValidateColumnVector(m); err != nil {
		return nil, matrixErrorf(opAsVector, err)
	}
	if d, ok := m.(*Dense); ok {
		return vector.Of(d.data...), nil
	}

	rows := m.Rows()
	values := make([]float64, rows)
	var err error
	for i := 0; i < rows; i++ {
		if values[i], err = m.At(i, 0); err != nil {
			return nil, matrixErrorf(opAsVector, fmt.Errorf("At(%d,0): %w", i, err))
		}
	}

	return vector.Of(values...), nil
}

// MulVec computes m·v by viewing v as a column matrix, multiplying and
// converting the single-column product back into a Vector.
//
// Contract:
//   - m.Rows() == v.Len() is checked first, then Mul requires m.Cols() == v.Len();
//     both violations report ErrDimensionMismatch. In practice m is square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MulVec(m Matrix, v *vector.Vector) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if v == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if m.Rows() != v.Len() {
		return nil, matrixErrorf(opMulVec,
			fmt.Errorf("rows %d vs vector size %d: %w", m.Rows(), v.Len(), ErrDimensionMismatch))
	}
	prod, err := Mul(m, FromVector(v))
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return AsVector(prod)
}
