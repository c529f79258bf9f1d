// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan reduction and the inverse built on top of it.
//
// Purpose:
//   - ReducedRowEchelonForm: textbook Gauss–Jordan elimination producing RREF.
//   - Rank: number of non-zero rows of the RREF.
//   - Inverse: reduce [A | I] and read A⁻¹ from the right block.
//
// Determinism:
//   - The pivot is the FIRST row (in current order) with a non-zero entry in the
//     pivot column. Zero tests are exact (== 0.0); no tolerance, no partial pivoting.
//   - Products are written as float64(x*y) so no FMA contraction happens.

package matrix

const (
	zeroPivot = 0.0 // the only value a pivot search skips
	unitPivot = 1.0 // pivots equal to this are left undivided
)

// ReducedRowEchelonForm returns a new matrix holding the reduced row echelon
// form of m. The input is never mutated; the output has the shape of the input.
//
// Implementation:
//   - Stage 1: copy m into a working *Dense; set the pivot column cursor lead = 0.
//   - Stage 2: for each row r: stop when lead reaches Cols(); search down from r
//     for the first non-zero entry in column lead, moving lead right when the
//     column is exhausted; swap the found row into position r.
//   - Stage 3: divide row r by its pivot unless it is exactly 1, then subtract
//     multiples of row r from every other row so column lead is zero outside r.
//
// Behavior highlights:
//   - Rank-deficient and non-square inputs yield trailing all-zero rows; this is not an error.
//   - Elimination may leave -0 in some cells; -0 == 0 so Equal is unaffected.
//
// Errors:
//   - ErrNilMatrix, or a wrapped At failure of a foreign implementation.
//
// Complexity:
//   - Time O(r * r * c), Space O(r*c) for the working copy.
//
// AI-Hints:
//   - Inputs whose values are small integers reduce exactly when every pivot
//     division is exact; otherwise compare results with AllClose.
func ReducedRowEchelonForm(m Matrix) (*Dense, error) {
	res, err := CopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	res.reduce()

	return res, nil
}

// reduce runs Gauss–Jordan elimination on m in place.
func (m *Dense) reduce() {
	rows, cols := m.r, m.c
	data := m.data
	lead := 0
	var i, j, k, base, rowBase int
	var pivot, factor float64
	for r := 0; r < rows; r++ {
		if lead >= cols {
			return
		}

		// Pivot search: first non-zero at or below r, scanning columns left to right.
		i = r
		for data[i*cols+lead] == zeroPivot {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return
				}
			}
		}
		m.swapRows(i, r)

		rowBase = r * cols
		if pivot = data[rowBase+lead]; pivot != unitPivot {
			for j = 0; j < cols; j++ {
				data[rowBase+j] /= pivot
			}
		}

		for k = 0; k < rows; k++ {
			if k == r {
				continue
			}
			base = k * cols
			factor = data[base+lead]
			for j = 0; j < cols; j++ {
				data[base+j] -= float64(data[rowBase+j] * factor)
			}
		}
		lead++
	}
}

// Rank returns the number of non-zero rows in the reduced row echelon form of m.
// Errors: ErrNilMatrix.
// Complexity: dominated by ReducedRowEchelonForm.
func Rank(m Matrix) (int, error) {
	red, err := ReducedRowEchelonForm(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	rank := 0
	for i := 0; i < red.r; i++ {
		row := red.data[i*red.c : (i+1)*red.c]
		for _, v := range row {
			if v != zeroPivot {
				rank++
				break
			}
		}
	}

	return rank, nil
}

// Inverse computes A⁻¹ for a square matrix by Gauss–Jordan elimination.
//
// Implementation:
//   - Stage 1: validate non-nil and square (ErrNonSquare).
//   - Stage 2: build W = [A | I] and reduce W in place.
//   - Stage 3: unless WithoutSingularCheck() is given, the left n×n block of W
//     must be exactly the identity; otherwise ErrSingular.
//   - Stage 4: copy the right n×n block into a fresh result.
//
// Behavior highlights:
//   - With WithoutSingularCheck() a singular input still returns a well-shaped
//     n×n result; its values are meaningless.
//   - 0×0 input yields a 0×0 inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented work matrix.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	id := newDense(n, n, policyOf(m))
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}
	w, err := augment(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	w.reduce()

	if o.singularCheck && !w.leftIsIdentity(n) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv, err := w.SubMatrix(0, n, n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// leftIsIdentity reports whether the leading n×n block of m is exactly I.
func (m *Dense) leftIsIdentity(n int) bool {
	var want float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if m.data[i*m.c+j] != want {
				return false
			}
		}
	}

	return true
}
