// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// augmentation, transpose, and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical arithmetic kernels used by the facades (api.go), the reducer and the inverter.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel validates before it allocates or writes; results are always fresh *Dense.
//   - In-place variants (AddInPlace/SubInPlace) mutate only their receiver, after validation.
//   - Products are written as float64(x*y) so the compiler never fuses them into FMA;
//     results are then bit-identical on every GOARCH.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opAugment    = "Augment"
	opMatVec     = "MatVec"
	opMulVec     = "MulVec"
	opAsVector   = "AsVector"
	opRREF       = "ReducedRowEchelonForm"
	opRank       = "Rank"
	opInverse    = "Inverse"
	opAllClose   = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// policyOf returns the numeric policy a result derived from m should carry.
func policyOf(m Matrix) bool {
	if d, ok := m.(*Dense); ok {
		return d.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols, policyOf(a))

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// AddInPlace performs m += b.
// The shape check runs before the first write: on error m is untouched.
// Under the finite-only policy results are not re-validated (sums of finite
// values may overflow to ±Inf, exactly as with IEEE arithmetic).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, wrapped At failures of foreign operands.
// Complexity: O(r*c).
func (m *Dense) AddInPlace(b Matrix) error { return m.addSubInPlace(b, +1, opAddInPlace) }

// SubInPlace performs m -= b under the same contract as AddInPlace.
func (m *Dense) SubInPlace(b Matrix) error { return m.addSubInPlace(b, -1, opSubInPlace) }

// addSubInPlace is the shared in-place kernel.
// Foreign operands are snapshotted first so a failing At cannot leave m half-updated.
func (m *Dense) addSubInPlace(b Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	db, ok := b.(*Dense)
	if !ok {
		var err error
		if db, err = CopyOf(b); err != nil {
			return matrixErrorf(opTag, err)
		}
	}
	for idx := range m.data {
		m.data[idx] += sign * db.data[idx]
	}

	return nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→j→k over flat strides;
//     otherwise the same order through At.
//
// Behavior highlights:
//   - Each cell is Σ_k A[i,k]·B[k,j] accumulated from ZeroSum in ascending k.
//   - No zero-skipping: 0·Inf stays NaN as IEEE arithmetic demands.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols, policyOf(a))
	var (
		i, j, k int
		sum     float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < aCols; k++ {
						sum += float64(da.data[rowOffsetA+k] * db.data[k*bCols+j])
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var av, bv float64
	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += float64(av * bv)
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// result(c, r) = m(r, c), result shape Cols()×Rows().
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - If you only need Aᵀ*x, prefer MatVec on A with indices swapped instead of forming Aᵀ.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows, policyOf(m)) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols, policyOf(m))
	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// Negate returns -m, i.e. Scale(m, -1).
func Negate(m Matrix) (Matrix, error) { return Scale(m, -1) }

// Augment concatenates a and b horizontally: [a | b].
// Result shape a.Rows() × (a.Cols()+b.Cols()); the left block copies a,
// the right block copies b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Rows() != b.Rows()).
// Complexity: O(r*(ca+cb)).
func Augment(a, b Matrix) (Matrix, error) {
	if err := ValidateAugmentCompatible(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	res, err := augment(a, b)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	return res, nil
}

// augment is the concrete kernel behind Augment; callers validate shapes.
func augment(a, b Matrix) (*Dense, error) {
	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	width := ca + cb
	res := newDense(rows, width, policyOf(a))

	// Fast path: both operands are Dense, copy row blocks.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < rows; i++ {
				copy(res.data[i*width:i*width+ca], da.data[i*ca:(i+1)*ca])
				copy(res.data[i*width+ca:(i+1)*width], db.data[i*cb:(i+1)*cb])
			}

			return res, nil
		}
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < ca; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*width+j] = v
		}
		for j := 0; j < cb; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*width+ca+j] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector given as a plain slice.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += float64(d.data[base+j] * x[j])
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += float64(mv * x[j])
		}
	}

	return y, nil
}
