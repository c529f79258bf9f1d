// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/SetRow/Row return errors instead of panicking.
//   - Keep the shape fixed for the lifetime of a value; shape-changing operations allocate.
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single flag.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Row swaps are value swaps inside the flat buffer; rows are never aliased between two Dense values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); SetRow/Row/SwapRows: O(c); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"        // method tag used in error wrappers
	ctxSet      = "Set"       // method tag used in error wrappers
	ctxSetRow   = "SetRow"    // method tag used in error wrappers
	ctxRow      = "Row"       // method tag used in error wrappers
	ctxSwapRows = "SwapRows"  // method tag used in error wrappers
	ctxFill     = "Fill"      // method tag used in error wrappers
	ctxApply    = "Apply"     // method tag used in error wrappers
	ctxSub      = "SubMatrix" // ctor tag for Dense.SubMatrix
	ctxCopyOf   = "CopyOf"    // ctor tag for CopyOf
)

// ---------- Formatting literals ----------
const (
	_fmtColSep = " "
	_fmtRowSep = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>", sentinel preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows = height, cols = width).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection on writes.
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an rows×cols zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy) and allocate a zero-filled buffer.
//
// Behavior highlights:
//   - Zero-area shapes (0×n, n×0, 0×0) are legal and hold no cells.
//   - No panics on user errors; returns sentinel errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.validateNaNInf), nil
}

// newDense is the internal allocation point; callers guarantee rows, cols >= 0.
func newDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: validateNaNInf,
	}
}

// CopyOf deep-copies any Matrix into a fresh *Dense of identical shape.
// For *Dense input the numeric policy is preserved; other implementations
// are read through At with the default policy.
// Errors: ErrNilMatrix, or a wrapped At failure of a foreign implementation.
// Complexity: O(r*c).
func CopyOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxCopyOf, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.copyDense(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols, DefaultValidateNaNInf)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(ctxCopyOf, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// Rows returns the row count (height). No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (width). No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// checkValue enforces the numeric policy for a single value.
func (m *Dense) checkValue(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the finite-only policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkValue(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf(ctxRow, row, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])

	return out, nil
}

// SetRow replaces the whole row with values (copied, never aliased).
// Implementation:
//   - Stage 1: validate the row index, then len(values) == Cols().
//   - Stage 2: validate every value against the numeric policy.
//   - Stage 3: copy into the flat buffer.
//
// All checks run before the first write: on error the row is untouched.
//
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(c).
func (m *Dense) SetRow(row int, values []float64) error {
	if row < 0 || row >= m.r {
		return denseErrorf(ctxSetRow, row, 0, ErrOutOfRange)
	}
	if len(values) != m.c {
		return fmt.Errorf("Dense.%s(%d): row length %d, want %d: %w",
			ctxSetRow, row, len(values), m.c, ErrDimensionMismatch)
	}
	for j, v := range values {
		if err := m.checkValue(v); err != nil {
			return denseErrorf(ctxSetRow, row, j, err)
		}
	}
	copy(m.data[row*m.c:(row+1)*m.c], values)

	return nil
}

// SwapRows exchanges rows r1 and r2 by value inside the flat buffer.
// Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) SwapRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.r {
		return denseErrorf(ctxSwapRows, r1, r2, ErrOutOfRange)
	}
	if r2 < 0 || r2 >= m.r {
		return denseErrorf(ctxSwapRows, r1, r2, ErrOutOfRange)
	}
	m.swapRows(r1, r2)

	return nil
}

// swapRows is the unchecked kernel behind SwapRows; callers guarantee bounds.
func (m *Dense) swapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	a := m.data[r1*m.c : (r1+1)*m.c]
	b := m.data[r2*m.c : (r2+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// Fill sets every cell to v.
// Errors: ErrNaNInf under the finite-only policy (matrix untouched).
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) error {
	if err := m.checkValue(v); err != nil {
		return denseErrorf(ctxFill, 0, 0, err)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.copyDense()
}

// copyDense is Clone with the concrete return type.
func (m *Dense) copyDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Equal reports whether m and other have the same shape and pairwise equal
// cells. Comparison is exact (==, no tolerance); the numeric policy is not
// part of equality. See also the package-level Equal.
func (m *Dense) Equal(other Matrix) bool {
	return Equal(m, other)
}

// Equal reports whether a and b have the same shape and every cell compares
// equal with ==. Two nil matrices are equal; nil never equals a non-nil matrix.
// Note: NaN cells make a matrix unequal even to itself (IEEE semantics).
// Complexity: O(r*c) with early exit.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast path: flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := range da.data {
				if da.data[i] != db.data[i] {
					return false
				}
			}
			return true
		}
	}

	// Fallback: generic i→j walk; an unreadable cell means "not equal".
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// String renders the grid for diagnostics: one line per row, cells separated
// by a single space, each cell in %g form (-0 shown as 0). No trailing newline.
//
//	1 2 3
//	4 5 6
//
// Not a serialization format (see internal/matrixio for YAML).
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtColSep)
			}
			b.WriteString(formatCell(m.data[base+j]))
		}
	}

	return b.String()
}

// formatCell renders one value in %g form; -0 prints as 0.
func formatCell(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SubMatrix copies the window [r0:r0+rows, c0:c0+cols) into a new Dense.
// Zero-area windows are legal. The result carries the base numeric policy.
// Errors: ErrOutOfRange when the window leaves the matrix or sizes are negative.
// Complexity: O(rows*cols).
func (m *Dense) SubMatrix(r0, c0, rows, cols int) (*Dense, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxSub, r0, c0, rows, cols, ErrOutOfRange)
	}
	res := newDense(rows, cols, m.validateNaNInf)
	for i := 0; i < rows; i++ {
		src := (r0+i)*m.c + c0
		copy(res.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
// Under the finite-only policy a non-finite result aborts with ErrNaNInf;
// elements written before the error remain updated. For all-or-nothing
// semantics transform a Clone and keep it on success.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if err := m.checkValue(nv); err != nil {
				return denseErrorf(ctxApply, i, j, err)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
