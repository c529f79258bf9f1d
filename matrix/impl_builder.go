// SPDX-License-Identifier: MIT

// Package matrix - RowBuilder: staged row-by-row construction of a Dense.
//
// A RowBuilder accumulates rows of arbitrary length and materializes them
// once: height = number of rows, width = longest row, shorter rows are padded
// with zeros on the right.
//
//	m, err := matrix.NewRowBuilder().
//		Row(1, 2, 3, 4).
//		Row(5, 6).
//		RowInts(7, 8, 9).
//		Build()
//
// Rows are copied on append; later edits to caller slices do not leak in.

package matrix

import "fmt"

const ctxBuild = "RowBuilder.Build"

// RowBuilder accumulates rows for a Dense. Zero value is ready to use.
// Not safe for concurrent use.
type RowBuilder struct {
	rows  [][]float64
	width int // running max row length
}

// NewRowBuilder returns an empty builder.
func NewRowBuilder() *RowBuilder {
	return &RowBuilder{}
}

// Row appends one row. An empty call appends an empty row (all zeros after padding).
func (b *RowBuilder) Row(values ...float64) *RowBuilder {
	row := make([]float64, len(values))
	copy(row, values)
	b.append(row)

	return b
}

// RowInts appends one row of integers, widened to float64.
func (b *RowBuilder) RowInts(values ...int) *RowBuilder {
	row := make([]float64, len(values))
	for i, v := range values {
		row[i] = float64(v)
	}
	b.append(row)

	return b
}

func (b *RowBuilder) append(row []float64) {
	b.rows = append(b.rows, row)
	if len(row) > b.width {
		b.width = len(row)
	}
}

// Len returns the number of rows appended so far.
func (b *RowBuilder) Len() int { return len(b.rows) }

// Build materializes the accumulated rows into a new Dense.
// Cell (r, c) is the c-th value of row r when present, else 0.
//
// The builder stays usable: Build may be called again and later rows extend
// the next result only.
//
// Errors:
//   - ErrEmptyBuilder when no row was appended.
//   - ErrNaNInf under WithValidateNaNInf() when a value is not finite.
//
// Complexity: O(height * width).
func (b *RowBuilder) Build(opts ...Option) (*Dense, error) {
	if len(b.rows) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxBuild, ErrEmptyBuilder)
	}
	o := gatherOptions(opts...)

	res := newDense(len(b.rows), b.width, o.validateNaNInf)
	for i, row := range b.rows {
		for j, v := range row {
			if err := res.checkValue(v); err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %w", ctxBuild, i, j, err)
			}
		}
		copy(res.data[i*b.width:], row) // tail stays zero
	}

	return res, nil
}

// FromRows builds a Dense from a slice of rows with RowBuilder semantics
// (zero-padding of short rows). The input is copied.
// Errors: ErrEmptyBuilder for len(rows) == 0, ErrNaNInf under the finite-only policy.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	b := NewRowBuilder()
	for _, row := range rows {
		b.Row(row...)
	}

	return b.Build(opts...)
}
