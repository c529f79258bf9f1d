// Package matrix offers dense row-major matrices and the Gauss–Jordan
// algorithms built on them.
//
// The matrix package provides:
//
//   - Dense, a fixed-shape rows×cols grid of float64 with bounds-checked
//     accessors, row replacement, row swaps and exact equality.
//   - RowBuilder for row-by-row construction with zero-padding of short rows.
//   - Arithmetic kernels: Add, Sub, Mul, Augment, Transpose, Scale, MatVec,
//     and MulVec over vector.Vector.
//   - ReducedRowEchelonForm (textbook Gauss–Jordan, exact zero tests), Rank
//     and Inverse (reduce [A | I], read the right block).
//
// Every kernel validates first and returns a sentinel error wrapped with the
// operation name; match it with errors.Is. Results are always freshly
// allocated; only the documented InPlace methods mutate their receiver.
//
// Shape vocabulary: Cols() is the width, Rows() is the height.
package matrix
