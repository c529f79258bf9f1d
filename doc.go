// Package ezvec is a small dense linear-algebra toolkit: float64 matrices,
// fixed-size vectors and Gauss–Jordan elimination.
//
// What is ezvec?
//
//	• matrix/ : Dense storage, RowBuilder, Add/Sub/Mul/Transpose/Augment,
//	            reduced row echelon form, rank and inverse
//	• vector/ : Vector with element-wise arithmetic, Dot, Length, Angle,
//	            plus the Vec2/Vec3 value types
//	• cmd/ezvec : command-line front end over YAML matrix documents
//
// Quick example:
//
//	a, _ := matrix.NewRowBuilder().
//		Row(1, 2, 1).
//		Row(2, 5, -1).
//		Row(4, 8, 5).
//		Build()
//	inv, err := matrix.Inverse(a) // ErrSingular for singular input
//
// Every binary operation checks shapes first and reports
// matrix.ErrDimensionMismatch; results are fresh values and operands are
// never modified.
package ezvec
