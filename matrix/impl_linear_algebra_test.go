// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ezvec/matrix"
)

// TestHelpers_InterfaceHiding_Fallback ensures that using a non-nil wrapper
// (which hides the concrete type) forces the interface fallback path without panicking
// and produces the same results as with the bare Dense.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	base := MustDense(t, 4, 5)
	other := MustDense(t, 4, 5)
	RandomFill(t, base, 1)
	RandomFill(t, other, 2)
	wrapped := hide{base}

	type binOp func(a, b matrix.Matrix) (matrix.Matrix, error)
	for name, op := range map[string]binOp{
		"Add":     matrix.Add,
		"Sub":     matrix.Sub,
		"Augment": matrix.Augment,
	} {
		t.Run(name, func(t *testing.T) {
			fast, err := op(base, other)
			require.NoError(t, err)
			slow, err := op(wrapped, hide{other})
			require.NoError(t, err)
			require.True(t, matrix.Equal(fast, slow))
		})
	}

	t.Run("Transpose", func(t *testing.T) {
		fast, err := matrix.Transpose(base)
		require.NoError(t, err)
		slow, err := matrix.Transpose(wrapped)
		require.NoError(t, err)
		require.True(t, matrix.Equal(fast, slow))
	})

	t.Run("Mul", func(t *testing.T) {
		bt, err := matrix.Transpose(other)
		require.NoError(t, err)
		fast, err := matrix.Mul(base, bt)
		require.NoError(t, err)
		slow, err := matrix.Mul(wrapped, hide{bt})
		require.NoError(t, err)
		require.True(t, matrix.Equal(fast, slow))
	})
}

// ---------- Add / Sub ----------

func TestAddSub_Values(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{9, 18}, {27, 36}}, diff)

	// operands untouched
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
}

func TestAddSub_Errors(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	_, err := matrix.Add(a, b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, b)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdditiveIdentityAndInverse(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {3, 4}, {5, 2}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			a := MustDense(t, shape[0], shape[1])
			RandomFill(t, a, int64(shape[0]*10+shape[1]))
			zero, err := matrix.ZerosLike(a)
			require.NoError(t, err)

			sum, err := matrix.Add(a, zero)
			require.NoError(t, err)
			require.True(t, matrix.Equal(a, sum))

			diff, err := matrix.Sub(a, a)
			require.NoError(t, err)
			require.True(t, matrix.Equal(zero, diff))
		})
	}
}

func TestAddSubInPlace(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.AddInPlace(MustRows(t, [][]float64{{1, 1}, {1, 1}})))
	CompareExact(t, [][]float64{{2, 3}, {4, 5}}, m)

	require.NoError(t, m.SubInPlace(hide{MustRows(t, [][]float64{{2, 2}, {2, 2}})}))
	CompareExact(t, [][]float64{{0, 1}, {2, 3}}, m)

	// precondition checked before the first write
	err := m.AddInPlace(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	err = m.SubInPlace(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	CompareExact(t, [][]float64{{0, 1}, {2, 3}}, m)
}

// ---------- Mul ----------

func TestMul_Scenario(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	want := [][]float64{{22, 28}, {49, 64}, {76, 100}}
	if diff := cmp.Diff(want, ToRows(t, got)); diff != "" {
		t.Fatalf("Mul mismatch (-want +got):\n%s", diff)
	}
}

func TestMul_Shapes(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 4)
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 4, got.Cols())

	_, err = matrix.Mul(b, a)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	// inner dimension 0 gives a zero matrix
	e, err := matrix.Mul(MustDense(t, 2, 0), MustDense(t, 0, 3))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, e)
}

func TestMul_MultiplicativeIdentity(t *testing.T) {
	a := MustDense(t, 3, 5)
	RandomFill(t, a, 7)

	right, err := matrix.Mul(a, IdentityDense(t, a.Cols()))
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, right))

	left, err := matrix.Mul(IdentityDense(t, a.Rows()), a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, left))
}

func TestMul_NoZeroSkip(t *testing.T) {
	a := MustRows(t, [][]float64{{0, 1}})
	b := MustRows(t, [][]float64{{math.Inf(1)}, {2}})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, got, 0, 0)), "0·Inf must propagate NaN")
}

// ---------- Transpose ----------

func TestTranspose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	att, err := matrix.T(at)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, att), "transpose is an involution")

	_, err = matrix.Transpose(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Augment ----------

func TestAugment_Scenario(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}, {50, 60}})

	got, err := matrix.Augment(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{1, 2, 3, 10, 20},
		{4, 5, 6, 30, 40},
		{7, 8, 9, 50, 60},
	}, got)
}

func TestAugment_SliceRoundTrip(t *testing.T) {
	a := MustDense(t, 4, 3)
	b := MustDense(t, 4, 2)
	RandomFill(t, a, 3)
	RandomFill(t, b, 4)

	c, err := matrix.Augment(a, b)
	require.NoError(t, err)
	cd, ok := c.(*matrix.Dense)
	require.True(t, ok)

	left, err := cd.SubMatrix(0, 0, 4, 3)
	require.NoError(t, err)
	right, err := cd.SubMatrix(0, 3, 4, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, left))
	require.True(t, matrix.Equal(b, right))
}

func TestAugment_Errors(t *testing.T) {
	_, err := matrix.Augment(MustDense(t, 2, 2), MustDense(t, 3, 2))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Augment(MustDense(t, 2, 2), nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Scale / Negate / MatVec ----------

func TestScaleNegate(t *testing.T) {
	a := MustRows(t, [][]float64{{1, -2}, {0.5, 4}})
	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, -4}, {1, 8}}, s)

	n, err := matrix.Negate(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-1, 2}, {-0.5, -4}}, n)
}

func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	for name, m := range map[string]matrix.Matrix{"dense": a, "fallback": hide{a}} {
		t.Run(name, func(t *testing.T) {
			y, err := matrix.MatVec(m, []float64{1, 0, -1})
			require.NoError(t, err)
			require.Equal(t, []float64{-2, -2}, y)
		})
	}

	_, err := matrix.MatVec(a, []float64{1, 2})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowColSums(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rs, err := matrix.RowSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, rs)

	cs, err := matrix.ColSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, cs)
}

// ---------- Shape invariant ----------

func TestResults_ShapeInvariant(t *testing.T) {
	a := MustDense(t, 3, 4)
	b := MustDense(t, 4, 2)
	RandomIntFill(t, a, 11)
	RandomIntFill(t, b, 12)

	results := map[string]func() (matrix.Matrix, error){
		"Add":       func() (matrix.Matrix, error) { return matrix.Add(a, a) },
		"Mul":       func() (matrix.Matrix, error) { return matrix.Mul(a, b) },
		"Transpose": func() (matrix.Matrix, error) { return matrix.Transpose(a) },
		"Augment":   func() (matrix.Matrix, error) { return matrix.Augment(a, a) },
		"RREF":      func() (matrix.Matrix, error) { return matrix.RREF(a) },
	}
	for name, f := range results {
		t.Run(name, func(t *testing.T) {
			m, err := f()
			require.NoError(t, err)
			for i := 0; i < m.Rows(); i++ {
				for j := 0; j < m.Cols(); j++ {
					_, err = m.At(i, j)
					require.NoError(t, err)
				}
			}
			_, err = m.At(m.Rows(), 0)
			AssertErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}
