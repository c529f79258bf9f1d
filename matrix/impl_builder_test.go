// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ezvec/matrix"
)

func TestRowBuilder_ZeroPadsShortRows(t *testing.T) {
	built, err := matrix.NewRowBuilder().
		Row(1, 2, 3, 4).
		Row(5, 6).
		Row(7, 8, 9).
		Build()
	require.NoError(t, err)

	explicit := MustRows(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 0, 0},
		{7, 8, 9, 0},
	})
	require.Equal(t, 4, built.Cols())
	require.Equal(t, 3, built.Rows())
	require.True(t, matrix.Equal(explicit, built), "got\n%v", built)
}

func TestRowBuilder_RowInts(t *testing.T) {
	m, err := matrix.NewRowBuilder().RowInts(1, -2).Row(0.5).Build()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, -2}, {0.5, 0}}, m)
}

func TestRowBuilder_Empty(t *testing.T) {
	b := matrix.NewRowBuilder()
	require.Equal(t, 0, b.Len())
	m, err := b.Build()
	require.Nil(t, m)
	AssertErrorIs(t, err, matrix.ErrEmptyBuilder)

	_, err = matrix.FromRows(nil)
	AssertErrorIs(t, err, matrix.ErrEmptyBuilder)
}

func TestRowBuilder_EmptyRowsOnly(t *testing.T) {
	m, err := matrix.NewRowBuilder().Row().Row().Build()
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestRowBuilder_CopiesInput(t *testing.T) {
	row := []float64{1, 2}
	b := matrix.NewRowBuilder().Row(row...)
	row[0] = 42
	m, err := b.Build()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}}, m)

	// Building twice yields independent grids.
	m2, err := b.Build()
	require.NoError(t, err)
	MustSet(t, m2, 0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 1, b.Len())
}

func TestRowBuilder_NumericPolicy(t *testing.T) {
	_, err := matrix.NewRowBuilder().Row(1, math.NaN()).Build(matrix.WithValidateNaNInf())
	AssertErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewRowBuilder().Row(1, math.NaN()).Build()
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, m, 0, 1)))
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1}, {2, 3}})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {2, 3}}, m)
}
