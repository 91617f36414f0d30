// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conedual/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// TestTransposeMatVecMul covers the three read-only kernels.
func TestTransposeMatVecMul(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, mustDense(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), at)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	p, err := matrix.Mul(a, at)
	require.NoError(t, err)
	require.Equal(t, mustDense(t, [][]float64{{14, 32}, {32, 77}}), p)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPivot verifies a Gauss–Jordan step and the zero-pivot guard.
func TestPivot(t *testing.T) {
	m := mustDense(t, [][]float64{{2, 4, 6}, {1, 3, 5}})
	require.NoError(t, matrix.Pivot(m, 0, 0))
	want := mustDense(t, [][]float64{{1, 2, 3}, {0, 1, 2}})
	ok, err := matrix.AllClose(m, want, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	z := mustDense(t, [][]float64{{0, 1}})
	require.ErrorIs(t, matrix.Pivot(z, 0, 0), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.Pivot(z, 1, 0), matrix.ErrOutOfRange)
}

// TestIdentity checks the neutral element.
func TestIdentity(t *testing.T) {
	i3, err := matrix.Identity(3)
	require.NoError(t, err)
	a := mustDense(t, [][]float64{{1, 2, 3}})
	p, err := matrix.Mul(a, i3)
	require.NoError(t, err)
	require.Equal(t, a, p)
}
