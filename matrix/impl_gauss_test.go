// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/matrix"
)

func TestSolve_Small(t *testing.T) {
	t.Parallel()

	// 2x + y − z = 8; −3x − y + 2z = −11; −2x + y + 2z = −3  →  (2, 3, −1)
	a := NewFilledDense(t, 3, 3, []float64{
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	})
	b := []float64{8, -11, -3}
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x, 1e-12)
}

// A zero in the leading position must be handled by a row exchange.
func TestSolve_NeedsPivoting(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 1, 1, 0})
	x, err := matrix.Solve(a, []float64{3, 4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 3}, x, 0)
}

func TestSolve_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 2, 3, 4})
	b := []float64{1, 2}
	before := a.String()
	_, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.Equal(t, before, a.String())
	assert.Equal(t, []float64{1, 2}, b)
}

func TestSolve_Singular(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]float64{
		"zero":           {0, 0, 0, 0},
		"dependent rows": {1, 2, 2, 4},
	} {
		data := data
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.Solve(NewFilledDense(t, 2, 2, data), []float64{1, 2})
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestSolve_ShapeErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Solve(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Solve(MustDense(t, 2, 3), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(MustDense(t, 2, 2), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_GenericMatrix(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{4, 1, 1, 3})
	x, err := matrix.Solve(hide{a}, []float64{1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 11, 7.0 / 11}, x, 1e-14)
}

// Cross-check against gonum's LU-based solver on random well-conditioned systems.
func TestSolve_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 8, 25} {
		a, b := randomDiagDominant(t, n, int64(100+n))

		x, err := matrix.Solve(a, b)
		require.NoError(t, err)
		assert.Less(t, residual(t, a, x, b), 1e-9)

		data := make([]float64, 0, n*n)
		for i := 0; i < n; i++ {
			row, err := a.Row(i)
			require.NoError(t, err)
			data = append(data, row...)
		}
		var want mat.VecDense
		require.NoError(t, want.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, append([]float64(nil), b...))))
		for i := 0; i < n; i++ {
			assert.InDelta(t, want.AtVec(i), x[i], 1e-9, "n=%d x[%d]", n, i)
		}
	}
}
