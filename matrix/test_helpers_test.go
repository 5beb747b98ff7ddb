// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense allocates an r×c *Dense and fills it row-major from data.
func NewFilledDense(tb testing.TB, r, c int, data []float64) *matrix.Dense {
	tb.Helper()
	require.Len(tb, data, r*c, "NewFilledDense: data length")
	m := MustDense(tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, data[i*c+j]))
		}
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err, "At(%d,%d)", i, j)

	return v
}

// randomDiagDominant builds a deterministic, strictly diagonally dominant n×n
// matrix (always non-singular) and a matching right-hand side.
func randomDiagDominant(tb testing.TB, n int, seed int64) (*matrix.Dense, []float64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(tb, n, n)
	b := make([]float64, n)
	var i, j int
	var rowSum, v float64
	for i = 0; i < n; i++ {
		rowSum = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = rng.Float64()*2 - 1
			rowSum += abs(v)
			require.NoError(tb, m.Set(i, j, v))
		}
		require.NoError(tb, m.Set(i, i, rowSum+1+rng.Float64()))
		b[i] = rng.Float64()*10 - 5
	}

	return m, b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// residual returns max_i |(A·x − b)_i|.
func residual(tb testing.TB, a matrix.Matrix, x, b []float64) float64 {
	tb.Helper()
	ax, err := matrix.MatVec(a, x)
	require.NoError(tb, err)
	var worst float64
	for i := range ax {
		if d := abs(ax[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst
}
