// SPDX-License-Identifier: MIT
// Package matrix - Thomas algorithm for tridiagonal systems.

package matrix

import (
	"fmt"
	"math"
)

// SolveTridiagonal solves a tridiagonal system with the Thomas algorithm.
//
// Row i of the system reads
//
//	sub[i]·x[i-1] + diag[i]·x[i] + super[i]·x[i+1] = rhs[i]
//
// sub[0] and super[n-1] lie outside the matrix and are ignored. All four
// slices must have the same length n >= 1. Inputs are not mutated.
//
// Errors:
//   - ErrInvalidDimensions if n == 0.
//   - ErrDimensionMismatch if the slice lengths differ.
//   - ErrSingular if a modified diagonal entry has |d| <= tol·rowMax, where
//     rowMax is the largest |coefficient| of that row.
//
// Complexity:
//   - Time O(n), Space O(n).
func SolveTridiagonal(sub, diag, super, rhs []float64, opts ...Option) ([]float64, error) {
	n := len(diag)
	if n == 0 {
		return nil, matrixErrorf(opTridiagonal, ErrInvalidDimensions)
	}
	if len(sub) != n || len(super) != n || len(rhs) != n {
		return nil, matrixErrorf(opTridiagonal, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	// Modified super-diagonal and right-hand side (forward sweep).
	cp := make([]float64, n)
	dp := make([]float64, n)

	var i int
	var denom float64
	denom = diag[0]
	if math.Abs(denom) <= o.pivotTol*rowMaxAbs(sub, diag, super, 0) {
		return nil, matrixErrorf(opTridiagonal, fmt.Errorf("row 0: %w", ErrSingular))
	}
	cp[0] = super[0] / denom
	dp[0] = rhs[0] / denom
	for i = 1; i < n; i++ {
		denom = diag[i] - sub[i]*cp[i-1]
		if math.Abs(denom) <= o.pivotTol*rowMaxAbs(sub, diag, super, i) {
			return nil, matrixErrorf(opTridiagonal, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		if i < n-1 {
			cp[i] = super[i] / denom
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / denom
	}

	// Back substitution.
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i = n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}

	return x, nil
}

// rowMaxAbs returns the largest |coefficient| of row i, skipping sub[0] and
// super[n-1].
func rowMaxAbs(sub, diag, super []float64, i int) float64 {
	m := math.Abs(diag[i])
	if i > 0 {
		m = math.Max(m, math.Abs(sub[i]))
	}
	if i < len(diag)-1 {
		m = math.Max(m, math.Abs(super[i]))
	}

	return m
}
