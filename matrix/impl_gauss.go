// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination with partial pivoting.
//
// Purpose:
//   - Solve a square system A·x = b directly, the way the spline builders need it.
//   - Report singularity explicitly: a pivot with |p| <= tol·colMax is
//     ErrSingular, never a skipped elimination step. colMax is the largest
//     |entry| of that column in the input, so rescaling an unknown does not
//     change the outcome.
//
// Determinism:
//   - Fixed loop orders; ties in the pivot search keep the topmost row.

package matrix

import (
	"fmt"
	"math"
)

// Solve solves A·x = b by Gaussian elimination with partial pivoting followed
// by back substitution.
//
// Implementation:
//   - Stage 1: validate A non-nil and square, len(b) == n, and (under the
//     default policy) finite entries.
//   - Stage 2: copy A and b into a private working system; the caller's
//     inputs are never mutated.
//   - Stage 3: forward elimination. For each column i pick the row k in [i, n)
//     with the largest |A[k][i]|, swap it (and b[k]) into row i, fail with
//     ErrSingular when |A[i][i]| <= pivot tolerance · colMax[i], then subtract
//     factor = A[k][i]/A[i][i] times row i from every row below.
//   - Stage 4: back substitution x[i] = (b[i] − Σ_{j>i} A[i][j]·x[j]) / A[i][i].
//
// Inputs:
//   - a: n×n coefficient matrix.
//   - b: right-hand side of length n.
//   - opts: WithPivotTolerance, WithNoValidateNaNInf.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular (all wrapped
//     with the "Solve" tag).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	// Stage 1: validate.
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if err := ValidateFiniteVec(b); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	// Stage 2: private working copies.
	w, err := denseCopyOf(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rhs := make([]float64, len(b))
	copy(rhs, b)

	n := w.r
	data := w.data
	colMax := columnMaxAbs(data, n)
	var (
		i, j, k  int
		maxRow   int
		maxAbs   float64
		v        float64
		pivot    float64
		factor   float64
		pivotRow []float64
		row      []float64
	)

	// Stage 3: forward elimination.
	for i = 0; i < n; i++ {
		// Partial pivot search over rows i..n-1 in column i.
		maxRow, maxAbs = i, math.Abs(data[i*n+i])
		for k = i + 1; k < n; k++ {
			if v = math.Abs(data[k*n+i]); v > maxAbs {
				maxRow, maxAbs = k, v
			}
		}
		if maxAbs <= o.pivotTol*colMax[i] {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: |pivot|=%g: %w", i, maxAbs, ErrSingular))
		}
		if maxRow != i {
			swapRowsRaw(data, n, i, maxRow)
			rhs[i], rhs[maxRow] = rhs[maxRow], rhs[i]
		}

		pivotRow = data[i*n : (i+1)*n]
		pivot = pivotRow[i]
		for k = i + 1; k < n; k++ {
			row = data[k*n : (k+1)*n]
			if row[i] == 0 {
				continue
			}
			factor = row[i] / pivot
			for j = i; j < n; j++ {
				row[j] -= factor * pivotRow[j]
			}
			rhs[k] -= factor * rhs[i]
		}
	}

	// Stage 4: back substitution.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = rhs[i]
		row = data[i*n : (i+1)*n]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		x[i] = sum / row[i]
	}

	return x, nil
}

// columnMaxAbs returns max_k |data[k][j]| for every column j of an n×n
// row-major block.
func columnMaxAbs(data []float64, n int) []float64 {
	out := make([]float64, n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v = math.Abs(data[i*n+j]); v > out[j] {
				out[j] = v
			}
		}
	}

	return out
}
