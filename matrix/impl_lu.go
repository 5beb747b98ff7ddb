// SPDX-License-Identifier: MIT
// Package matrix - Doolittle LU factorization and triangular substitution.
//
// Purpose:
//   - Factor A = L·U with unit lower-triangular L (diag(L)=1) and upper-triangular U.
//   - Solve A·x = b as L·y = b (forward) then U·x = y (backward).
//
// Contract:
//   - No pivoting: an exact zero pivot is reported as ErrSingular. Use Solve
//     for systems that need row exchanges.
//   - Inputs are never mutated.

package matrix

import "fmt"

// LUSolution bundles every intermediate of LUSolve so callers can inspect
// the factorization as well as the answer.
type LUSolution struct {
	L *Dense    // unit lower-triangular factor
	U *Dense    // upper-triangular factor
	Y []float64 // solution of L·y = b
	X []float64 // solution of U·x = y, i.e. of A·x = b
}

// LU performs Doolittle LU decomposition on a square matrix m.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: U := copy(A), L := I.
//   - Stage 3: for each pivot k, fail on U[k][k] == 0, then for every row
//     j > k record factor = U[j][k]/U[k][k] in L[j][k] and subtract
//     factor·row k from row j of U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (wrapped with "LU").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	U, err := denseCopyOf(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := U.r
	L, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var j, k, c int
	var factor float64
	var pivotRow, row []float64
	for k = 0; k < n; k++ {
		pivotRow = U.data[k*n : (k+1)*n]
		// Zero-pivot guard (deterministic singularity detection).
		if pivotRow[k] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		for j = k + 1; j < n; j++ {
			row = U.data[j*n : (j+1)*n]
			factor = row[k] / pivotRow[k]
			L.data[j*n+k] = factor
			for c = k; c < n; c++ {
				row[c] -= factor * pivotRow[c]
			}
		}
	}

	return L, U, nil
}

// ForwardSubstitution solves L·y = b for lower-triangular L.
// Entries above the diagonal are ignored.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular on a zero diagonal.
//
// Complexity: O(n²).
func ForwardSubstitution(l Matrix, b []float64) ([]float64, error) {
	if err := ValidateSystem(l, b); err != nil {
		return nil, matrixErrorf(opForward, err)
	}
	ld, err := denseCopyOf(l)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}

	n := ld.r
	y := make([]float64, n)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < i; j++ {
			sum += ld.data[i*n+j] * y[j]
		}
		if ld.data[i*n+i] == ZeroPivot {
			return nil, matrixErrorf(opForward, fmt.Errorf("diagonal %d: %w", i, ErrSingular))
		}
		y[i] = (b[i] - sum) / ld.data[i*n+i]
	}

	return y, nil
}

// BackSubstitution solves U·x = y for upper-triangular U.
// Entries below the diagonal are ignored.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular on a zero diagonal.
//
// Complexity: O(n²).
func BackSubstitution(u Matrix, y []float64) ([]float64, error) {
	if err := ValidateSystem(u, y); err != nil {
		return nil, matrixErrorf(opBack, err)
	}
	ud, err := denseCopyOf(u)
	if err != nil {
		return nil, matrixErrorf(opBack, err)
	}

	n := ud.r
	x := make([]float64, n)
	var i, j int
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += ud.data[i*n+j] * x[j]
		}
		if ud.data[i*n+i] == ZeroPivot {
			return nil, matrixErrorf(opBack, fmt.Errorf("diagonal %d: %w", i, ErrSingular))
		}
		x[i] = (y[i] - sum) / ud.data[i*n+i]
	}

	return x, nil
}

// LUSolve factors a with LU and solves a·x = b by forward then back
// substitution.
//
// Errors:
//   - everything LU reports, plus ErrDimensionMismatch when len(b) != n.
//
// Complexity: O(n³) for the factorization, O(n²) per substitution.
func LUSolve(a Matrix, b []float64) (*LUSolution, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	L, U, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	y, err := ForwardSubstitution(L, b)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	x, err := BackSubstitution(U, y)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	return &LUSolution{L: L, U: U, Y: y, X: x}, nil
}
