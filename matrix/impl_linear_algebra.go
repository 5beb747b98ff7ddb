// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation.
//
// Purpose:
//   - Define operation tags and shared constants for error reporting.
//   - Host the small kernels the solvers and their tests rely on (MatVec, Mul)
//     and the augmented-system splitter.
//
// Notes:
//   - Solvers live in dedicated kernel files (impl_gauss.go, impl_lu.go,
//     impl_tridiagonal.go) to keep roles clean.
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exact zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul          = "Mul"
	opMatVec       = "MatVec"
	opSolve        = "Solve"
	opLU           = "LU"
	opLUSolve      = "LUSolve"
	opForward      = "ForwardSubstitution"
	opBack         = "BackSubstitution"
	opTridiagonal  = "SolveTridiagonal"
	opFromAugments = "FromAugmented"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix if m or x is nil.
//   - ErrDimensionMismatch if len(x) != m.Cols().
//
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	r, c := m.Rows(), m.Cols()
	y := make([]float64, r)
	var i, j int
	var sum float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			sum = ZeroSum
			row := d.data[i*c : (i+1)*c]
			for j = 0; j < c; j++ {
				sum += row[j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		sum = ZeroSum
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Mul computes the matrix product a·b.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a.Cols() != b.Rows().
//
// Complexity: O(r*k*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	ad, err := denseCopyOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := denseCopyOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, k, c := ad.r, ad.c, bd.c
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, p int
	var aik float64
	// i-k-j loop order keeps the inner loop on contiguous memory.
	for i = 0; i < r; i++ {
		for p = 0; p < k; p++ {
			aik = ad.data[i*k+p]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				out.data[i*c+j] += aik * bd.data[p*c+j]
			}
		}
	}

	return out, nil
}

// FromAugmented splits an augmented system [A | b], one equation per row with
// the right-hand side in the last column, into the coefficient matrix A and
// the vector b.
//
// Errors:
//   - ErrInvalidDimensions if the system is empty or a row has no coefficients.
//   - ErrDimensionMismatch if rows are ragged or the number of unknowns
//     (row length − 1) differs from the number of equations.
//
// Complexity: O(n²).
func FromAugmented(system [][]float64) (*Dense, []float64, error) {
	n := len(system)
	if n == 0 || len(system[0]) < 2 {
		return nil, nil, matrixErrorf(opFromAugments, ErrInvalidDimensions)
	}

	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opFromAugments, err)
	}
	b := make([]float64, n)
	for i, eqn := range system {
		if len(eqn)-1 != n {
			return nil, nil, matrixErrorf(opFromAugments,
				fmt.Errorf("equation %d has %d unknowns, want %d: %w", i, len(eqn)-1, n, ErrDimensionMismatch))
		}
		copy(a.data[i*n:(i+1)*n], eqn[:n])
		b[i] = eqn[n]
	}

	return a, b, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most eps (WithEpsilon, default DefaultEpsilon).
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if the shapes differ.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)

	ad, err := denseCopyOf(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := denseCopyOf(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return floats.EqualApprox(ad.data, bd.data, o.eps), nil
}
