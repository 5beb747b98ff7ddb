// SPDX-License-Identifier: MIT
// Package spline - quadratic splines: system builder, solver glue, evaluator.

package spline

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

const (
	opBuildQuadratic = "BuildQuadraticSystem"
	opNewQuadratic   = "NewQuadratic"
	opQuadEval       = "Quadratic.Eval"
	opQuadEvalAll    = "Quadratic.EvalAll"
	opQuadDeriv      = "Quadratic.Derivative"
	opEvaluateQuad   = "EvaluateQuadratic"
	opQERP           = "QERP"
)

// Quadratic is a fitted C¹ quadratic spline.
type Quadratic struct {
	x      []float64
	coeffs []QuadCoeffs
}

// BuildQuadraticSystem assembles the 3(n−1)×3(n−1) linear system whose
// solution is the coefficient vector (a0,b0,c0,a1,b1,c1,...).
//
// Implementation:
//   - Stage 1: validate samples (ErrDomain).
//   - Stage 2: write the four constraint families row by row (see package doc).
//   - Stage 3: assert the number of written rows equals 3·segments
//     (ErrSystemLayout otherwise).
//
// The function is pure: it allocates A and b and touches nothing else.
//
// Complexity: O(n²) for the zero-filled matrix, O(n) writes.
func BuildQuadraticSystem(x, y []float64) (*matrix.Dense, []float64, error) {
	x, y, err := validateSamples(opBuildQuadratic, x, y)
	if err != nil {
		return nil, nil, err
	}

	ns := len(x) - 1
	size := 3 * ns
	A, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, nil, splineErrorf(opBuildQuadratic, err)
	}
	b := make([]float64, size)

	// set never fails for in-range indices and finite values; the first
	// failure is kept so a layout bug cannot go unnoticed.
	var setErr error
	set := func(r, c int, v float64) {
		if setErr == nil {
			setErr = A.Set(r, c, v)
		}
	}

	row := 0
	// Boundary: a0 = 0.
	set(row, 0, 1)
	row++

	var i int
	var h float64
	// Left endpoints: c_i = y_i.
	for i = 0; i < ns; i++ {
		set(row, 3*i+2, 1)
		b[row] = y[i]
		row++
	}
	// Right endpoints: a_i h² + b_i h + c_i = y_{i+1}.
	for i = 0; i < ns; i++ {
		h = x[i+1] - x[i]
		set(row, 3*i, h*h)
		set(row, 3*i+1, h)
		set(row, 3*i+2, 1)
		b[row] = y[i+1]
		row++
	}
	// Slope continuity: 2a_i h + b_i − b_{i+1} = 0.
	for i = 0; i < ns-1; i++ {
		h = x[i+1] - x[i]
		set(row, 3*i, 2*h)
		set(row, 3*i+1, 1)
		set(row, 3*(i+1)+1, -1)
		row++
	}

	if setErr != nil {
		return nil, nil, splineErrorf(opBuildQuadratic, setErr)
	}
	if row != size {
		return nil, nil, fmt.Errorf("%s: wrote %d rows, want %d: %w", opBuildQuadratic, row, size, ErrSystemLayout)
	}

	return A, b, nil
}

// NewQuadratic fits a quadratic spline through (x, y).
//
// Implementation:
//   - Stage 1: BuildQuadraticSystem.
//   - Stage 2: matrix.Solve with partial pivoting; opts tune the pivot
//     tolerance (matrix.WithPivotTolerance).
//   - Stage 3: split the solution into per-segment QuadCoeffs.
//
// Errors:
//   - ErrDomain for invalid samples.
//   - matrix.ErrSingular if the system has a (numerically) zero pivot.
func NewQuadratic(x, y []float64, opts ...matrix.Option) (*Quadratic, error) {
	A, b, err := BuildQuadraticSystem(x, y)
	if err != nil {
		return nil, splineErrorf(opNewQuadratic, err)
	}
	sol, err := matrix.Solve(A, b, opts...)
	if err != nil {
		return nil, splineErrorf(opNewQuadratic, err)
	}

	ns := len(x) - 1
	coeffs := make([]QuadCoeffs, ns)
	for i := 0; i < ns; i++ {
		coeffs[i] = QuadCoeffs{A: sol[3*i], B: sol[3*i+1], C: sol[3*i+2]}
	}
	xs := make([]float64, len(x))
	copy(xs, x)

	return &Quadratic{x: xs, coeffs: coeffs}, nil
}

// Coeffs returns a copy of the per-segment coefficients.
func (q *Quadratic) Coeffs() []QuadCoeffs {
	out := make([]QuadCoeffs, len(q.coeffs))
	copy(out, q.coeffs)

	return out
}

// Knots returns a copy of the sample abscissae.
func (q *Quadratic) Knots() []float64 {
	out := make([]float64, len(q.x))
	copy(out, q.x)

	return out
}

// Eval returns S_j(v) for the segment j containing v.
func (q *Quadratic) Eval(v float64) (float64, error) {
	j, err := segment(opQuadEval, q.x, v)
	if err != nil {
		return 0, err
	}

	return q.coeffs[j].at(v - q.x[j]), nil
}

// EvalAll evaluates queries in order; see Interpolator.
func (q *Quadratic) EvalAll(queries []float64) ([]float64, error) {
	return evalAll(opQuadEvalAll, q.Eval, queries)
}

// Derivative returns S'_j(v) = 2a_j(v−x_j) + b_j.
func (q *Quadratic) Derivative(v float64) (float64, error) {
	j, err := segment(opQuadDeriv, q.x, v)
	if err != nil {
		return 0, err
	}
	c := q.coeffs[j]

	return 2*c.A*(v-q.x[j]) + c.B, nil
}

// at evaluates the segment polynomial at offset d = x − x_i (Horner form).
func (c QuadCoeffs) at(d float64) float64 {
	return (c.A*d+c.B)*d + c.C
}

// EvaluateQuadratic evaluates already-solved segment coefficients at each
// query. len(coeffs) must equal len(x)−1 and x must be strictly increasing.
//
// Errors: ErrDomain for malformed inputs or an out-of-range query.
func EvaluateQuadratic(coeffs []QuadCoeffs, x, queries []float64) ([]float64, error) {
	if len(x) < 2 || len(coeffs) != len(x)-1 {
		return nil, domainErrorf(opEvaluateQuad, "%d coefficient triples for %d knots", len(coeffs), len(x))
	}
	if err := validateKnots(opEvaluateQuad, x); err != nil {
		return nil, err
	}
	q := &Quadratic{x: x, coeffs: coeffs}

	return evalAll(opEvaluateQuad, q.Eval, queries)
}

// QERP fits a quadratic spline through (x, y) and evaluates it at queries.
func QERP(x, y, queries []float64, opts ...matrix.Option) ([]float64, error) {
	q, err := NewQuadratic(x, y, opts...)
	if err != nil {
		return nil, splineErrorf(opQERP, err)
	}

	return q.EvalAll(queries)
}
