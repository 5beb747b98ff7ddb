// SPDX-License-Identifier: MIT
// Package spline - natural cubic splines.

package spline

import "github.com/katalvlaran/lvnum/matrix"

const (
	opNewCubic     = "NewCubic"
	opCubicEval    = "Cubic.Eval"
	opCubicEvalAll = "Cubic.EvalAll"
	opCERP         = "CERP"
)

// Cubic is a natural cubic spline: C² with zero second derivative at both ends.
type Cubic struct {
	x, y []float64
	m    []float64 // second derivatives at the knots, m[0] = m[n-1] = 0
}

// NewCubic fits a natural cubic spline through (x, y).
//
// Implementation:
//   - Stage 1: validate samples (ErrDomain).
//   - Stage 2: for interior knots i = 1..n−2 assemble
//     h_{i−1}·m_{i−1} + 2(h_{i−1}+h_i)·m_i + h_i·m_{i+1}
//     = 6·((y_{i+1}−y_i)/h_i − (y_i−y_{i−1})/h_{i−1}),
//     with m_0 = m_{n−1} = 0, and solve it with matrix.SolveTridiagonal.
//   - With n = 2 there are no interior knots and the spline is linear.
//
// Complexity: O(n).
func NewCubic(x, y []float64) (*Cubic, error) {
	xs, ys, err := validateSamples(opNewCubic, x, y)
	if err != nil {
		return nil, err
	}

	n := len(xs)
	m := make([]float64, n)
	if k := n - 2; k > 0 {
		sub := make([]float64, k)
		diag := make([]float64, k)
		super := make([]float64, k)
		rhs := make([]float64, k)
		var i int
		var hPrev, hNext float64
		for i = 1; i <= k; i++ {
			hPrev = xs[i] - xs[i-1]
			hNext = xs[i+1] - xs[i]
			sub[i-1] = hPrev
			diag[i-1] = 2 * (hPrev + hNext)
			super[i-1] = hNext
			rhs[i-1] = 6 * ((ys[i+1]-ys[i])/hNext - (ys[i]-ys[i-1])/hPrev)
		}
		inner, err := matrix.SolveTridiagonal(sub, diag, super, rhs)
		if err != nil {
			return nil, splineErrorf(opNewCubic, err)
		}
		copy(m[1:n-1], inner)
	}

	return &Cubic{x: xs, y: ys, m: m}, nil
}

// SecondDerivatives returns a copy of the knot second derivatives.
func (c *Cubic) SecondDerivatives() []float64 {
	out := make([]float64, len(c.m))
	copy(out, c.m)

	return out
}

// Eval evaluates the cubic on the segment containing q:
//
//	S = A·y_j + B·y_{j+1} + ((A³−A)·m_j + (B³−B)·m_{j+1})·h²/6
//
// with A = (x_{j+1}−q)/h and B = (q−x_j)/h.
func (c *Cubic) Eval(q float64) (float64, error) {
	j, err := segment(opCubicEval, c.x, q)
	if err != nil {
		return 0, err
	}
	h := c.x[j+1] - c.x[j]
	a := (c.x[j+1] - q) / h
	b := (q - c.x[j]) / h

	return a*c.y[j] + b*c.y[j+1] + ((a*a*a-a)*c.m[j]+(b*b*b-b)*c.m[j+1])*h*h/6, nil
}

// EvalAll evaluates queries in order; see Interpolator.
func (c *Cubic) EvalAll(queries []float64) ([]float64, error) {
	return evalAll(opCubicEvalAll, c.Eval, queries)
}

// CERP fits a natural cubic spline through (x, y) and evaluates it at queries.
func CERP(x, y, queries []float64) ([]float64, error) {
	c, err := NewCubic(x, y)
	if err != nil {
		return nil, splineErrorf(opCERP, err)
	}

	return c.EvalAll(queries)
}
