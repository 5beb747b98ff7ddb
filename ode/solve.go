// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math"
)

// EulerStep advances y by one Euler step of size h.
func EulerStep(f Func, x, y, h float64) float64 {
	return y + h*f(x, y)
}

// HeunStep advances y by one improved-Euler step of size h.
func HeunStep(f Func, x, y, h float64) float64 {
	return heun(f, x, y, h).Next
}

func euler(f Func, x, y, h float64) Step {
	k1 := f(x, y)
	next := y + h*k1

	return Step{X: x, Y: y, K1: k1, Predicted: next, Next: next}
}

func heun(f Func, x, y, h float64) Step {
	k1 := f(x, y)
	pred := y + h*k1
	k2 := f(x+h, pred)

	return Step{X: x, Y: y, K1: k1, Predicted: pred, K2: k2, Next: y + 0.5*h*(k1+k2)}
}

// Solve integrates y' = f(x, y) from (x0, y0) for n steps of size h and
// returns the table of steps. A negative h integrates backwards.
//
// Implementation:
//   - Stage 1: validate n, h, x0, y0 and the method.
//   - Stage 2: for i in [0, n): compute the row, report it to OnStep,
//     then advance x_{i+1} = x0 + (i+1)·h and y_{i+1} = Next.
//
// x is recomputed from x0 on every step so rounding does not accumulate.
//
// Errors:
//   - ErrBadSteps, ErrBadStepSize, ErrBadInitial, ErrUnknownMethod,
//     or the hook's error (with the rows produced so far).
//
// Complexity: n (Euler) or 2n (Heun) evaluations of f.
func Solve(m Method, f Func, x0, y0, h float64, n int, opts ...Option) ([]Step, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadSteps)
	}
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("h=%g: %w", h, ErrBadStepSize)
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsNaN(y0) || math.IsInf(y0, 0) {
		return nil, fmt.Errorf("(%g, %g): %w", x0, y0, ErrBadInitial)
	}

	var step func(Func, float64, float64, float64) Step
	switch m {
	case Euler:
		step = euler
	case Heun:
		step = heun
	default:
		return nil, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	table := make([]Step, 0, n)
	x, y := x0, y0
	for i := 0; i < n; i++ {
		s := step(f, x, y, h)
		s.N = i
		table = append(table, s)
		if err := o.OnStep(s); err != nil {
			return table, err
		}
		x = x0 + float64(i+1)*h
		y = s.Next
	}

	return table, nil
}
