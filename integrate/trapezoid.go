// SPDX-License-Identifier: MIT

package integrate

import (
	"errors"
	"fmt"
	"math"

	gintegrate "gonum.org/v1/gonum/integrate"
)

// DefaultIntervals is the conventional interval count for Trapezoid.
const DefaultIntervals = 100

var (
	// ErrBadIntervals is returned when n < 1.
	ErrBadIntervals = errors.New("integrate: interval count must be >= 1")

	// ErrBadBounds is returned when a bound is NaN or Inf.
	ErrBadBounds = errors.New("integrate: bounds must be finite")

	// ErrBadSamples is returned by Samples for fewer than two points,
	// mismatched lengths, non-finite values or non-increasing x.
	ErrBadSamples = errors.New("integrate: invalid samples")
)

// Func is a real function of one variable.
type Func func(x float64) float64

// Trapezoid integrates f over [a, b] with n equal intervals. a > b yields
// the negated integral over [b, a]; a == b yields 0.
//
// Complexity: n+1 evaluations of f.
func Trapezoid(f Func, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrBadIntervals)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, fmt.Errorf("[%g, %g]: %w", a, b, ErrBadBounds)
	}

	h := (b - a) / float64(n)
	sum := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}

	return sum * h, nil
}

// Samples integrates tabulated points (x_i, y_i) by the trapezoidal rule.
// x must be strictly increasing.
func Samples(x, y []float64) (float64, error) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrBadSamples)
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return 0, fmt.Errorf("sample %d not finite: %w", i, ErrBadSamples)
		}
		if i > 0 && x[i] <= x[i-1] {
			return 0, fmt.Errorf("x not strictly increasing at %d: %w", i, ErrBadSamples)
		}
	}

	return gintegrate.Trapezoidal(x, y), nil
}
