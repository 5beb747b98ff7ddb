// SPDX-License-Identifier: MIT

package spline

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// validateSamples checks that x and y describe a usable sample set and
// returns private copies of both.
//
// Rules: len(x) == len(y) >= 2, every value finite, x strictly increasing.
func validateSamples(op string, x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, domainErrorf(op, "len(x)=%d != len(y)=%d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, nil, domainErrorf(op, "need at least 2 samples, got %d", len(x))
	}
	if err := validateKnots(op, x); err != nil {
		return nil, nil, err
	}
	if floats.HasNaN(y) || hasInf(y) {
		return nil, nil, domainErrorf(op, "y contains NaN or Inf")
	}

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	copy(xs, x)
	copy(ys, y)

	return xs, ys, nil
}

// validateKnots checks that x is finite and strictly increasing.
func validateKnots(op string, x []float64) error {
	if floats.HasNaN(x) || hasInf(x) {
		return domainErrorf(op, "x contains NaN or Inf")
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return domainErrorf(op, "x not strictly increasing at %d (%g <= %g)", i, x[i], x[i-1])
		}
	}

	return nil
}

func hasInf(s []float64) bool {
	for _, v := range s {
		if math.IsInf(v, 0) {
			return true
		}
	}

	return false
}
