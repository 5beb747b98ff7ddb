// SPDX-License-Identifier: MIT
package spline_test

import (
	"math"
	"math/rand"
	"sort"
)

// tol is the interpolation tolerance used throughout the package tests.
const tol = 1e-9

// randomSamples returns n strictly increasing abscissae in [0, 10] with
// uneven spacing and smooth ordinates, deterministic for a given seed.
func randomSamples(n int, seed int64) ([]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	x[0] = 0
	for i := 1; i < n; i++ {
		x[i] = x[i-1] + 0.2 + rng.Float64()
	}
	y := make([]float64, n)
	for i := range x {
		y[i] = math.Sin(x[i]) + 0.1*x[i]
	}

	return x, y
}

// midpoints returns the midpoints of consecutive knots plus both ends.
func midpoints(x []float64) []float64 {
	out := []float64{x[0], x[len(x)-1]}
	for i := 0; i+1 < len(x); i++ {
		out = append(out, (x[i]+x[i+1])/2)
	}
	sort.Float64s(out)

	return out
}
