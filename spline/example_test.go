// SPDX-License-Identifier: MIT
package spline_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/spline"
)

// clean rounds away floating-point residue so printed output is stable.
func clean(v float64) float64 {
	if math.Abs(v) < 5e-10 {
		return 0
	}

	return math.Round(v*1e6) / 1e6
}

// ExampleNewQuadratic fits the quadratic spline through four samples and
// prints its segment coefficients.
func ExampleNewQuadratic() {
	q, err := spline.NewQuadratic([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, c := range q.Coeffs() {
		fmt.Printf("S%d: a=%g b=%g c=%g\n", i, clean(c.A), clean(c.B), clean(c.C))
	}
	v, _ := q.Eval(0.5)
	fmt.Println("S(0.5) =", clean(v))
	// Output:
	// S0: a=0 b=1 c=0
	// S1: a=-2 b=1 c=1
	// S2: a=4 b=-3 c=0
	// S(0.5) = 0.5
}

// ExampleQuadratic_Eval shows the domain check on queries.
func ExampleQuadratic_Eval() {
	q, _ := spline.NewQuadratic([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
	_, err := q.Eval(4)
	fmt.Println(errors.Is(err, spline.ErrDomain))
	// Output:
	// true
}

// ExampleLERP interpolates linearly between samples.
func ExampleLERP() {
	ys, _ := spline.LERP([]float64{0, 2, 4}, []float64{10, 20, 0}, []float64{1, 3})
	fmt.Println(ys)
	// Output:
	// [15 10]
}

// ExampleCERP evaluates a natural cubic spline.
func ExampleCERP() {
	ys, _ := spline.CERP([]float64{0, 1, 2}, []float64{0, 1, 0}, []float64{0.5, 1, 1.5})
	fmt.Println(clean(ys[0]), clean(ys[1]), clean(ys[2]))
	// Output:
	// 0.6875 1 0.6875
}
