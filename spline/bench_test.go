// SPDX-License-Identifier: MIT
package spline_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/spline"
)

var sinkF []float64

func BenchmarkNewQuadratic(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32, 64} {
		x, y := randomSamples(n, 1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := spline.NewQuadratic(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEvalAll(b *testing.B) {
	x, y := randomSamples(64, 2)
	queries := midpoints(x)
	quad, err := spline.NewQuadratic(x, y)
	if err != nil {
		b.Fatal(err)
	}
	cub, err := spline.NewCubic(x, y)
	if err != nil {
		b.Fatal(err)
	}
	lin, err := spline.NewLinear(x, y)
	if err != nil {
		b.Fatal(err)
	}
	for name, ip := range map[string]spline.Interpolator{"linear": lin, "quadratic": quad, "cubic": cub} {
		ip := ip
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out, err := ip.EvalAll(queries)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = out
			}
		})
	}
}

var sinkV float64

// Per-query cost should grow with log n.
func BenchmarkLinearEval_GridSize(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		x, y := randomSamples(n, 3)
		lin, err := spline.NewLinear(x, y)
		if err != nil {
			b.Fatal(err)
		}
		q := x[n-1] - 0.1
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v, err := lin.Eval(q)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
