// SPDX-License-Identifier: MIT

package spline

// Interpolator evaluates a fitted interpolant.
type Interpolator interface {
	// Eval returns the interpolated value at q, or ErrDomain when q lies
	// outside the sampled range.
	Eval(q float64) (float64, error)

	// EvalAll evaluates every query in order. The first failing query
	// aborts the call and no partial result is returned.
	EvalAll(queries []float64) ([]float64, error)
}

// QuadCoeffs holds one segment's S(x) = A(x−x_i)² + B(x−x_i) + C.
type QuadCoeffs struct {
	A, B, C float64
}

// Compile-time conformance.
var (
	_ Interpolator = (*Linear)(nil)
	_ Interpolator = (*Quadratic)(nil)
	_ Interpolator = (*Cubic)(nil)
)

// evalAll applies eval to each query, keeping the query order.
func evalAll(op string, eval func(float64) (float64, error), queries []float64) ([]float64, error) {
	out := make([]float64, len(queries))
	var err error
	for i, q := range queries {
		if out[i], err = eval(q); err != nil {
			return nil, splineErrorf(op, err)
		}
	}

	return out, nil
}
