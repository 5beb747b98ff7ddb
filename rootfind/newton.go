// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

// NewtonRaphson iterates x_{k+1} = x_k − f(x_k)/df(x_k) from x0 until
// |x_{k+1} − x_k| < tol.
//
// Errors:
//   - ErrZeroDerivative when df(x_k) == 0.
//   - ErrDerivativeTooSmall when |df(x_k)| < tol.
//   - ErrNoConvergence after MaxIter steps (the last iterate is returned).
//   - ErrOptionViolation, or the hook's error.
func NewtonRaphson(f, df Func, x0 float64, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return 0, err
	}

	x := x0
	var fx, dfx, next float64
	for iter := 1; iter <= o.MaxIter; iter++ {
		fx, dfx = f(x), df(x)
		if dfx == 0 {
			return x, fmt.Errorf("newton at x=%g: %w", x, ErrZeroDerivative)
		}
		if math.Abs(dfx) < o.Tolerance {
			return x, fmt.Errorf("newton at x=%g: |f'|=%g: %w", x, math.Abs(dfx), ErrDerivativeTooSmall)
		}
		next = x - fx/dfx
		if err = o.OnIteration(iter, next, f(next)); err != nil {
			return next, err
		}
		if math.Abs(next-x) < o.Tolerance {
			return next, nil
		}
		x = next
	}

	return x, fmt.Errorf("newton after %d iterations: %w", o.MaxIter, ErrNoConvergence)
}
