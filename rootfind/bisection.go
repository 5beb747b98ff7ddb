// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

// Bisection finds a root of f in [a, b] by repeated halving.
//
// Implementation:
//   - Stage 1: require f(a), f(b) not of the same strict sign
//     (ErrNoSignChange). An endpoint where f is exactly zero qualifies.
//   - Stage 2: c = (a+b)/2. Return c when |f(c)| < tol or |b−a| < tol.
//   - Stage 3: keep the half whose endpoints still bracket the root.
//
// Errors:
//   - ErrNoSignChange, ErrOptionViolation, ErrNoConvergence, or the hook's error.
//
// Complexity: O(MaxIter) evaluations of f.
func Bisection(f Func, a, b float64, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return 0, err
	}
	if a > b {
		a, b = b, a
	}

	fa, fb := f(a), f(b)
	if sameSign(fa, fb) {
		return 0, fmt.Errorf("bisection on [%g, %g]: f(a)=%g, f(b)=%g: %w", a, b, fa, fb, ErrNoSignChange)
	}

	var c, fc float64
	for iter := 1; iter <= o.MaxIter; iter++ {
		c = a + (b-a)/2
		fc = f(c)
		if err = o.OnIteration(iter, c, fc); err != nil {
			return c, err
		}
		if math.Abs(fc) < o.Tolerance || math.Abs(b-a) < o.Tolerance {
			return c, nil
		}
		if sameSign(fa, fc) {
			a, fa = c, fc
		} else {
			b = c
		}
	}

	return c, fmt.Errorf("bisection after %d iterations: %w", o.MaxIter, ErrNoConvergence)
}
