// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

// Secant iterates
//
//	x_{k+1} = x_k − f(x_k)·(x_k − x_{k−1}) / (f(x_k) − f(x_{k−1}))
//
// starting from prev = x_{k−1} and cur = x_k, until |x_{k+1} − x_k| < tol.
//
// Two degenerate states end the iteration with the current iterate and no
// error: identical iterates, and a flat secant (f(x_k) == f(x_{k−1})).
//
// Errors:
//   - ErrNoConvergence after MaxIter steps (the last iterate is returned).
//   - ErrOptionViolation, or the hook's error.
func Secant(f Func, prev, cur float64, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return 0, err
	}

	fPrev := f(prev)
	var fCur, next float64
	for iter := 1; iter <= o.MaxIter; iter++ {
		fCur = f(cur)
		if cur == prev || fCur == fPrev {
			return cur, nil
		}
		next = cur - fCur*(cur-prev)/(fCur-fPrev)
		if err = o.OnIteration(iter, next, f(next)); err != nil {
			return next, err
		}
		if math.Abs(next-cur) < o.Tolerance {
			return next, nil
		}
		prev, fPrev, cur = cur, fCur, next
	}

	return cur, fmt.Errorf("secant after %d iterations: %w", o.MaxIter, ErrNoConvergence)
}
