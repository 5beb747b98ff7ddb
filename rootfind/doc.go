// Package rootfind locates roots of scalar functions f(x) = 0.
//
// Methods:
//
//	Bisection      – bracketing; needs f(a)·f(b) <= 0. Always converges,
//	                 linearly (one bit per iteration).
//	NewtonRaphson  – x_{k+1} = x_k − f(x_k)/f'(x_k). Quadratic near a simple
//	                 root; fails on a vanishing derivative.
//	Secant         – Newton with f' replaced by the slope through the last two
//	                 iterates. Superlinear, no derivative needed.
//
// All three are iterative loops bounded by WithMaxIter (default 100) and
// stop at WithTolerance (default 1e-6). WithOnIteration observes every new
// estimate; a non-nil error from the hook stops the solver and is returned.
//
// Errors:
//
//	ErrNoSignChange, ErrZeroDerivative, ErrDerivativeTooSmall,
//	ErrNoConvergence, ErrOptionViolation.
//
// When ErrNoConvergence is returned, the accompanying value is the last
// iterate, which callers may still inspect.
package rootfind
