// SPDX-License-Identifier: MIT

package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for root finding.
var (
	// ErrNoSignChange is returned by Bisection when f(a) and f(b) share a
	// strict sign, so the interval does not bracket a root.
	ErrNoSignChange = errors.New("rootfind: f(a) and f(b) have the same sign")

	// ErrNoConvergence is returned when the iteration budget is exhausted.
	ErrNoConvergence = errors.New("rootfind: did not converge")

	// ErrZeroDerivative is returned by NewtonRaphson when f'(x) == 0.
	ErrZeroDerivative = errors.New("rootfind: zero derivative")

	// ErrDerivativeTooSmall is returned by NewtonRaphson when |f'(x)| < tolerance.
	ErrDerivativeTooSmall = errors.New("rootfind: derivative too small")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rootfind: invalid option supplied")
)

const (
	// DefaultTolerance is the convergence threshold.
	DefaultTolerance = 1e-6

	// DefaultMaxIter bounds the number of iterations.
	DefaultMaxIter = 100
)

// Func is a real function of one variable.
type Func func(x float64) float64

// Option configures a solver via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// solver is invoked.
type Option func(*Options)

// Options holds solver parameters and callbacks.
type Options struct {
	// Tolerance is the stopping threshold (> 0).
	Tolerance float64

	// MaxIter bounds the iteration count (>= 1).
	MaxIter int

	// OnIteration is called with the 1-based iteration number, the new
	// estimate and f at that estimate. Returning an error aborts the solver.
	OnIteration func(iter int, x, fx float64) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultTolerance, DefaultMaxIter and a
// no-op hook.
func DefaultOptions() Options {
	return Options{
		Tolerance:   DefaultTolerance,
		MaxIter:     DefaultMaxIter,
		OnIteration: func(int, float64, float64) error { return nil },
	}
}

// WithTolerance sets the convergence threshold. tol must be finite and > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: tolerance must be finite and > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIter sets the iteration budget. n must be >= 1.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIter must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithOnIteration registers a per-iteration callback; returning an error
// from it stops the solver.
func WithOnIteration(fn func(iter int, x, fx float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions and reports the first
// recorded option violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}

// sameSign reports whether x and y are both strictly positive or both
// strictly negative.
func sameSign(x, y float64) bool {
	return (x > 0 && y > 0) || (x < 0 && y < 0)
}
