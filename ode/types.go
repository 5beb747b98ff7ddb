// SPDX-License-Identifier: MIT

package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSteps is returned when the step count is < 1.
	ErrBadSteps = errors.New("ode: step count must be >= 1")

	// ErrBadStepSize is returned when h is zero, NaN or Inf.
	ErrBadStepSize = errors.New("ode: step size must be finite and non-zero")

	// ErrBadInitial is returned when x0 or y0 is NaN or Inf.
	ErrBadInitial = errors.New("ode: initial condition must be finite")

	// ErrUnknownMethod is returned for an undefined Method.
	ErrUnknownMethod = errors.New("ode: unknown method")
)

// Func is the right-hand side f(x, y) of y' = f(x, y).
type Func func(x, y float64) float64

// Method selects the integration scheme.
type Method int

const (
	// Euler is the explicit (forward) Euler method.
	Euler Method = iota
	// Heun is the improved Euler method (explicit trapezoid, predictor–corrector).
	Heun
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Euler:
		return "euler"
	case Heun:
		return "heun"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Step is one row of the integration table.
//
// For Euler, Predicted equals Next and K2 is zero.
type Step struct {
	N         int     // 0-based step index
	X         float64 // x_n
	Y         float64 // y_n
	K1        float64 // f(x_n, y_n)
	Predicted float64 // y_n + h·k1
	K2        float64 // f(x_n + h, Predicted), Heun only
	Next      float64 // y_{n+1}
}

// Option configures Solve.
type Option func(*Options)

// Options holds Solve callbacks.
type Options struct {
	// OnStep is called for every row as it is produced. Returning an error
	// stops Solve, which returns the rows produced so far and that error.
	OnStep func(s Step) error
}

// DefaultOptions returns Options with a no-op hook.
func DefaultOptions() Options {
	return Options{OnStep: func(Step) error { return nil }}
}

// WithOnStep registers a per-step callback; a nil fn is ignored.
func WithOnStep(fn func(s Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
