// SPDX-License-Identifier: MIT

package diff

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveStep is returned when the step is zero, negative, NaN or Inf.
var ErrNonPositiveStep = errors.New("diff: step must be finite and > 0")

// ErrUnknownMethod is returned by Derivative for an undefined Method.
var ErrUnknownMethod = errors.New("diff: unknown method")

// Func is a real function of one variable.
type Func func(x float64) float64

// Method selects a difference formula.
type Method int

const (
	// MethodForward uses (f(x+h) − f(x)) / h.
	MethodForward Method = iota
	// MethodBackward uses (f(x) − f(x−h)) / h.
	MethodBackward
	// MethodCenter uses (f(x+h) − f(x−h)) / (2h).
	MethodCenter
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodForward:
		return "forward"
	case MethodBackward:
		return "backward"
	case MethodCenter:
		return "center"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func checkStep(h float64) error {
	if !(h > 0) || math.IsInf(h, 1) {
		return fmt.Errorf("h=%g: %w", h, ErrNonPositiveStep)
	}

	return nil
}

// Forward returns the forward difference of f at x with step h.
func Forward(f Func, x, h float64) (float64, error) {
	if err := checkStep(h); err != nil {
		return 0, err
	}

	return (f(x+h) - f(x)) / h, nil
}

// Backward returns the backward difference of f at x with step h.
func Backward(f Func, x, h float64) (float64, error) {
	if err := checkStep(h); err != nil {
		return 0, err
	}

	return (f(x) - f(x-h)) / h, nil
}

// Center returns the central difference of f at x with step h.
func Center(f Func, x, h float64) (float64, error) {
	if err := checkStep(h); err != nil {
		return 0, err
	}

	return (f(x+h) - f(x-h)) / (2 * h), nil
}

// Derivative dispatches to the formula selected by m.
func Derivative(m Method, f Func, x, h float64) (float64, error) {
	switch m {
	case MethodForward:
		return Forward(f, x, h)
	case MethodBackward:
		return Backward(f, x, h)
	case MethodCenter:
		return Center(f, x, h)
	default:
		return 0, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
	}
}
