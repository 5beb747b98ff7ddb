// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

var (
	// ErrDomain indicates samples or queries outside the interpolant's domain:
	// fewer than two samples, mismatched lengths, non-finite values,
	// non-increasing or duplicate x, or a query outside [x_0, x_{n-1}].
	ErrDomain = errors.New("spline: domain error")

	// ErrSystemLayout indicates the quadratic system builder produced a row
	// count different from 3·segments. It signals a bug, never bad input.
	ErrSystemLayout = errors.New("spline: system row count does not match 3·segments")
)

// splineErrorf tags err with an operation name. Dimension failures from the
// matrix package are additionally marked as ErrDomain.
func splineErrorf(op string, err error) error {
	if errors.Is(err, matrix.ErrDimensionMismatch) || errors.Is(err, matrix.ErrInvalidDimensions) {
		return fmt.Errorf("%s: %w: %w", op, ErrDomain, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// domainErrorf builds an ErrDomain with a formatted detail.
func domainErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrDomain)
}
