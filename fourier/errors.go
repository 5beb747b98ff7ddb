// SPDX-License-Identifier: MIT

package fourier

import "errors"

var (
	// ErrEmptyInput is returned for a zero-length input or a non-positive size.
	ErrEmptyInput = errors.New("fourier: empty input")

	// ErrNotPowerOfTwo is returned by FFT when the length is not 2^k.
	ErrNotPowerOfTwo = errors.New("fourier: length is not a power of two")

	// ErrBadRate is returned when a sampling rate is not finite and > 0.
	ErrBadRate = errors.New("fourier: sampling rate must be finite and > 0")
)
