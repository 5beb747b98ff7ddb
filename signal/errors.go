// SPDX-License-Identifier: MIT

package signal

import "errors"

var (
	// ErrTooFewSamples is returned when the requested length is < 1.
	ErrTooFewSamples = errors.New("signal: sample count must be >= 1")

	// ErrBadRate is returned when a sampling rate is not finite and > 0.
	ErrBadRate = errors.New("signal: sampling rate must be finite and > 0")

	// ErrBadParam is returned for a non-finite or out-of-range generator
	// argument (period, tone frequency).
	ErrBadParam = errors.New("signal: invalid parameter")
)
