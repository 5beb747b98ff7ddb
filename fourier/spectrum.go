// SPDX-License-Identifier: MIT

package fourier

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Real lifts real samples to complex128 with zero imaginary parts.
func Real(xs []float64) []complex128 {
	out := make([]complex128, len(xs))
	for i, v := range xs {
		out[i] = complex(v, 0)
	}

	return out
}

// Magnitudes returns |X_k| for every bin.
func Magnitudes(X []complex128) []float64 {
	out := make([]float64, len(X))
	for i, v := range X {
		out[i] = cmplx.Abs(v)
	}

	return out
}

func checkSizeRate(n int, rate float64) error {
	if n < 1 {
		return fmt.Errorf("n=%d: %w", n, ErrEmptyInput)
	}
	if !(rate > 0) || math.IsInf(rate, 1) {
		return fmt.Errorf("rate=%g: %w", rate, ErrBadRate)
	}

	return nil
}

// BinFrequencies returns k·rate/n for k = 0..n−1.
func BinFrequencies(n int, rate float64) ([]float64, error) {
	if err := checkSizeRate(n, rate); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k) * rate / float64(n)
	}

	return out, nil
}

// FFTFreq returns the frequency of each transform bin in the conventional
// layout: non-negative frequencies first, then the negative ones.
//
//	n even: [0, 1, …, n/2−1, −n/2, …, −1] · rate/n
//	n odd : [0, 1, …, (n−1)/2, −(n−1)/2, …, −1] · rate/n
func FFTFreq(n int, rate float64) ([]float64, error) {
	if err := checkSizeRate(n, rate); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	pos := (n-1)/2 + 1
	step := rate / float64(n)
	for k := 0; k < pos; k++ {
		out[k] = float64(k) * step
	}
	for k := pos; k < n; k++ {
		out[k] = float64(k-n) * step
	}

	return out, nil
}

// Spectrum transforms real samples taken at rate and returns the
// non-negative half of the spectrum: frequencies [0, rate/2) and the
// magnitudes of the matching bins.
func Spectrum(samples []float64, rate float64) (freqs, mags []float64, err error) {
	if err = checkSizeRate(len(samples), rate); err != nil {
		return nil, nil, err
	}
	X, err := Transform(Real(samples))
	if err != nil {
		return nil, nil, err
	}
	all, err := FFTFreq(len(samples), rate)
	if err != nil {
		return nil, nil, err
	}
	half := len(samples) / 2
	if half == 0 {
		half = 1
	}

	return all[:half], Magnitudes(X[:half]), nil
}
