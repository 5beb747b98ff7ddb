// SPDX-License-Identifier: MIT
package fourier_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/fourier"
	"github.com/katalvlaran/lvnum/signal"
)

// ExampleFFT transforms a short ramp.
func ExampleFFT() {
	X, err := fourier.FFT([]complex128{1, 2, 3, 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for k, v := range X {
		fmt.Printf("X[%d] = %+.1f%+.1fi\n", k, real(v), imag(v))
	}
	// Output:
	// X[0] = +10.0+0.0i
	// X[1] = -2.0+2.0i
	// X[2] = -2.0+0.0i
	// X[3] = -2.0-2.0i
}

// ExampleSpectrum finds the dominant frequency of a sampled 3 Hz sine.
func ExampleSpectrum() {
	ts, _ := signal.Times(32, 16)
	ys, _ := signal.Tones(ts, signal.Tone{Amplitude: 1, Frequency: 3})
	freqs, mags, _ := fourier.Spectrum(ys, 16)

	best := 0
	for k := range mags {
		if mags[k] > mags[best] {
			best = k
		}
	}
	fmt.Printf("peak at %.1f Hz, |X| = %.1f\n", freqs[best], mags[best])
	// Output:
	// peak at 3.0 Hz, |X| = 16.0
}
