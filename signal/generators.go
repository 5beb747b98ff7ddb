// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const tau = 2 * math.Pi

// Tone is one sinusoidal component A·sin(2π·f·t + φ).
type Tone struct {
	Amplitude float64 // peak amplitude
	Frequency float64 // Hz
	Phase     float64 // radians
}

// Times returns the n sample instants i/rate, i = 0..n−1.
func Times(n int, rate float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewSamples)
	}
	if !(rate > 0) || !finite(rate) {
		return nil, fmt.Errorf("rate=%g: %w", rate, ErrBadRate)
	}

	out := make([]float64, n)
	if n == 1 {
		return out, nil
	}

	return floats.Span(out, 0, float64(n-1)/rate), nil
}

// Tones evaluates the sum of tones at each instant in times.
func Tones(times []float64, tones ...Tone) ([]float64, error) {
	if len(times) == 0 {
		return nil, ErrTooFewSamples
	}
	for i, tn := range tones {
		if !finite(tn.Amplitude) || !finite(tn.Frequency) || !finite(tn.Phase) {
			return nil, fmt.Errorf("tone %d: %w", i, ErrBadParam)
		}
	}

	out := make([]float64, len(times))
	var sum float64
	for i, t := range times {
		sum = 0
		for _, tn := range tones {
			sum += tn.Amplitude * math.Sin(tau*tn.Frequency*t+tn.Phase)
		}
		out[i] = sum
	}

	return out, nil
}

// Chirp returns a length-n linear chirp sweeping from f0 to f1 cycles per
// sample (see WithSweep).
//
// Model:
//   - f_i = f0 + (f1 − f0)·i/(n−1)
//   - θ_{i+1} = θ_i + 2π·f_i
//   - y_i = A·sin(θ_i) + trend·i + noise
//
// Complexity: O(n).
func Chirp(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewSamples)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg)

	out := make([]float64, n)
	var theta, t, fi, val float64
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = cfg.f0 + (cfg.f1-cfg.f0)*t
		theta += tau * fi

		val = cfg.amp*math.Sin(theta) + cfg.trend*float64(i)
		if cfg.sigma > 0 {
			val += cfg.sigma * rng.NormFloat64()
		}
		out[i] = val
	}

	return out, nil
}

// Pulse returns a length-n pulse train with the given period in samples.
//
// Shape:
//   - Rectangular (default): A while the phase fraction is below the duty, else 0.
//   - Triangular (WithTriangular): A·(1 − |2·frac − 1|).
//
// Trend and noise are added as in Chirp.
//
// Complexity: O(n).
func Pulse(n int, period float64, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewSamples)
	}
	if !(period > 0) || !finite(period) {
		return nil, fmt.Errorf("period=%g: %w", period, ErrBadParam)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg)

	out := make([]float64, n)
	f0 := 1 / period
	var frac, base float64
	for i := 0; i < n; i++ {
		frac = math.Mod(float64(i)*f0, 1)
		switch {
		case cfg.triangular:
			base = cfg.amp * (1 - math.Abs(2*frac-1))
		case frac < cfg.duty:
			base = cfg.amp
		default:
			base = 0
		}
		base += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			base += cfg.sigma * rng.NormFloat64()
		}
		out[i] = base
	}

	return out, nil
}
