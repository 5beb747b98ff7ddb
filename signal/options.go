// SPDX-License-Identifier: MIT
// Package signal - functional options.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic.
//   - Seeding is explicit: WithSeed or WithRand.

package signal

import (
	"math"
	"math/rand"
)

// Shared defaults.
const (
	// DefaultAmplitude is the peak amplitude of generated waveforms.
	DefaultAmplitude = 1.0
	// DefaultSeed seeds the noise source when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
	// DefaultChirpF0 is the chirp start frequency in cycles per sample.
	DefaultChirpF0 = 0.02
	// DefaultChirpF1 is the chirp end frequency in cycles per sample.
	DefaultChirpF1 = 0.25
	// DefaultDuty is the fraction of each pulse period spent high.
	DefaultDuty = 0.5
)

// Option customizes a generator.
type Option func(*config)

type config struct {
	amp        float64    // peak amplitude (> 0)
	sigma      float64    // Gaussian noise stdev (>= 0); 0 disables noise
	trend      float64    // linear trend increment per sample
	f0, f1     float64    // chirp sweep, cycles/sample
	duty       float64    // pulse duty in [0,1]
	triangular bool       // pulse shape
	seed       int64      // noise seed when rng is nil
	rng        *rand.Rand // shared noise stream, optional
}

func newConfig(opts ...Option) config {
	cfg := config{
		amp:  DefaultAmplitude,
		f0:   DefaultChirpF0,
		f1:   DefaultChirpF1,
		duty: DefaultDuty,
		seed: DefaultSeed,
	}
	// Last one wins.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local source
// seeded by cfg.seed.
func rngFrom(cfg config) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(cfg.seed))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithAmplitude sets the peak amplitude. Panics unless a is finite and > 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) || !finite(a) {
		panic("signal: WithAmplitude requires a finite value > 0")
	}
	return func(c *config) { c.amp = a }
}

// WithNoise adds Gaussian noise with standard deviation sigma.
// Panics unless sigma is finite and >= 0.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) || !finite(sigma) {
		panic("signal: WithNoise requires a finite sigma >= 0")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithTrend adds slope·i to sample i. Panics on a non-finite slope.
func WithTrend(slope float64) Option {
	if !finite(slope) {
		panic("signal: WithTrend requires a finite slope")
	}
	return func(c *config) { c.trend = slope }
}

// WithSweep sets the chirp start and end frequencies in cycles per sample.
// Panics unless both are finite and > 0.
func WithSweep(f0, f1 float64) Option {
	if !(f0 > 0) || !(f1 > 0) || !finite(f0) || !finite(f1) {
		panic("signal: WithSweep requires finite frequencies > 0")
	}
	return func(c *config) { c.f0, c.f1 = f0, f1 }
}

// WithDuty sets the high fraction of a rectangular pulse. Panics outside [0, 1].
func WithDuty(d float64) Option {
	if !(d >= 0 && d <= 1) {
		panic("signal: WithDuty requires 0 <= d <= 1")
	}
	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to a triangular shape.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithSeed seeds a fresh noise source (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand shares an explicit noise source across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("signal: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
