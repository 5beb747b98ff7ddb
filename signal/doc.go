// SPDX-License-Identifier: MIT
// Package signal generates deterministic sampled test signals for the
// spectral kernels: sample grids, sums of tones, linear chirps and pulse
// trains, each with optional linear trend and Gaussian noise.
//
// Determinism:
//   - Noise draws come from WithRand(r) when given, otherwise from a source
//     seeded by WithSeed (DefaultSeed when neither is set). The same
//     (n, options) always yields the same samples.
//
// Errors:
//   - Generators return ErrTooFewSamples, ErrBadRate or ErrBadParam on
//     invalid arguments. Option constructors panic on meaningless values.
package signal
