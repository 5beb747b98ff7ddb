// Package lvnum is a small collection of classical numerical-analysis
// kernels, each one a self-contained, dependency-light Go function.
//
// 🚀 What is inside?
//
//   - Linear algebra: Gaussian elimination with partial pivoting, Doolittle LU,
//     forward/back substitution, tridiagonal (Thomas) solver
//   - Interpolation: linear, quadratic and natural cubic splines
//   - Root finding: bisection, Newton–Raphson, secant
//   - Differentiation: forward, backward and center differences
//   - Integration: composite trapezoidal rule
//   - ODEs: Euler and improved Euler (Heun)
//   - Spectral analysis: DFT and radix-2 FFT
//   - Signals: deterministic sampled tones, chirps and pulses for fixtures
//
// ✨ Conventions shared by every package:
//
//   - Pure functions over caller-owned slices; no global state, safe to call
//     from independent goroutines.
//   - Failures are package-level sentinels ("<pkg>: ...") matched with
//     errors.Is; algorithms never panic on bad input.
//   - Tunables are functional options with documented defaults.
//
// Under the hood, everything is organized under flat subpackages:
//
//	matrix/    Dense storage, Solve, LU, LUSolve, SolveTridiagonal
//	spline/    quadratic (QERP), linear (LERP) and cubic (CERP) splines
//	rootfind/  Bisection, NewtonRaphson, Secant
//	diff/      Forward, Backward, Center
//	integrate/ Trapezoid, Samples
//	ode/       EulerStep, HeunStep, Solve
//	fourier/   DFT, FFT, FFTFreq
//	signal/    Times, Tones, Chirp, Pulse
//
//	go get github.com/katalvlaran/lvnum
package lvnum
