// Package fourier computes discrete Fourier transforms of finite sequences.
//
//	X_k = Σ_{n=0}^{N−1} x_n · e^{−2πi·kn/N},   k = 0..N−1   (unnormalized)
//
// Kernels:
//
//	DFT       – direct O(N²) sum, any N >= 1.
//	FFT       – iterative radix-2 Cooley–Tukey, O(N log N), N a power of two.
//	Transform – FFT when N is a power of two, DFT otherwise.
//
// Helpers turn results into something plottable: Real lifts samples to
// complex, Magnitudes takes |X_k|, FFTFreq lays out bin frequencies in the
// usual "positive then negative" order and Spectrum returns the one-sided
// magnitude spectrum of a real signal.
//
// Inputs are never modified; every kernel returns a fresh slice.
package fourier
