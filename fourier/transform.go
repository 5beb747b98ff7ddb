// SPDX-License-Identifier: MIT

package fourier

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// twiddle returns e^{−2πi·k/n}.
func twiddle(k, n int) complex128 {
	return cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n))
}

// isPowerOfTwo reports whether n is 2^k for some k >= 0.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// DFT computes the discrete Fourier transform by direct summation.
//
// The exponent index k·n is reduced modulo N before building the twiddle,
// which keeps the phase argument small for large k·n.
//
// Complexity: O(N²) time, O(N) memory.
func DFT(x []complex128) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]complex128, n)
	var k, j int
	var sum complex128
	for k = 0; k < n; k++ {
		sum = 0
		for j = 0; j < n; j++ {
			sum += x[j] * twiddle((k*j)%n, n)
		}
		out[k] = sum
	}

	return out, nil
}

// FFT computes the discrete Fourier transform with the iterative radix-2
// Cooley–Tukey algorithm.
//
// Implementation:
//   - Stage 1: copy x into bit-reversed order.
//   - Stage 2: for block sizes 2, 4, …, N combine halves with butterflies
//     (u + w·v, u − w·v), w = e^{−2πi·k/size}.
//
// Errors: ErrEmptyInput, ErrNotPowerOfTwo.
//
// Complexity: O(N log N) time, O(N) memory.
func FFT(x []complex128) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("len=%d: %w", n, ErrNotPowerOfTwo)
	}

	out := make([]complex128, n)
	if n == 1 {
		out[0] = x[0]
		return out, nil
	}

	// Stage 1: bit-reversal permutation.
	shift := uint(bits.UintSize - bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		out[bits.Reverse(uint(i))>>shift] = x[i]
	}

	// Stage 2: butterflies.
	var size, half, start, k int
	var w, u, v complex128
	for size = 2; size <= n; size <<= 1 {
		half = size >> 1
		for k = 0; k < half; k++ {
			w = twiddle(k, size)
			for start = 0; start < n; start += size {
				u = out[start+k]
				v = w * out[start+k+half]
				out[start+k] = u + v
				out[start+k+half] = u - v
			}
		}
	}

	return out, nil
}

// Transform uses FFT when len(x) is a power of two and DFT otherwise.
func Transform(x []complex128) ([]complex128, error) {
	if isPowerOfTwo(len(x)) {
		return FFT(x)
	}

	return DFT(x)
}
