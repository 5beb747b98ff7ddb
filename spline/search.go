// SPDX-License-Identifier: MIT

package spline

import "sort"

// segment returns the index j of the segment [x_j, x_{j+1}] containing q.
// q == x[n-1] belongs to the last segment. x must have been validated.
//
// Complexity: O(log n).
func segment(op string, x []float64, q float64) (int, error) {
	n := len(x)
	// Also rejects NaN.
	if !(q >= x[0] && q <= x[n-1]) {
		return 0, domainErrorf(op, "query %g outside [%g, %g]", q, x[0], x[n-1])
	}
	if q == x[n-1] {
		return n - 2, nil
	}
	// i is the first knot with x[i] >= q; q lies in [x[i-1], x[i]) unless it
	// hits x[i] exactly.
	i := sort.SearchFloat64s(x, q)
	if x[i] == q {
		return i, nil
	}

	return i - 1, nil
}
