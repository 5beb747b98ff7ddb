// Package matrix provides dense row-major storage and the direct linear
// solvers used across lvnum.
//
// The matrix package provides:
//
//   - Dense, a flat row-major implementation of the Matrix interface with
//     bounds-checked At/Set and an optional NaN/Inf guard.
//   - Solve: Gaussian elimination with partial pivoting and back substitution.
//     A pivot whose magnitude does not exceed the pivot tolerance times the
//     largest |entry| of its column is reported as ErrSingular; it is never
//     skipped silently.
//   - LU / LUSolve: Doolittle factorization (no pivoting) followed by forward
//     (Ly = b) and back (Ux = y) substitution.
//   - SolveTridiagonal: the Thomas algorithm for banded systems such as the
//     natural cubic spline.
//   - FromAugmented: split an augmented system [A | b] into A and b.
//
// Every routine works on private copies, so callers keep ownership of their
// inputs and concurrent calls on distinct inputs never interfere.
//
// See the examples in this package and in spline for usage patterns.
package matrix
