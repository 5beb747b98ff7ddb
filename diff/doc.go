// Package diff approximates first derivatives with finite differences.
//
//	Forward  : f'(x) ≈ (f(x+h) − f(x)) / h          O(h)
//	Backward : f'(x) ≈ (f(x) − f(x−h)) / h          O(h)
//	Center   : f'(x) ≈ (f(x+h) − f(x−h)) / (2h)     O(h²)
//
// The step h must be finite and strictly positive (ErrNonPositiveStep).
package diff
