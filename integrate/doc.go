// Package integrate approximates definite integrals with the composite
// trapezoidal rule.
//
//	Trapezoid(f, a, b, n) = h·(f(a)/2 + f(a+h) + … + f(b−h) + f(b)/2),  h = (b−a)/n
//
// The error is O(h²) for smooth f and zero for linear f. Samples integrates
// tabulated data over a (possibly uneven) grid.
package integrate
