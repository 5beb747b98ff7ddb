// Package spline implements piecewise polynomial interpolation through
// ordered samples (x_i, y_i) with strictly increasing x.
//
// 🚀 What is it?
//
//	Three interpolants sharing one contract (Interpolator):
//	  • Linear    – straight segments, C⁰.
//	  • Quadratic – S_i(x) = a_i(x−x_i)² + b_i(x−x_i) + c_i per segment, C¹,
//	                coefficients from a 3(n−1)×3(n−1) system solved by
//	                Gaussian elimination with partial pivoting.
//	  • Cubic     – natural cubic spline (y'' = 0 at both ends), C², second
//	                derivatives from a tridiagonal system (Thomas algorithm).
//
// ✨ Quadratic system layout (n_s = n−1 segments, unknowns a0,b0,c0,a1,...):
//
//	row 0                : a0 = 0                          (boundary)
//	rows 1 .. n_s        : c_i = y_i                       (left end)
//	rows n_s+1 .. 2n_s   : a_i h² + b_i h + c_i = y_{i+1}  (right end)
//	rows 2n_s+1 .. 3n_s−1: 2a_i h + b_i − b_{i+1} = 0       (slope continuity)
//
//	Only the first segment's curvature is pinned; nothing is imposed at the
//	last segment. The row count always equals 3·n_s.
//
// ⚙️ Evaluation:
//
//	The containing segment is found by binary search; a query equal to the
//	last knot belongs to the last segment. Queries outside [x_0, x_{n−1}]
//	fail with ErrDomain. EvalAll keeps the query order and returns no
//	partial result on failure.
//
// ⚠️ Errors:
//
//	ErrDomain       – bad samples or out-of-range query. Dimension failures
//	                  reported by the matrix package also match ErrDomain.
//	matrix.ErrSingular – the quadratic system could not be solved.
//
// Quick start:
//
//	q, err := spline.NewQuadratic([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
//	v, err := q.Eval(0.5) // 0.5
package spline
