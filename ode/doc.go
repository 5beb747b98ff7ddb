// Package ode integrates first-order initial value problems y' = f(x, y),
// y(x0) = y0, with fixed-step explicit methods.
//
// Methods:
//
//	Euler : y_{n+1} = y_n + h·f(x_n, y_n)                       O(h)
//	Heun  : k1 = f(x_n, y_n)
//	        ỹ  = y_n + h·k1                     (predictor)
//	        k2 = f(x_n + h, ỹ)
//	        y_{n+1} = y_n + h/2·(k1 + k2)       (corrector)     O(h²)
//
// Solve returns the full step table (one Step per iteration) and reports
// each row to an optional WithOnStep hook as it is produced.
package ode
