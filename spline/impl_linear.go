// SPDX-License-Identifier: MIT

package spline

const (
	opNewLinear     = "NewLinear"
	opLinearEval    = "Linear.Eval"
	opLinearEvalAll = "Linear.EvalAll"
	opLERP          = "LERP"
)

// Linear is a piecewise-linear interpolant.
type Linear struct {
	x, y []float64
}

// NewLinear validates and copies (x, y).
// Errors: ErrDomain for invalid samples.
func NewLinear(x, y []float64) (*Linear, error) {
	xs, ys, err := validateSamples(opNewLinear, x, y)
	if err != nil {
		return nil, err
	}

	return &Linear{x: xs, y: ys}, nil
}

// Eval returns y_j + (y_{j+1} − y_j)(q − x_j)/(x_{j+1} − x_j).
func (l *Linear) Eval(q float64) (float64, error) {
	j, err := segment(opLinearEval, l.x, q)
	if err != nil {
		return 0, err
	}
	x0, x1 := l.x[j], l.x[j+1]
	y0, y1 := l.y[j], l.y[j+1]

	return y0 + (y1-y0)*(q-x0)/(x1-x0), nil
}

// EvalAll evaluates queries in order; see Interpolator.
func (l *Linear) EvalAll(queries []float64) ([]float64, error) {
	return evalAll(opLinearEvalAll, l.Eval, queries)
}

// LERP linearly interpolates (x, y) at every query.
func LERP(x, y, queries []float64) ([]float64, error) {
	l, err := NewLinear(x, y)
	if err != nil {
		return nil, splineErrorf(opLERP, err)
	}

	return l.EvalAll(queries)
}
