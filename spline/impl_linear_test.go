// SPDX-License-Identifier: MIT
package spline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/lvnum/spline"
)

func TestLinear_Basic(t *testing.T) {
	t.Parallel()

	l, err := spline.NewLinear([]float64{0, 2, 4}, []float64{0, 4, 0})
	require.NoError(t, err)
	got, err := l.EvalAll([]float64{0, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 2, 0}, got)

	_, err = l.Eval(4.0001)
	assert.ErrorIs(t, err, spline.ErrDomain)
	_, err = l.Eval(-1e-12)
	assert.ErrorIs(t, err, spline.ErrDomain)
}

// The linear interpolant must agree with gonum's PiecewiseLinear.
func TestLinear_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	x, y := randomSamples(15, 99)
	var pl interp.PiecewiseLinear
	require.NoError(t, pl.Fit(x, y))

	l, err := spline.NewLinear(x, y)
	require.NoError(t, err)
	for _, q := range midpoints(x) {
		v, err := l.Eval(q)
		require.NoError(t, err)
		assert.InDelta(t, pl.Predict(q), v, tol, "q=%g", q)
	}
}

func TestLinear_CopiesInput(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1}
	y := []float64{0, 1}
	l, err := spline.NewLinear(x, y)
	require.NoError(t, err)
	y[1] = 100
	v, err := l.Eval(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// Demo data: a cubic polynomial sampled every 0.2.
func TestLERP_ReproducesKnots(t *testing.T) {
	t.Parallel()

	x := []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0, 1.2, 1.4, 1.6, 1.8, 2.0, 2.2, 2.4, 2.6, 2.8}
	y := []float64{10, 11.216, 11.728, 11.632, 11.024, 10, 8.656, 7.088, 5.392, 3.664, 2, 0.496, -0.752, -1.648, -2.096}
	got, err := spline.LERP(x, y, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, y, got, tol)

	_, err = spline.LERP(x, y[:3], x)
	assert.ErrorIs(t, err, spline.ErrDomain)
}
