// SPDX-License-Identifier: MIT
package spline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/spline"
)

func TestBuildQuadraticSystem_Layout(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1, 3}
	y := []float64{5, 6, 7}
	A, b, err := spline.BuildQuadraticSystem(x, y)
	require.NoError(t, err)
	require.Equal(t, 6, A.Rows())
	require.Equal(t, 6, A.Cols())

	// h0 = 1, h1 = 2; unknowns (a0,b0,c0,a1,b1,c1).
	want := "" +
		"[1, 0, 0, 0, 0, 0]\n" + // a0 = 0
		"[0, 0, 1, 0, 0, 0]\n" + // c0 = y0
		"[0, 0, 0, 0, 0, 1]\n" + // c1 = y1
		"[1, 1, 1, 0, 0, 0]\n" + // a0 + b0 + c0 = y1
		"[0, 0, 0, 4, 2, 1]\n" + // 4a1 + 2b1 + c1 = y2
		"[2, 1, 0, 0, -1, 0]\n" // 2a0 + b0 − b1 = 0
	assert.Equal(t, want, A.String())
	assert.Equal(t, []float64{0, 5, 6, 6, 7, 0}, b)
}

func TestBuildQuadraticSystem_RowCountIsThreePerSegment(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 12; n++ {
		x, y := randomSamples(n, int64(n))
		A, b, err := spline.BuildQuadraticSystem(x, y)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, 3*(n-1), A.Rows())
		assert.Len(t, b, 3*(n-1))
	}
}

func TestBuildQuadraticSystem_InvalidSamples(t *testing.T) {
	t.Parallel()

	cases := map[string][2][]float64{
		"too few":        {{1}, {1}},
		"length":         {{0, 1, 2}, {0, 1}},
		"duplicate x":    {{0, 1, 1, 2}, {0, 1, 2, 3}},
		"decreasing x":   {{0, 2, 1}, {0, 1, 2}},
		"nan x":          {{0, math.NaN()}, {0, 1}},
		"inf y":          {{0, 1}, {0, math.Inf(1)}},
		"nil everything": {nil, nil},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := spline.BuildQuadraticSystem(c[0], c[1])
			assert.ErrorIs(t, err, spline.ErrDomain)
			_, err = spline.NewQuadratic(c[0], c[1])
			assert.ErrorIs(t, err, spline.ErrDomain)
		})
	}
}

func TestQuadratic_EndToEnd(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 0, 1}
	q, err := spline.NewQuadratic(x, y)
	require.NoError(t, err)

	got, err := q.EvalAll(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, y, got, tol)

	v, err := q.Eval(0.5)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(v))
	assert.InDelta(t, 0.5, v, tol)

	want := []spline.QuadCoeffs{{A: 0, B: 1, C: 0}, {A: -2, B: 1, C: 1}, {A: 4, B: -3, C: 0}}
	for i, c := range q.Coeffs() {
		assert.InDelta(t, want[i].A, c.A, tol, "a%d", i)
		assert.InDelta(t, want[i].B, c.B, tol, "b%d", i)
		assert.InDelta(t, want[i].C, c.C, tol, "c%d", i)
	}

	for _, out := range []float64{-1, 4, math.NaN()} {
		_, err = q.Eval(out)
		assert.ErrorIs(t, err, spline.ErrDomain, "query %v", out)
	}
	_, err = q.EvalAll([]float64{0, 1, 4})
	assert.ErrorIs(t, err, spline.ErrDomain)
}

func TestQuadratic_Properties(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5, 9, 20} {
		x, y := randomSamples(n, int64(7*n))
		q, err := spline.NewQuadratic(x, y)
		require.NoError(t, err, "n=%d", n)
		cs := q.Coeffs()
		require.Len(t, cs, n-1)

		// Boundary: a0 == 0.
		assert.InDelta(t, 0, cs[0].A, tol, "n=%d a0", n)

		// Interpolation at knots.
		for i := range x {
			v, err := q.Eval(x[i])
			require.NoError(t, err)
			assert.InDelta(t, y[i], v, tol, "n=%d knot %d", n, i)
		}

		for i := 1; i < n-1; i++ {
			h := x[i] - x[i-1]
			left, right := cs[i-1], cs[i]
			// Continuity from both sides.
			assert.InDelta(t, y[i], left.A*h*h+left.B*h+left.C, tol, "n=%d left value at %d", n, i)
			assert.InDelta(t, y[i], right.C, tol, "n=%d right value at %d", n, i)
			// First-derivative continuity.
			assert.InDelta(t, 2*left.A*h+left.B, right.B, 1e-8, "n=%d slope at %d", n, i)
		}
	}
}

func TestQuadratic_LastKnotUsesLastSegment(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1, 2, 3}
	q, err := spline.NewQuadratic(x, []float64{0, 1, 0, 1})
	require.NoError(t, err)

	d, err := q.Derivative(3)
	require.NoError(t, err)
	// Last segment: S' = 8(x−2) − 3 → 5 at x = 3.
	assert.InDelta(t, 5, d, tol)

	d, err = q.Derivative(0)
	require.NoError(t, err)
	assert.InDelta(t, 1, d, tol)

	_, err = q.Derivative(3.5)
	assert.ErrorIs(t, err, spline.ErrDomain)
}

func TestQuadratic_TinySpacing(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1e-7, 2e-7, 3e-7}
	y := []float64{0, 1, 0, 1}
	q, err := spline.NewQuadratic(x, y)
	require.NoError(t, err)
	got, err := q.EvalAll(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, y, got, 1e-6)

	// A tolerance above 1 rejects every pivot.
	_, err = spline.NewQuadratic(x, y, matrix.WithPivotTolerance(2))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestEvaluateQuadratic(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1, 2, 3}
	coeffs := []spline.QuadCoeffs{{A: 0, B: 1, C: 0}, {A: -2, B: 1, C: 1}, {A: 4, B: -3, C: 0}}
	got, err := spline.EvaluateQuadratic(coeffs, x, []float64{3, 0.5, 1.5, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0.5, 1, 0}, got, tol)

	_, err = spline.EvaluateQuadratic(coeffs[:2], x, []float64{1})
	assert.ErrorIs(t, err, spline.ErrDomain)
	_, err = spline.EvaluateQuadratic(coeffs, []float64{0, 1, 1, 3}, []float64{1})
	assert.ErrorIs(t, err, spline.ErrDomain)
	_, err = spline.EvaluateQuadratic(coeffs, x, []float64{-0.1})
	assert.ErrorIs(t, err, spline.ErrDomain)
}

func TestQERP(t *testing.T) {
	t.Parallel()

	got, err := spline.QERP([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1}, []float64{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 0, 1}, got, tol)

	_, err = spline.QERP([]float64{0, 0}, []float64{0, 1}, []float64{0})
	assert.ErrorIs(t, err, spline.ErrDomain)
}
