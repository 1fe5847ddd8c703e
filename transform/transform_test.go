package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/transform"
)

// TestApply_LogIsIdentity checks that c = 0 leaves the triple unchanged.
func TestApply_LogIsIdentity(t *testing.T) {
	p := transform.Apply(0, -1.5, 2, -3)
	assert.Equal(t, transform.Point{T0: -1.5, T1: 2, T2: -3}, p)
}

// TestApply_MatchesFiniteDifferences validates T1 and T2 against numeric
// derivatives of T_c(f(x)) for several c.
func TestApply_MatchesFiniteDifferences(t *testing.T) {
	d := density.Quartic()
	const h = 1e-5
	for _, c := range []float64{-0.5, 0.5, 1.5, -0.9} {
		tc := func(x float64) float64 { return transform.Forward(c, math.Exp(d.LogPDF(x))) }
		for _, x := range []float64{-1.2, 0.3, 1.1, 1.9} {
			p := transform.Apply(c, d.LogPDF(x), d.Deriv1(x), d.Deriv2(x))
			assert.InDelta(t, tc(x), p.T0, 1e-12*(1+math.Abs(p.T0)), "T0 c=%v x=%v", c, x)

			d1 := (tc(x+h) - tc(x-h)) / (2 * h)
			assert.InDelta(t, d1, p.T1, 1e-5*(1+math.Abs(p.T1)), "T1 c=%v x=%v", c, x)

			d2 := (tc(x+h) - 2*tc(x) + tc(x-h)) / (h * h)
			assert.InDelta(t, d2, p.T2, 1e-3*(1+math.Abs(p.T2)), "T2 c=%v x=%v", c, x)
		}
	}
}

// TestInverse_RoundTrip checks T_c⁻¹(T_c(y)) == y.
func TestInverse_RoundTrip(t *testing.T) {
	for _, c := range []float64{-2, -0.5, 0, 0.5, 1.5} {
		for _, y := range []float64{1e-6, 0.3, 1, 7.5} {
			assert.InDelta(t, y, transform.Inverse(c, transform.Forward(c, y)), 1e-12*y, "c=%v y=%v", c, y)
		}
	}
}

// TestInverse_OutOfRange checks the extension outside the image of T_c.
func TestInverse_OutOfRange(t *testing.T) {
	assert.Equal(t, 0.0, transform.Inverse(1.5, -2))
	assert.Equal(t, 0.0, transform.Inverse(1.5, 0))
	assert.True(t, math.IsInf(transform.Inverse(-0.5, 0), 1))
	assert.True(t, math.IsInf(transform.Inverse(-0.5, 3), 1))
}

// TestUnbounded_Marker checks T_c(0) per sign of c.
func TestUnbounded_Marker(t *testing.T) {
	assert.True(t, math.IsInf(transform.Unbounded(0).T0, -1))
	assert.True(t, math.IsInf(transform.Unbounded(-0.5).T0, -1))
	assert.Equal(t, 0.0, transform.Unbounded(1.5).T0)
	assert.True(t, math.IsNaN(transform.Unbounded(1.5).T1))
	assert.False(t, transform.Unbounded(1.5).Finite())
}

// TestValid_AndTail covers the parameter predicates.
func TestValid_AndTail(t *testing.T) {
	assert.True(t, transform.Valid(-3))
	assert.False(t, transform.Valid(math.NaN()))
	assert.False(t, transform.Valid(math.Inf(1)))
	assert.True(t, transform.TailIntegrable(-0.99))
	assert.False(t, transform.TailIntegrable(-1))
}
