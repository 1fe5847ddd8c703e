package kahan_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tinflex/kahan"
)

// exactSum adds xs in arbitrary precision and rounds once.
func exactSum(xs []float64) float64 {
	acc := new(big.Float).SetPrec(2048)
	for _, x := range xs {
		acc.Add(acc, new(big.Float).SetPrec(2048).SetFloat64(x))
	}
	f, _ := acc.Float64()

	return f
}

// TestSum_ZeroValue checks that an unused Sum totals to zero.
func TestSum_ZeroValue(t *testing.T) {
	var s kahan.Sum
	assert.Equal(t, 0.0, s.Total())
}

// TestSum_ManySmallTerms compares Sum with naive addition on a series
// where naive accumulation visibly drifts.
func TestSum_ManySmallTerms(t *testing.T) {
	xs := make([]float64, 0, 100001)
	xs = append(xs, 1.0)
	for i := 0; i < 100000; i++ {
		xs = append(xs, 1e-16)
	}

	var s kahan.Sum
	naive := 0.0
	for _, x := range xs {
		s.Add(x)
		naive += x
	}

	want := exactSum(xs)
	assert.Equal(t, want, s.Total(), "compensated total must match the exactly rounded sum")
	assert.NotEqual(t, want, naive, "naive addition is expected to lose the small terms")
}

// TestSum_AddSubRoundTrip adds and removes the same values repeatedly,
// the access pattern of envelope refinement.
func TestSum_AddSubRoundTrip(t *testing.T) {
	var s kahan.Sum
	s.Add(10)
	vals := []float64{0.1, 1e-9, 3.3333333333333335, 7e-13, 0.7}
	for round := 0; round < 1000; round++ {
		for _, v := range vals {
			s.Add(v)
		}
		for _, v := range vals {
			s.Sub(v)
		}
	}
	assert.InDelta(t, 10.0, s.Total(), 1e-14)
}

// TestSum_LargeMagnitudeSwing exercises the Neumaier branch where the
// incoming term dominates the running total.
func TestSum_LargeMagnitudeSwing(t *testing.T) {
	xs := []float64{1, 1e100, 1, -1e100}
	assert.Equal(t, 2.0, kahan.Of(xs...))
}

// TestSum_MergeAndReset verifies Merge folds both halves and Reset clears.
func TestSum_MergeAndReset(t *testing.T) {
	var a, b kahan.Sum
	a.Add(1)
	a.Add(1e-17)
	b.Add(2)
	b.Add(1e-17)
	a.Merge(b)
	assert.Equal(t, 3.0, a.Total())

	a.Reset()
	assert.Equal(t, 0.0, a.Total())
}

// TestSum_NonFinite keeps infinities visible instead of turning them into NaN.
func TestSum_NonFinite(t *testing.T) {
	var s kahan.Sum
	s.Add(1)
	s.Add(math.Inf(1))
	require.True(t, math.IsInf(s.Total(), 1))
}
