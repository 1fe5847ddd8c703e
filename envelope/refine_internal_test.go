package envelope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/kahan"
)

// seeded returns a refiner seeded from the named preset.
func seeded(t *testing.T, name string, opts Options) *refiner {
	t.Helper()
	p, err := density.Lookup(name)
	require.NoError(t, err)
	r := newRefiner(p.Density, opts, len(p.C))
	require.NoError(t, r.seed(p.C, p.Points))
	require.Equal(t, len(p.C), r.list.Len())

	return r
}

func TestSeed_AreasOrderedAndFinite(t *testing.T) {
	for _, name := range density.Names() {
		r := seeded(t, name, DefaultOptions())
		r.list.Each(func(iv *Interval) {
			assert.True(t, finite(iv.HatArea), "%s [%g, %g]", name, iv.Lx, iv.Rx)
			assert.True(t, finite(iv.SqueezeArea), "%s [%g, %g]", name, iv.Lx, iv.Rx)
			assert.GreaterOrEqual(t, iv.HatArea, iv.SqueezeArea, name)
			assert.GreaterOrEqual(t, iv.SqueezeArea, 0.0, name)
		})
		assert.GreaterOrEqual(t, r.hatSum.Total(), r.sqSum.Total(), name)
		assert.GreaterOrEqual(t, r.sqSum.Total(), 0.0, name)
	}
}

func TestStep_IdempotentOnceConverged(t *testing.T) {
	r := seeded(t, "normal", DefaultOptions())
	reason, err := r.refine()
	require.NoError(t, err)
	require.Equal(t, Converged, reason)

	n, h, q := r.list.Len(), r.hatSum.Total(), r.sqSum.Total()
	splits, converged, err := r.step()
	require.NoError(t, err)
	assert.True(t, converged)
	assert.Zero(t, splits)
	assert.Equal(t, n, r.list.Len())
	assert.Equal(t, h, r.hatSum.Total())
	assert.Equal(t, q, r.sqSum.Total())
}

// TestRefine_TotalsTrackIntervals checks that thousands of add/remove
// updates leave the running totals equal to a fresh sum.
func TestRefine_TotalsTrackIntervals(t *testing.T) {
	opts := DefaultOptions()
	opts.Rho = 1.0001
	opts.MaxIntervals = 3000
	r := seeded(t, "quartic", opts)
	_, err := r.refine()
	require.NoError(t, err)

	var hs, qs []float64
	r.list.Each(func(iv *Interval) {
		hs = append(hs, iv.HatArea)
		qs = append(qs, iv.SqueezeArea)
	})
	assert.InEpsilon(t, kahan.Of(hs...), r.hatSum.Total(), 1e-12)
	assert.InEpsilon(t, kahan.Of(qs...), r.sqSum.Total(), 1e-12)
}

// TestStep_LonePieceSplits checks that a single piece is selected even
// though its gap equals the average exactly.
func TestStep_LonePieceSplits(t *testing.T) {
	opts := DefaultOptions()
	opts.Rho = 1 + 1e-9
	r := newRefiner(density.Normal(0, 1), opts, 1)
	require.NoError(t, r.seed([]float64{0}, []float64{-1, 2}))

	splits, converged, err := r.step()
	require.NoError(t, err)
	assert.False(t, converged)
	assert.Equal(t, 1, splits)
	assert.Equal(t, 2, r.list.Len())

	front := r.list.At(r.list.Front())
	back := r.list.At(r.list.Back())
	assert.Equal(t, -1.0, front.Lx)
	assert.Equal(t, front.Rx, back.Lx)
	assert.Equal(t, 2.0, back.Rx)
}

func TestRefine_StallsOnUnsplittablePiece(t *testing.T) {
	r := newRefiner(density.Normal(0, 1), DefaultOptions(), 1)
	r.list.PushBack(Interval{Lx: 1, Rx: math.Nextafter(1, 2), HatArea: 1})
	r.hatSum.Add(1)

	reason, err := r.refine()
	require.NoError(t, err)
	assert.Equal(t, Stalled, reason)
	assert.Equal(t, 1, r.passes)
	assert.Equal(t, 1, r.skipped)
	assert.Equal(t, 1, r.list.Len())
}
