package envelope

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tinflex/hat"
)

// areaSlack is the relative amount by which a squeeze area may exceed the
// hat area and still be treated as rounding noise.
const areaSlack = 1e-10

// evaluate computes hat, squeeze and both areas of iv in place.
//
// Contract:
//   - Lx == Rx is a degenerate piece: zero areas, no builder call.
//   - Lx > Rx (or NaN ends) returns ErrInvertedInterval.
//   - Both areas must be finite (ErrNonFiniteArea).
//   - SqueezeArea <= HatArea; excess within areaSlack is clamped,
//     anything larger returns ErrAreaOrder.
func evaluate(iv *Interval) error {
	if iv.Lx == iv.Rx {
		iv.Hat, iv.Squeeze = hat.Line{}, hat.Line{}
		iv.Shape = hat.Degenerate
		iv.HatArea, iv.SqueezeArea = 0, 0
		return nil
	}
	if !(iv.Lx < iv.Rx) {
		return errors.Wrapf(ErrInvertedInterval, "[%g, %g]", iv.Lx, iv.Rx)
	}

	p := hat.Build(iv.C, iv.Lx, iv.Rx, iv.Left, iv.Right)
	iv.Hat, iv.Squeeze, iv.Shape = p.Hat, p.Squeeze, p.Shape
	iv.HatArea, iv.SqueezeArea = p.HatArea, p.SqueezeArea

	if !finite(iv.HatArea) || !finite(iv.SqueezeArea) {
		return errors.Wrapf(ErrNonFiniteArea, "[%g, %g] c=%g %s: hat=%g squeeze=%g",
			iv.Lx, iv.Rx, iv.C, iv.Shape, iv.HatArea, iv.SqueezeArea)
	}
	if iv.SqueezeArea > iv.HatArea {
		if iv.SqueezeArea-iv.HatArea > areaSlack*iv.HatArea {
			return errors.Wrapf(ErrAreaOrder, "[%g, %g] c=%g %s: hat=%g squeeze=%g",
				iv.Lx, iv.Rx, iv.C, iv.Shape, iv.HatArea, iv.SqueezeArea)
		}
		iv.SqueezeArea = iv.HatArea
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
