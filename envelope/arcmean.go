package envelope

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	// arcMeanFar is the magnitude beyond which ArcMean switches to the
	// harmonic rule.
	arcMeanFar = 1e3

	// arcMeanNarrow is the arctangent width below which ArcMean falls back
	// to the arithmetic mean.
	arcMeanNarrow = 1e-6
)

// ArcMean returns a split point for the interval spanned by l and r.
//
// The point is tan of the midpoint of [atan(l), atan(r)], which is close
// to the arithmetic mean near zero and compresses gracefully towards ±Inf.
// Two fallbacks apply:
//   - if |l| or |r| exceeds 1e3: 2 / (1/l + 1/r);
//   - if atan(r) - atan(l) < 1e-6: the arithmetic mean.
//
// When sorted is false the endpoints are ordered first. A reversed
// arctangent bracket returns ErrMidpointOrder.
//
// Complexity: O(1).
func ArcMean(l, r float64, sorted bool) (float64, error) {
	if !sorted && l > r {
		l, r = r, l
	}
	if math.Abs(l) > arcMeanFar || math.Abs(r) > arcMeanFar {
		return 2 / (1/l + 1/r), nil
	}

	d, b := math.Atan(l), math.Atan(r)
	if !(d <= b) {
		return math.NaN(), errors.Wrapf(ErrMidpointOrder, "atan(%g)=%g > atan(%g)=%g", l, d, r, b)
	}
	if b-d < arcMeanNarrow {
		return 0.5*l + 0.5*r, nil
	}

	return math.Tan(0.5 * (d + b)), nil
}

// splitPoint returns a point strictly inside (lx, rx), or ok == false when
// no float lies strictly between them.
//
// ArcMean's value is used when it falls inside the piece. The harmonic
// rule can land outside when only one end is far away (e.g. [-2e3, 5]);
// then the arithmetic mean is used for finite pieces and a unit-scaled
// step away from the finite end for unbounded ones.
func splitPoint(lx, rx float64) (mid float64, ok bool, err error) {
	mid, err = ArcMean(lx, rx, true)
	if err != nil {
		return 0, false, err
	}
	if lx < mid && mid < rx {
		return mid, true, nil
	}

	switch {
	case math.IsInf(rx, 1):
		mid = lx + math.Max(1, math.Abs(lx))
	case math.IsInf(lx, -1):
		mid = rx - math.Max(1, math.Abs(rx))
	default:
		mid = 0.5*lx + 0.5*rx
	}

	return mid, lx < mid && mid < rx, nil
}
