package hat

import (
	"math"

	"github.com/katalvlaran/tinflex/transform"
)

// Build constructs hat and squeeze for [l, r] under T_c from the
// transformed endpoint data tl, tr, and integrates both.
//
// Contract:
//   - l <= r; l == r yields a Degenerate pair with zero areas.
//   - At most one of l, r may be infinite; the infinite side's Point is
//     ignored. Both infinite yields a NaN hat area.
//
// Build never fails; callers must check the areas (they are +Inf or NaN
// when the construction cannot be integrated).
func Build(c, l, r float64, tl, tr transform.Point) Pair {
	if l == r {
		return Pair{Shape: Degenerate}
	}

	lInf, rInf := math.IsInf(l, 0), math.IsInf(r, 0)
	switch {
	case lInf && rInf:
		return Pair{Shape: Irregular, HatArea: math.NaN()}
	case rInf:
		return tail(c, l, r, TailRight, tangentAt(TangentLeft, l, tl), tl)
	case lInf:
		return tail(c, l, r, TailLeft, tangentAt(TangentRight, r, tr), tr)
	}

	var (
		tanL = tangentAt(TangentLeft, l, tl)
		tanR = tangentAt(TangentRight, r, tr)
		sec  = secant(l, r, tl, tr)
		R    = sec.Slope
	)

	switch {
	case tl.T2 <= 0 && tr.T2 <= 0:
		if atLeast(tl.T1, R) && atLeast(R, tr.T1) {
			h, ha := smaller(c, l, r, tanL, tanR)
			return Pair{Shape: Concave, Hat: h, HatArea: ha, Squeeze: sec, SqueezeArea: Area(c, sec, l, r)}
		}
	case tl.T2 >= 0 && tr.T2 >= 0:
		if atLeast(R, tl.T1) && atLeast(tr.T1, R) {
			s, sa := larger(c, l, r, tanL, tanR)
			return Pair{Shape: Convex, Hat: sec, HatArea: Area(c, sec, l, r), Squeeze: s, SqueezeArea: sa}
		}
	case tl.T2 < 0 && tr.T2 > 0:
		h, s := sec, sec
		if tl.T1 >= R {
			h = tanL
		}
		if tr.T1 >= R {
			s = tanR
		}
		return Pair{Shape: ConcaveConvex, Hat: h, HatArea: Area(c, h, l, r), Squeeze: s, SqueezeArea: Area(c, s, l, r)}
	case tl.T2 > 0 && tr.T2 < 0:
		h, s := sec, sec
		if tr.T1 <= R {
			h = tanR
		}
		if tl.T1 <= R {
			s = tanL
		}
		return Pair{Shape: ConvexConcave, Hat: h, HatArea: Area(c, h, l, r), Squeeze: s, SqueezeArea: Area(c, s, l, r)}
	}

	h, ha := largestFinite(c, l, r, tanL, tanR, sec)
	return Pair{Shape: Irregular, Hat: h, HatArea: ha, Squeeze: Line{Kind: None}}
}

// slopeSlack is the relative tolerance for slope comparisons; the secant
// slope carries rounding error from a difference of endpoint values.
const slopeSlack = 1e-10

// atLeast reports a >= b up to slopeSlack. NaN compares false.
func atLeast(a, b float64) bool {
	return a >= b-slopeSlack*(math.Abs(a)+math.Abs(b))
}

// secant joins (l, T0(l)) and (r, T0(r)), anchored at the end with the
// smaller |T0| so the inverse is exact where it is most sensitive.
func secant(l, r float64, tl, tr transform.Point) Line {
	sec := Line{Kind: Secant, X0: l, Y0: tl.T0, Slope: (tr.T0 - tl.T0) / (r - l)}
	if math.Abs(tr.T0) < math.Abs(tl.T0) {
		sec.X0, sec.Y0 = r, tr.T0
	}

	return sec
}

// tail builds the hat of an unbounded piece from the tangent at its finite
// end p. A tail that fails tailConcave gets a +Inf hat area.
func tail(c, l, r float64, shape Shape, tangent Line, p transform.Point) Pair {
	pair := Pair{Shape: shape, Hat: tangent, Squeeze: Line{Kind: None}}
	if !tailConcave(c, shape, p) {
		pair.HatArea = math.Inf(1)
		return pair
	}
	pair.HatArea = Area(c, tangent, l, r)

	return pair
}

// tailConcave reports whether the tangent at the finite end p bounds the
// tail: T_c(f) concave at p and decaying towards the infinite side.
// c > 0 never qualifies: a concave f^c >= 0 on a half-line cannot decay.
func tailConcave(c float64, shape Shape, p transform.Point) bool {
	if c > 0 || !(p.T2 <= 0) || math.IsNaN(p.T0) || math.IsInf(p.T1, 0) {
		return false
	}
	if shape == TailLeft {
		return p.T1 > 0
	}

	return p.T1 < 0
}

// smaller returns the line with the smaller area; NaN loses.
func smaller(c, l, r float64, a, b Line) (Line, float64) {
	aa, ba := Area(c, a, l, r), Area(c, b, l, r)
	if ba < aa || math.IsNaN(aa) {
		return b, ba
	}

	return a, aa
}

// larger returns the line with the larger finite area.
func larger(c, l, r float64, a, b Line) (Line, float64) {
	aa, ba := Area(c, a, l, r), Area(c, b, l, r)
	if (ba > aa && !math.IsInf(ba, 1)) || math.IsNaN(aa) || math.IsInf(aa, 1) {
		return b, ba
	}

	return a, aa
}

// largestFinite picks the candidate with the largest finite area. When no
// candidate is finite the last one is returned with its area.
func largestFinite(c, l, r float64, cands ...Line) (Line, float64) {
	best, bestArea, found := cands[len(cands)-1], math.NaN(), false
	for _, ln := range cands {
		a := Area(c, ln, l, r)
		if math.IsNaN(a) || math.IsInf(a, 0) {
			continue
		}
		if !found || a > bestArea {
			best, bestArea, found = ln, a, true
		}
	}
	if !found {
		bestArea = Area(c, best, l, r)
	}

	return best, bestArea
}
