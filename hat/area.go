package hat

import "math"

// Area returns ∫ T_c⁻¹(ln(x)) dx over [l, r].
//
// The closed forms are evaluated as expm1/log1p expressions anchored at a
// finite endpoint, so a nearly flat line over a wide interval keeps full
// relative precision. Results:
//   - 0 for Kind None, for l == r, and where T_c⁻¹ clips to zero (c > 0);
//   - +Inf when the integral diverges (an unbounded piece whose line does
//     not decay fast enough, or a c < 0 line reaching zero);
//   - NaN for malformed input (l > r, NaN coefficients, both ends infinite).
func Area(c float64, ln Line, l, r float64) float64 {
	if ln.Kind == None || l == r {
		return 0
	}
	if !(l < r) || math.IsNaN(ln.X0) || math.IsNaN(ln.Y0) || math.IsNaN(ln.Slope) {
		return math.NaN()
	}
	if math.IsInf(l, 0) && math.IsInf(r, 0) {
		return math.NaN()
	}
	if c == 0 {
		return areaExp(ln, l, r)
	}

	return areaPow(c, ln, l, r)
}

// areaExp integrates exp(ln(x)).
func areaExp(ln Line, l, r float64) float64 {
	s, w := ln.Slope, r-l
	if !math.IsInf(l, 0) {
		el := ln.At(l)
		if math.IsInf(el, -1) {
			return 0
		}
		if s == 0 {
			return math.Exp(el) * w
		}
		return math.Exp(el) * math.Expm1(s*w) / s
	}
	er := ln.At(r)
	if math.IsInf(er, -1) {
		return 0
	}
	if s == 0 {
		return math.Inf(1)
	}

	return math.Exp(er) * -math.Expm1(-s*w) / s
}

// areaPow integrates u(x)^(1/c) with u = sign(c)·ln(x), restricted to the
// region u > 0 for c > 0.
func areaPow(c float64, ln Line, l, r float64) float64 {
	var (
		sg    = math.Copysign(1, c)
		sigma = sg * ln.Slope // slope of u
		e     = 1 / c
		p     = e + 1
		lInf  = math.IsInf(l, 0)
		rInf  = math.IsInf(r, 0)
	)
	u := func(x float64) float64 { return sg * ln.At(x) }

	if sigma == 0 {
		u0 := sg * ln.Y0
		if u0 <= 0 {
			if c > 0 {
				return 0
			}
			return math.Inf(1)
		}
		return math.Pow(u0, e) * (r - l)
	}

	if c > 0 {
		// clip to the half-line where u > 0
		root := ln.X0 - sg*ln.Y0/sigma
		if sigma > 0 && root > l {
			l, lInf = root, false
		}
		if sigma < 0 && root < r {
			r, rInf = root, false
		}
		if !(l < r) {
			return 0
		}
		if (lInf && sigma < 0) || (rInf && sigma > 0) {
			return math.Inf(1)
		}
	} else {
		// u must stay positive on the whole piece
		if (!lInf && u(l) <= 0) || (!rInf && u(r) <= 0) {
			return math.Inf(1)
		}
		if (rInf && sigma < 0) || (lInf && sigma > 0) {
			return math.Inf(1)
		}
	}

	w := r - l
	if !lInf {
		ul := math.Max(u(l), 0)
		if ul == 0 {
			if rInf {
				return math.Inf(1)
			}
			return math.Pow(u(r), p) / (p * sigma)
		}
		z := math.Max(sigma*w/ul, -1)
		if p == 0 {
			return math.Log1p(z) / sigma
		}
		return math.Pow(ul, p) * math.Expm1(p*math.Log1p(z)) / (p * sigma)
	}

	ur := u(r)
	z := math.Max(-sigma*w/ur, -1)
	if p == 0 {
		return -math.Log1p(z) / sigma
	}

	return math.Pow(ur, p) * -math.Expm1(p*math.Log1p(z)) / (p * sigma)
}
