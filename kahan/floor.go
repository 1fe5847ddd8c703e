package kahan

import "math"

// DiffFloor returns a - b rounded toward −∞.
//
// The exact difference is recovered with TwoSum; when the rounded result
// lies above it, the result is stepped down by one ulp. Non-finite inputs
// fall through unchanged.
func DiffFloor(a, b float64) float64 {
	s := a - b
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return s
	}
	// TwoSum(a, -b): s + e == a - b exactly.
	nb := -b
	bv := s - a
	e := (a - (s - bv)) + (nb - bv)
	if e < 0 {
		return math.Nextafter(s, math.Inf(-1))
	}

	return s
}

// QuoFloor returns a / n rounded toward −∞. n must be positive.
func QuoFloor(a float64, n int) float64 {
	d := float64(n)
	q := a / d
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return q
	}
	// q*d - a evaluated with a single rounding tells on which side q is.
	if math.FMA(q, d, -a) > 0 {
		return math.Nextafter(q, math.Inf(-1))
	}

	return q
}
