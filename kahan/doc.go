// Package kahan provides error-compensated floating-point accumulation.
//
// 🚀 Why?
//
//	Refining an envelope adds and removes thousands of tiny per-interval
//	areas from two running totals. Plain `+=` lets the rounding error of
//	every update pile up, and after enough passes the totals drift far
//	enough to flip a ratio test. Sum keeps a running compensation term
//	(Neumaier's variant of Kahan summation) next to the total, so the
//	error stays bounded by a few ulps regardless of how many updates
//	were applied.
//
// ✨ Key features:
//   - Sum: value type with Add / Sub / Total / Reset.
//   - DiffFloor: a - b rounded toward −∞ (never above the exact result).
//   - QuoFloor: a / n rounded toward −∞.
//
// ⚙️ Usage:
//
//	var s kahan.Sum
//	for _, a := range areas {
//	    s.Add(a)
//	}
//	s.Sub(areas[3])
//	total := s.Total()
//
// Complexity: every operation is O(1) and allocation-free.
package kahan
