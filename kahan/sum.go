package kahan

import "math"

// Sum is a running total with a Neumaier compensation term.
// The zero value is an empty sum, ready to use.
//
// Sum is not safe for concurrent use; callers that shard work must keep
// one Sum per shard and merge them with Merge.
type Sum struct {
	hi float64 // running total
	lo float64 // accumulated low-order bits lost by hi
}

// Add adds x to the sum.
//
// Neumaier's branch picks the larger operand as the reference so that
// the compensation stays exact even when |x| > |hi|.
func (s *Sum) Add(x float64) {
	t := s.hi + x
	if math.Abs(s.hi) >= math.Abs(x) {
		s.lo += (s.hi - t) + x
	} else {
		s.lo += (x - t) + s.hi
	}
	s.hi = t
}

// Sub subtracts x from the sum.
func (s *Sum) Sub(x float64) { s.Add(-x) }

// Merge folds another compensated sum into s.
func (s *Sum) Merge(o Sum) {
	s.Add(o.hi)
	s.Add(o.lo)
}

// Total returns the compensated total.
func (s Sum) Total() float64 {
	if math.IsInf(s.hi, 0) || math.IsNaN(s.hi) {
		return s.hi
	}

	return s.hi + s.lo
}

// Reset clears the sum.
func (s *Sum) Reset() { *s = Sum{} }

// Of returns the compensated sum of xs.
func Of(xs ...float64) float64 {
	var s Sum
	for _, x := range xs {
		s.Add(x)
	}

	return s.Total()
}
