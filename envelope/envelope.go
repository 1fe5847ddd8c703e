package envelope

import (
	"math"
	"sort"
)

// Envelope is the finished hat/squeeze construction.
//
// Segments are sorted by Lx and contiguous: Segments[i].Rx ==
// Segments[i+1].Lx, and together they cover the input domain exactly.
// HatArea and SqueezeArea are the compensated totals over all segments.
type Envelope struct {
	Segments    []Segment `json:"segments" yaml:"segments"`
	HatArea     float64   `json:"hat_area" yaml:"hat_area"`
	SqueezeArea float64   `json:"squeeze_area" yaml:"squeeze_area"`
	Iterations  int       `json:"iterations" yaml:"iterations"`
	Reason      Reason    `json:"reason" yaml:"reason"`
	Rho         float64   `json:"rho" yaml:"rho"`
}

// Len returns the number of segments.
func (e *Envelope) Len() int { return len(e.Segments) }

// Ratio returns HatArea / SqueezeArea (+Inf with no squeeze at all).
func (e *Envelope) Ratio() float64 { return ratio(e.HatArea, e.SqueezeArea) }

// Converged reports whether the target ratio was reached.
func (e *Envelope) Converged() bool { return e.Reason == Converged }

// Domain returns the outer ends of the envelope.
func (e *Envelope) Domain() (lo, hi float64) {
	if len(e.Segments) == 0 {
		return math.NaN(), math.NaN()
	}
	return e.Segments[0].Lx, e.Segments[len(e.Segments)-1].Rx
}

// Locate returns the index of the segment containing x. A breakpoint
// belongs to the segment on its right, except the right end of the domain.
//
// Complexity: O(log n).
func (e *Envelope) Locate(x float64) (int, bool) {
	n := len(e.Segments)
	if n == 0 || math.IsNaN(x) {
		return 0, false
	}
	lo, hi := e.Domain()
	if x < lo || x > hi {
		return 0, false
	}
	i := sort.Search(n, func(i int) bool { return e.Segments[i].Rx > x })
	if i == n {
		i = n - 1
	}

	return i, true
}

// HatAt evaluates the hat at x, 0 outside the domain.
func (e *Envelope) HatAt(x float64) float64 {
	i, ok := e.Locate(x)
	if !ok {
		return 0
	}
	return e.Segments[i].HatAt(x)
}

// SqueezeAt evaluates the squeeze at x, 0 outside the domain.
func (e *Envelope) SqueezeAt(x float64) float64 {
	i, ok := e.Locate(x)
	if !ok {
		return 0
	}
	return e.Segments[i].SqueezeAt(x)
}
