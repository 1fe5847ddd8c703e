package envelope

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/tinflex/hat"
	"github.com/katalvlaran/tinflex/transform"
)

// Defaults for Options.
const (
	// DefaultRho lets the hat area exceed the squeeze area by 10%.
	DefaultRho = 1.1

	// DefaultMaxIntervals caps the number of live intervals.
	DefaultMaxIntervals = 1000

	// DefaultMaxIterations caps the number of refinement passes.
	DefaultMaxIterations = 1000
)

// Options configures Build.
//
// Fields:
//   - Rho: target hat/squeeze area ratio, >= 1.
//   - MaxIntervals: refinement stops once this many intervals are live.
//     Checked before each pass, so the last pass may overshoot it.
//   - MaxIterations: maximum number of refinement passes; 0 only seeds.
//   - Logger: optional; nil disables logging.
type Options struct {
	Rho           float64
	MaxIntervals  int
	MaxIterations int
	Logger        *zap.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Rho:           DefaultRho,
		MaxIntervals:  DefaultMaxIntervals,
		MaxIterations: DefaultMaxIterations,
	}
}

// Reason tells why refinement stopped.
type Reason uint8

const (
	// Converged: the hat/squeeze ratio reached Rho.
	Converged Reason = iota
	// IterationBudget: MaxIterations passes were spent.
	IterationBudget
	// IntervalBudget: MaxIntervals was reached.
	IntervalBudget
	// Stalled: a pass found nothing it could split.
	Stalled
)

var reasonNames = [...]string{"converged", "iteration-budget", "interval-budget", "stalled"}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// MarshalText renders the reason by name.
func (r Reason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Interval is a live piece [Lx, Rx] during refinement.
type Interval struct {
	Lx, Rx float64
	C      float64 // transform parameter, fixed at creation

	Left  transform.Point // transformed data at Lx
	Right transform.Point // transformed data at Rx

	Hat         hat.Line
	Squeeze     hat.Line
	Shape       hat.Shape
	HatArea     float64
	SqueezeArea float64
}

// gap is the area between hat and squeeze.
func (iv *Interval) gap() float64 { return iv.HatArea - iv.SqueezeArea }

// Segment is a finalized interval: only what a sampler needs.
type Segment struct {
	Lx          float64   `json:"lx" yaml:"lx"`
	Rx          float64   `json:"rx" yaml:"rx"`
	C           float64   `json:"c" yaml:"c"`
	Hat         hat.Line  `json:"hat" yaml:"hat"`
	Squeeze     hat.Line  `json:"squeeze" yaml:"squeeze"`
	Shape       hat.Shape `json:"shape" yaml:"shape"`
	HatArea     float64   `json:"hat_area" yaml:"hat_area"`
	SqueezeArea float64   `json:"squeeze_area" yaml:"squeeze_area"`
}

// HatAt returns the hat value at x; x is assumed to lie in [Lx, Rx].
func (s Segment) HatAt(x float64) float64 { return s.Hat.Value(s.C, x) }

// SqueezeAt returns the squeeze value at x; x is assumed to lie in [Lx, Rx].
func (s Segment) SqueezeAt(x float64) float64 { return s.Squeeze.Value(s.C, x) }

// Width returns Rx - Lx.
func (s Segment) Width() float64 { return s.Rx - s.Lx }

// segment projects a live interval onto its finalized record.
func (iv *Interval) segment() Segment {
	return Segment{
		Lx: iv.Lx, Rx: iv.Rx, C: iv.C,
		Hat: iv.Hat, Squeeze: iv.Squeeze, Shape: iv.Shape,
		HatArea: iv.HatArea, SqueezeArea: iv.SqueezeArea,
	}
}

// ratio returns hat/squeeze, +Inf when the squeeze is empty.
func ratio(h, q float64) float64 {
	if q <= 0 {
		if h <= 0 {
			return math.NaN()
		}
		return math.Inf(1)
	}
	return h / q
}
