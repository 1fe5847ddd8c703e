package hat

import (
	"github.com/katalvlaran/tinflex/transform"
)

// Kind tells which construction produced a Line.
type Kind uint8

const (
	// None is the identically zero function (no squeeze).
	None Kind = iota
	// TangentLeft is the tangent at the left endpoint.
	TangentLeft
	// TangentRight is the tangent at the right endpoint.
	TangentRight
	// Secant joins the two endpoints.
	Secant
)

var kindNames = [...]string{"none", "tangent-left", "tangent-right", "secant"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Shape is the curvature pattern of the transformed density on an interval.
type Shape uint8

const (
	// Degenerate marks a zero-width interval.
	Degenerate Shape = iota
	Concave
	Convex
	ConcaveConvex
	ConvexConcave
	// TailLeft is an interval whose left end is -Inf.
	TailLeft
	// TailRight is an interval whose right end is +Inf.
	TailRight
	// Irregular marks endpoint data inconsistent with its sign pattern.
	Irregular
)

// MarshalText renders the shape by name.
func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

var shapeNames = [...]string{
	"degenerate", "concave", "convex", "concave-convex", "convex-concave",
	"tail-left", "tail-right", "irregular",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Line is a straight line y = Y0 + Slope·(x - X0) in transformed space.
// X0 is always finite for Kind != None.
type Line struct {
	Kind  Kind    `json:"kind" yaml:"kind"`
	X0    float64 `json:"x0" yaml:"x0"`
	Y0    float64 `json:"y0" yaml:"y0"`
	Slope float64 `json:"slope" yaml:"slope"`
}

// At evaluates the line in transformed space.
func (ln Line) At(x float64) float64 {
	return ln.Y0 + ln.Slope*(x-ln.X0)
}

// Value evaluates T_c⁻¹(line(x)), the hat or squeeze of the density itself.
func (ln Line) Value(c, x float64) float64 {
	if ln.Kind == None {
		return 0
	}

	return transform.Inverse(c, ln.At(x))
}

// Pair is the outcome of building one interval.
type Pair struct {
	Hat         Line
	Squeeze     Line
	Shape       Shape
	HatArea     float64
	SqueezeArea float64
}

func tangentAt(kind Kind, x float64, p transform.Point) Line {
	return Line{Kind: kind, X0: x, Y0: p.T0, Slope: p.T1}
}
