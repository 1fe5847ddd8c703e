package transform

import "math"

// Point holds the transformed density at one abscissa: T_c(f(x)) and its
// first two derivatives with respect to x.
type Point struct {
	T0 float64 // T_c(f(x))
	T1 float64 // d/dx T_c(f(x))
	T2 float64 // d²/dx² T_c(f(x))
}

// Apply maps the log-density triple (f0, f1, f2) at some x to the
// transformed triple under T_c.
//
// For c ≠ 0, with t = sign(c)·exp(c·f0):
//
//	T1 = c·t·f1
//	T2 = c·t·(c·f1² + f2)
//
// For c = 0 the log-density is already the transformed density.
func Apply(c, f0, f1, f2 float64) Point {
	if c == 0 {
		return Point{T0: f0, T1: f1, T2: f2}
	}
	t := math.Copysign(math.Exp(c*f0), c)

	return Point{
		T0: t,
		T1: c * t * f1,
		T2: c * t * (c*f1*f1 + f2),
	}
}

// Unbounded returns the endpoint marker for an infinite breakpoint. The
// density is taken to vanish there, so T0 is T_c(0); derivatives are
// undefined.
func Unbounded(c float64) Point {
	return Point{T0: Forward(c, 0), T1: math.NaN(), T2: math.NaN()}
}

// Forward returns T_c(y) for y ≥ 0.
func Forward(c, y float64) float64 {
	switch {
	case c == 0:
		return math.Log(y)
	case c > 0:
		return math.Pow(y, c)
	default:
		return -math.Pow(y, c)
	}
}

// Inverse returns T_c⁻¹(y), extended to the whole real line:
// for c > 0 values y ≤ 0 map to 0; for c < 0 values y ≥ 0 map to +Inf.
func Inverse(c, y float64) float64 {
	switch {
	case c == 0:
		return math.Exp(y)
	case c > 0:
		if y <= 0 {
			return 0
		}
		return math.Pow(y, 1/c)
	default:
		if y >= 0 {
			return math.Inf(1)
		}
		return math.Pow(-y, 1/c)
	}
}

// Valid reports whether c is usable as a transform parameter.
func Valid(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0)
}

// TailIntegrable reports whether T_c⁻¹ of a line can have finite area on
// an unbounded piece. This holds exactly for c > -1.
func TailIntegrable(c float64) bool {
	return c > -1
}

// Finite reports whether all three components of p are finite.
func (p Point) Finite() bool {
	return isFinite(p.T0) && isFinite(p.T1) && isFinite(p.T2)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
