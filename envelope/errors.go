package envelope

import "github.com/cockroachdb/errors"

// Input validation. Returned before any interval is built.
var (
	// ErrTooFewPoints indicates fewer than two breakpoints.
	ErrTooFewPoints = errors.New("envelope: need at least two breakpoints")

	// ErrNonFinitePoint indicates a NaN breakpoint, or an infinite one that
	// is not at either end of the domain.
	ErrNonFinitePoint = errors.New("envelope: interior breakpoints must be finite")

	// ErrLengthMismatch indicates len(cs) != len(points)-1.
	ErrLengthMismatch = errors.New("envelope: need one transform parameter per piece")

	// ErrTailParameter indicates an unbounded end whose transform parameter
	// is <= -1; the hat would not be integrable there.
	ErrTailParameter = errors.New("envelope: transform parameter on an unbounded end must exceed -1")

	// ErrBadParameter indicates a NaN or infinite transform parameter.
	ErrBadParameter = errors.New("envelope: transform parameter must be finite")

	// ErrBadDensity indicates an incomplete density capability set.
	ErrBadDensity = errors.New("envelope: density must provide log-density and two derivatives")

	// ErrBadOption indicates nonsensical Options (Rho < 1 or NaN, MaxIntervals < 1, MaxIterations < 0).
	ErrBadOption = errors.New("envelope: invalid option")
)

// Invariant violations found while evaluating or splitting an interval.
var (
	// ErrInvertedInterval indicates lx > rx (or a NaN end) at evaluation time.
	ErrInvertedInterval = errors.New("envelope: interval has lx > rx")

	// ErrNonFiniteArea indicates a hat or squeeze area that is Inf or NaN.
	ErrNonFiniteArea = errors.New("envelope: non-finite hat or squeeze area")

	// ErrAreaOrder indicates a squeeze area above the hat area beyond rounding.
	ErrAreaOrder = errors.New("envelope: squeeze area exceeds hat area")

	// ErrMidpointOrder indicates that the arctangent bracket came out
	// reversed (unsorted input flagged as sorted, or NaN).
	ErrMidpointOrder = errors.New("envelope: midpoint bracket out of order")
)
