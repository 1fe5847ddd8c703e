package density

import "github.com/cockroachdb/errors"

// Func is a scalar function of one variable.
type Func func(x float64) float64

// Density is the capability set consumed by the envelope builder.
//
//   - LogPDF: log f(x), may return -Inf where f vanishes.
//   - Deriv1: d/dx log f(x).
//   - Deriv2: d²/dx² log f(x).
//
// All three must be pure and deterministic.
type Density struct {
	LogPDF Func
	Deriv1 Func
	Deriv2 Func
}

// Preset bundles a density with a sensible initial partition.
type Preset struct {
	Name        string    // registry key
	Description string    // one-line human description
	Density     Density   // log-density capability set
	Points      []float64 // initial breakpoints, ascending
	C           []float64 // transform parameter per initial piece
}

var (
	// ErrNilFunc indicates that one of the three capabilities is missing.
	ErrNilFunc = errors.New("density: nil function in capability set")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("density: unknown preset")
)

// Validate checks that every capability is present.
func (d Density) Validate() error {
	if d.LogPDF == nil || d.Deriv1 == nil || d.Deriv2 == nil {
		return ErrNilFunc
	}

	return nil
}

// Eval returns (log f, (log f)', (log f)'') at x.
func (d Density) Eval(x float64) (f0, f1, f2 float64) {
	return d.LogPDF(x), d.Deriv1(x), d.Deriv2(x)
}
