package density

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// DefaultC is the transform parameter used by the bounded presets.
const DefaultC = 1.5

// presets is the registry, keyed by name.
var presets = map[string]func() Preset{
	"normal": func() Preset {
		return Preset{
			Name:        "normal",
			Description: "standard normal N(0,1)",
			Density:     Normal(0, 1),
			Points:      Grid(-3, 3, 5),
			C:           Uniform(DefaultC, 4),
		}
	},
	"quartic": func() Preset {
		return Preset{
			Name:        "quartic",
			Description: "bimodal log f(x) = -x^4 + 5x^2 - 4",
			Density:     Quartic(),
			Points:      Grid(-3, 3, 5),
			C:           Uniform(DefaultC, 4),
		}
	},
	"cauchy": func() Preset {
		return Preset{
			Name:        "cauchy",
			Description: "standard Cauchy on the real line",
			Density:     Cauchy(0, 1),
			Points:      []float64{math.Inf(-1), -1, 0, 1, math.Inf(1)},
			C:           Uniform(-0.5, 4),
		}
	},
}

// Lookup returns a fresh copy of the named preset.
func Lookup(name string) (Preset, error) {
	mk, ok := presets[name]
	if !ok {
		return Preset{}, errors.Wrapf(ErrUnknownPreset, "%q", name)
	}

	return mk(), nil
}

// Names returns the registered preset names in ascending order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Presets returns all presets ordered by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, name := range Names() {
		out = append(out, presets[name]())
	}

	return out
}

// Grid returns n equally spaced points covering [lo, hi].
func Grid(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Uniform returns n copies of c.
func Uniform(c float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = c
	}

	return out
}
