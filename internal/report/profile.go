package report

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/envelope"
)

// Sample is the squeeze, the density and the hat at one abscissa.
type Sample struct {
	X       number `json:"x" yaml:"x"`
	Squeeze number `json:"squeeze" yaml:"squeeze"`
	F       number `json:"f" yaml:"f"`
	Hat     number `json:"hat" yaml:"hat"`
}

// Profile evaluates env and exp(logPDF) at every x.
func Profile(env *envelope.Envelope, logPDF density.Func, xs []float64) []Sample {
	out := make([]Sample, len(xs))
	for i, x := range xs {
		out[i] = Sample{
			X:       number(x),
			Squeeze: number(env.SqueezeAt(x)),
			F:       number(math.Exp(logPDF(x))),
			Hat:     number(env.HatAt(x)),
		}
	}

	return out
}

// Samples writes a profile to w in the given format.
func Samples(w io.Writer, samples []Sample, format string) error {
	switch format {
	case FormatTable:
		tbl := newTable()
		tbl.AppendHeader(table.Row{"x", "squeeze", "f", "hat"})
		for _, s := range samples {
			tbl.AppendRow(table.Row{
				formatFloat(float64(s.X)), formatFloat(float64(s.Squeeze)),
				formatFloat(float64(s.F)), formatFloat(float64(s.Hat)),
			})
		}
		_, err := io.WriteString(w, tbl.Render()+"\n")
		return err
	case FormatJSON:
		return writeJSON(w, samples)
	case FormatYAML:
		return writeYAML(w, samples)
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}
