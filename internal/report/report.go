// Package report renders envelopes and presets for the command line, as a
// go-pretty table, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/envelope"
	"github.com/katalvlaran/tinflex/hat"
)

// Supported formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned for a format other than the three above.
var ErrUnknownFormat = errors.New("report: unknown format")

// number is a float that survives JSON: non-finite values are written as
// the strings "+Inf", "-Inf" and "NaN".
type number float64

// MarshalJSON implements json.Marshaler.
func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte(strconv.Quote(formatFloat(f))), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// MarshalYAML keeps YAML's native .inf/.nan spelling.
func (n number) MarshalYAML() (interface{}, error) { return float64(n), nil }

type lineDoc struct {
	Kind  string `json:"kind" yaml:"kind"`
	X0    number `json:"x0" yaml:"x0"`
	Y0    number `json:"y0" yaml:"y0"`
	Slope number `json:"slope" yaml:"slope"`
}

type segmentDoc struct {
	Lx          number  `json:"lx" yaml:"lx"`
	Rx          number  `json:"rx" yaml:"rx"`
	C           number  `json:"c" yaml:"c"`
	Shape       string  `json:"shape" yaml:"shape"`
	Hat         lineDoc `json:"hat" yaml:"hat"`
	Squeeze     lineDoc `json:"squeeze" yaml:"squeeze"`
	HatArea     number  `json:"hat_area" yaml:"hat_area"`
	SqueezeArea number  `json:"squeeze_area" yaml:"squeeze_area"`
}

type summaryDoc struct {
	Reason      string `json:"reason" yaml:"reason"`
	Iterations  int    `json:"iterations" yaml:"iterations"`
	Intervals   int    `json:"intervals" yaml:"intervals"`
	Rho         number `json:"rho" yaml:"rho"`
	Ratio       number `json:"ratio" yaml:"ratio"`
	HatArea     number `json:"hat_area" yaml:"hat_area"`
	SqueezeArea number `json:"squeeze_area" yaml:"squeeze_area"`
}

type envelopeDoc struct {
	Summary  summaryDoc   `json:"summary" yaml:"summary"`
	Segments []segmentDoc `json:"segments" yaml:"segments"`
}

type presetDoc struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Points      []number `json:"points" yaml:"points"`
	C           []number `json:"c" yaml:"c"`
}

func toLine(ln hat.Line) lineDoc {
	return lineDoc{Kind: ln.Kind.String(), X0: number(ln.X0), Y0: number(ln.Y0), Slope: number(ln.Slope)}
}

func toNumbers(xs []float64) []number {
	out := make([]number, len(xs))
	for i, x := range xs {
		out[i] = number(x)
	}
	return out
}

func document(env *envelope.Envelope) envelopeDoc {
	doc := envelopeDoc{
		Summary: summaryDoc{
			Reason:      env.Reason.String(),
			Iterations:  env.Iterations,
			Intervals:   env.Len(),
			Rho:         number(env.Rho),
			Ratio:       number(env.Ratio()),
			HatArea:     number(env.HatArea),
			SqueezeArea: number(env.SqueezeArea),
		},
		Segments: make([]segmentDoc, 0, env.Len()),
	}
	for _, s := range env.Segments {
		doc.Segments = append(doc.Segments, segmentDoc{
			Lx: number(s.Lx), Rx: number(s.Rx), C: number(s.C),
			Shape:   s.Shape.String(),
			Hat:     toLine(s.Hat),
			Squeeze: toLine(s.Squeeze),
			HatArea: number(s.HatArea), SqueezeArea: number(s.SqueezeArea),
		})
	}

	return doc
}

// Envelope writes env to w in the given format.
func Envelope(w io.Writer, env *envelope.Envelope, format string) error {
	switch format {
	case FormatTable:
		_, err := io.WriteString(w, EnvelopeTable(env)+"\n")
		return err
	case FormatJSON:
		return writeJSON(w, document(env))
	case FormatYAML:
		return writeYAML(w, document(env))
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// Presets writes the preset catalogue to w in the given format.
func Presets(w io.Writer, presets []density.Preset, format string) error {
	docs := make([]presetDoc, 0, len(presets))
	for _, p := range presets {
		docs = append(docs, presetDoc{
			Name: p.Name, Description: p.Description,
			Points: toNumbers(p.Points), C: toNumbers(p.C),
		})
	}

	switch format {
	case FormatTable:
		_, err := io.WriteString(w, PresetsTable(presets)+"\n")
		return err
	case FormatJSON:
		return writeJSON(w, docs)
	case FormatYAML:
		return writeYAML(w, docs)
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// EnvelopeTable renders a summary line followed by one row per segment.
func EnvelopeTable(env *envelope.Envelope) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "lx", "rx", "c", "shape", "hat", "squeeze", "hat area", "squeeze area"})
	for i, s := range env.Segments {
		tbl.AppendRow(table.Row{
			i, formatFloat(s.Lx), formatFloat(s.Rx), formatFloat(s.C), s.Shape,
			s.Hat.Kind, s.Squeeze.Kind, formatFloat(s.HatArea), formatFloat(s.SqueezeArea),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d segments", env.Len())})

	summary := fmt.Sprintf("reason: %s | iterations: %d | ratio: %s (rho %s) | hat: %s | squeeze: %s",
		env.Reason, env.Iterations, formatFloat(env.Ratio()), formatFloat(env.Rho),
		formatFloat(env.HatArea), formatFloat(env.SqueezeArea))

	return summary + "\n\n" + tbl.Render()
}

// PresetsTable renders one row per preset.
func PresetsTable(presets []density.Preset) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"name", "description", "points", "c"})
	for _, p := range presets {
		tbl.AppendRow(table.Row{p.Name, p.Description, formatList(p.Points), formatList(p.C)})
	}

	return tbl.Render()
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	return tbl
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encode json")
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "encode yaml")
}

func formatFloat(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}

func formatList(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatFloat(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
