package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/envelope"
	"github.com/katalvlaran/tinflex/internal/report"
)

func build(t *testing.T, name string) *envelope.Envelope {
	t.Helper()
	p, err := density.Lookup(name)
	require.NoError(t, err)
	env, err := envelope.Build(p.Density, p.C, p.Points, envelope.DefaultOptions())
	require.NoError(t, err)

	return env
}

func TestEnvelope_Table(t *testing.T) {
	env := build(t, "normal")
	var buf bytes.Buffer
	require.NoError(t, report.Envelope(&buf, env, report.FormatTable))

	out := buf.String()
	assert.Contains(t, out, "reason: converged")
	assert.Contains(t, out, "SQUEEZE AREA")
	assert.Contains(t, out, "Total:")
}

// TestEnvelope_JSONInfinity checks that unbounded segments encode.
func TestEnvelope_JSONInfinity(t *testing.T) {
	env := build(t, "cauchy")
	var buf bytes.Buffer
	require.NoError(t, report.Envelope(&buf, env, report.FormatJSON))

	var doc struct {
		Summary struct {
			Reason    string  `json:"reason"`
			Intervals int     `json:"intervals"`
			Ratio     float64 `json:"ratio"`
		} `json:"summary"`
		Segments []struct {
			Lx    json.RawMessage `json:"lx"`
			Rx    json.RawMessage `json:"rx"`
			Shape string          `json:"shape"`
			Hat   struct {
				Kind string `json:"kind"`
			} `json:"hat"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "converged", doc.Summary.Reason)
	assert.Equal(t, env.Len(), doc.Summary.Intervals)
	require.Len(t, doc.Segments, env.Len())
	assert.JSONEq(t, `"-Inf"`, string(doc.Segments[0].Lx))
	assert.JSONEq(t, `"+Inf"`, string(doc.Segments[len(doc.Segments)-1].Rx))
	assert.Equal(t, "tail-left", doc.Segments[0].Shape)
	assert.Equal(t, "tangent-right", doc.Segments[0].Hat.Kind)
}

func TestEnvelope_YAML(t *testing.T) {
	env := build(t, "cauchy")
	var buf bytes.Buffer
	require.NoError(t, report.Envelope(&buf, env, report.FormatYAML))

	var doc struct {
		Summary struct {
			Reason string `yaml:"reason"`
		} `yaml:"summary"`
		Segments []struct {
			Lx float64 `yaml:"lx"`
			Rx float64 `yaml:"rx"`
		} `yaml:"segments"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "converged", doc.Summary.Reason)
	require.Len(t, doc.Segments, env.Len())
	assert.True(t, math.IsInf(doc.Segments[0].Lx, -1))
	assert.True(t, math.IsInf(doc.Segments[len(doc.Segments)-1].Rx, 1))
}

func TestPresets_AllFormats(t *testing.T) {
	presets := density.Presets()

	var buf bytes.Buffer
	require.NoError(t, report.Presets(&buf, presets, report.FormatTable))
	for _, name := range density.Names() {
		assert.Contains(t, buf.String(), name)
	}
	assert.Contains(t, buf.String(), "-Inf")

	buf.Reset()
	require.NoError(t, report.Presets(&buf, presets, report.FormatJSON))
	var docs []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	assert.Len(t, docs, len(presets))

	buf.Reset()
	require.NoError(t, report.Presets(&buf, presets, report.FormatYAML))
	assert.Contains(t, buf.String(), "-.inf")
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := report.Envelope(&buf, &envelope.Envelope{}, "xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	err = report.Presets(&buf, nil, "csv")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestProfile_Bounds(t *testing.T) {
	p, err := density.Lookup("normal")
	require.NoError(t, err)
	env, err := envelope.Build(p.Density, p.C, p.Points, envelope.DefaultOptions())
	require.NoError(t, err)

	samples := report.Profile(env, p.Density.LogPDF, density.Grid(-3, 3, 13))
	require.Len(t, samples, 13)
	for _, s := range samples {
		assert.LessOrEqual(t, float64(s.Squeeze), float64(s.F)*(1+1e-10))
		assert.GreaterOrEqual(t, float64(s.Hat), float64(s.F)*(1-1e-10))
	}

	var buf bytes.Buffer
	require.NoError(t, report.Samples(&buf, samples, report.FormatTable))
	assert.Contains(t, buf.String(), "SQUEEZE")

	buf.Reset()
	require.NoError(t, report.Samples(&buf, samples, report.FormatJSON))
	var docs []map[string]float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 13)
	assert.Equal(t, -3.0, docs[0]["x"])

	require.ErrorIs(t, report.Samples(&buf, samples, "csv"), report.ErrUnknownFormat)
}
