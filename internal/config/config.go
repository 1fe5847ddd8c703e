// Package config loads tinflex settings from a YAML file, TINFLEX_*
// environment variables and built-in defaults, in that order of precedence
// below explicit command-line flags.
package config

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/envelope"
	"github.com/katalvlaran/tinflex/internal/report"
)

// Output formats understood by the report package.
const (
	FormatTable = report.FormatTable
	FormatJSON  = report.FormatJSON
	FormatYAML  = report.FormatYAML
)

// Defaults.
const (
	DefaultPreset   = "normal"
	DefaultFormat   = FormatTable
	DefaultLogLevel = "info"
)

// Validation errors.
var (
	ErrInvalidRho           = errors.New("config: refine.rho must be a number >= 1")
	ErrInvalidMaxIntervals  = errors.New("config: refine.max_intervals must be >= 1")
	ErrInvalidMaxIterations = errors.New("config: refine.max_iterations must be >= 0")
	ErrInvalidFormat        = errors.New("config: output.format must be table, json or yaml")
	ErrInvalidLogLevel      = errors.New("config: unknown log.level")
	ErrParameterCount       = errors.New("config: c needs one value, or one per piece")
)

// Config is the top-level configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Preset string       `mapstructure:"preset"`
	Points []float64    `mapstructure:"points"`
	C      []float64    `mapstructure:"c"`
	Refine RefineConfig `mapstructure:"refine"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// RefineConfig mirrors envelope.Options.
type RefineConfig struct {
	Rho           float64 `mapstructure:"rho"`
	MaxIntervals  int     `mapstructure:"max_intervals"`
	MaxIterations int     `mapstructure:"max_iterations"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Validate checks every field; the zero value of an optional field is
// accepted and means "use the default".
func (c *Config) Validate() error {
	if math.IsNaN(c.Refine.Rho) || (c.Refine.Rho != 0 && c.Refine.Rho < 1) {
		return errors.Wrapf(ErrInvalidRho, "got %g", c.Refine.Rho)
	}
	if c.Refine.MaxIntervals < 0 {
		return errors.Wrapf(ErrInvalidMaxIntervals, "got %d", c.Refine.MaxIntervals)
	}
	if c.Refine.MaxIterations < 0 {
		return errors.Wrapf(ErrInvalidMaxIterations, "got %d", c.Refine.MaxIterations)
	}

	switch c.Output.Format {
	case "", FormatTable, FormatJSON, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalidFormat, "got %q", c.Output.Format)
	}

	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			return errors.Wrapf(ErrInvalidLogLevel, "%q", c.Log.Level)
		}
	}

	return nil
}

// Options converts the refine section. A zero Rho or MaxIntervals falls
// back to the envelope default; MaxIterations is taken as given (0 only
// seeds).
func (c *Config) Options(log *zap.Logger) envelope.Options {
	opts := envelope.DefaultOptions()
	if c.Refine.Rho != 0 {
		opts.Rho = c.Refine.Rho
	}
	if c.Refine.MaxIntervals != 0 {
		opts.MaxIntervals = c.Refine.MaxIntervals
	}
	opts.MaxIterations = c.Refine.MaxIterations
	opts.Logger = log

	return opts
}

// Level returns the configured log level, info when unset.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Resolve returns the named preset with Points and C applied on top.
// A single C value is broadcast to every piece.
func (c *Config) Resolve() (density.Preset, error) {
	name := c.Preset
	if name == "" {
		name = DefaultPreset
	}
	p, err := density.Lookup(name)
	if err != nil {
		return density.Preset{}, err
	}

	pieces := func() int { return max(len(p.Points)-1, 0) }
	if len(c.Points) > 0 {
		p.Points = append([]float64(nil), c.Points...)
		if len(c.C) == 0 {
			p.C = density.Uniform(p.C[0], pieces())
		}
	}
	switch {
	case len(c.C) == 0:
	case len(c.C) == 1:
		p.C = density.Uniform(c.C[0], pieces())
	case len(c.C) == pieces():
		p.C = append([]float64(nil), c.C...)
	default:
		return density.Preset{}, errors.Wrapf(ErrParameterCount, "%d values for %d breakpoints", len(c.C), len(p.Points))
	}

	return p, nil
}
