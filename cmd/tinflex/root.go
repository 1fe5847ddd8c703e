package main

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tinflex/density"
	"github.com/katalvlaran/tinflex/envelope"
	"github.com/katalvlaran/tinflex/internal/config"
	"github.com/katalvlaran/tinflex/internal/report"
)

// version is overridden at link time.
var version = "dev"

// cli carries state shared by the subcommands of one invocation.
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "tinflex",
		Short: "Adaptive hat/squeeze envelopes for transformed density rejection",
		Long: `tinflex refines piecewise hat and squeeze functions for a density
until the ratio of hat area to squeeze area drops below rho.

Settings come from flags, then TINFLEX_* environment variables, then
.tinflex.yaml in the working or home directory, then built-in defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: .tinflex.yaml in . or $HOME)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log every refinement pass")
	root.PersistentFlags().StringP("format", "o", config.DefaultFormat, "output format: table, json or yaml")

	root.AddCommand(c.buildCmd(), c.evalCmd(), c.presetsCmd(), versionCmd())

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	if err := overrideFromFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())
	if c.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	c.logger, err = zcfg.Build()
	if err != nil {
		return errors.Wrap(err, "initialize logger")
	}

	return nil
}

// overrideFromFlags copies every flag the user set onto cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("format") {
		cfg.Output.Format, err = flags.GetString("format")
	}
	if err == nil && flags.Changed("preset") {
		cfg.Preset, err = flags.GetString("preset")
	}
	if err == nil && flags.Changed("points") {
		cfg.Points, err = flags.GetFloat64Slice("points")
	}
	if err == nil && flags.Changed("c") {
		cfg.C, err = flags.GetFloat64Slice("c")
	}
	if err == nil && flags.Changed("rho") {
		cfg.Refine.Rho, err = flags.GetFloat64("rho")
	}
	if err == nil && flags.Changed("max-intervals") {
		cfg.Refine.MaxIntervals, err = flags.GetInt("max-intervals")
	}
	if err == nil && flags.Changed("max-iterations") {
		cfg.Refine.MaxIterations, err = flags.GetInt("max-iterations")
	}

	return err
}

// build resolves the configured preset and refines its envelope.
func (c *cli) build() (*envelope.Envelope, density.Preset, error) {
	p, err := c.cfg.Resolve()
	if err != nil {
		return nil, p, err
	}
	c.logger.Debug("building envelope",
		zap.String("preset", p.Name),
		zap.Float64s("points", p.Points),
		zap.Float64s("c", p.C))

	env, err := envelope.Build(p.Density, p.C, p.Points, c.cfg.Options(c.logger))
	if err != nil {
		return nil, p, errors.Wrapf(err, "build %s", p.Name)
	}

	return env, p, nil
}

// refineFlags registers the flags shared by build and eval.
func refineFlags(cmd *cobra.Command) {
	defaults := envelope.DefaultOptions()
	cmd.Flags().String("preset", config.DefaultPreset, "density preset")
	cmd.Flags().Float64Slice("points", nil, "breakpoints, overriding the preset's")
	cmd.Flags().Float64Slice("c", nil, "transform parameter(s), one or one per piece")
	cmd.Flags().Float64("rho", defaults.Rho, "target hat/squeeze area ratio")
	cmd.Flags().Int("max-intervals", defaults.MaxIntervals, "interval budget")
	cmd.Flags().Int("max-iterations", defaults.MaxIterations, "refinement pass budget")
}

func (c *cli) buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an envelope for a preset density",
		Long: `Builds an envelope for one of the built-in densities (see "tinflex presets").

The preset's breakpoints and transform parameters can be overridden:
a single --c value applies to every piece. Use -inf/inf for unbounded ends.

Example:
  tinflex build --preset cauchy --rho 1.05 -o json
  tinflex build --preset normal --points=-4,-1,0,1,4 --c 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, _, err := c.build()
			if err != nil {
				return err
			}
			return report.Envelope(cmd.OutOrStdout(), env, c.cfg.Output.Format)
		},
	}
	refineFlags(cmd)

	return cmd
}

// defaultSpan is the half-width sampled on an unbounded side by eval.
const defaultSpan = 10

func (c *cli) evalCmd() *cobra.Command {
	var (
		lo, hi float64
		n      int
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Sample squeeze, density and hat on an even grid",
		Long: `Builds an envelope like "tinflex build" and prints squeeze <= f <= hat
at n evenly spaced points. Without --lo/--hi the grid spans the domain,
cut to [-10, 10] on unbounded sides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 2 {
				return errors.Newf("eval: --n must be at least 2, got %d", n)
			}
			env, p, err := c.build()
			if err != nil {
				return err
			}

			a, b := env.Domain()
			if !cmd.Flags().Changed("lo") {
				lo = math.Max(a, -defaultSpan)
			}
			if !cmd.Flags().Changed("hi") {
				hi = math.Min(b, defaultSpan)
			}
			if !(lo < hi) {
				return errors.Newf("eval: empty range [%g, %g]", lo, hi)
			}

			samples := report.Profile(env, p.Density.LogPDF, density.Grid(lo, hi, n))
			return report.Samples(cmd.OutOrStdout(), samples, c.cfg.Output.Format)
		},
	}
	refineFlags(cmd)
	cmd.Flags().Float64Var(&lo, "lo", 0, "left end of the grid")
	cmd.Flags().Float64Var(&hi, "hi", 0, "right end of the grid")
	cmd.Flags().IntVar(&n, "n", 11, "number of grid points")

	return cmd
}

func (c *cli) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in densities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.Presets(cmd.OutOrStdout(), density.Presets(), c.cfg.Output.Format)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// skip config loading
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tinflex", version)
		},
	}
}
