package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tinflex/envelope"
)

// LoadConfig reads settings from configPath, or from .tinflex.yaml in the
// working directory or $HOME when configPath is empty. TINFLEX_* variables
// override file values (refine.rho is TINFLEX_REFINE_RHO). A missing file
// is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("TINFLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".tinflex")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("preset", DefaultPreset)
	v.SetDefault("points", []float64{})
	v.SetDefault("c", []float64{})

	v.SetDefault("refine.rho", envelope.DefaultRho)
	v.SetDefault("refine.max_intervals", envelope.DefaultMaxIntervals)
	v.SetDefault("refine.max_iterations", envelope.DefaultMaxIterations)

	v.SetDefault("output.format", DefaultFormat)

	v.SetDefault("log.level", DefaultLogLevel)
}
