// SPDX-License-Identifier: MIT

// Package config loads CLI settings from conedual.yaml, CONEDUAL_* environment
// variables and bound command-line flags, in viper's precedence order.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/conedual/dualize"
	"github.com/katalvlaran/conedual/modelio"
	"github.com/katalvlaran/conedual/solver/simplex"
)

// EnvPrefix is prepended to every environment key: names.variable is read
// from CONEDUAL_NAMES_VARIABLE.
const EnvPrefix = "CONEDUAL"

// ErrInvalid marks a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full CLI configuration.
type Config struct {
	Format  string       `mapstructure:"format"`
	Verbose bool         `mapstructure:"verbose"`
	NoColor bool         `mapstructure:"no_color"`
	Workers int          `mapstructure:"workers"`
	Names   NamesConfig  `mapstructure:"names"`
	Solver  SolverConfig `mapstructure:"solver"`
}

// NamesConfig holds the dual naming prefixes.
type NamesConfig struct {
	Variable   string `mapstructure:"variable"`
	Constraint string `mapstructure:"constraint"`
	Parameter  string `mapstructure:"parameter"`
	QuadSlack  string `mapstructure:"quad_slack"`
}

// SolverConfig tunes the reference simplex.
type SolverConfig struct {
	Tolerance      float64 `mapstructure:"tolerance"`
	IterationLimit int     `mapstructure:"iteration_limit"`
}

// SetDefaults registers every key so that environment variables are seen by
// Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", string(modelio.YAML))
	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)
	v.SetDefault("workers", 4)
	v.SetDefault("names.variable", "")
	v.SetDefault("names.constraint", "")
	v.SetDefault("names.parameter", "")
	v.SetDefault("names.quad_slack", "")
	v.SetDefault("solver.tolerance", simplex.DefaultTolerance)
	v.SetDefault("solver.iteration_limit", simplex.DefaultIterationLimit)
}

// Load reads the configuration into v. With file set, that file must exist;
// otherwise conedual.yaml is looked up in dirs (default ".") and may be
// missing.
func Load(v *viper.Viper, file string, dirs ...string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("conedual")
		v.SetConfigType("yaml")
		if len(dirs) == 0 {
			dirs = []string{"."}
		}
		for _, d := range dirs {
			v.AddConfigPath(d)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value domains.
func (c *Config) Validate() error {
	if _, err := modelio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d: %w", c.Workers, ErrInvalid)
	}
	if !(c.Solver.Tolerance > 0) {
		return fmt.Errorf("solver.tolerance must be > 0, got %g: %w", c.Solver.Tolerance, ErrInvalid)
	}
	if c.Solver.IterationLimit < 1 {
		return fmt.Errorf("solver.iteration_limit must be >= 1, got %d: %w", c.Solver.IterationLimit, ErrInvalid)
	}
	return nil
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() modelio.Format {
	f, _ := modelio.ParseFormat(c.Format)
	return f
}

// DualNames converts the names section.
func (c *Config) DualNames() dualize.DualNames {
	return dualize.DualNames{
		VariablePrefix:   c.Names.Variable,
		ConstraintPrefix: c.Names.Constraint,
		ParameterPrefix:  c.Names.Parameter,
		QuadSlackPrefix:  c.Names.QuadSlack,
	}
}

// SimplexOptions converts the solver section.
func (c *Config) SimplexOptions() []simplex.Option {
	return []simplex.Option{
		simplex.WithTolerance(c.Solver.Tolerance),
		simplex.WithIterationLimit(c.Solver.IterationLimit),
	}
}
