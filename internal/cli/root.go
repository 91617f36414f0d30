// SPDX-License-Identifier: MIT

// Package cli implements the conedual command tree.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/conedual/internal/config"
)

// app is the state shared by the commands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	ownLog  bool
}

// Option customizes the root command.
type Option func(*app)

// WithLogger makes every command log to l instead of a logger built from the
// configuration. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("cli: WithLogger(nil)")
	}
	return func(a *app) { a.log = l }
}

// WithViper loads configuration through v. Panics on nil.
func WithViper(v *viper.Viper) Option {
	if v == nil {
		panic("cli: WithViper(nil)")
	}
	return func(a *app) { a.v = v }
}

// NewRootCommand creates the conedual command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{v: viper.New()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "conedual",
		Short: "Dualize conic optimization models",
		Long: `conedual builds the conic dual of a model stored as YAML or TOML.

Every primal constraint gets one dual variable per component, every primal
variable one stationarity constraint, and the dual objective follows the
standard conic duality formulas. Models can also be solved with the bundled
LP simplex, either directly or through their dual.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ownLog && a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./conedual.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.Bool("no-color", false, "disable colored output")
	pf.StringP("format", "f", "yaml", "output format: yaml or toml")
	pf.Int("workers", 4, "models dualized concurrently")
	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("no_color", pf.Lookup("no-color"))
	_ = a.v.BindPFlag("format", pf.Lookup("format"))
	_ = a.v.BindPFlag("workers", pf.Lookup("workers"))

	root.AddCommand(a.newDualizeCommand())
	root.AddCommand(a.newSolveCommand())
	root.AddCommand(a.newConesCommand())
	root.AddCommand(a.newGenerateCommand())

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		zc := zap.NewProductionConfig()
		if cfg.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if a.log, err = zc.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.ownLog = true
	}

	return nil
}

// paint returns a color that honors no_color.
func (a *app) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if a.cfg != nil && a.cfg.NoColor {
		c.DisableColor()
	}
	return c
}
