// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/conedual/dualize"
	"github.com/katalvlaran/conedual/modelio"
)

type dualizeFlags struct {
	outDir          string
	ignoreObjective bool
	params          []string
}

func (a *app) newDualizeCommand() *cobra.Command {
	var fl dualizeFlags
	cmd := &cobra.Command{
		Use:   "dualize FILE...",
		Short: "Write the dual of each model",
		Long: `Reads each model (.yaml, .yml or .toml), builds its dual and writes it.

Without --out-dir the duals go to stdout; with several inputs each one is
preceded by a "# FILE" comment line. With --out-dir, a.yaml is written as
a.dual.<format>.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDualize(cmd, args, fl)
		},
	}
	cmd.Flags().StringVarP(&fl.outDir, "out-dir", "o", "", "write duals into this directory")
	cmd.Flags().BoolVar(&fl.ignoreObjective, "ignore-objective", false, "dualize as a feasibility problem")
	cmd.Flags().StringSliceVarP(&fl.params, "param", "p", nil, "treat these variables as parameters")

	return cmd
}

func (a *app) runDualize(cmd *cobra.Command, paths []string, fl dualizeFlags) error {
	dz := dualize.New(dualize.WithLogger(a.log))
	format := a.cfg.OutputFormat()
	out := make([]bytes.Buffer, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dp, err := a.dualizeFile(dz, path, fl)
			if err != nil {
				return err
			}
			if fl.outDir != "" {
				return modelio.WriteFile(filepath.Join(fl.outDir, dualFileName(path, format)), dp.Model)
			}
			return modelio.Encode(&out[i], dp.Model, format)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if fl.outDir != "" {
		return nil
	}

	w := cmd.OutOrStdout()
	for i := range out {
		if len(paths) > 1 {
			fmt.Fprintf(w, "# %s\n", paths[i])
		}
		if _, err := out[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) dualizeFile(dz *dualize.Dualizer, path string, fl dualizeFlags) (*dualize.DualProblem, error) {
	m, err := modelio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := dualize.Options{DualNames: a.cfg.DualNames(), IgnoreObjective: fl.ignoreObjective}
	for _, name := range fl.params {
		v, ok := m.VariableByName(name)
		if !ok {
			return nil, fmt.Errorf("%s: parameter %q: %w", path, name, modelio.ErrUnknownName)
		}
		opts.VariableParameters = append(opts.VariableParameters, v)
	}

	dp, err := dz.Dualize(m, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Info("dualized",
		zap.String("file", path),
		zap.Int("primal_constraints", m.NumConstraints()),
		zap.Int("dual_variables", dp.Model.NumVariables()),
		zap.Int("dual_constraints", dp.Model.NumConstraints()))

	return dp, nil
}

// dualFileName maps dir/a.yaml to a.dual.<format>.
func dualFileName(path string, f modelio.Format) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".dual." + string(f)
}
