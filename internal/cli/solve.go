// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/conedual/dualize"
	"github.com/katalvlaran/conedual/dualopt"
	"github.com/katalvlaran/conedual/modelio"
	"github.com/katalvlaran/conedual/solver"
	"github.com/katalvlaran/conedual/solver/simplex"
)

func (a *app) newSolveCommand() *cobra.Command {
	var viaDual bool
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve an LP model with the bundled simplex",
		Long: `Solves a linear model and prints the status, objective value, variable
values and constraint duals. With --via-dual the model is dualized first and
the primal answer is read back from the dual solution; the status line then
reports the solver status of the dual model and names that model's size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd.OutOrStdout(), args[0], viaDual)
		},
	}
	cmd.Flags().BoolVar(&viaDual, "via-dual", false, "solve through the dual model")

	return cmd
}

func (a *app) runSolve(w io.Writer, path string, viaDual bool) error {
	m, err := modelio.ReadFile(path)
	if err != nil {
		return err
	}

	ctor := simplex.Constructor(append(a.cfg.SimplexOptions(), simplex.WithLogger(a.log))...)
	if viaDual {
		ctor = dualopt.NewFactory(ctor,
			dualopt.WithLogger(a.log),
			dualopt.WithOptions(dualize.Options{DualNames: a.cfg.DualNames()}))
	}
	opt, err := ctor()
	if err != nil {
		return err
	}
	if err := opt.SetModel(m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := opt.Optimize(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	status, about := opt.TerminationStatus(), ""
	if d, ok := opt.(*dualopt.DualOptimizer); ok {
		// the status describes the dual model, not m
		term := d.Termination()
		status = term.Status
		if term.Model != nil {
			about = fmt.Sprintf(" (dual model: %d variables, %d constraints)",
				term.Model.NumVariables(), term.Model.NumConstraints())
		}
	}
	label := a.paint(color.FgGreen, color.Bold)
	if status != solver.Optimal {
		label = a.paint(color.FgYellow, color.Bold)
	}
	fmt.Fprint(w, "status: ")
	label.Fprint(w, status)
	fmt.Fprintln(w, about)
	if status != solver.Optimal {
		return nil
	}

	obj, err := opt.ObjectiveValue()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "objective: %s\n", num(obj))

	head := a.paint(color.FgCyan)
	head.Fprintln(w, "variables:")
	for _, v := range m.Variables() {
		x, err := opt.PrimalValue(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s = %s\n", displayName(m.VariableName(v), "_v", int64(v)), num(x))
	}

	head.Fprintln(w, "duals:")
	for _, c := range m.Constraints() {
		y, err := opt.DualValue(c.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s = %s\n", displayName(c.Name, "_c", int64(c.ID)), nums(y))
	}

	return nil
}

func displayName(name, prefix string, id int64) string {
	if name != "" {
		return name
	}
	return prefix + strconv.FormatInt(id, 10)
}

// num prints x with 6 significant digits; values within 1e-9 of zero print
// as 0.
func num(x float64) string {
	if math.Abs(x) < 1e-9 {
		x = 0
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}

func nums(xs []float64) string {
	if len(xs) == 1 {
		return num(xs[0])
	}
	out := "["
	for i, x := range xs {
		if i > 0 {
			out += ", "
		}
		out += num(x)
	}
	return out + "]"
}
