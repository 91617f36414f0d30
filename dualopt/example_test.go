// SPDX-License-Identifier: MIT
package dualopt_test

import (
	"fmt"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/dualopt"
	"github.com/katalvlaran/conedual/model"
	"github.com/katalvlaran/conedual/solver/simplex"
)

// ExampleDualOptimizer solves  min x + 2y  s.t.  x + y ≥ 1, x, y ≥ 0
// through its dual and reads the primal answer back.
func ExampleDualOptimizer() {
	m := model.NewModel()
	xs := m.AddVariables("x", "y")
	f, _ := model.NewScalarAffine([]float64{1, 1}, xs, 0)
	c, _ := m.AddConstraint("cover", f, cone.NewGreaterThan(1))
	_, _ = m.AddConstraint("pos", model.VectorOfVariables{Vars: xs}, cone.NewNonnegatives(2))
	obj, _ := model.NewScalarAffine([]float64{1, 2}, xs, 0)
	_ = m.SetObjective(model.Minimize, obj)

	opt := dualopt.New(simplex.New())
	if err := opt.SetModel(m); err != nil {
		fmt.Println(err)
		return
	}
	if err := opt.Optimize(); err != nil {
		fmt.Println(err)
		return
	}

	x, _ := opt.PrimalValue(xs[0])
	dual, _ := opt.DualValue(c)
	val, _ := opt.ObjectiveValue()
	fmt.Println(opt.TerminationStatus())
	fmt.Printf("x=%.2f\n", x)
	fmt.Printf("cover dual=%.2f objective=%.2f\n", dual[0], val)
	fmt.Println("dual sense:", opt.DualProblem().Model.Objective().Sense)

	// Output:
	// OPTIMAL
	// x=1.00
	// cover dual=1.00 objective=1.00
	// dual sense: max
}
