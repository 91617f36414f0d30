// SPDX-License-Identifier: MIT
package dualize_test

import (
	"fmt"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/dualize"
	"github.com/katalvlaran/conedual/model"
)

// ExampleDualize dualizes min y + z s.t. [x, y, z] ∈ SOC(3), x = 1.
func ExampleDualize() {
	m := model.NewModel()
	xs := m.AddVariables("x", "y", "z")
	_, _ = m.AddConstraint("soccon", model.VectorOfVariables{Vars: xs}, cone.NewSecondOrderCone(3))
	_, _ = m.AddConstraint("eqcon", model.VariableIndex{Var: xs[0]}, cone.NewEqualTo(1))
	obj, _ := model.NewScalarAffine([]float64{1, 1}, xs[1:], 0)
	_ = m.SetObjective(model.Minimize, obj)

	dp, err := dualize.Dualize(m, dualize.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	dm := dp.Model
	for _, c := range dm.Constraints() {
		if c.Name == "" {
			fmt.Println("set:", c.Set)
			continue
		}
		f := c.Func.(model.ScalarAffine)
		fmt.Printf("%s:", c.Name)
		for _, t := range f.Terms {
			fmt.Printf(" %+g·%s", t.Coef, dm.VariableName(t.Var))
		}
		fmt.Printf(" = %g\n", c.Set.Bound)
	}
	fmt.Println(dm.Objective().Sense)
	// Output:
	// set: SecondOrderCone(3)
	// x: +1·soccon[1] +1·eqcon = 0
	// y: +1·soccon[2] = 1
	// z: +1·soccon[3] = 1
	// max
}
