// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
)

// SOCNorm returns a Constructor adding
//
//	min t  s.t.  (t, x₁…xₙ) ∈ SOC(n+1) ("norm"),  Σ xᵢ = 1 ("sum")
//
// whose optimum is 1/√n. Deterministic; ignores the RNG.
func SOCNorm(n int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if err := validateMin(MethodSOCNorm, n, MinNormDim); err != nil {
			return err
		}

		vars := cfg.addVariables(m, n+1)
		t, xs := vars[0], vars[1:]
		if _, err := m.AddConstraint("norm", model.VectorOfVariables{Vars: vars}, cone.NewSecondOrderCone(n+1)); err != nil {
			return construct(MethodSOCNorm, err)
		}

		ones := make([]float64, n)
		for i := range ones {
			ones[i] = 1
		}
		sum, err := model.NewScalarAffine(ones, xs, 0)
		if err != nil {
			return construct(MethodSOCNorm, err)
		}
		if _, err := m.AddConstraint("sum", sum, cone.NewEqualTo(1)); err != nil {
			return construct(MethodSOCNorm, err)
		}

		return construct(MethodSOCNorm, m.SetObjective(model.Minimize, model.VariableIndex{Var: t}))
	}
}
