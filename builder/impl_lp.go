// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
)

// RandomLP returns a Constructor adding a feasible, bounded LP:
//
//	min  cᵀx   s.t.  a_iᵀx ≥ b_i  (rows "row1"…),  x ∈ ℝ₊ⁿ  ("nonneg")
//
// with c_j ∈ {1,2,3}. A hidden point x⁰ ∈ {0,1,2}ⁿ satisfies every row with
// slack 0 or 1. Coefficients come from the CoefFn; an RNG is required.
// Complexity: O(rows·cols).
func RandomLP(rows, cols int) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if err := validateMin(MethodRandomLP, rows, MinLPRows); err != nil {
			return err
		}
		if err := validateMin(MethodRandomLP, cols, MinLPCols); err != nil {
			return err
		}
		if err := validateRand(MethodRandomLP, cfg); err != nil {
			return err
		}

		xs := cfg.addVariables(m, cols)
		x0 := make([]float64, cols)
		for j := range x0 {
			x0[j] = float64(cfg.rng.Intn(3))
		}

		for i := 0; i < rows; i++ {
			a := make([]float64, cols)
			rhs := -float64(cfg.rng.Intn(2))
			for j := range a {
				a[j] = cfg.coef()
				rhs += a[j] * x0[j]
			}
			f, err := model.NewScalarAffine(a, xs, 0)
			if err != nil {
				return construct(MethodRandomLP, err)
			}
			if _, err := m.AddConstraint("row"+strconv.Itoa(i+1), f, cone.NewGreaterThan(rhs)); err != nil {
				return construct(MethodRandomLP, err)
			}
		}
		if _, err := m.AddConstraint("nonneg", model.VectorOfVariables{Vars: xs}, cone.NewNonnegatives(cols)); err != nil {
			return construct(MethodRandomLP, err)
		}

		c := make([]float64, cols)
		for j := range c {
			c[j] = float64(1 + cfg.rng.Intn(3))
		}
		obj, err := model.NewScalarAffine(c, xs, 0)
		if err != nil {
			return construct(MethodRandomLP, err)
		}
		return construct(MethodRandomLP, m.SetObjective(model.Minimize, obj))
	}
}
