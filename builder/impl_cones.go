// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
)

// AllConesVectorSets lists the vector cones AllCones constrains, in order.
func AllConesVectorSets() []cone.Set {
	return []cone.Set{
		cone.NewNonnegatives(2),
		cone.NewNonpositives(2),
		cone.NewZeros(2),
		cone.NewSecondOrderCone(3),
		cone.NewRotatedSecondOrderCone(3),
		cone.NewPSDTriangle(2),
		cone.NewExponentialCone(),
		cone.NewDualExponentialCone(),
		cone.NewPowerCone(PowerExponent),
		cone.NewDualPowerCone(PowerExponent),
	}
}

// AllConesScalarSets lists the scalar sets AllCones constrains, in order.
func AllConesScalarSets() []cone.Set {
	return []cone.Set{cone.NewGreaterThan(1), cone.NewLessThan(2), cone.NewEqualTo(0)}
}

// AllCones returns a Constructor adding three variables u and one constraint
// per set of AllConesVectorSets (a VectorAffine, row r using u[r mod 3]) and
// AllConesScalarSets (a ScalarAffine over u), each named after its kind, plus
// the objective min Σu. It exercises every built-in dual rule.
func AllCones() Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		us := cfg.addVariables(m, 3)

		for _, s := range AllConesVectorSets() {
			terms := make([]model.VectorAffineTerm, s.Dim)
			for r := range terms {
				terms[r] = model.VectorAffineTerm{Row: r, Term: model.AffineTerm{Coef: cfg.coef(), Var: us[r%len(us)]}}
			}
			f := model.VectorAffine{Terms: terms, Constants: make([]float64, s.Dim)}
			if _, err := m.AddConstraint(string(s.Kind), f, s); err != nil {
				return construct(MethodAllCones, err)
			}
		}

		for _, s := range AllConesScalarSets() {
			f, err := model.NewScalarAffine([]float64{cfg.coef(), cfg.coef(), cfg.coef()}, us, 0)
			if err != nil {
				return construct(MethodAllCones, err)
			}
			if _, err := m.AddConstraint(string(s.Kind), f, s); err != nil {
				return construct(MethodAllCones, err)
			}
		}

		obj, err := model.NewScalarAffine([]float64{1, 1, 1}, us, 0)
		if err != nil {
			return construct(MethodAllCones, err)
		}
		return construct(MethodAllCones, m.SetObjective(model.Minimize, obj))
	}
}
