// SPDX-License-Identifier: MIT

// Package dualize: sign table.
//
// Row orientation (≥, ≤, =, cone) is absorbed by normalization plus the
// registry's dual cone: y ≥ 0, y ≤ 0, free, y ∈ C*. What remains depends on
// the primal sense alone and is looked up here, once.
//
//	sense        dual sense    ⟨b,y⟩ coef   a₀ on rhs   P₁w, P₂z on lhs
//	min          max           −1           +a₀          −
//	max          min           +1           −a₀          +
//	feasibility  feasibility   −1           +a₀          −

package dualize

import "github.com/katalvlaran/conedual/model"

type signs struct {
	dualSense model.Sense
	objective float64 // multiplies ⟨b_i + D_i z, y_i⟩ in the dual objective
	rhs       float64 // multiplies a₀[j] on the stationarity right-hand side
	slack     float64 // multiplies (P₁w)_j and (P₂z)_j in stationarity row j
}

var signTable = map[model.Sense]signs{
	model.Minimize:    {dualSense: model.Maximize, objective: -1, rhs: 1, slack: -1},
	model.Maximize:    {dualSense: model.Minimize, objective: 1, rhs: -1, slack: 1},
	model.Feasibility: {dualSense: model.Feasibility, objective: -1, rhs: 1, slack: -1},
}

// signsFor returns the table entry for sense; unknown senses behave as
// feasibility.
func signsFor(sense model.Sense) signs {
	if s, ok := signTable[sense]; ok {
		return s
	}
	return signTable[model.Feasibility]
}
