// SPDX-License-Identifier: MIT

// Package dualize: (function, set) support table.

package dualize

import (
	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
)

type pair struct {
	fn  model.FunctionKind
	set cone.Kind
}

// Classifier decides which (function kind, set kind) pairs and objective
// function kinds can be dualized.
type Classifier struct {
	pairs      map[pair]struct{}
	objectives map[model.FunctionKind]struct{}
}

var (
	scalarSets = []cone.Kind{cone.GreaterThan, cone.LessThan, cone.EqualTo}
	vectorSets = []cone.Kind{
		cone.Nonnegatives, cone.Nonpositives, cone.Zeros,
		cone.SecondOrderCone, cone.RotatedSecondOrderCone, cone.PSDTriangle,
		cone.ExponentialCone, cone.DualExponentialCone,
		cone.PowerCone, cone.DualPowerCone,
	}
)

// NewClassifier returns the default table: scalar functions in scalar sets,
// vector functions in the built-in vector cones, and affine or quadratic
// objectives.
func NewClassifier() *Classifier {
	c := &Classifier{
		pairs:      make(map[pair]struct{}, 2*len(scalarSets)+2*len(vectorSets)),
		objectives: make(map[model.FunctionKind]struct{}, 3),
	}
	for _, s := range scalarSets {
		c.Allow(model.KindVariableIndex, s)
		c.Allow(model.KindScalarAffine, s)
	}
	for _, s := range vectorSets {
		c.Allow(model.KindVectorOfVariables, s)
		c.Allow(model.KindVectorAffine, s)
	}
	for _, fk := range []model.FunctionKind{model.KindVariableIndex, model.KindScalarAffine, model.KindScalarQuadratic} {
		c.objectives[fk] = struct{}{}
	}

	return c
}

// Allow adds (fk, sk) to the table.
func (c *Classifier) Allow(fk model.FunctionKind, sk cone.Kind) {
	c.pairs[pair{fk, sk}] = struct{}{}
}

// Supported reports whether constraints of function kind fk in sets of kind sk
// can be dualized.
func (c *Classifier) Supported(fk model.FunctionKind, sk cone.Kind) bool {
	_, ok := c.pairs[pair{fk, sk}]
	return ok
}

// SupportedObjective reports whether objectives of kind fk can be dualized.
func (c *Classifier) SupportedObjective(fk model.FunctionKind) bool {
	_, ok := c.objectives[fk]
	return ok
}

// Check scans every constraint and the objective of m and reports the first
// offending entity. A nil objective function counts as "no objective".
func (c *Classifier) Check(m model.ModelLike) error {
	for _, con := range m.Constraints() {
		fk := con.Func.Kind()
		if !c.Supported(fk, con.Set.Kind) {
			return dualizeErrorf(fk.String()+"-in-"+string(con.Set.Kind), ErrUnsupportedConstraint)
		}
	}
	obj := m.Objective()
	if obj.Func != nil && !c.SupportedObjective(obj.Func.Kind()) {
		return dualizeErrorf(obj.Func.Kind().String(), ErrUnsupportedObjective)
	}

	return nil
}
