// SPDX-License-Identifier: MIT

// Package dualize: PrimalDualMap, the index tables filled while building.
//
// Tables (all O(1) lookups):
//   - primal decision variable → stationarity constraint, and inverse
//   - primal constraint → dual variables (one per component), and inverse
//   - primal parameter → dual parameter
//   - primal variable → quadratic slack (only for P₁'s support)
//   - primal constraint → dual-set constraint (absent for free dual variables)
//   - primal constraint → constants folded into the rows (scalar-set bounds)

package dualize

import (
	"github.com/katalvlaran/conedual/model"
)

// DualComponent locates one dual variable: the primal constraint it prices
// and its 0-based component.
type DualComponent struct {
	Constraint model.ConstraintID
	Index      int
}

// PrimalDualMap relates primal entities to the dual entities built for them.
// It is immutable once returned by Dualize.
type PrimalDualMap struct {
	dualCon    map[model.VariableID]model.ConstraintID
	primalVar  map[model.ConstraintID]model.VariableID
	dualVars   map[model.ConstraintID][]model.VariableID
	primalCon  map[model.VariableID]DualComponent
	dualParam  map[model.VariableID]model.VariableID
	quadSlack  map[model.VariableID]model.VariableID
	dualSetCon map[model.ConstraintID]model.ConstraintID
	constants  map[model.ConstraintID][]float64
}

func newPrimalDualMap() *PrimalDualMap {
	return &PrimalDualMap{
		dualCon:    make(map[model.VariableID]model.ConstraintID),
		primalVar:  make(map[model.ConstraintID]model.VariableID),
		dualVars:   make(map[model.ConstraintID][]model.VariableID),
		primalCon:  make(map[model.VariableID]DualComponent),
		dualParam:  make(map[model.VariableID]model.VariableID),
		quadSlack:  make(map[model.VariableID]model.VariableID),
		dualSetCon: make(map[model.ConstraintID]model.ConstraintID),
		constants:  make(map[model.ConstraintID][]float64),
	}
}

func (pm *PrimalDualMap) bindVariable(x model.VariableID, row model.ConstraintID) {
	pm.dualCon[x] = row
	pm.primalVar[row] = x
}

func (pm *PrimalDualMap) bindConstraint(c model.ConstraintID, ys []model.VariableID) {
	pm.dualVars[c] = ys
	for k, y := range ys {
		pm.primalCon[y] = DualComponent{Constraint: c, Index: k}
	}
}

// DualConstraint returns the stationarity constraint of primal variable x.
// Parameters and unknown ids fail with ErrNoDualEntity.
func (pm *PrimalDualMap) DualConstraint(x model.VariableID) (model.ConstraintID, error) {
	c, ok := pm.dualCon[x]
	if !ok {
		return 0, dualizeErrorf("DualConstraint", ErrNoDualEntity)
	}
	return c, nil
}

// DualVariables returns the dual variables of primal constraint c, one per
// component. The slice is a copy.
func (pm *PrimalDualMap) DualVariables(c model.ConstraintID) ([]model.VariableID, error) {
	ys, ok := pm.dualVars[c]
	if !ok {
		return nil, dualizeErrorf("DualVariables", ErrNoDualEntity)
	}
	return append([]model.VariableID(nil), ys...), nil
}

// PrimalVariable returns the primal variable whose stationarity row is dualCon.
func (pm *PrimalDualMap) PrimalVariable(dualCon model.ConstraintID) (model.VariableID, error) {
	x, ok := pm.primalVar[dualCon]
	if !ok {
		return 0, dualizeErrorf("PrimalVariable", ErrNoDualEntity)
	}
	return x, nil
}

// PrimalConstraint returns the primal constraint (and component) priced by
// dual variable y.
func (pm *PrimalDualMap) PrimalConstraint(y model.VariableID) (DualComponent, error) {
	dc, ok := pm.primalCon[y]
	if !ok {
		return DualComponent{}, dualizeErrorf("PrimalConstraint", ErrNoDualEntity)
	}
	return dc, nil
}

// DualParameter returns the dual-model copy of primal parameter p.
func (pm *PrimalDualMap) DualParameter(p model.VariableID) (model.VariableID, error) {
	v, ok := pm.dualParam[p]
	if !ok {
		return 0, dualizeErrorf("DualParameter", ErrNoDualEntity)
	}
	return v, nil
}

// QuadSlack returns the quadratic slack w_x of primal variable x.
func (pm *PrimalDualMap) QuadSlack(x model.VariableID) (model.VariableID, error) {
	w, ok := pm.quadSlack[x]
	if !ok {
		return 0, dualizeErrorf("QuadSlack", ErrNoDualEntity)
	}
	return w, nil
}

// DualSetConstraint returns the constraint "y_c ∈ C*" of primal constraint c.
// Free dual variables (equality rows) have none.
func (pm *PrimalDualMap) DualSetConstraint(c model.ConstraintID) (model.ConstraintID, error) {
	d, ok := pm.dualSetCon[c]
	if !ok {
		return 0, dualizeErrorf("DualSetConstraint", ErrNoDualEntity)
	}
	return d, nil
}

// Constants returns the set constants folded into constraint c's rows during
// normalization: [β] for f ∈ {≥,≤,=} β, zeros otherwise. Adding them to the
// normalized slack recovers f(x).
func (pm *PrimalDualMap) Constants(c model.ConstraintID) ([]float64, error) {
	v, ok := pm.constants[c]
	if !ok {
		return nil, dualizeErrorf("Constants", ErrNoDualEntity)
	}
	return append([]float64(nil), v...), nil
}

// NumVariables returns the number of dualized primal variables.
func (pm *PrimalDualMap) NumVariables() int { return len(pm.dualCon) }

// NumConstraints returns the number of dualized primal constraints.
func (pm *PrimalDualMap) NumConstraints() int { return len(pm.dualVars) }
