// SPDX-License-Identifier: MIT

// Package model: dense conic form of a model's constraints.
//
// Stack lays every constraint row out as
//
//	A x + D z + b ∈ C_1 × … × C_m
//
// where x are the decision variables (columns of A, creation order), z the
// parameters (columns of D) and b already folds scalar-set bounds in
// (f ≥ β becomes f − β ∈ ℝ₊). Repeated terms on the same variable accumulate.

package model

import (
	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/matrix"
)

// RowRef locates a stacked row: constraint and 0-based component.
type RowRef struct {
	Constraint ConstraintID
	Index      int
}

// ConicForm is the stacked constraint data of a model.
type ConicForm struct {
	Columns    []VariableID         // decision variables, column order of A
	Parameters []VariableID         // parameters, column order of D
	A          *matrix.Dense        // rows × len(Columns)
	D          *matrix.Dense        // rows × len(Parameters)
	B          []float64            // normalized constants
	Rows       []RowRef             // row → (constraint, component)
	Cones      []cone.Set           // one per constraint, in order
	Offsets    map[ConstraintID]int // first stacked row of each constraint
}

// NormalizedConstant returns the constant of row r of a constraint with set s:
// the function constant minus the set bound for scalar sets.
func NormalizedConstant(r Row, s cone.Set) float64 {
	if s.IsScalar() {
		return r.Constant - s.Bound
	}
	return r.Constant
}

// Stack builds the ConicForm of m.
//
// Errors:
//   - ErrNotAffine for quadratic constraint functions.
//   - ErrUnknownVariable for terms on variables m does not list.
//
// Complexity: O(rows·(cols+params) + terms).
func Stack(m ModelLike) (*ConicForm, error) {
	const tag = "Stack"
	cf := &ConicForm{Offsets: make(map[ConstraintID]int)}
	colOf := make(map[VariableID]int)
	parOf := make(map[VariableID]int)
	for _, v := range m.Variables() {
		if m.IsParameter(v) {
			parOf[v] = len(cf.Parameters)
			cf.Parameters = append(cf.Parameters, v)
			continue
		}
		colOf[v] = len(cf.Columns)
		cf.Columns = append(cf.Columns, v)
	}

	cons := m.Constraints()
	perCon := make([][]Row, len(cons))
	total := 0
	for i, c := range cons {
		rows, err := Rows(c.Func)
		if err != nil {
			return nil, modelErrorf(tag, err)
		}
		perCon[i] = rows
		total += len(rows)
	}

	cf.A, _ = matrix.NewDense(total, len(cf.Columns))
	cf.D, _ = matrix.NewDense(total, len(cf.Parameters))
	cf.B = make([]float64, 0, total)
	cf.Rows = make([]RowRef, 0, total)
	cf.Cones = make([]cone.Set, len(cons))

	r := 0
	for i, c := range cons {
		cf.Offsets[c.ID] = r
		cf.Cones[i] = c.Set
		for k, row := range perCon[i] {
			for _, t := range row.Terms {
				if j, ok := colOf[t.Var]; ok {
					if err := cf.A.AddAt(r, j, t.Coef); err != nil {
						return nil, modelErrorf(tag, err)
					}
					continue
				}
				p, ok := parOf[t.Var]
				if !ok {
					return nil, modelErrorf(tag, ErrUnknownVariable)
				}
				if err := cf.D.AddAt(r, p, t.Coef); err != nil {
					return nil, modelErrorf(tag, err)
				}
			}
			cf.B = append(cf.B, NormalizedConstant(row, c.Set))
			cf.Rows = append(cf.Rows, RowRef{Constraint: c.ID, Index: k})
			r++
		}
	}

	return cf, nil
}
