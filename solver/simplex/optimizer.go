// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
	"github.com/katalvlaran/conedual/solver"
)

// ErrNoModel indicates Optimize before SetModel.
var ErrNoModel = errors.New("simplex: no model loaded")

func simplexErrorf(tag string, err error) error {
	return fmt.Errorf("simplex.%s: %w", tag, err)
}

type rowKind int

const (
	rowNonneg rowKind = iota // a x + b ≥ 0
	rowNonpos                // a x + b ≤ 0
	rowZero                  // a x + b = 0
	rowFree                  // no restriction
)

var setRowKind = map[cone.Kind]rowKind{
	cone.GreaterThan:  rowNonneg,
	cone.Nonnegatives: rowNonneg,
	cone.LessThan:     rowNonpos,
	cone.Nonpositives: rowNonpos,
	cone.EqualTo:      rowZero,
	cone.Zeros:        rowZero,
	cone.Reals:        rowFree,
}

// lp is the loaded problem: rows a_i x + b_i ∈ K_i over every model variable.
type lp struct {
	cols    []model.VariableID
	colOf   map[model.VariableID]int
	a       [][]float64
	b       []float64
	kinds   []rowKind
	offsets map[model.ConstraintID]int
	cons    map[model.ConstraintID]model.Constraint
	sense   model.Sense
	c       []float64
	c0      float64
}

type solution struct {
	x    []float64
	y    []float64 // one multiplier per lp row
	objv float64
}

// Optimizer is a dense two-phase simplex LP solver.
type Optimizer struct {
	log     *zap.Logger
	tol     float64
	maxIter int

	prob   *lp
	sol    *solution
	status solver.Status
}

var _ solver.Optimizer = (*Optimizer)(nil)

// New returns an empty Optimizer.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{log: zap.NewNop(), tol: DefaultTolerance, maxIter: DefaultIterationLimit}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Constructor returns a solver.Constructor building Optimizers with opts.
func Constructor(opts ...Option) solver.Constructor {
	return func() (solver.Optimizer, error) {
		return New(opts...), nil
	}
}

// SetModel loads m, replacing any previous model and solution.
//
// Errors:
//   - solver.ErrUnsupportedModel for non-LP sets or quadratic objectives.
//   - model errors from stacking.
func (o *Optimizer) SetModel(m model.ModelLike) error {
	const tag = "SetModel"
	cf, err := model.Stack(m)
	if err != nil {
		return simplexErrorf(tag, errors.Join(solver.ErrUnsupportedModel, err))
	}
	p := &lp{
		offsets: cf.Offsets,
		cons:    make(map[model.ConstraintID]model.Constraint),
		colOf:   make(map[model.VariableID]int),
	}
	p.cols = append(append(p.cols, cf.Columns...), cf.Parameters...)
	for j, v := range p.cols {
		p.colOf[v] = j
	}
	for _, con := range m.Constraints() {
		if _, ok := setRowKind[con.Set.Kind]; !ok {
			return simplexErrorf(tag+"("+con.Set.String()+")", solver.ErrUnsupportedModel)
		}
		p.cons[con.ID] = con
	}

	nx := len(cf.Columns)
	p.a = make([][]float64, len(cf.Rows))
	p.kinds = make([]rowKind, len(cf.Rows))
	p.b = append([]float64(nil), cf.B...)
	for i, ref := range cf.Rows {
		row := make([]float64, len(p.cols))
		for j := 0; j < nx; j++ {
			row[j], _ = cf.A.At(i, j)
		}
		for j := range cf.Parameters {
			row[nx+j], _ = cf.D.At(i, j)
		}
		p.a[i] = row
		p.kinds[i] = setRowKind[p.cons[ref.Constraint].Set.Kind]
	}

	if err := p.loadObjective(m.Objective()); err != nil {
		return simplexErrorf(tag, err)
	}

	o.prob, o.sol, o.status = p, nil, solver.OptimizeNotCalled
	o.log.Debug("simplex model loaded",
		zap.Int("columns", len(p.cols)),
		zap.Int("rows", len(p.a)),
		zap.Stringer("sense", p.sense))

	return nil
}

func (p *lp) loadObjective(obj model.Objective) error {
	p.c = make([]float64, len(p.cols))
	p.sense = obj.Sense
	if obj.Sense == model.Feasibility || obj.Func == nil {
		p.sense = model.Feasibility
		return nil
	}
	var terms []model.AffineTerm
	switch f := obj.Func.(type) {
	case model.VariableIndex:
		terms = []model.AffineTerm{{Coef: 1, Var: f.Var}}
	case model.ScalarAffine:
		terms, p.c0 = f.Terms, f.Constant
	case model.ScalarQuadratic:
		for _, q := range f.Quadratic {
			if q.Coef != 0 {
				return fmt.Errorf("quadratic objective: %w", solver.ErrUnsupportedModel)
			}
		}
		terms, p.c0 = f.Affine, f.Constant
	default:
		return fmt.Errorf("objective %s: %w", obj.Func.Kind(), solver.ErrUnsupportedModel)
	}
	for _, t := range terms {
		j, ok := p.colOf[t.Var]
		if !ok {
			return model.ErrUnknownVariable
		}
		p.c[j] += t.Coef
	}

	return nil
}

// Optimize runs both simplex phases. Infeasible, unbounded and
// iteration-limited runs are reported through TerminationStatus, not errors.
func (o *Optimizer) Optimize() error {
	if o.prob == nil {
		return simplexErrorf("Optimize", ErrNoModel)
	}
	sol, status, iters, err := solve(o.prob, o.tol, o.maxIter)
	if err != nil {
		o.status = solver.NumericalError
		return simplexErrorf("Optimize", err)
	}
	o.sol, o.status = sol, status
	o.log.Debug("simplex finished",
		zap.Stringer("status", status),
		zap.Int("iterations", iters))

	return nil
}

func (o *Optimizer) solved(tag string) error {
	if o.sol == nil || o.status != solver.Optimal {
		return simplexErrorf(tag, solver.ErrNotOptimized)
	}
	return nil
}

// PrimalValue returns x_v.
func (o *Optimizer) PrimalValue(v model.VariableID) (float64, error) {
	if err := o.solved("PrimalValue"); err != nil {
		return 0, err
	}
	j, ok := o.prob.colOf[v]
	if !ok {
		return 0, simplexErrorf("PrimalValue", model.ErrUnknownVariable)
	}
	return o.sol.x[j], nil
}

// DualValue returns the row multipliers of constraint c.
func (o *Optimizer) DualValue(c model.ConstraintID) ([]float64, error) {
	if err := o.solved("DualValue"); err != nil {
		return nil, err
	}
	con, ok := o.prob.cons[c]
	if !ok {
		return nil, simplexErrorf("DualValue", model.ErrUnknownConstraint)
	}
	off := o.prob.offsets[c]
	return append([]float64(nil), o.sol.y[off:off+con.Set.Dim]...), nil
}

// ConstraintPrimal returns f_c(x).
func (o *Optimizer) ConstraintPrimal(c model.ConstraintID) ([]float64, error) {
	if err := o.solved("ConstraintPrimal"); err != nil {
		return nil, err
	}
	con, ok := o.prob.cons[c]
	if !ok {
		return nil, simplexErrorf("ConstraintPrimal", model.ErrUnknownConstraint)
	}
	values := make(map[model.VariableID]float64, len(o.prob.cols))
	for j, v := range o.prob.cols {
		values[v] = o.sol.x[j]
	}
	return model.Evaluate(con.Func, values)
}

// ObjectiveValue returns cᵀx + c₀ in the model's own sense.
func (o *Optimizer) ObjectiveValue() (float64, error) {
	if err := o.solved("ObjectiveValue"); err != nil {
		return 0, err
	}
	return o.sol.objv, nil
}

// TerminationStatus returns the status of the last Optimize.
func (o *Optimizer) TerminationStatus() solver.Status { return o.status }

// SetAttribute accepts AttrTolerance and AttrIterationLimit.
func (o *Optimizer) SetAttribute(name string, value any) error {
	switch name {
	case AttrTolerance:
		tol, err := solver.Float(name, value)
		if err != nil || !(tol > 0) {
			return simplexErrorf("SetAttribute", fmt.Errorf("%s=%v: %w", name, value, solver.ErrUnsupportedAttribute))
		}
		o.tol = tol
	case AttrIterationLimit:
		n, err := solver.Int(name, value)
		if err != nil || n <= 0 {
			return simplexErrorf("SetAttribute", fmt.Errorf("%s=%v: %w", name, value, solver.ErrUnsupportedAttribute))
		}
		o.maxIter = n
	default:
		return simplexErrorf("SetAttribute("+name+")", solver.ErrUnsupportedAttribute)
	}

	return nil
}

// Attribute returns the current value of a known attribute.
func (o *Optimizer) Attribute(name string) (any, error) {
	switch name {
	case AttrTolerance:
		return o.tol, nil
	case AttrIterationLimit:
		return o.maxIter, nil
	default:
		return nil, simplexErrorf("Attribute("+name+")", solver.ErrUnsupportedAttribute)
	}
}
