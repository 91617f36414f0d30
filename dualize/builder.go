// SPDX-License-Identifier: MIT

// Package dualize: the Dualizer.
//
// Two phases:
//  1. plan:  classify, partition variables, look up dual cones, split the
//     objective. Any failure here returns before a dual model exists.
//  2. build: allocate the dual model and the map in a fixed order:
//     dual parameters, dual variables (+ dual-set constraints), quadratic
//     slacks, stationarity rows, objective.
//
// Complexity: O(nnz(A)·d + m + n) where d is the largest cone dimension
// (⟨A[:,j], e_k⟩ is evaluated through the registry for every component).

package dualize

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
)

// Dualizer builds dual models. It is safe for concurrent Dualize calls once
// configured.
type Dualizer struct {
	reg *cone.Registry
	cls *Classifier
	log *zap.Logger
}

// New returns a Dualizer with the built-in registry and classifier.
func New(opts ...Option) *Dualizer {
	d := &Dualizer{
		reg: cone.NewRegistry(),
		cls: NewClassifier(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Registry returns the cone registry used by d.
func (d *Dualizer) Registry() *cone.Registry { return d.reg }

// Classifier returns the support table used by d.
func (d *Dualizer) Classifier() *Classifier { return d.cls }

// RegisterCone registers a user cone kind and allows it for the given
// function kinds (VectorOfVariables and VectorAffine when none are given).
// Setup only: not safe concurrently with Dualize.
func (d *Dualizer) RegisterCone(kind cone.Kind, dual cone.DualSetFunc, inner cone.InnerProductFunc, fks ...model.FunctionKind) error {
	if err := d.reg.Register(kind, dual, inner); err != nil {
		return dualizeErrorf("RegisterCone", err)
	}
	if len(fks) == 0 {
		fks = []model.FunctionKind{model.KindVectorOfVariables, model.KindVectorAffine}
	}
	for _, fk := range fks {
		d.cls.Allow(fk, kind)
	}

	return nil
}

// DualProblem is the result of Dualize: the dual model and the map relating
// it to the primal.
type DualProblem struct {
	Model *model.Model
	Map   *PrimalDualMap
}

// Dualize dualizes m with a default Dualizer.
func Dualize(m model.ModelLike, opts Options) (*DualProblem, error) {
	return New().Dualize(m, opts)
}

type plannedConstraint struct {
	con    model.Constraint
	rows   []model.Row
	dual   cone.Set
	scalar bool // scalar function: unindexed dual variable name
}

type objectiveParts struct {
	sense  model.Sense
	a0     map[model.VariableID]float64 // decision variables
	d0     map[model.VariableID]float64 // parameters
	b0     float64
	p1     []model.QuadraticTerm // decision × decision
	p2     []model.QuadraticTerm // Var1 decision, Var2 parameter
	p3     []model.QuadraticTerm // parameter × parameter
	hasObj bool
}

type plan struct {
	decision []model.VariableID
	params   []model.VariableID
	isParam  map[model.VariableID]bool
	cons     []plannedConstraint
	obj      objectiveParts
}

// Dualize builds the dual of m.
//
// Errors (nothing is built when any is returned):
//   - ErrNilModel.
//   - ErrUnsupportedConstraint / ErrUnsupportedObjective from the classifier.
//   - ErrInconsistentParameter for variable-only constraints on parameters
//     or unknown Options.VariableParameters entries.
//   - cone.ErrUnknownCone / cone.ErrMissingDualSet / cone.ErrDualDimension.
//   - model.ErrUnknownVariable for terms on variables m does not list.
func (d *Dualizer) Dualize(m model.ModelLike, opts Options) (*DualProblem, error) {
	if m == nil {
		return nil, dualizeErrorf("Dualize", ErrNilModel)
	}
	if pm, ok := m.(*model.Model); ok && pm == nil {
		return nil, dualizeErrorf("Dualize", ErrNilModel)
	}

	p, err := d.plan(m, opts)
	if err != nil {
		d.log.Debug("dualize rejected", zap.Error(err))
		return nil, err
	}
	dp, err := d.build(m, p, opts)
	if err != nil {
		return nil, err
	}

	d.log.Debug("dualized model",
		zap.Int("primal_variables", len(p.decision)),
		zap.Int("parameters", len(p.params)),
		zap.Int("primal_constraints", len(p.cons)),
		zap.Int("dual_variables", dp.Model.NumVariables()),
		zap.Int("dual_constraints", dp.Model.NumConstraints()),
		zap.Stringer("primal_sense", p.obj.sense),
		zap.Bool("ignore_objective", opts.IgnoreObjective),
	)

	return dp, nil
}

// ---------- phase 1: plan ----------

func (d *Dualizer) plan(m model.ModelLike, opts Options) (*plan, error) {
	const tag = "Dualize"
	if err := d.cls.Check(m); err != nil {
		return nil, dualizeErrorf(tag, err)
	}

	p := &plan{isParam: make(map[model.VariableID]bool)}
	vars := m.Variables()
	known := make(map[model.VariableID]bool, len(vars))
	for _, v := range vars {
		known[v] = true
		if m.IsParameter(v) {
			p.isParam[v] = true
		}
	}
	for _, v := range opts.VariableParameters {
		if !known[v] {
			return nil, dualizeErrorf(tag+": VariableParameters", ErrInconsistentParameter)
		}
		p.isParam[v] = true
	}
	for _, v := range vars {
		if p.isParam[v] {
			p.params = append(p.params, v)
		} else {
			p.decision = append(p.decision, v)
		}
	}

	for _, con := range m.Constraints() {
		ctag := tag + "(" + constraintLabel(m, con) + ")"
		fk := con.Func.Kind()
		if fk == model.KindVariableIndex || fk == model.KindVectorOfVariables {
			for _, v := range con.Func.Variables() {
				if p.isParam[v] {
					return nil, dualizeErrorf(ctag, ErrInconsistentParameter)
				}
			}
		}
		rows, err := model.Rows(con.Func)
		if err != nil {
			return nil, dualizeErrorf(ctag, err)
		}
		for _, r := range rows {
			for _, t := range r.Terms {
				if !known[t.Var] {
					return nil, dualizeErrorf(ctag, model.ErrUnknownVariable)
				}
			}
		}
		dual, err := d.reg.DualSet(con.Set)
		if err != nil {
			return nil, dualizeErrorf(ctag, err)
		}
		p.cons = append(p.cons, plannedConstraint{
			con:    con,
			rows:   rows,
			dual:   dual,
			scalar: fk == model.KindVariableIndex || fk == model.KindScalarAffine,
		})
	}

	obj, err := splitObjective(m.Objective(), p.isParam, known)
	if err != nil {
		return nil, dualizeErrorf(tag, err)
	}
	p.obj = obj

	return p, nil
}

func constraintLabel(m model.ModelLike, con model.Constraint) string {
	if name := m.ConstraintName(con.ID); name != "" {
		return name
	}
	return con.Func.Kind().String() + "-in-" + con.Set.String()
}

// splitObjective separates the objective into a₀, d₀, b₀ and P₁, P₂, P₃.
// Feasibility objectives contribute nothing.
func splitObjective(obj model.Objective, isParam, known map[model.VariableID]bool) (objectiveParts, error) {
	parts := objectiveParts{
		sense: obj.Sense,
		a0:    make(map[model.VariableID]float64),
		d0:    make(map[model.VariableID]float64),
	}
	if obj.Sense == model.Feasibility || obj.Func == nil {
		parts.sense = model.Feasibility
		return parts, nil
	}
	parts.hasObj = true

	addLinear := func(t model.AffineTerm) error {
		if !known[t.Var] {
			return model.ErrUnknownVariable
		}
		if isParam[t.Var] {
			parts.d0[t.Var] += t.Coef
		} else {
			parts.a0[t.Var] += t.Coef
		}
		return nil
	}

	switch f := obj.Func.(type) {
	case model.VariableIndex:
		return parts, addLinear(model.AffineTerm{Coef: 1, Var: f.Var})
	case model.ScalarAffine:
		for _, t := range f.Terms {
			if err := addLinear(t); err != nil {
				return parts, err
			}
		}
		parts.b0 = f.Constant
	case model.ScalarQuadratic:
		for _, t := range f.Affine {
			if err := addLinear(t); err != nil {
				return parts, err
			}
		}
		for _, q := range f.Quadratic {
			if !known[q.Var1] || !known[q.Var2] {
				return parts, model.ErrUnknownVariable
			}
			switch p1, p2 := isParam[q.Var1], isParam[q.Var2]; {
			case !p1 && !p2:
				parts.p1 = append(parts.p1, q)
			case p1 && p2:
				parts.p3 = append(parts.p3, q)
			case p1:
				parts.p2 = append(parts.p2, model.QuadraticTerm{Coef: q.Coef, Var1: q.Var2, Var2: q.Var1})
			default:
				parts.p2 = append(parts.p2, q)
			}
		}
		parts.b0 = f.Constant
	default:
		return parts, dualizeErrorf(obj.Func.Kind().String(), ErrUnsupportedObjective)
	}

	return parts, nil
}

// ---------- phase 2: build ----------

// coneColumns holds, per constraint, the column A_i[:,j] (or D_i[:,p]) of
// every variable the constraint touches, in first-appearance order.
type coneColumns struct {
	order []model.VariableID
	cols  map[model.VariableID][]float64
}

func collectColumns(pc plannedConstraint, isParam map[model.VariableID]bool, wantParams bool) coneColumns {
	cc := coneColumns{cols: make(map[model.VariableID][]float64)}
	for k, r := range pc.rows {
		for _, t := range r.Terms {
			if isParam[t.Var] != wantParams {
				continue
			}
			col, ok := cc.cols[t.Var]
			if !ok {
				col = make([]float64, len(pc.rows))
				cc.cols[t.Var] = col
				cc.order = append(cc.order, t.Var)
			}
			col[k] += t.Coef
		}
	}

	return cc
}

// expand returns g_k = ⟨v, e_k⟩ under the inner product of s.
func (d *Dualizer) expand(v []float64, s cone.Set) ([]float64, error) {
	g := make([]float64, len(v))
	e := make([]float64, len(v))
	for k := range v {
		e[k] = 1
		ip, err := d.reg.InnerProduct(v, e, s)
		if err != nil {
			return nil, err
		}
		g[k] = ip
		e[k] = 0
	}

	return g, nil
}

func (d *Dualizer) build(m model.ModelLike, p *plan, opts Options) (*DualProblem, error) {
	const tag = "Dualize"
	names := opts.DualNames
	sg := signsFor(p.obj.sense)
	dm := model.NewModel()
	pm := newPrimalDualMap()

	// dual parameters
	for _, z := range p.params {
		pm.dualParam[z] = dm.AddParameter(prefixed(names.ParameterPrefix, m.VariableName(z)))
	}

	// dual variables y_i ∈ C_i*
	ys := make([][]model.VariableID, len(p.cons))
	for i, pc := range p.cons {
		name := m.ConstraintName(pc.con.ID)
		dim := pc.con.Set.Dim
		ys[i] = make([]model.VariableID, dim)
		for k := 0; k < dim; k++ {
			vn := componentName(names.VariablePrefix, name, k)
			if pc.scalar {
				vn = prefixed(names.VariablePrefix, name)
			}
			ys[i][k] = dm.AddVariable(vn)
		}
		pm.bindConstraint(pc.con.ID, ys[i])

		consts := make([]float64, dim)
		if pc.con.Set.IsScalar() {
			consts[0] = pc.con.Set.Bound
		}
		pm.constants[pc.con.ID] = consts

		if pc.dual.Kind == cone.Reals {
			continue // free dual variable
		}
		var f model.Function = model.VectorOfVariables{Vars: ys[i]}
		if pc.dual.IsScalar() {
			f = model.VariableIndex{Var: ys[i][0]}
		}
		dc, err := dm.AddConstraint("", f, pc.dual)
		if err != nil {
			return nil, dualizeErrorf(tag, err)
		}
		pm.dualSetCon[pc.con.ID] = dc
	}

	// quadratic slacks w for P₁'s support, in variable order
	inP1 := make(map[model.VariableID]bool)
	for _, q := range p.obj.p1 {
		inP1[q.Var1], inP1[q.Var2] = true, true
	}
	for _, x := range p.decision {
		if inP1[x] {
			pm.quadSlack[x] = dm.AddVariable(prefixed(names.QuadSlackPrefix, m.VariableName(x)))
		}
	}

	// stationarity rows: Σ_i ⟨A_i[:,j], e_k⟩ y_{i,k} + slack·(P₁w + P₂z)_j = rhs·a₀[j]
	rowTerms := make(map[model.VariableID][]model.AffineTerm, len(p.decision))
	for i, pc := range p.cons {
		cc := collectColumns(pc, p.isParam, false)
		for _, x := range cc.order {
			g, err := d.expand(cc.cols[x], pc.con.Set)
			if err != nil {
				return nil, dualizeErrorf(tag, err)
			}
			for k, gk := range g {
				if gk != 0 {
					rowTerms[x] = append(rowTerms[x], model.AffineTerm{Coef: gk, Var: ys[i][k]})
				}
			}
		}
	}
	for _, q := range p.obj.p1 {
		wa, wb := pm.quadSlack[q.Var1], pm.quadSlack[q.Var2]
		rowTerms[q.Var1] = append(rowTerms[q.Var1], model.AffineTerm{Coef: sg.slack * q.Coef, Var: wb})
		if q.Var1 != q.Var2 {
			rowTerms[q.Var2] = append(rowTerms[q.Var2], model.AffineTerm{Coef: sg.slack * q.Coef, Var: wa})
		}
	}
	for _, q := range p.obj.p2 {
		rowTerms[q.Var1] = append(rowTerms[q.Var1], model.AffineTerm{Coef: sg.slack * q.Coef, Var: pm.dualParam[q.Var2]})
	}
	for _, x := range p.decision {
		f := model.ScalarAffine{Terms: rowTerms[x]}
		rc, err := dm.AddConstraint(
			prefixed(names.ConstraintPrefix, m.VariableName(x)),
			f,
			cone.NewEqualTo(sg.rhs*p.obj.a0[x]),
		)
		if err != nil {
			return nil, dualizeErrorf(tag, err)
		}
		pm.bindVariable(x, rc)
	}

	if opts.IgnoreObjective || !p.obj.hasObj {
		return &DualProblem{Model: dm, Map: pm}, nil
	}

	obj, err := d.dualObjective(p, pm, ys, sg)
	if err != nil {
		return nil, dualizeErrorf(tag, err)
	}
	if err := dm.SetObjective(sg.dualSense, obj); err != nil {
		return nil, dualizeErrorf(tag, err)
	}

	return &DualProblem{Model: dm, Map: pm}, nil
}

// dualObjective assembles
//
//	objective·Σ_i ⟨b_i + D_i z, y_i⟩ + b₀ + d₀ᵀz + ½zᵀP₃z − ½wᵀP₁w.
func (d *Dualizer) dualObjective(p *plan, pm *PrimalDualMap, ys [][]model.VariableID, sg signs) (model.Function, error) {
	var (
		affine []model.AffineTerm
		quad   []model.QuadraticTerm
	)
	for i, pc := range p.cons {
		b := make([]float64, len(pc.rows))
		for k, r := range pc.rows {
			b[k] = model.NormalizedConstant(r, pc.con.Set)
		}
		g, err := d.expand(b, pc.con.Set)
		if err != nil {
			return nil, err
		}
		for k, gk := range g {
			if gk != 0 {
				affine = append(affine, model.AffineTerm{Coef: sg.objective * gk, Var: ys[i][k]})
			}
		}

		zc := collectColumns(pc, p.isParam, true)
		for _, z := range zc.order {
			g, err := d.expand(zc.cols[z], pc.con.Set)
			if err != nil {
				return nil, err
			}
			for k, gk := range g {
				if gk != 0 {
					quad = append(quad, model.QuadraticTerm{Coef: sg.objective * gk, Var1: pm.dualParam[z], Var2: ys[i][k]})
				}
			}
		}
	}
	for _, z := range p.params {
		if c := p.obj.d0[z]; c != 0 {
			affine = append(affine, model.AffineTerm{Coef: c, Var: pm.dualParam[z]})
		}
	}
	for _, q := range p.obj.p3 {
		quad = append(quad, model.QuadraticTerm{Coef: q.Coef, Var1: pm.dualParam[q.Var1], Var2: pm.dualParam[q.Var2]})
	}
	for _, q := range p.obj.p1 {
		quad = append(quad, model.QuadraticTerm{Coef: -q.Coef, Var1: pm.quadSlack[q.Var1], Var2: pm.quadSlack[q.Var2]})
	}

	if len(quad) == 0 {
		return model.ScalarAffine{Terms: affine, Constant: p.obj.b0}, nil
	}
	return model.ScalarQuadratic{Quadratic: quad, Affine: affine, Constant: p.obj.b0}, nil
}
