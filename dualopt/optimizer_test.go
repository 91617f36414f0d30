// SPDX-License-Identifier: MIT
package dualopt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/dualize"
	"github.com/katalvlaran/conedual/dualopt"
	"github.com/katalvlaran/conedual/model"
	"github.com/katalvlaran/conedual/solver"
	"github.com/katalvlaran/conedual/solver/simplex"
)

const tol = 1e-7

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// feasibleLP:  opt 2x1 + 3x2 + 1
//
//	c1: x1 + x2 ≥ 4
//	c2: x1 − x2 ≤ 5   (inactive)
//	c3: x1 + 2x2 = 5
//	pos: [x1, x2] ∈ ℝ₊²
//
// with the unique, nondegenerate optimum x = (3, 1), y = (1, 0, 1, 0, 0).
func feasibleLP(t *testing.T, sense model.Sense) (*model.Model, []model.VariableID, []model.ConstraintID) {
	t.Helper()
	m := model.NewModel()
	xs := m.AddVariables("x1", "x2")
	var ids []model.ConstraintID
	add := func(name string, coefs []float64, s cone.Set) {
		f, err := model.NewScalarAffine(coefs, xs, 0)
		require.NoError(t, err)
		id, err := m.AddConstraint(name, f, s)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	add("c1", []float64{1, 1}, cone.NewGreaterThan(4))
	add("c2", []float64{1, -1}, cone.NewLessThan(5))
	add("c3", []float64{1, 2}, cone.NewEqualTo(5))
	pos, err := m.AddConstraint("pos", model.VectorOfVariables{Vars: xs}, cone.NewNonnegatives(2))
	require.NoError(t, err)
	ids = append(ids, pos)

	coef := []float64{2, 3}
	if sense == model.Maximize {
		coef = []float64{-2, -3}
	}
	obj, err := model.NewScalarAffine(coef, xs, 1)
	require.NoError(t, err)
	require.NoError(t, m.SetObjective(sense, obj))

	return m, xs, ids
}

// TestDualOptimizerMatchesDirectSolve compares every query of the wrapper
// against the same simplex run on the primal.
func TestDualOptimizerMatchesDirectSolve(t *testing.T) {
	for _, sense := range []model.Sense{model.Minimize, model.Maximize} {
		t.Run(sense.String(), func(t *testing.T) {
			primal, xs, cons := feasibleLP(t, sense)

			direct := simplex.New()
			require.NoError(t, direct.SetModel(primal))
			require.NoError(t, direct.Optimize())
			require.Equal(t, solver.Optimal, direct.TerminationStatus())

			ctor := dualopt.NewFactory(simplex.Constructor(), dualopt.WithLogger(zaptest.NewLogger(t)))
			opt, err := ctor()
			require.NoError(t, err)
			require.NoError(t, opt.SetModel(primal))
			require.NoError(t, opt.Optimize())
			require.Equal(t, solver.Optimal, opt.TerminationStatus())

			for _, x := range xs {
				want, err := direct.PrimalValue(x)
				require.NoError(t, err)
				got, err := opt.PrimalValue(x)
				require.NoError(t, err)
				require.InDelta(t, want, got, tol, "x%d", x)
			}

			wantObj, err := direct.ObjectiveValue()
			require.NoError(t, err)
			gotObj, err := opt.ObjectiveValue()
			require.NoError(t, err)
			require.InDelta(t, wantObj, gotObj, tol)

			for _, c := range cons {
				wantF, err := direct.ConstraintPrimal(c)
				require.NoError(t, err)
				gotF, err := opt.ConstraintPrimal(c)
				require.NoError(t, err)
				require.InDeltaSlice(t, wantF, gotF, tol, "constraint %d", c)

				wantY, err := direct.DualValue(c)
				require.NoError(t, err)
				gotY, err := opt.DualValue(c)
				require.NoError(t, err)
				require.InDeltaSlice(t, wantY, gotY, tol, "dual of constraint %d", c)
			}
		})
	}
}

// TestDualOptimizerReportsDualStatus: an infeasible primal has an unbounded
// dual; the wrapper reports the dual's status and says which model it is for.
func TestDualOptimizerReportsDualStatus(t *testing.T) {
	m := model.NewModel()
	x := m.AddVariable("x")
	_, err := m.AddConstraint("lo", model.VariableIndex{Var: x}, cone.NewGreaterThan(1))
	require.NoError(t, err)
	_, err = m.AddConstraint("hi", model.VariableIndex{Var: x}, cone.NewLessThan(0))
	require.NoError(t, err)
	require.NoError(t, m.SetObjective(model.Minimize, model.VariableIndex{Var: x}))

	opt := dualopt.New(simplex.New())
	require.NoError(t, opt.SetModel(m))
	require.NoError(t, opt.Optimize())
	require.Equal(t, solver.DualInfeasible, opt.TerminationStatus())
	term := opt.Termination()
	require.Equal(t, solver.DualInfeasible, term.Status)
	require.Same(t, opt.DualProblem().Model, term.Model)

	_, err = opt.PrimalValue(x)
	require.ErrorIs(t, err, dualopt.ErrCollaborator)
	require.ErrorIs(t, err, solver.ErrNotOptimized)
}

// TestDualOptimizerAttributePassthrough forwards attributes verbatim.
func TestDualOptimizerAttributePassthrough(t *testing.T) {
	ctor := dualopt.NewFactory(solver.WithAttributes(simplex.Constructor(), map[string]any{
		simplex.AttrIterationLimit: 7,
	}))
	opt, err := ctor()
	require.NoError(t, err)

	v, err := opt.Attribute(simplex.AttrIterationLimit)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	require.NoError(t, opt.SetAttribute(simplex.AttrTolerance, 1e-8))
	inner := opt.(*dualopt.DualOptimizer).Inner()
	v, err = inner.Attribute(simplex.AttrTolerance)
	require.NoError(t, err)
	require.Equal(t, 1e-8, v)

	err = opt.SetAttribute("presolve", true)
	require.ErrorIs(t, err, dualopt.ErrCollaborator)
	require.ErrorIs(t, err, solver.ErrUnsupportedAttribute)
}

// fakeOptimizer answers primal values from a table and records its model.
type fakeOptimizer struct {
	model  model.ModelLike
	values map[string]float64
	err    error
	attrs  map[string]any
	// duals overrides the single zero DualValue answer when non-nil.
	duals []float64
}

func (f *fakeOptimizer) SetModel(m model.ModelLike) error { f.model = m; return f.err }
func (f *fakeOptimizer) Optimize() error                  { return f.err }
func (f *fakeOptimizer) PrimalValue(v model.VariableID) (float64, error) {
	return f.values[f.model.VariableName(v)], nil
}
func (f *fakeOptimizer) DualValue(model.ConstraintID) ([]float64, error) {
	if f.duals != nil {
		return f.duals, nil
	}
	return []float64{0}, nil
}
func (f *fakeOptimizer) ConstraintPrimal(model.ConstraintID) ([]float64, error) {
	return nil, solver.ErrNotOptimized
}
func (f *fakeOptimizer) ObjectiveValue() (float64, error)   { return 0, nil }
func (f *fakeOptimizer) TerminationStatus() solver.Status   { return solver.Optimal }
func (f *fakeOptimizer) SetAttribute(n string, v any) error { f.attrs[n] = v; return nil }
func (f *fakeOptimizer) Attribute(n string) (any, error)    { return f.attrs[n], nil }

// TestDualOptimizerParameters reads parameters back from their dual copies
// and dual values from the dual variables.
func TestDualOptimizerParameters(t *testing.T) {
	m := model.NewModel()
	x := m.AddVariable("x")
	p := m.AddParameter("p")
	f, err := model.NewScalarAffine([]float64{1, 1}, []model.VariableID{x, p}, 0)
	require.NoError(t, err)
	c, err := m.AddConstraint("c", f, cone.NewGreaterThan(0))
	require.NoError(t, err)
	require.NoError(t, m.SetObjective(model.Minimize, model.VariableIndex{Var: x}))

	fake := &fakeOptimizer{values: map[string]float64{"par_p": 4, "dual_c": 1}, attrs: map[string]any{}}
	opt := dualopt.New(fake, dualopt.WithOptions(dualize.Options{
		DualNames: dualize.DualNames{VariablePrefix: "dual_", ParameterPrefix: "par_"},
	}))
	require.NoError(t, opt.SetModel(m))
	require.Same(t, opt.DualProblem().Model, fake.model)
	require.NoError(t, opt.Optimize())

	pv, err := opt.PrimalValue(p)
	require.NoError(t, err)
	require.Equal(t, 4.0, pv)

	y, err := opt.DualValue(c)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, y)

	_, err = opt.DualValue(99)
	require.ErrorIs(t, err, dualize.ErrNoDualEntity)
	require.NotErrorIs(t, err, dualopt.ErrCollaborator)
}

// TestDualOptimizerErrors covers lifecycle and wrapping rules.
func TestDualOptimizerErrors(t *testing.T) {
	boom := errors.New("boom")
	fake := &fakeOptimizer{err: boom, attrs: map[string]any{}}
	opt := dualopt.New(fake)

	require.ErrorIs(t, opt.Optimize(), dualopt.ErrNoModel)
	_, err := opt.PrimalValue(1)
	require.ErrorIs(t, err, dualopt.ErrNoModel)
	_, err = opt.ObjectiveValue()
	require.ErrorIs(t, err, dualopt.ErrNoModel)

	m := model.NewModel()
	x := m.AddVariable("x")
	_, err = m.AddConstraint("c", model.VariableIndex{Var: x}, cone.NewGreaterThan(0))
	require.NoError(t, err)
	err = opt.SetModel(m)
	require.ErrorIs(t, err, dualopt.ErrCollaborator)
	require.ErrorIs(t, err, boom)
	require.Nil(t, opt.DualProblem())

	// unsupported primal: a dualization error, not a collaborator one
	q := model.NewModel()
	y := q.AddVariable("y")
	_, err = q.AddConstraint("q", model.ScalarQuadratic{Quadratic: []model.QuadraticTerm{{Coef: 1, Var1: y, Var2: y}}}, cone.NewLessThan(1))
	require.NoError(t, err)
	err = dualopt.New(simplex.New()).SetModel(q)
	require.ErrorIs(t, err, dualize.ErrUnsupportedConstraint)
	require.NotErrorIs(t, err, dualopt.ErrCollaborator)

	// SOC dual handed to an LP optimizer
	s := model.NewModel()
	xs := s.AddVariables("a", "b", "c")
	_, err = s.AddConstraint("soc", model.VectorOfVariables{Vars: xs}, cone.NewSecondOrderCone(3))
	require.NoError(t, err)
	err = dualopt.New(simplex.New()).SetModel(s)
	require.ErrorIs(t, err, dualopt.ErrCollaborator)
	require.ErrorIs(t, err, solver.ErrUnsupportedModel)

	_, err = dualopt.NewFactory(func() (solver.Optimizer, error) { return nil, boom })()
	require.ErrorIs(t, err, boom)

	require.Panics(t, func() { dualopt.New(nil) })
	require.Panics(t, func() { dualopt.NewFactory(nil) })
	require.Panics(t, func() { dualopt.WithLogger(nil) })
	require.Panics(t, func() { dualopt.WithDualizer(nil) })
}

// TestDualOptimizerResultLength rejects wrapped results whose length does not
// match the queried row or cone.
func TestDualOptimizerResultLength(t *testing.T) {
	m := model.NewModel()
	xs := m.AddVariables("x1", "x2")
	c, err := m.AddConstraint("pos", model.VectorOfVariables{Vars: xs}, cone.NewNonnegatives(2))
	require.NoError(t, err)
	obj, err := model.NewScalarAffine([]float64{1, 1}, xs, 0)
	require.NoError(t, err)
	require.NoError(t, m.SetObjective(model.Minimize, obj))

	for _, duals := range [][]float64{{}, {1, 2, 3}} {
		fake := &fakeOptimizer{attrs: map[string]any{}, duals: duals}
		opt := dualopt.New(fake)
		require.NoError(t, opt.SetModel(m))
		require.NoError(t, opt.Optimize())

		_, err := opt.PrimalValue(xs[0])
		require.ErrorIs(t, err, dualopt.ErrResultLength)
		require.ErrorIs(t, err, dualopt.ErrCollaborator)

		_, err = opt.ConstraintPrimal(c)
		require.ErrorIs(t, err, dualopt.ErrResultLength)
		require.ErrorIs(t, err, dualopt.ErrCollaborator)
	}

	// matching lengths pass through
	fake := &fakeOptimizer{attrs: map[string]any{}, duals: []float64{0.5, 0.25}}
	opt := dualopt.New(fake)
	require.NoError(t, opt.SetModel(m))
	got, err := opt.ConstraintPrimal(c)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.25}, got)
}
