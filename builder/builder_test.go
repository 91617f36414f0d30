// SPDX-License-Identifier: MIT
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conedual/builder"
	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/dualize"
	"github.com/katalvlaran/conedual/model"
	"github.com/katalvlaran/conedual/solver"
	"github.com/katalvlaran/conedual/solver/simplex"
)

func names(m *model.Model) []string {
	var out []string
	for _, v := range m.Variables() {
		out = append(out, m.VariableName(v))
	}
	return out
}

func TestRandomLPDeterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	m1, err := builder.BuildModel(opts, builder.RandomLP(4, 3))
	require.NoError(t, err)
	m2, err := builder.BuildModel([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomLP(4, 3))
	require.NoError(t, err)

	require.Equal(t, m1.Constraints(), m2.Constraints())
	require.Equal(t, m1.Objective(), m2.Objective())
	require.Equal(t, []string{"x1", "x2", "x3"}, names(m1))
	require.Equal(t, 5, m1.NumConstraints())
	require.Equal(t, model.Minimize, m1.Objective().Sense)

	id, ok := m1.ConstraintByName("nonneg")
	require.True(t, ok)
	c, err := m1.Constraint(id)
	require.NoError(t, err)
	require.Equal(t, cone.NewNonnegatives(3), c.Set)

	for _, term := range m1.Objective().Func.(model.ScalarAffine).Terms {
		require.GreaterOrEqual(t, term.Coef, 1.0)
		require.LessOrEqual(t, term.Coef, 3.0)
	}
}

func TestRandomLPSolvable(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m, err := builder.BuildModel([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomLP(5, 4))
		require.NoError(t, err)

		opt := simplex.New()
		require.NoError(t, opt.SetModel(m))
		require.NoError(t, opt.Optimize())
		require.Equal(t, solver.Optimal, opt.TerminationStatus(), "seed %d", seed)
	}
}

func TestSOCNorm(t *testing.T) {
	m, err := builder.BuildModel(nil, builder.SOCNorm(4))
	require.NoError(t, err)
	require.Equal(t, []string{"x1", "x2", "x3", "x4", "x5"}, names(m))
	require.Equal(t, 2, m.NumConstraints())

	id, ok := m.ConstraintByName("norm")
	require.True(t, ok)
	c, err := m.Constraint(id)
	require.NoError(t, err)
	require.Equal(t, cone.NewSecondOrderCone(5), c.Set)
	require.Equal(t, model.VariableIndex{Var: m.Variables()[0]}, m.Objective().Func)

	// x = (¼,…,¼) lies on the sum row; t = ‖x‖ = ½
	vals := map[model.VariableID]float64{}
	for i, v := range m.Variables() {
		vals[v] = 0.25
		if i == 0 {
			vals[v] = math.Sqrt(4 * 0.25 * 0.25)
		}
	}
	id, _ = m.ConstraintByName("sum")
	c, _ = m.Constraint(id)
	got, err := model.Evaluate(c.Func, vals)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got[0], 1e-12)
}

func TestAllConesDualizes(t *testing.T) {
	m, err := builder.BuildModel([]builder.BuilderOption{builder.WithCoefFn(builder.ConstantCoefFn(2))}, builder.AllCones())
	require.NoError(t, err)
	nVec, nScalar := len(builder.AllConesVectorSets()), len(builder.AllConesScalarSets())
	require.Equal(t, nVec+nScalar, m.NumConstraints())

	dp, err := dualize.Dualize(m, dualize.Options{})
	require.NoError(t, err)

	dims := 0
	for _, c := range m.Constraints() {
		dims += c.Set.Dim
	}
	require.Equal(t, dims, dp.Model.NumVariables())
	// stationarity rows plus one dual-set constraint per non-Reals dual
	require.Equal(t, 3+(nVec-1)+(nScalar-1), dp.Model.NumConstraints())
	require.Equal(t, model.Maximize, dp.Model.Objective().Sense)
}

func TestComposedNamesContinue(t *testing.T) {
	m, err := builder.BuildModel(
		[]builder.BuilderOption{builder.WithIDScheme(builder.IndexedIDFn("u")), builder.WithSeed(7)},
		builder.SOCNorm(1),
		builder.RandomLP(1, 2),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2", "u3", "u4"}, names(m))
	// the later constructor's objective wins
	require.IsType(t, model.ScalarAffine{}, m.Objective().Func)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"lp without rng", nil, builder.RandomLP(2, 2), builder.ErrNeedRandSource},
		{"lp no rows", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomLP(0, 2), builder.ErrTooSmall},
		{"lp no cols", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomLP(2, 0), builder.ErrTooSmall},
		{"norm zero", nil, builder.SOCNorm(0), builder.ErrTooSmall},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildModel(tc.opts, tc.con)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithCoefFn(nil) })
	require.Panics(t, func() { builder.IndexedIDFn("") })
	require.Panics(t, func() { builder.IntCoefFn(2, 1) })
	require.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}

func TestCoefFns(t *testing.T) {
	require.Equal(t, builder.DefaultCoef, builder.DefaultCoefFn(nil))
	require.Equal(t, 2.5, builder.ConstantCoefFn(2.5)(nil))

	rng := rand.New(rand.NewSource(3))
	f := builder.IntCoefFn(-1, 1)
	for i := 0; i < 50; i++ {
		v := f(rng)
		require.Contains(t, []float64{-1, 0, 1}, v)
	}
	require.Equal(t, "x1", builder.DefaultIDFn(0))
	require.Equal(t, "row10", builder.IndexedIDFn("row")(9))
}
