// SPDX-License-Identifier: MIT
package model_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
)

// TestVariablesAndParameters checks id issuance, names and the parameter flag.
func TestVariablesAndParameters(t *testing.T) {
	m := model.NewModel()
	ids := m.AddVariables("x", "y")
	p := m.AddParameter("p")

	require.Equal(t, []model.VariableID{1, 2, 3}, append(ids, p))
	require.Equal(t, 3, m.NumVariables())
	require.True(t, m.IsParameter(p))
	require.False(t, m.IsParameter(ids[0]))
	require.False(t, m.IsParameter(99))

	require.NoError(t, m.SetParameter(ids[1], true))
	require.True(t, m.IsParameter(ids[1]))
	require.ErrorIs(t, m.SetParameter(99, true), model.ErrUnknownVariable)

	require.NoError(t, m.SetVariableName(ids[0], "x0"))
	require.Equal(t, "x0", m.VariableName(ids[0]))
	got, ok := m.VariableByName("p")
	require.True(t, ok)
	require.Equal(t, p, got)
	_, ok = m.VariableByName("nope")
	require.False(t, ok)
}

// TestAddConstraintValidation walks each rejection path of AddConstraint.
func TestAddConstraintValidation(t *testing.T) {
	m := model.NewModel()
	x := m.AddVariable("x")

	_, err := m.AddConstraint("nil", nil, cone.NewNonnegatives(1))
	require.ErrorIs(t, err, model.ErrNilFunction)

	_, err = m.AddConstraint("dim", model.VectorOfVariables{Vars: []model.VariableID{x, x}}, cone.NewNonnegatives(3))
	require.ErrorIs(t, err, model.ErrDimensionMismatch)

	_, err = m.AddConstraint("unknown", model.VariableIndex{Var: 42}, cone.NewGreaterThan(0))
	require.ErrorIs(t, err, model.ErrUnknownVariable)

	_, err = m.AddConstraint("row", model.VectorAffine{
		Terms:     []model.VectorAffineTerm{{Row: 2, Term: model.AffineTerm{Coef: 1, Var: x}}},
		Constants: []float64{0, 0},
	}, cone.NewZeros(2))
	require.ErrorIs(t, err, model.ErrDimensionMismatch)

	_, err = m.AddConstraint("exp", model.VectorOfVariables{Vars: []model.VariableID{x, x}}, cone.Set{Kind: cone.ExponentialCone, Dim: 2})
	require.ErrorIs(t, err, cone.ErrBadDimension)

	c, err := m.AddConstraint("ok", model.VariableIndex{Var: x}, cone.NewLessThan(3))
	require.NoError(t, err)
	got, err := m.Constraint(c)
	require.NoError(t, err)
	require.Equal(t, "ok", got.Name)
	require.Equal(t, cone.NewLessThan(3), got.Set)

	id, ok := m.ConstraintByName("ok")
	require.True(t, ok)
	require.Equal(t, c, id)
	require.NoError(t, m.SetConstraintName(c, "renamed"))
	require.Equal(t, "renamed", m.ConstraintName(c))
	require.ErrorIs(t, m.SetConstraintName(7, "x"), model.ErrUnknownConstraint)
	_, err = m.Constraint(7)
	require.ErrorIs(t, err, model.ErrUnknownConstraint)
}

// TestStoredFunctionIsCopied ensures later mutation of caller slices does not leak in.
func TestStoredFunctionIsCopied(t *testing.T) {
	m := model.NewModel()
	x, y := m.AddVariable("x"), m.AddVariable("y")
	vars := []model.VariableID{x, y}
	c, err := m.AddConstraint("v", model.VectorOfVariables{Vars: vars}, cone.NewNonnegatives(2))
	require.NoError(t, err)
	vars[0] = y

	got, err := m.Constraint(c)
	require.NoError(t, err)
	require.Equal(t, []model.VariableID{x, y}, got.Func.(model.VectorOfVariables).Vars)
}

// TestObjective checks defaults and validation of SetObjective.
func TestObjective(t *testing.T) {
	m := model.NewModel()
	x := m.AddVariable("x")
	require.Equal(t, model.Feasibility, m.Objective().Sense)

	require.ErrorIs(t, m.SetObjective(model.Minimize, nil), model.ErrNilFunction)
	require.ErrorIs(t, m.SetObjective(model.Minimize, model.VectorOfVariables{Vars: []model.VariableID{x, x}}), model.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetObjective(model.Minimize, model.VariableIndex{Var: 9}), model.ErrUnknownVariable)

	require.NoError(t, m.SetObjective(model.Maximize, model.VariableIndex{Var: x}))
	obj := m.Objective()
	require.Equal(t, model.Maximize, obj.Sense)
	require.Equal(t, "max", obj.Sense.String())
	require.Equal(t, model.KindVariableIndex, obj.Func.Kind())
}

// TestConcurrentMutation exercises the RWMutex under the race detector.
func TestConcurrentMutation(t *testing.T) {
	m := model.NewModel()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				v := m.AddVariable("")
				_, _ = m.AddConstraint("", model.VariableIndex{Var: v}, cone.NewGreaterThan(0))
				_ = m.Constraints()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 400, m.NumVariables())
	require.Equal(t, 400, m.NumConstraints())
}
