// SPDX-License-Identifier: MIT
package solver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conedual/model"
	"github.com/katalvlaran/conedual/solver"
)

// recorder is an Optimizer that only records attributes.
type recorder struct {
	solver.Optimizer
	names []string
	vals  map[string]any
}

func (r *recorder) SetAttribute(name string, v any) error {
	if name == "bad" {
		return solver.ErrUnsupportedAttribute
	}
	r.names = append(r.names, name)
	r.vals[name] = v
	return nil
}

func (r *recorder) SetModel(model.ModelLike) error { return nil }

func TestWithAttributesAppliesSorted(t *testing.T) {
	var built *recorder
	ctor := solver.WithAttributes(func() (solver.Optimizer, error) {
		built = &recorder{vals: map[string]any{}}
		return built, nil
	}, map[string]any{"tolerance": 1e-9, "iteration_limit": 50})

	opt, err := ctor()
	require.NoError(t, err)
	require.Same(t, built, opt)
	require.Equal(t, []string{"iteration_limit", "tolerance"}, built.names)
	require.Equal(t, 50, built.vals["iteration_limit"])

	_, err = solver.WithAttributes(func() (solver.Optimizer, error) {
		return &recorder{vals: map[string]any{}}, nil
	}, map[string]any{"bad": true})()
	require.ErrorIs(t, err, solver.ErrUnsupportedAttribute)

	boom := errors.New("boom")
	_, err = solver.WithAttributes(func() (solver.Optimizer, error) { return nil, boom }, nil)()
	require.ErrorIs(t, err, boom)

	require.Panics(t, func() { solver.WithAttributes(nil, nil) })
}

func TestAttributeConversions(t *testing.T) {
	f, err := solver.Float("tol", 3)
	require.NoError(t, err)
	require.Equal(t, 3.0, f)
	_, err = solver.Float("tol", "x")
	require.ErrorIs(t, err, solver.ErrUnsupportedAttribute)

	n, err := solver.Int("iter", 7.0)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	_, err = solver.Int("iter", 7.5)
	require.ErrorIs(t, err, solver.ErrUnsupportedAttribute)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "OPTIMAL", solver.Optimal.String())
	require.Equal(t, "DUAL_INFEASIBLE", solver.DualInfeasible.String())
	require.Equal(t, "Status(99)", solver.Status(99).String())
}
