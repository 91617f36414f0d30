// SPDX-License-Identifier: MIT
package dualize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/dualize"
	"github.com/katalvlaran/conedual/model"
)

// TestClassifierDefaults spot-checks the default support table.
func TestClassifierDefaults(t *testing.T) {
	c := dualize.NewClassifier()

	tests := []struct {
		fk   model.FunctionKind
		sk   cone.Kind
		want bool
	}{
		{model.KindVariableIndex, cone.GreaterThan, true},
		{model.KindScalarAffine, cone.EqualTo, true},
		{model.KindVectorAffine, cone.SecondOrderCone, true},
		{model.KindVectorOfVariables, cone.PSDTriangle, true},
		{model.KindVectorAffine, cone.DualPowerCone, true},
		{model.KindScalarAffine, cone.Nonnegatives, false},
		{model.KindVectorAffine, cone.GreaterThan, false},
		{model.KindScalarQuadratic, cone.LessThan, false},
		{model.KindVectorAffine, "FakeCone", false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, c.Supported(tc.fk, tc.sk), "%s-in-%s", tc.fk, tc.sk)
	}

	require.True(t, c.SupportedObjective(model.KindScalarQuadratic))
	require.True(t, c.SupportedObjective(model.KindVariableIndex))
	require.False(t, c.SupportedObjective(model.KindVectorAffine))

	c.Allow(model.KindVectorAffine, "FakeCone")
	require.True(t, c.Supported(model.KindVectorAffine, "FakeCone"))
}

// TestClassifierCheckNamesPair reports the offending pair.
func TestClassifierCheckNamesPair(t *testing.T) {
	m := model.NewModel()
	x := m.AddVariable("x")
	_, err := m.AddConstraint("bad", model.VectorOfVariables{Vars: []model.VariableID{x}}, cone.NewGreaterThan(0))
	require.NoError(t, err)

	err = dualize.NewClassifier().Check(m)
	require.ErrorIs(t, err, dualize.ErrUnsupportedConstraint)
	require.Contains(t, err.Error(), "VectorOfVariables-in-GreaterThan")
}
