// SPDX-License-Identifier: MIT
package cone_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conedual/cone"
)

// TestDualSetBuiltins checks every built-in dual cone and that dimension is preserved.
func TestDualSetBuiltins(t *testing.T) {
	r := cone.NewRegistry()
	cases := []struct {
		name string
		in   cone.Set
		want cone.Set
	}{
		{"nonneg", cone.NewNonnegatives(4), cone.NewNonnegatives(4)},
		{"nonpos", cone.NewNonpositives(2), cone.NewNonpositives(2)},
		{"zeros", cone.NewZeros(3), cone.NewReals(3)},
		{"reals", cone.NewReals(3), cone.NewZeros(3)},
		{"soc", cone.NewSecondOrderCone(3), cone.NewSecondOrderCone(3)},
		{"rsoc", cone.NewRotatedSecondOrderCone(4), cone.NewRotatedSecondOrderCone(4)},
		{"psd", cone.NewPSDTriangle(3), cone.NewPSDTriangle(3)},
		{"exp", cone.NewExponentialCone(), cone.NewDualExponentialCone()},
		{"dualexp", cone.NewDualExponentialCone(), cone.NewExponentialCone()},
		{"pow", cone.NewPowerCone(0.3), cone.NewDualPowerCone(0.3)},
		{"dualpow", cone.NewDualPowerCone(0.7), cone.NewPowerCone(0.7)},
		{"ge", cone.NewGreaterThan(5), cone.NewGreaterThan(0)},
		{"le", cone.NewLessThan(-2), cone.NewLessThan(0)},
		{"eq", cone.NewEqualTo(1), cone.NewReals(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.DualSet(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.in.Dim, got.Dim) // dual of identical dimension
		})
	}
}

// TestDualSetUnknown ensures unregistered kinds fail with ErrUnknownCone.
func TestDualSetUnknown(t *testing.T) {
	r := cone.NewRegistry()
	_, err := r.DualSet(cone.Custom("fake", 3))
	require.ErrorIs(t, err, cone.ErrUnknownCone)
}

// TestRegisterRequiresDualSet ensures a nil dual-set function is rejected.
func TestRegisterRequiresDualSet(t *testing.T) {
	r := cone.NewRegistry()
	require.ErrorIs(t, r.Register("fake", nil, nil), cone.ErrMissingDualSet)
	require.ErrorIs(t, r.Register("", func(s cone.Set) (cone.Set, error) { return s, nil }, nil), cone.ErrEmptyKind)
	require.False(t, r.Registered("fake"))
}

// TestDualSetDimensionGuard ensures a dimension-changing user dual is caught.
func TestDualSetDimensionGuard(t *testing.T) {
	r := cone.NewRegistry()
	require.NoError(t, r.Register("shrink", func(s cone.Set) (cone.Set, error) {
		return cone.Custom("shrink", s.Dim-1), nil
	}, nil))
	_, err := r.DualSet(cone.Custom("shrink", 3))
	require.ErrorIs(t, err, cone.ErrDualDimension)
}

// TestDualSetPropagatesUserError keeps user errors reachable through errors.Is.
func TestDualSetPropagatesUserError(t *testing.T) {
	boom := errors.New("boom")
	r := cone.NewRegistry()
	require.NoError(t, r.Register("bad", func(cone.Set) (cone.Set, error) { return cone.Set{}, boom }, nil))
	_, err := r.DualSet(cone.Custom("bad", 1))
	require.ErrorIs(t, err, boom)
}

// TestInnerProduct covers the default dot, the PSD triangle and a custom override.
func TestInnerProduct(t *testing.T) {
	r := cone.NewRegistry()

	v, err := r.InnerProduct([]float64{1, 2, 3}, []float64{4, 5, 6}, cone.NewNonnegatives(3))
	require.NoError(t, err)
	require.Equal(t, 32.0, v)

	// [a b; b c] ordering is (a, b, c); off-diagonal b counts twice.
	v, err = r.InnerProduct([]float64{1, 2, 3}, []float64{1, 1, 1}, cone.NewPSDTriangle(2))
	require.NoError(t, err)
	require.Equal(t, 1.0+4.0+3.0, v)

	require.NoError(t, r.Register("fake", func(s cone.Set) (cone.Set, error) {
		return cone.Custom("fake_dual", s.Dim), nil
	}, func(x, y []float64, _ cone.Set) float64 { return 2 * cone.Dot(x, y) }))
	v, err = r.InnerProduct([]float64{1, 1}, []float64{3, 4}, cone.Custom("fake", 2))
	require.NoError(t, err)
	require.Equal(t, 14.0, v)

	_, err = r.InnerProduct([]float64{1}, []float64{1, 2}, cone.NewNonnegatives(2))
	require.ErrorIs(t, err, cone.ErrLengthMismatch)
}

type doubled struct{}

func (doubled) DualSet(s cone.Set) (cone.Set, error) { return cone.Custom("doubled_dual", s.Dim), nil }
func (doubled) InnerProduct(x, y []float64, _ cone.Set) float64 {
	return 2 * cone.Dot(x, y)
}

// TestRegisterCapability picks up the optional InnerProducer.
func TestRegisterCapability(t *testing.T) {
	r := cone.NewRegistry()
	require.NoError(t, r.RegisterCapability("doubled", doubled{}))
	d, err := r.DualSet(cone.Custom("doubled", 2))
	require.NoError(t, err)
	require.Equal(t, cone.Kind("doubled_dual"), d.Kind)

	v, err := r.InnerProduct([]float64{1, 2}, []float64{1, 1}, cone.Custom("doubled", 2))
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	require.Contains(t, r.Kinds(), cone.Kind("doubled"))
}
