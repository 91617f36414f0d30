// SPDX-License-Identifier: MIT

// Package cone describes the closed convex cones a conic model constrains its
// affine expressions into, and the registry that knows how to dualize them.
//
// What & Why:
//
//	A constraint "f(x) ∈ C" is dualized into a dual variable y living in the
//	dual cone C*. The Registry maps every cone kind to:
//	  • a DualSet function (C → C*, same dimension), and
//	  • an optional InnerProduct (the natural ⟨x, y⟩ of the cone; plain dot
//	    product when absent).
//
// Built-in kinds:
//
//	Nonnegatives, Nonpositives, Zeros, Reals,
//	GreaterThan, LessThan, EqualTo              (scalar sets, carry a Bound)
//	SecondOrderCone, RotatedSecondOrderCone,
//	PositiveSemidefiniteConeTriangle            (carries Side)
//	ExponentialCone, DualExponentialCone,
//	PowerCone, DualPowerCone                    (carry Exponent)
//
// Extension:
//
//	r := cone.NewRegistry()
//	_ = r.Register("fake", func(s cone.Set) (cone.Set, error) {
//		return cone.Custom("fake_dual", s.Dim), nil
//	}, func(x, y []float64, _ cone.Set) float64 { return 2 * cone.Dot(x, y) })
//
// Concurrency:
//
//	Register/RegisterCapability mutate the registry and must happen during
//	setup, before the registry is shared. DualSet/InnerProduct are read-only.
package cone
