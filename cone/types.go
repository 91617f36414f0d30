// SPDX-License-Identifier: MIT

// Package cone: Set value type, built-in kinds and constructors.
//
// A Set is a small tagged value: Kind selects the cone family, Dim is the
// vector dimension, and the remaining fields carry the metadata some kinds
// need (Side for the triangular PSD cone, Exponent for power cones, Bound for
// the scalar sets). Sets are compared by value.

package cone

import (
	"fmt"
	"math"
)

// Kind is the tag of a cone family. Built-in kinds are listed below; user
// kinds are any other non-empty string registered on a Registry.
type Kind string

// Built-in cone kinds.
const (
	Nonnegatives           Kind = "Nonnegatives"
	Nonpositives           Kind = "Nonpositives"
	Zeros                  Kind = "Zeros"
	Reals                  Kind = "Reals"
	GreaterThan            Kind = "GreaterThan"
	LessThan               Kind = "LessThan"
	EqualTo                Kind = "EqualTo"
	SecondOrderCone        Kind = "SecondOrderCone"
	RotatedSecondOrderCone Kind = "RotatedSecondOrderCone"
	PSDTriangle            Kind = "PositiveSemidefiniteConeTriangle"
	ExponentialCone        Kind = "ExponentialCone"
	DualExponentialCone    Kind = "DualExponentialCone"
	PowerCone              Kind = "PowerCone"
	DualPowerCone          Kind = "DualPowerCone"
)

// Set is a cone instance: a kind plus its dimension and kind-specific metadata.
type Set struct {
	Kind     Kind    // cone family
	Dim      int     // vector dimension (1 for scalar sets)
	Side     int     // PSDTriangle only: matrix side length
	Exponent float64 // PowerCone/DualPowerCone only: α ∈ (0,1)
	Bound    float64 // GreaterThan/LessThan/EqualTo only: right-hand side
}

// IsScalar reports whether s is one of the scalar sets that carry a Bound.
func (s Set) IsScalar() bool {
	switch s.Kind {
	case GreaterThan, LessThan, EqualTo:
		return true
	default:
		return false
	}
}

// String renders the set as Kind(dim) with metadata where relevant.
func (s Set) String() string {
	switch s.Kind {
	case GreaterThan, LessThan, EqualTo:
		return fmt.Sprintf("%s(%g)", s.Kind, s.Bound)
	case PSDTriangle:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Side)
	case PowerCone, DualPowerCone:
		return fmt.Sprintf("%s(%g)", s.Kind, s.Exponent)
	default:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Dim)
	}
}

// Validate checks the dimension and metadata rules of the built-in kinds.
// User kinds only need Dim >= 1.
func (s Set) Validate() error {
	if s.Dim < 1 {
		return coneErrorf(s.String(), ErrBadDimension)
	}
	switch s.Kind {
	case GreaterThan, LessThan, EqualTo:
		if s.Dim != 1 {
			return coneErrorf(s.String(), ErrBadDimension)
		}
		if math.IsNaN(s.Bound) || math.IsInf(s.Bound, 0) {
			return coneErrorf(s.String(), ErrBadParameter)
		}
	case RotatedSecondOrderCone:
		if s.Dim < 2 {
			return coneErrorf(s.String(), ErrBadDimension)
		}
	case PSDTriangle:
		if s.Side < 1 || s.Dim != TriangleDim(s.Side) {
			return coneErrorf(s.String(), ErrBadDimension)
		}
	case ExponentialCone, DualExponentialCone:
		if s.Dim != 3 {
			return coneErrorf(s.String(), ErrBadDimension)
		}
	case PowerCone, DualPowerCone:
		if s.Dim != 3 {
			return coneErrorf(s.String(), ErrBadDimension)
		}
		if !(s.Exponent > 0 && s.Exponent < 1) {
			return coneErrorf(s.String(), ErrBadParameter)
		}
	}

	return nil
}

// TriangleDim returns side(side+1)/2, the length of the upper-triangular
// vectorisation of a side×side symmetric matrix.
func TriangleDim(side int) int { return side * (side + 1) / 2 }

// ---------- constructors ----------

// NewNonnegatives returns ℝ₊ⁿ.
func NewNonnegatives(n int) Set { return Set{Kind: Nonnegatives, Dim: n} }

// NewNonpositives returns ℝ₋ⁿ.
func NewNonpositives(n int) Set { return Set{Kind: Nonpositives, Dim: n} }

// NewZeros returns {0}ⁿ.
func NewZeros(n int) Set { return Set{Kind: Zeros, Dim: n} }

// NewReals returns ℝⁿ (a free dual variable).
func NewReals(n int) Set { return Set{Kind: Reals, Dim: n} }

// NewGreaterThan returns the scalar set {t : t ≥ b}.
func NewGreaterThan(b float64) Set { return Set{Kind: GreaterThan, Dim: 1, Bound: b} }

// NewLessThan returns the scalar set {t : t ≤ b}.
func NewLessThan(b float64) Set { return Set{Kind: LessThan, Dim: 1, Bound: b} }

// NewEqualTo returns the scalar set {b}.
func NewEqualTo(b float64) Set { return Set{Kind: EqualTo, Dim: 1, Bound: b} }

// NewSecondOrderCone returns {(t,x) : t ≥ ‖x‖₂} of dimension n.
func NewSecondOrderCone(n int) Set { return Set{Kind: SecondOrderCone, Dim: n} }

// NewRotatedSecondOrderCone returns {(t,u,x) : 2tu ≥ ‖x‖², t,u ≥ 0} of dimension n.
func NewRotatedSecondOrderCone(n int) Set { return Set{Kind: RotatedSecondOrderCone, Dim: n} }

// NewPSDTriangle returns the PSD cone of side×side matrices in upper-triangular
// column-wise vectorisation.
func NewPSDTriangle(side int) Set {
	return Set{Kind: PSDTriangle, Dim: TriangleDim(side), Side: side}
}

// NewExponentialCone returns the 3-dimensional exponential cone.
func NewExponentialCone() Set { return Set{Kind: ExponentialCone, Dim: 3} }

// NewDualExponentialCone returns the 3-dimensional dual exponential cone.
func NewDualExponentialCone() Set { return Set{Kind: DualExponentialCone, Dim: 3} }

// NewPowerCone returns the 3-dimensional power cone with exponent alpha.
func NewPowerCone(alpha float64) Set { return Set{Kind: PowerCone, Dim: 3, Exponent: alpha} }

// NewDualPowerCone returns the 3-dimensional dual power cone with exponent alpha.
func NewDualPowerCone(alpha float64) Set {
	return Set{Kind: DualPowerCone, Dim: 3, Exponent: alpha}
}

// Custom returns a user cone of the given kind and dimension.
func Custom(kind Kind, n int) Set { return Set{Kind: kind, Dim: n} }
