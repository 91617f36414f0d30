// SPDX-License-Identifier: MIT
// Package model: sentinel error set.

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariable indicates a VariableID not issued by the model.
	ErrUnknownVariable = errors.New("model: unknown variable")

	// ErrUnknownConstraint indicates a ConstraintID not issued by the model.
	ErrUnknownConstraint = errors.New("model: unknown constraint")

	// ErrNilFunction indicates a nil Function argument.
	ErrNilFunction = errors.New("model: nil function")

	// ErrDimensionMismatch indicates a function whose dimension differs from
	// its set, a non-scalar objective, or a malformed vector-affine row index.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrNotAffine indicates a quadratic function where rows of an affine map
	// were required.
	ErrNotAffine = errors.New("model: function is not affine")
)

func modelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
