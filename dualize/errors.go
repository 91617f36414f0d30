// SPDX-License-Identifier: MIT
// Package dualize: sentinel error set.
// Every message is prefixed with "dualize: ..."; callers use errors.Is.
// cone.ErrUnknownCone / cone.ErrMissingDualSet surface unchanged (wrapped).

package dualize

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a nil model passed to Dualize.
	ErrNilModel = errors.New("dualize: nil model")

	// ErrUnsupportedConstraint indicates a (function, set) pair the
	// classifier does not accept.
	ErrUnsupportedConstraint = errors.New("dualize: unsupported constraint")

	// ErrUnsupportedObjective indicates an objective function kind that is
	// neither affine nor quadratic-plus-affine.
	ErrUnsupportedObjective = errors.New("dualize: unsupported objective")

	// ErrInconsistentParameter indicates a parameter where only decision
	// variables are valid (a variable-only constraint on a parameter) or a
	// VariableParameters entry the model does not know.
	ErrInconsistentParameter = errors.New("dualize: inconsistent parameter")

	// ErrNoDualEntity indicates a map lookup with no dual counterpart
	// (parameters, unknown ids, free dual variables without a set constraint).
	ErrNoDualEntity = errors.New("dualize: no dual entity")
)

// dualizeErrorf wraps err with an operation tag.
func dualizeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
