// SPDX-License-Identifier: MIT
// Package cone: sentinel error set.
// Every message is prefixed with "cone: ..."; callers branch with errors.Is.

package cone

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCone indicates a Set whose Kind was never registered.
	ErrUnknownCone = errors.New("cone: unknown cone kind")

	// ErrMissingDualSet indicates a cone registered without a dual-set function.
	ErrMissingDualSet = errors.New("cone: cone registered without dual set")

	// ErrDualDimension indicates a DualSet function returned a cone whose
	// dimension differs from its input.
	ErrDualDimension = errors.New("cone: dual cone dimension mismatch")

	// ErrBadDimension indicates a Set whose dimension/metadata is invalid
	// for its kind (e.g. an exponential cone of dimension 2).
	ErrBadDimension = errors.New("cone: invalid cone dimension")

	// ErrBadParameter indicates invalid kind metadata (non-finite bound,
	// power exponent outside (0,1)).
	ErrBadParameter = errors.New("cone: invalid cone parameter")

	// ErrLengthMismatch indicates inner-product operands of different length
	// or of a length different from the cone dimension.
	ErrLengthMismatch = errors.New("cone: vector length mismatch")

	// ErrEmptyKind indicates registration with an empty kind tag.
	ErrEmptyKind = errors.New("cone: empty kind")
)

// coneErrorf attaches a call-site tag to a sentinel, keeping errors.Is intact.
func coneErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
