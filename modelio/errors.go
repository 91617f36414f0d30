// SPDX-License-Identifier: MIT
// Package modelio: sentinel error set.

package modelio

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a nil model passed to FromModel or Encode.
	ErrNilModel = errors.New("modelio: nil model")

	// ErrUnknownFormat indicates a format (or file extension) with no codec.
	ErrUnknownFormat = errors.New("modelio: unknown document format")

	// ErrUnknownKind indicates a function kind the document cannot express.
	ErrUnknownKind = errors.New("modelio: unknown function kind")

	// ErrUnknownSense indicates an objective sense other than min/max/feasibility.
	ErrUnknownSense = errors.New("modelio: unknown objective sense")

	// ErrUnknownName indicates a reference to an undeclared variable.
	ErrUnknownName = errors.New("modelio: unknown variable name")

	// ErrDuplicateName indicates a variable or parameter declared twice.
	ErrDuplicateName = errors.New("modelio: duplicate variable name")

	// ErrEmptyName indicates an empty variable or parameter name.
	ErrEmptyName = errors.New("modelio: empty variable name")
)

func modelioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
