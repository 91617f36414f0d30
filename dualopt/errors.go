// SPDX-License-Identifier: MIT
// Package dualopt: sentinel error set.

package dualopt

import (
	"errors"
	"fmt"
)

var (
	// ErrCollaborator marks an error returned by the wrapped optimizer.
	ErrCollaborator = errors.New("dualopt: wrapped optimizer failed")

	// ErrNoModel indicates a query or Optimize before SetModel.
	ErrNoModel = errors.New("dualopt: no model set")

	// ErrResultLength indicates the wrapped optimizer returned a value slice
	// whose length differs from the queried constraint's dimension.
	ErrResultLength = errors.New("dualopt: wrapped optimizer returned a wrong-length result")
)

// collaboratorErrorf wraps an inner error so both ErrCollaborator and err
// match errors.Is.
func collaboratorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrCollaborator, err)
}

func dualoptErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lengthErrorf reports a wrong-length collaborator result as a collaborator
// error.
func lengthErrorf(tag string, got, want int) error {
	return collaboratorErrorf(tag, fmt.Errorf("%d values for dimension %d: %w", got, want, ErrResultLength))
}
