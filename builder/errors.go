// SPDX-License-Identifier: MIT
// Package builder: sentinel error set.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a size parameter below its minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor used without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps model errors raised while constructing.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
