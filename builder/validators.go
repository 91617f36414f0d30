// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin ensures got >= min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, fmt.Errorf("parameter must be ≥ %d, got %d: %w", min, got, ErrTooSmall))
	}
	return nil
}

// validateRand ensures the stochastic constructor has an RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource)
	}
	return nil
}
