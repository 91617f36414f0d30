// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// CoefFn draws one constraint coefficient. rng may be nil.
type CoefFn func(rng *rand.Rand) float64

// DefaultCoefFn draws an integer in [-3, 3] with an RNG and DefaultCoef
// without one.
func DefaultCoefFn(rng *rand.Rand) float64 {
	return IntCoefFn(-3, 3)(rng)
}

// ConstantCoefFn always returns value.
func ConstantCoefFn(value float64) CoefFn {
	return func(*rand.Rand) float64 { return value }
}

// IntCoefFn draws integers uniformly from [lo, hi]; DefaultCoef without an
// RNG. Panics if hi < lo.
func IntCoefFn(lo, hi int) CoefFn {
	if hi < lo {
		panic(fmt.Sprintf("IntCoefFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCoef
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}
