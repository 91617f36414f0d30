// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a 0-based variable index to its name.
type IDFn func(idx int) string

// DefaultIDFn returns "x1", "x2", ….
func DefaultIDFn(idx int) string {
	return "x" + strconv.Itoa(idx+1)
}

// IndexedIDFn returns a scheme "<prefix><idx+1>". Panics on an empty prefix.
func IndexedIDFn(prefix string) IDFn {
	if prefix == "" {
		panic("IndexedIDFn: empty prefix")
	}
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("IndexedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}
