// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"sort"
)

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Float reads a numeric attribute value as float64. Integer kinds are
// converted; anything else fails with ErrUnsupportedAttribute.
func Float(name string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%s=%v: %w", name, v, ErrUnsupportedAttribute)
	}
}

// Int reads an integral attribute value. Floats with a fractional part fail.
func Int(name string, v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x == float64(int(x)) {
			return int(x), nil
		}
	}
	return 0, fmt.Errorf("%s=%v: %w", name, v, ErrUnsupportedAttribute)
}
