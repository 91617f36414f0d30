// SPDX-License-Identifier: MIT

package dualize

import "strconv"

// prefixed returns prefix+name, or "" for unnamed entities.
func prefixed(prefix, name string) string {
	if name == "" {
		return ""
	}
	return prefix + name
}

// componentName names component k (0-based) of a vector dual variable as
// "name[k+1]".
func componentName(prefix, name string, k int) string {
	if name == "" {
		return ""
	}
	return prefix + name + "[" + strconv.Itoa(k+1) + "]"
}
