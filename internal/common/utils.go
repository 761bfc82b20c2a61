package common

import "strings"

// ContainsFold reports whether sub is within s, ignoring case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// AnyContains returns true if any of the candidates contains sub.
// Matching is exact and case-sensitive.
func AnyContains(sub string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.Contains(c, sub) {
			return true
		}
	}
	return false
}

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
