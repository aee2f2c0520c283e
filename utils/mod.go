package utils

import "cmp"

// ArgMax returns the index of the first maximum, or -1 for an empty slice.
func ArgMax[T cmp.Ordered](values []T) int {
	best := -1
	for i, v := range values {
		if best < 0 || v > values[best] {
			best = i
		}
	}
	return best
}

// Filter returns the items whose matching key satisfies keep, preserving order.
func Filter[T, K any](items []T, keys []K, keep func(K) bool) []T {
	kept := make([]T, 0, len(items))
	for i, item := range items {
		if keep(keys[i]) {
			kept = append(kept, item)
		}
	}
	return kept
}
