package bplus

import "slices"

// search returns the index of target in keys and true when present, else
// the insertion point that keeps keys sorted and false.
func search[K any](keys []K, target K, cmp func(a, b K) int) (int, bool) {
	return slices.BinarySearchFunc(keys, target, cmp)
}

// routeIndex maps a search result to a child slot: an exact match at i goes
// right of the separator (i+1), a miss goes to the insertion point.
func routeIndex[K any](keys []K, target K, cmp func(a, b K) int) (int, bool) {
	i, found := search(keys, target, cmp)
	if found {
		return i + 1, true
	}
	return i, false
}
