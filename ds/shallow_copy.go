package ds

import (
	"sort"
)

func ShallowCopy[T any](ts []T) []T {
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}

// SortedStableBy returns a sorted shallow copy, leaving ts untouched.
// Equal elements keep their relative order, which makes the result
// deterministic whenever ts itself is.
func SortedStableBy[T any](ts []T, less func(a T, b T) bool) []T {
	tsCopy := ShallowCopy(ts)
	sort.SliceStable(
		tsCopy,
		func(i, j int) bool {
			return less(tsCopy[i], tsCopy[j])
		},
	)
	return tsCopy
}
