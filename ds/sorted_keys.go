package ds

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedKeys returns the keys of m in ascending order,
// so that iterating a map produces a deterministic sequence.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(
		keys,
		func(i, j int) bool {
			return keys[i] < keys[j]
		},
	)
	return keys
}
