package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShallowCopy(t *testing.T) {
	ts := []int{3, 1, 2}
	tsCopy := ShallowCopy(ts)
	assert.Equal(t, ts, tsCopy)

	tsCopy[0] = 99
	assert.Equal(t, []int{3, 1, 2}, ts)
}

func TestSortedStableBy(t *testing.T) {
	type Pair struct {
		Rank  int
		Label string
	}
	pairs := []Pair{
		{2, "c"},
		{1, "a"},
		{2, "b"},
		{1, "d"},
	}
	sorted := SortedStableBy(
		pairs,
		func(a Pair, b Pair) bool {
			return a.Rank < b.Rank
		},
	)

	assert.Equal(
		t,
		[]Pair{{1, "a"}, {1, "d"}, {2, "c"}, {2, "b"}},
		sorted,
	)
	// the input keeps its order
	assert.Equal(t, Pair{2, "c"}, pairs[0])
}
