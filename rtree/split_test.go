package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSeedsPicksMaxWaste(t *testing.T) {
	mbrs := []MBR{
		pointMBR([]int32{0, 0}),
		pointMBR([]int32{1, 1}),
		pointMBR([]int32{100, 100}),
	}
	i, j := pickSeeds(mbrs)
	// (0,0) and (100,100) waste the most area together.
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, j)
}

func TestPickSeedsTieBreaksLexicographically(t *testing.T) {
	// A square's two diagonals (0,3) and (1,2) waste the same area
	// (100); the earliest (i, j) pair must win.
	mbrs := []MBR{
		pointMBR([]int32{0, 0}),
		pointMBR([]int32{10, 0}),
		pointMBR([]int32{0, 10}),
		pointMBR([]int32{10, 10}),
	}
	i, j := pickSeeds(mbrs)
	assert.Equal(t, 0, i)
	assert.Equal(t, 3, j)
}

func TestSplitPartitionRespectsMinFill(t *testing.T) {
	// Five entries, min=2: no matter how PickNext would naturally
	// divide them, the forced-assignment rule must leave both groups
	// with at least 2.
	mbrs := []MBR{
		pointMBR([]int32{0, 0}),
		pointMBR([]int32{1, 0}),
		pointMBR([]int32{0, 1}),
		pointMBR([]int32{1, 1}),
		pointMBR([]int32{50, 50}),
	}
	groupA, groupB := splitPartition(mbrs, 2)

	require.GreaterOrEqual(t, len(groupA), 2)
	require.GreaterOrEqual(t, len(groupB), 2)
	assert.Equal(t, len(mbrs), len(groupA)+len(groupB))

	seen := map[int]bool{}
	for _, idx := range append(append([]int{}, groupA...), groupB...) {
		assert.False(t, seen[idx], "index %d assigned to both groups", idx)
		seen[idx] = true
	}
}

func TestSplitPartitionIsDeterministic(t *testing.T) {
	mbrs := []MBR{
		pointMBR([]int32{0, 0}),
		pointMBR([]int32{10, 0}),
		pointMBR([]int32{0, 10}),
		pointMBR([]int32{10, 10}),
		pointMBR([]int32{5, 5}),
	}
	a1, b1 := splitPartition(mbrs, 2)
	a2, b2 := splitPartition(mbrs, 2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}
