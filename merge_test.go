package cdnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextGeneration(t *testing.T) {
	arena := firstGeneration([]string{"ABC'", "ABC", "AB'C'", "AB'C", "A'BC"})

	second := nextGeneration(arena, 1)
	require.Len(t, second, 5)
	got := make([]string, len(second))
	for i, term := range second {
		got[i] = term.String()
	}
	assert.Equal(t, []string{"AC'", "AB'", "AB", "AC", "BC"}, got)

	// Rows continue the arena, provenance is the sorted parent union, and
	// every parent of a merge is marked covered.
	for i, term := range second {
		assert.Equal(t, len(arena)+i, term.Row)
		assert.Equal(t, 2, term.Generation)
		assert.Len(t, term.Source, 2)
	}
	assert.Equal(t, []int{0, 1}, second[0].Source)
	for _, term := range arena {
		assert.True(t, term.Covered, "row %d %q", term.Row, term)
	}

	arena = append(arena, second...)
	third := nextGeneration(arena, 2)
	require.Len(t, third, 1)
	assert.Equal(t, "A", third[0].String())
	assert.Equal(t, []int{0, 1, 2, 4}, third[0].Source)
	assert.Equal(t, 10, third[0].Row)

	// AC'+AC and AB'+AB both collapse to A over the same provenance; the
	// duplicate is dropped but all four parents stay covered. BC survives.
	assert.True(t, arena[5].Covered)
	assert.True(t, arena[6].Covered)
	assert.True(t, arena[7].Covered)
	assert.True(t, arena[8].Covered)
	assert.False(t, arena[9].Covered)

	arena = append(arena, third...)
	assert.Empty(t, nextGeneration(arena, 3))
}

func TestGroupByOnes(t *testing.T) {
	arena := firstGeneration([]string{"A'B'C'", "AB'C'", "A'BC'", "ABC"})
	groups := groupByOnes(arena)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 1)
	assert.Len(t, groups[1], 2)
	assert.Len(t, groups[2], 1)
}

func TestSourceKey(t *testing.T) {
	assert.Equal(t, "0,2,11", sourceKey([]int{0, 2, 11}))
	assert.Equal(t, "", sourceKey(nil))
}
