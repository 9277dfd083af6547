package main

import (
	"bytes"
	"testing"

	"github.com/pborges/cdnf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintDetailsSingleAlternative(t *testing.T) {
	// One completing combination is still a search result and must be shown.
	terms := []cdnf.Term{
		{Literals: []string{"A", "B"}, Ones: 2, Source: []int{0}, Generation: 1, Final: cdnf.FinalRequired, Binary: "11", Row: 0},
		{Literals: []string{"A'", "B'"}, Ones: 0, Source: []int{1}, Generation: 1, Final: cdnf.FinalAdded, Binary: "00", Row: 1},
	}
	r := &cdnf.Result{
		Expression:   "AB + A'B'",
		Terms:        terms,
		Alternatives: [][]int{{1}},
	}

	var buf bytes.Buffer
	printDetails(&buf, r)
	out := buf.String()
	assert.Contains(t, out, "equally-minimal alternatives:")
	assert.Contains(t, out, "AB + A'B'")
}

func TestPrintDetailsNoSearch(t *testing.T) {
	r, err := cdnf.MinimizeFull(cdnf.ByInteger(248))
	require.NoError(t, err)
	require.Empty(t, r.Alternatives)

	var buf bytes.Buffer
	printDetails(&buf, r)
	assert.NotContains(t, buf.String(), "equally-minimal alternatives:")
}

func TestPrintDetailsCombinationSearch(t *testing.T) {
	r, err := cdnf.MinimizeFull(cdnf.ByInteger(743))
	require.NoError(t, err)
	require.NotEmpty(t, r.Alternatives)

	var buf bytes.Buffer
	printDetails(&buf, r)
	out := buf.String()
	assert.Contains(t, out, "equally-minimal alternatives:")
	for _, alt := range cdnf.Alternatives(r.Terms, r.Alternatives) {
		assert.Contains(t, out, alt)
	}
}

func TestParseIntList(t *testing.T) {
	indexes, ok := parseIntList("1, 2, 3")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, indexes)

	_, ok = parseIntList("248")
	assert.False(t, ok)

	_, ok = parseIntList("A'B, AB")
	assert.False(t, ok)
}
