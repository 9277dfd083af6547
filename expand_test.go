package cdnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCanonicalForm(t *testing.T) {
	cases := []struct {
		name     string
		expr     string
		ranged   bool
		expected string
	}{
		{
			name:     "missing letters expand",
			expr:     "A + BD'",
			expected: "ABD' + ABD + AB'D' + AB'D + A'BD'",
		},
		{
			name:     "ranged fills the alphabet gap",
			expr:     "A + BD'",
			ranged:   true,
			expected: "ABCD' + ABCD + ABC'D' + ABC'D + AB'CD' + AB'CD + AB'C'D' + AB'C'D + A'BCD' + A'BC'D'",
		},
		{
			name:     "lowercase letters",
			expr:     "r + su'",
			expected: "rsu' + rsu + rs'u' + rs'u + r'su'",
		},
		{
			name:     "lowercase ranged",
			expr:     "r + su'",
			ranged:   true,
			expected: "rstu' + rstu + rst'u' + rst'u + rs'tu' + rs'tu + rs't'u' + rs't'u + r'stu' + r'st'u'",
		},
		{
			name:     "already canonical is a fixpoint",
			expr:     "AB + A'B",
			expected: "AB + A'B",
		},
		{
			name:     "duplicate expansions collapse",
			expr:     "A + A",
			expected: "A",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToCanonicalForm(tc.expr, tc.ranged)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestExpandTerms(t *testing.T) {
	got, err := ExpandTerms([]string{"A", "BD'"}, false)
	require.NoError(t, err)
	assert.Equal(t, "ABD' + ABD + AB'D' + AB'D + A'BD'", got)
}

func TestExpandTermsRangedNeedsLetters(t *testing.T) {
	_, err := ExpandTerms([]string{""}, true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCollectLetters(t *testing.T) {
	assert.Equal(t, []byte("ABD"), collectLetters([]string{"A", "BD'"}))
	assert.Equal(t, []byte("rsu"), collectLetters([]string{"r", "su'"}))
	assert.Empty(t, collectLetters([]string{""}))
}
