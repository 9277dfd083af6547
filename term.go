package cdnf

import (
	"regexp"
	"sort"
	"strings"
)

// Final marks how a term participates in the minimized cover.
type Final uint8

const (
	// FinalNone is the default: the term is not part of the cover.
	FinalNone Final = iota
	// FinalRequired marks an essential prime implicant.
	FinalRequired
	// FinalAdded marks a term chosen to complete the cover.
	FinalAdded
)

func (f Final) String() string {
	switch f {
	case FinalRequired:
		return "required"
	case FinalAdded:
		return "added"
	}
	return "none"
}

// Term is one product term in the reduction arena. Generation-1 terms come
// straight from the canonical form; each later generation is produced by
// merging two terms of the generation below. Row is the term's stable index
// into the arena and never changes once assigned; Source lists the
// generation-1 rows the term derives from, so the union of Source over the
// selected terms is exactly the minterm set the result covers.
type Term struct {
	Literals   []string // sorted literal set, e.g. ["A", "B'", "D"]
	Covered    bool     // consumed by a higher-generation merge
	Ones       int      // count of unprimed letters
	Source     []int    // sorted generation-1 provenance rows
	Generation int
	Final      Final
	Binary     string // generation 1 only: literals as bits, primed = 0
	Row        int
	DontCare   bool // generation 1 only
}

// String renders the term's literal set, e.g. "A'BD".
func (t Term) String() string {
	return strings.Join(t.Literals, "")
}

var litPattern = regexp.MustCompile(`[A-Za-z]'*`)

// parseLiterals splits a product-term string into its sorted literal set.
// Duplicate literals collapse. The empty string yields the empty set, which
// stands for the constant-false placeholder term.
func parseLiterals(term string) []string {
	found := litPattern.FindAllString(term, -1)
	if len(found) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(found))
	lits := make([]string, 0, len(found))
	for _, l := range found {
		if !seen[l] {
			seen[l] = true
			lits = append(lits, l)
		}
	}
	sort.Strings(lits)
	return lits
}

// onesCount counts the unprimed letters in a literal set.
func onesCount(lits []string) int {
	n := 0
	for _, l := range lits {
		if !strings.HasSuffix(l, "'") {
			n++
		}
	}
	return n
}

// makeBinary encodes a literal set as a bit string over its sorted letters:
// unprimed letters are 1, primed letters are 0. Generation-1 terms keep this
// encoding so the original truth-table row of each minterm stays recoverable.
func makeBinary(lits []string) string {
	var b strings.Builder
	for _, l := range lits {
		if strings.HasSuffix(l, "'") {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}

// baseLetter strips the negation marker from a literal.
func baseLetter(lit string) string {
	return strings.TrimRight(lit, "'")
}

// symmetricDifference of two sorted literal sets, itself sorted.
func symmetricDifference(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// intersectLiterals of two sorted literal sets, itself sorted.
func intersectLiterals(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// mergeable reports whether two terms differ in exactly one literal's
// polarity: their symmetric difference must be two literals over the same
// base letter. Terms satisfying this always have Ones counts one apart.
func mergeable(a, b Term) bool {
	diff := symmetricDifference(a.Literals, b.Literals)
	return len(diff) == 2 && baseLetter(diff[0]) == baseLetter(diff[1])
}

// mergeSources is the sorted union of two provenance lists. Parents of a
// merge never share generation-1 rows, so plain append-and-sort suffices.
func mergeSources(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Ints(out)
	return out
}
