package cdnf

import (
	"fmt"
	"math/bits"
	"sort"
)

// BitOrder fixes which end of a minterm's binary index the letter A reads.
type BitOrder int

const (
	// HighOrderA maps A to the high-order bit of each minterm index.
	HighOrderA BitOrder = iota
	// LowOrderA maps A to the low-order bit instead.
	LowOrderA
)

// alphabet orders the variable letters, uppercase before lowercase.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Canonical converts a truth-table integer to its canonical disjunctive
// normal form. Bit i of value marks truth-table row i as true; the number of
// variables is the bit width needed to index the highest set bit, with a
// floor of two. Terms are joined with " + " in reverse-lexicographic order.
// When includePrefix is set the result is wrapped as "f(value) = ...".
//
// Canonical(0) has no true rows and renders as the empty expression.
func Canonical(value uint64, order BitOrder, includePrefix bool) string {
	n := bits.Len64(value)
	width := letterWidth(n)

	var terms []string
	for i := 0; i < n; i++ {
		if value&(1<<uint(i)) != 0 {
			idx := fmt.Sprintf("%0*b", width, i)
			terms = append(terms, mintermString(idx, order))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(terms)))

	result := joinTerms(terms)
	if includePrefix {
		result = fmt.Sprintf("f(%d) = %s", value, result)
	}
	return result
}

// letterWidth is the number of variables needed to index n truth-table rows:
// the bit width of the highest row index, never fewer than two.
func letterWidth(n int) int {
	if n < 2 {
		return 2
	}
	width := bits.Len(uint(n - 1))
	if width < 2 {
		width = 2
	}
	return width
}

// mintermString renders a binary row index as a product term: one letter per
// bit position, primed where the bit is 0. HighOrderA reads the index as
// written; LowOrderA reads it back to front.
func mintermString(idx string, order BitOrder) string {
	if order == LowOrderA {
		idx = reverseString(idx)
	}
	out := make([]byte, 0, 2*len(idx))
	for i := 0; i < len(idx); i++ {
		out = append(out, alphabet[i])
		if idx[i] == '0' {
			out = append(out, '\'')
		}
	}
	return string(out)
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func joinTerms(terms []string) string {
	out := ""
	for i, t := range terms {
		if i > 0 {
			out += " + "
		}
		out += t
	}
	return out
}
