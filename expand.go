package cdnf

import (
	"fmt"
	"sort"
	"strings"
)

// ToCanonicalForm expands a minimized sum-of-products expression back into a
// canonical covering of the same function. Each term gains every combination
// of the letters it is missing, so the result lists full minterms only. When
// ranged is set the letter alphabet is widened to the contiguous span between
// the smallest and largest letter seen anywhere in the expression; the
// expansion is then exponential in the width of that span.
func ToCanonicalForm(expression string, ranged bool) (string, error) {
	return ExpandTerms(splitExpression(expression), ranged)
}

// ExpandTerms is ToCanonicalForm over an already-split term list.
func ExpandTerms(terms []string, ranged bool) (string, error) {
	letters := collectLetters(terms)
	if ranged {
		if len(letters) == 0 {
			return "", fmt.Errorf("%w: no letters to range over", ErrInvalidInput)
		}
		lo, hi := letters[0], letters[len(letters)-1]
		letters = letters[:0]
		for c := lo; c <= hi; c++ {
			letters = append(letters, c)
		}
	}

	seen := make(map[string]bool)
	var final []string
	for _, term := range terms {
		lits := parseLiterals(term)
		present := make(map[byte]bool, len(lits))
		for _, l := range lits {
			present[baseLetter(l)[0]] = true
		}
		var missing []byte
		for _, c := range letters {
			if !present[c] {
				missing = append(missing, c)
			}
		}
		// Every subset of the missing letters primed is one expansion.
		for mask := 0; mask < 1<<uint(len(missing)); mask++ {
			full := make([]string, len(lits), len(lits)+len(missing))
			copy(full, lits)
			for j, c := range missing {
				lit := string(c)
				if mask&(1<<uint(j)) != 0 {
					lit += "'"
				}
				full = append(full, lit)
			}
			sort.Strings(full)
			s := strings.Join(full, "")
			if !seen[s] {
				seen[s] = true
				final = append(final, s)
			}
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(final)))
	return joinTerms(final), nil
}

// collectLetters gathers the sorted distinct base letters of a term list.
func collectLetters(terms []string) []byte {
	present := make(map[byte]bool)
	for _, term := range terms {
		for i := 0; i < len(term); i++ {
			c := term[i]
			if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
				present[c] = true
			}
		}
	}
	letters := make([]byte, 0, len(present))
	for c := range present {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
