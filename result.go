package cdnf

import "strconv"

// ResultToInt reconstructs the truth-table integer of the minimized function
// from the arena's generation-1 terms, summing 2^row over each minterm's
// binary encoding. Feeding back the Terms of a MinimizeFull run returns the
// integer the run started from; the constant-false arena maps to 0.
func ResultToInt(terms []Term) uint64 {
	var sum uint64
	for _, t := range terms {
		if t.Generation != 1 || t.Binary == "" {
			continue
		}
		v, err := strconv.ParseUint(t.Binary, 2, 64)
		if err != nil {
			continue
		}
		sum += 1 << v
	}
	return sum
}

// Alternatives renders each equally-minimal completion as a full expression:
// the required terms in arena order followed by the combination's terms.
// combos is the Alternatives field of a Result over the same Terms.
func Alternatives(terms []Term, combos [][]int) []string {
	var required []string
	for _, t := range terms {
		if t.Final == FinalRequired {
			required = append(required, t.String())
		}
	}

	out := make([]string, 0, len(combos))
	for _, combo := range combos {
		parts := make([]string, 0, len(required)+len(combo))
		parts = append(parts, required...)
		for _, row := range combo {
			parts = append(parts, terms[row].String())
		}
		out = append(out, joinTerms(parts))
	}
	return out
}
