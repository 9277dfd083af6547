package cdnf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Result carries the full output of a minimization run.
type Result struct {
	// Expression is the minimized sum-of-products, or "0"/"1" for the
	// constant functions.
	Expression string
	// Terms is the whole reduction arena: generation-1 minterms first, then
	// every merged term, in creation order. Terms[i].Row == i always holds.
	Terms []Term
	// Alternatives lists the equally-minimal completions found when the
	// essential prime implicants left a coverage gap that no single term
	// closed. Each entry is a set of rows into Terms; entry 0 is the
	// completion used in Expression. Empty for most functions.
	Alternatives [][]int
}

// Minimize reduces a Boolean function to an irredundant sum-of-products
// using the Quine-McCluskey algorithm, falling back to a bounded
// combination search over prime implicants when the essential ones do not
// cover every minterm.
func Minimize(in Input) (string, error) {
	r, err := MinimizeFull(in)
	if err != nil {
		return "", err
	}
	return r.Expression, nil
}

// MinimizeFull is Minimize returning the reduction arena and the
// equally-minimal alternative completions alongside the expression.
func MinimizeFull(in Input) (*Result, error) {
	terms, err := in.canonicalTerms()
	if err != nil {
		return nil, err
	}
	dontCares, err := in.dontCares()
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: no terms", ErrInvalidInput)
	}
	if err := validateAlphabet(terms); err != nil {
		return nil, err
	}
	return minimize(terms, dontCares), nil
}

// minimize runs the pipeline over validated canonical terms: build the first
// generation, merge to the fixpoint, select the cover, format.
func minimize(terms []string, dontCares []int) *Result {
	arena := firstGeneration(terms)
	markDontCares(arena, dontCares)

	for gen := 1; ; gen++ {
		next := nextGeneration(arena, gen)
		if len(next) == 0 {
			break
		}
		log.Debugf("generation %d: %d merged terms", gen+1, len(next))
		arena = append(arena, next...)
	}

	alternatives := selectImplicants(arena)

	var rendered []string
	for _, t := range arena {
		if t.Final != FinalNone {
			rendered = append(rendered, t.String())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(rendered)))
	expr := joinTerms(rendered)

	// Constant functions: a lone empty-literal generation-1 term is the
	// all-false function; a cover that renders to nothing (every literal
	// merged away) is the all-true function.
	if len(arena) > 0 && len(arena[0].Literals) == 0 {
		expr = "0"
	} else if expr == "" {
		expr = "1"
	}

	return &Result{Expression: expr, Terms: arena, Alternatives: alternatives}
}

// firstGeneration parses canonical term strings into the generation-1 arena:
// duplicates collapse to their first occurrence, terms sort by ascending
// ones count, and each gets its row index as its sole provenance entry.
func firstGeneration(terms []string) []Term {
	seen := make(map[string]bool, len(terms))
	arena := make([]Term, 0, len(terms))
	for _, s := range terms {
		lits := parseLiterals(s)
		key := strings.Join(lits, "")
		if seen[key] {
			continue
		}
		seen[key] = true
		arena = append(arena, Term{
			Literals:   lits,
			Ones:       onesCount(lits),
			Generation: 1,
			Binary:     makeBinary(lits),
		})
	}
	sort.SliceStable(arena, func(i, j int) bool { return arena[i].Ones < arena[j].Ones })
	for i := range arena {
		arena[i].Row = i
		arena[i].Source = []int{i}
	}
	return arena
}

// markDontCares flags the generation-1 terms whose truth-table row appears
// in the don't-care list. Rows that match no term are ignored.
func markDontCares(arena []Term, dontCares []int) {
	if len(dontCares) == 0 {
		return
	}
	dc := make(map[int]bool, len(dontCares))
	for _, idx := range dontCares {
		dc[idx] = true
	}
	for i, t := range arena {
		if t.Binary == "" {
			continue
		}
		v, err := strconv.ParseUint(t.Binary, 2, 64)
		if err == nil && dc[int(v)] {
			arena[i].DontCare = true
		}
	}
}
