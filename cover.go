package cdnf

import (
	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// selectImplicants picks the final cover from the merged arena. Uncovered
// terms are the prime implicants; any generation-1 row referenced by exactly
// one of them makes that implicant essential. If the essential implicants
// leave rows uncovered, a single remaining implicant spanning all of them is
// taken, else a combination search over the remaining implicants runs. The
// returned slices are the equally-minimal combinations the search found
// (rows into the arena, entry 0 marked FinalAdded); nil when no search was
// needed.
func selectImplicants(arena []Term) [][]int {
	n := uint(len(arena))

	dontCare := bitset.New(n)
	for _, t := range arena {
		if t.Generation == 1 && t.DontCare {
			dontCare.Set(uint(t.Row))
		}
	}

	// Count how many prime implicants reference each generation-1 row;
	// don't-care rows never need covering and are left out.
	counts := make(map[int]int)
	for _, t := range arena {
		if t.Covered {
			continue
		}
		for _, s := range t.Source {
			if !dontCare.Test(uint(s)) {
				counts[s]++
			}
		}
	}
	required := bitset.New(n)
	for s, c := range counts {
		if c == 1 {
			required.Set(uint(s))
		}
	}

	keep := residualColumns(arena, required, dontCare)
	if keep.Count() == 0 {
		return nil
	}
	log.Debugf("essential implicants leave %d rows uncovered", keep.Count())

	cands := coverCandidates(arena, keep)
	for _, c := range cands {
		if c.cols.Equal(keep) {
			arena[c.row].Final = FinalAdded
			return nil
		}
	}
	return searchCombinations(arena, cands, keep, n)
}

// residualColumns marks the essential prime implicants FinalRequired and
// returns the generation-1 rows still uncovered: rows referenced only by
// non-essential prime implicants, minus everything the essential ones cover
// and minus the don't-care rows.
func residualColumns(arena []Term, required, dontCare *bitset.BitSet) *bitset.BitSet {
	n := uint(len(arena))
	ignore := bitset.New(n)
	keep := bitset.New(n)

	for i, t := range arena {
		if t.Covered || t.DontCare {
			continue
		}
		if intersectsBitset(t.Source, required) {
			arena[i].Final = FinalRequired
			for _, s := range t.Source {
				ignore.Set(uint(s))
			}
		} else {
			for _, s := range t.Source {
				keep.Set(uint(s))
			}
		}
	}
	ignore.InPlaceUnion(dontCare)
	return keep.Difference(ignore)
}

// candidate is a prime implicant still available to complete the cover.
type candidate struct {
	row   int            // arena row
	cols  *bitset.BitSet // its sources restricted to the uncovered rows
	width int            // literal count, the cost measure for ties
}

// coverCandidates lists the unselected prime implicants that touch at least
// one uncovered row, in arena order.
func coverCandidates(arena []Term, keep *bitset.BitSet) []candidate {
	n := uint(len(arena))
	var out []candidate
	for _, t := range arena {
		if t.Covered || t.Final != FinalNone {
			continue
		}
		cols := bitset.New(n)
		for _, s := range t.Source {
			if keep.Test(uint(s)) {
				cols.Set(uint(s))
			}
		}
		if cols.Any() {
			out = append(out, candidate{row: t.Row, cols: cols, width: len(t.Literals)})
		}
	}
	return out
}

// searchCombinations enumerates candidate combinations of growing size until
// some union of columns equals the uncovered set, keeping every combination
// that ties the smallest total literal count. Once any size has produced a
// match, at most two further sizes are searched; a larger combination beating
// a smaller minimal-literal one has not been observed, but this cutoff is a
// heuristic, not a proof, so the extra rounds stay.
//
// The first match is marked FinalAdded; all matches are returned as arena
// rows so callers can render the alternatives.
func searchCombinations(arena []Term, cands []candidate, keep *bitset.BitSet, n uint) [][]int {
	var matches [][]int
	minWidth := 0
	breakCount := 0

	for k := 2; k <= len(cands); k++ {
		if breakCount >= 2 {
			break
		}
		if len(matches) > 0 {
			breakCount++
		}
		log.Debugf("combination search: size %d over %d candidates", k, len(cands))

		it := newCombinations(len(cands), k)
		for idx, ok := it.next(); ok; idx, ok = it.next() {
			union := bitset.New(n)
			width := 0
			for _, ci := range idx {
				union.InPlaceUnion(cands[ci].cols)
				width += cands[ci].width
			}
			if !union.Equal(keep) {
				continue
			}
			if minWidth != 0 && width > minWidth {
				continue
			}
			if minWidth == 0 || width < minWidth {
				matches = matches[:0]
				minWidth = width
			}
			matches = append(matches, append([]int(nil), idx...))
		}
	}

	if len(matches) == 0 {
		return nil
	}
	combos := make([][]int, len(matches))
	for mi, m := range matches {
		rows := make([]int, len(m))
		for j, ci := range m {
			rows[j] = cands[ci].row
		}
		combos[mi] = rows
	}
	for _, row := range combos[0] {
		arena[row].Final = FinalAdded
	}
	return combos
}

func intersectsBitset(src []int, set *bitset.BitSet) bool {
	for _, s := range src {
		if set.Test(uint(s)) {
			return true
		}
	}
	return false
}

// combinations lazily yields the k-subsets of 0..n-1 in lexicographic order.
// The slice returned by next is reused between calls.
type combinations struct {
	n, k  int
	idx   []int
	begun bool
}

func newCombinations(n, k int) *combinations {
	return &combinations{n: n, k: k}
}

func (c *combinations) next() ([]int, bool) {
	if c.k <= 0 || c.k > c.n {
		return nil, false
	}
	if !c.begun {
		c.begun = true
		c.idx = make([]int, c.k)
		for i := range c.idx {
			c.idx[i] = i
		}
		return c.idx, true
	}
	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		return nil, false
	}
	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return c.idx, true
}
