package cdnf

import (
	"sort"
	"strconv"
	"strings"
)

// nextGeneration merges the terms of one generation pairwise into the next.
// The generation is grouped by ones count; only adjacent groups are compared,
// since a merge flips exactly one literal's polarity and so changes the ones
// count by exactly one. A merged term keeps the common literals, unions its
// parents' provenance, and both parents are marked covered. Two pairs that
// derive from the same provenance set yield one term. The returned slice is
// sorted by ones count with rows continuing the arena; it is empty at the
// merge fixpoint.
func nextGeneration(arena []Term, gen int) []Term {
	var working []Term
	for _, t := range arena {
		if t.Generation == gen {
			working = append(working, t)
		}
	}
	groups := groupByOnes(working)

	covered := make(map[int]bool)
	seenSources := make(map[string]bool)
	var out []Term

	for g := 0; g+1 < len(groups); g++ {
		for _, x := range groups[g] {
			for _, y := range groups[g+1] {
				if !mergeable(x, y) {
					continue
				}
				covered[x.Row] = true
				covered[y.Row] = true
				src := mergeSources(x.Source, y.Source)
				key := sourceKey(src)
				if seenSources[key] {
					continue
				}
				seenSources[key] = true
				lits := intersectLiterals(x.Literals, y.Literals)
				out = append(out, Term{
					Literals:   lits,
					Ones:       onesCount(lits),
					Source:     src,
					Generation: gen + 1,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Ones < out[j].Ones })
	for i := range out {
		out[i].Row = len(arena) + i
	}
	for row := range covered {
		arena[row].Covered = true
	}
	return out
}

// groupByOnes splits a ones-sorted term slice into runs of equal ones count.
func groupByOnes(terms []Term) [][]Term {
	var groups [][]Term
	for i := 0; i < len(terms); {
		j := i
		for j < len(terms) && terms[j].Ones == terms[i].Ones {
			j++
		}
		groups = append(groups, terms[i:j])
		i = j
	}
	return groups
}

func sourceKey(src []int) string {
	var b strings.Builder
	for i, v := range src {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
