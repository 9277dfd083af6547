package cdnf

import (
	"math/bits"
	"testing"

	"github.com/pborges/cdnf/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireCoverEqual fails the test unless the two expressions describe the
// same Boolean function over the first width alphabet letters, evaluated by
// the truth-table oracle in internal/testutil.
func requireCoverEqual(t *testing.T, gotExpr, wantExpr string, width int) {
	t.Helper()
	letters := []byte(alphabet[:width])
	got, err := testutil.Minterms(gotExpr, letters...)
	require.NoError(t, err, "evaluating %q", gotExpr)
	want, err := testutil.Minterms(wantExpr, letters...)
	require.NoError(t, err, "evaluating %q", wantExpr)
	if diff := testutil.CompareMinterms(got, want); diff != "" {
		t.Fatalf("%q does not cover %q:\n%s", gotExpr, wantExpr, diff)
	}
}

// The minimized cover of every function must describe exactly the canonical
// form it was derived from.
func TestMinimizeRoundtripSweep(t *testing.T) {
	for n := uint64(0); n < 600; n++ {
		r, err := MinimizeFull(ByInteger(n))
		require.NoError(t, err, "value %d", n)

		width := letterWidth(bits.Len64(n))
		requireCoverEqual(t, r.Expression, Canonical(n, HighOrderA, false), width)
		assert.Equal(t, n, ResultToInt(r.Terms), "value %d", n)
	}
}

func TestMinimizeRoundtripSpot(t *testing.T) {
	for _, n := range []uint64{2003, 2046, 12309, 65535, 248725692} {
		r, err := MinimizeFull(ByInteger(n))
		require.NoError(t, err, "value %d", n)

		width := letterWidth(bits.Len64(n))
		requireCoverEqual(t, r.Expression, Canonical(n, HighOrderA, false), width)
		assert.Equal(t, n, ResultToInt(r.Terms), "value %d", n)
	}
}

// Every non-don't-care generation-1 row must be covered by some selected
// term's provenance.
func TestMinimizeCoverageInvariant(t *testing.T) {
	for n := uint64(1); n < 600; n++ {
		r, err := MinimizeFull(ByInteger(n))
		require.NoError(t, err, "value %d", n)

		covered := map[int]bool{}
		for _, term := range r.Terms {
			if term.Final == FinalNone {
				continue
			}
			for _, src := range term.Source {
				covered[src] = true
			}
		}
		for _, term := range r.Terms {
			if term.Generation != 1 || term.DontCare {
				continue
			}
			assert.True(t, covered[term.Row],
				"value %d: generation-1 row %d %q uncovered", n, term.Row, term)
		}
	}
}

// Re-minimizing a minimized function returns an equivalent cover. A
// minimized expression is not itself valid input (its terms no longer share
// one alphabet), so it goes back through the canonical expansion first.
func TestMinimizeIdempotent(t *testing.T) {
	for _, n := range []uint64{3, 248, 743, 886, 2077, 2078} {
		first, err := MinimizeFull(ByInteger(n))
		require.NoError(t, err, "value %d", n)

		expanded, err := ToCanonicalForm(first.Expression, false)
		require.NoError(t, err, "expanding %q", first.Expression)
		second, err := MinimizeFull(ByExpression(expanded))
		require.NoError(t, err, "reminimizing %q", expanded)
		requireCoverEqual(t, second.Expression, first.Expression, letterWidth(bits.Len64(n)))
	}
}

// Alternatives must all describe the same function as the chosen result.
func TestAlternativesEquivalentSweep(t *testing.T) {
	for n := uint64(1); n < 600; n++ {
		r, err := MinimizeFull(ByInteger(n))
		require.NoError(t, err, "value %d", n)
		if len(r.Alternatives) < 2 {
			continue
		}
		width := letterWidth(bits.Len64(n))
		for _, alt := range Alternatives(r.Terms, r.Alternatives) {
			requireCoverEqual(t, alt, r.Expression, width)
		}
	}
}
