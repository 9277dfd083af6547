package cdnf

import (
	"fmt"
	"math/bits"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Input names one minterm source for Minimize. The zero value is not usable;
// build one with ByInteger, ByExpression, ByTerms or ByMinterms, then attach
// options with the With methods. Inputs are values: the With methods return
// modified copies.
type Input struct {
	kind     inputKind
	value    uint64
	expr     string
	terms    []string
	minterms []int
	order    BitOrder
	dcIdx    []int
	dcTerms  []string
}

type inputKind int

const (
	inputInvalid inputKind = iota
	inputInteger
	inputExpression
	inputTerms
	inputMinterms
)

// ByInteger selects the function with truth-table integer value; the
// canonical form is generated first, with A on the high-order bit unless
// WithOrder overrides it.
func ByInteger(value uint64) Input {
	return Input{kind: inputInteger, value: value}
}

// ByExpression takes a canonical sum-of-products expression, e.g.
// "ABC + A'BC + AB'C". Only tokenization is applied: every term must already
// be a full minterm over one consistent alphabet.
func ByExpression(expression string) Input {
	return Input{kind: inputExpression, expr: expression}
}

// ByTerms takes the canonical minterms as individual strings.
func ByTerms(terms ...string) Input {
	return Input{kind: inputTerms, terms: terms}
}

// ByMinterms takes truth-table row indexes. The variable count is the bit
// width of the largest index.
func ByMinterms(indexes ...int) Input {
	return Input{kind: inputMinterms, minterms: indexes}
}

// WithOrder sets the bit-order convention used when expanding integer or
// minterm-index input.
func (in Input) WithOrder(order BitOrder) Input {
	in.order = order
	return in
}

// WithDontCares marks truth-table rows whose value is unconstrained. The
// rows must be present in the input's minterm set; they may be merged into
// implicants but are not required to be covered.
func (in Input) WithDontCares(indexes ...int) Input {
	in.dcIdx = append(in.dcIdx, indexes...)
	return in
}

// WithDontCareTerms is WithDontCares with the rows given as minterm strings.
func (in Input) WithDontCareTerms(terms ...string) Input {
	in.dcTerms = append(in.dcTerms, terms...)
	return in
}

// canonicalTerms resolves the input to its list of canonical term strings.
func (in Input) canonicalTerms() ([]string, error) {
	switch in.kind {
	case inputInteger:
		return splitExpression(Canonical(in.value, in.order, false)), nil
	case inputExpression:
		return splitExpression(in.expr), nil
	case inputTerms:
		if len(in.terms) == 0 {
			return nil, fmt.Errorf("%w: empty term list", ErrInvalidInput)
		}
		return append([]string(nil), in.terms...), nil
	case inputMinterms:
		return mintermIndexTerms(in.minterms, in.order)
	}
	return nil, fmt.Errorf("%w: zero-value Input", ErrInvalidInput)
}

// dontCares resolves the attached don't-care rows to truth-table indexes.
// Term strings convert through the same binary encoding generation-1 terms
// carry, so they line up with Term.Binary.
func (in Input) dontCares() ([]int, error) {
	if len(in.dcIdx) == 0 && len(in.dcTerms) == 0 {
		return nil, nil
	}
	out := append([]int(nil), in.dcIdx...)
	for _, term := range in.dcTerms {
		bin := makeBinary(parseLiterals(term))
		if bin == "" {
			return nil, fmt.Errorf("%w: don't-care term %q has no literals", ErrInvalidInput, term)
		}
		v, err := strconv.ParseUint(bin, 2, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: don't-care term %q", ErrInvalidInput, term)
		}
		out = append(out, int(v))
	}
	return out, nil
}

// mintermIndexTerms expands row indexes into canonical term strings over an
// alphabet wide enough for the largest index.
func mintermIndexTerms(indexes []int, order BitOrder) ([]string, error) {
	if len(indexes) == 0 {
		return nil, fmt.Errorf("%w: empty minterm list", ErrInvalidInput)
	}
	max := 0
	for _, idx := range indexes {
		if idx < 0 {
			return nil, fmt.Errorf("%w: negative minterm index %d", ErrInvalidInput, idx)
		}
		if idx > max {
			max = idx
		}
	}
	width := bits.Len(uint(max))
	if width == 0 {
		width = 1
	}
	terms := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		terms = append(terms, mintermString(fmt.Sprintf("%0*b", width, idx), order))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(terms)))
	return terms, nil
}

var termSplit = regexp.MustCompile(`[^a-zA-Z']+`)

// splitExpression tokenizes a sum-of-products string into term strings.
// Any run of non-literal characters separates terms, so "A'B + CD" and
// "A'B+CD" agree. The empty expression yields a single empty term, the
// canonical spelling of the constant-false function.
func splitExpression(expression string) []string {
	return termSplit.Split(strings.TrimSpace(expression), -1)
}

// validateAlphabet checks every term against the first term's letters-only
// signature; terms over differing variable sets cannot describe one function.
func validateAlphabet(terms []string) error {
	want := letterSignature(terms[0])
	for _, term := range terms[1:] {
		if letterSignature(term) != want {
			return fmt.Errorf("%w: term %q does not match alphabet %q", ErrAlphabetMismatch, term, want)
		}
	}
	return nil
}

// letterSignature is the sorted letters of a term with negation markers
// dropped and duplicates kept.
func letterSignature(term string) string {
	var letters []byte
	for i := 0; i < len(term); i++ {
		c := term[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			letters = append(letters, c)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}
