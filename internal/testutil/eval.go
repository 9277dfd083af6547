// Package testutil evaluates sum-of-products expressions by brute-force
// truth-table enumeration. It shares no code with the library's own
// expansion, so tests can use it as an independent oracle for cover
// equivalence.
package testutil

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Minterms returns the set of canonical minterm strings on which the
// expression is true, evaluated over every assignment of its variables.
// Extra letters widen the variable set beyond the letters the expression
// mentions; "1" and "0" (and the empty expression) are the constant
// functions and need the letters given explicitly to expand to anything.
func Minterms(expression string, letters ...byte) (map[string]bool, error) {
	expression = strings.TrimSpace(expression)

	vars := map[byte]bool{}
	for _, c := range letters {
		vars[c] = true
	}
	for i := 0; i < len(expression); i++ {
		c := expression[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			vars[c] = true
		}
	}
	ordered := make([]byte, 0, len(vars))
	for c := range vars {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	out := map[string]bool{}
	switch expression {
	case "", "0":
		return out, nil
	case "1":
		for assign := 0; assign < 1<<uint(len(ordered)); assign++ {
			out[renderAssignment(ordered, assign)] = true
		}
		return out, nil
	}

	terms, err := parseTerms(expression)
	if err != nil {
		return nil, err
	}
	for assign := 0; assign < 1<<uint(len(ordered)); assign++ {
		if evalTerms(terms, ordered, assign) {
			out[renderAssignment(ordered, assign)] = true
		}
	}
	return out, nil
}

// CompareMinterms returns a human-readable diff of two minterm sets, or ""
// when they are equal.
func CompareMinterms(got, want map[string]bool) string {
	var buf bytes.Buffer
	for m := range got {
		if !want[m] {
			fmt.Fprintf(&buf, "  extra minterm %s\n", m)
		}
	}
	for m := range want {
		if !got[m] {
			fmt.Fprintf(&buf, "  missing minterm %s\n", m)
		}
	}
	if buf.Len() == 0 {
		return ""
	}
	return "minterm sets differ:\n" + buf.String()
}

type literal struct {
	letter byte
	neg    bool
}

func parseTerms(expression string) ([][]literal, error) {
	var terms [][]literal
	for _, part := range strings.Split(expression, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty term in %q", expression)
		}
		var term []literal
		for i := 0; i < len(part); i++ {
			c := part[i]
			if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
				return nil, fmt.Errorf("unexpected %q in term %q", string(c), part)
			}
			lit := literal{letter: c}
			if i+1 < len(part) && part[i+1] == '\'' {
				lit.neg = true
				i++
			}
			term = append(term, lit)
		}
		terms = append(terms, term)
	}
	return terms, nil
}

// evalTerms treats bit i of assign as the value of ordered[i].
func evalTerms(terms [][]literal, ordered []byte, assign int) bool {
	value := func(letter byte) bool {
		for i, c := range ordered {
			if c == letter {
				return assign&(1<<uint(i)) != 0
			}
		}
		return false
	}
	for _, term := range terms {
		ok := true
		for _, lit := range term {
			if value(lit.letter) == lit.neg {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func renderAssignment(ordered []byte, assign int) string {
	var b strings.Builder
	for i, c := range ordered {
		b.WriteByte(c)
		if assign&(1<<uint(i)) == 0 {
			b.WriteByte('\'')
		}
	}
	return b.String()
}
