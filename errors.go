package cdnf

import "errors"

// ErrInvalidInput reports input that does not describe any minterm set:
// an empty term list, or a shape none of the Input constructors produce.
var ErrInvalidInput = errors.New("cdnf: invalid input")

// ErrAlphabetMismatch reports minterm strings whose variable sets disagree
// within a single call. Every term must use the same letters as the first.
var ErrAlphabetMismatch = errors.New("cdnf: inconsistent term alphabet")
