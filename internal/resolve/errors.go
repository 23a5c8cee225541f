package resolve

import (
	"fmt"
	"strings"

	"either-generator/internal/diagnostic"
	"either-generator/internal/grammar"
)

// Error is implemented by every resolution failure.
type Error interface {
	error
	// Code returns the diagnostic code of the failure.
	Code() diagnostic.Code
	// Offset returns the byte offset of the offending binding within the
	// directive text.
	Offset() int
	// Hint suggests a fix, or returns "".
	Hint() string
}

// CandidateError reports a derivation binding a field to a type outside the
// field's candidate set.
type CandidateError struct {
	Derivation string
	Key        grammar.Key
	Offending  grammar.Type
	Candidates []grammar.Type
	offset     int
	hint       string
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("derivation %s binds field %s to %s, which is not one of its candidates: %s",
		e.Derivation, e.Key, e.Offending.Text, strings.Join(candidateTexts(e.Candidates), " | "))
}

// Code returns diagnostic.TypeNotInCandidateSet.
func (e *CandidateError) Code() diagnostic.Code {
	return diagnostic.TypeNotInCandidateSet
}

// Offset returns the offset of the offending type.
func (e *CandidateError) Offset() int {
	return e.offset
}

// Hint names the candidate closest to the offending type, if any.
func (e *CandidateError) Hint() string {
	return e.hint
}

// KeyError reports a binding whose key does not address a choice field.
type KeyError struct {
	Derivation string
	Key        grammar.Key
	// Field is true when the key names a field that is not a choice field.
	Field  bool
	offset int
	hint   string
}

func (e *KeyError) Error() string {
	if e.Field {
		return fmt.Sprintf("derivation %s binds field %s, which is not a choice field", e.Derivation, e.Key)
	}

	return fmt.Sprintf("derivation %s binds %s, which is not a field of the template", e.Derivation, e.Key)
}

// Code returns diagnostic.NotAChoiceField or diagnostic.UnknownField.
func (e *KeyError) Code() diagnostic.Code {
	if e.Field {
		return diagnostic.NotAChoiceField
	}

	return diagnostic.UnknownField
}

// Offset returns the offset of the binding.
func (e *KeyError) Offset() int {
	return e.offset
}

// Hint names the choice field closest to an unknown key, if any.
func (e *KeyError) Hint() string {
	return e.hint
}
