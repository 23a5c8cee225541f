package diagnostic

import "either-generator/internal/common"

//go:generate go tool stringer -type=Code -output=code_string.go

// Code identifies a kind of diagnostic.
type Code int

const (
	_ Code = iota // zero is not a valid code

	EmptyChoiceSet
	MalformedChoice
	InvalidSetting
	MalformedDerivation
	NonNumericKey
	DuplicateKey
	DuplicateDerivation
	EmptyDerivationList
	NoFieldsToTemplate
	PositionalRequiresStructMode
	UnaddressableChoiceField
	TypeNotInCandidateSet
	UnknownField
	NotAChoiceField
	UnknownSetting
	NotAStruct
)

// Class groups codes by how they affect an invocation.
type Class int

const (
	ClassUnknown Class = iota
	ClassGrammar
	ClassPrecondition
	ClassResolution
	ClassWarning
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassGrammar:
		return "grammar"
	case ClassPrecondition:
		return "precondition"
	case ClassResolution:
		return "resolution"
	case ClassWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// Class returns the class of the code.
func (c Code) Class() Class {
	switch c {
	case EmptyChoiceSet, MalformedChoice, InvalidSetting, MalformedDerivation,
		NonNumericKey, DuplicateKey, DuplicateDerivation, EmptyDerivationList:
		return ClassGrammar
	case NoFieldsToTemplate, PositionalRequiresStructMode, UnaddressableChoiceField:
		return ClassPrecondition
	case TypeNotInCandidateSet, UnknownField, NotAChoiceField:
		return ClassResolution
	case UnknownSetting, NotAStruct:
		return ClassWarning
	default:
		return ClassUnknown
	}
}

// Fatal reports whether the code aborts the whole invocation.
func (c Code) Fatal() bool {
	cl := c.Class()
	return cl == ClassGrammar || cl == ClassPrecondition
}
