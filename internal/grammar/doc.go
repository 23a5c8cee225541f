// Package grammar parses the three small surface grammars of a template:
// the candidate list of a choice field, the settings segment and the
// derivation list of a template directive.
//
//	ChoiceExpr     := Type ('|' Type)*
//	Settings       := (Identifier ':' BoolLiteral (',' Identifier ':' BoolLiteral)*)? ';'
//	DerivationList := Derivation (',' Derivation)* ','?
//	Derivation     := Visibility? Identifier ':' '[' FieldBinding (',' FieldBinding)* ']'
//	Visibility     := 'exported' | 'unexported'
//	FieldBinding   := (Key ':')? Type
//	Key            := Identifier | DecimalLiteral
//	Input          := Settings? DerivationList
//
// Types are Go type expressions. The blank identifier in type position of a
// binding is the wildcard: it selects the field's default candidate.
//
// Parsing is purely syntactic. Whether a key names a field of the template, or
// a bound type is one of the field's candidates, is decided by package resolve.
// Errors are *Error values carrying a diagnostic.Code and the byte offset of
// the offending token within the parsed text.
package grammar
