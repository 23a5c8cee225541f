package template

import (
	"go/ast"
	"go/token"

	"either-generator/internal/grammar"
)

// Key addresses a template field.
type Key = grammar.Key

// Definition is a struct type declaration annotated as a template.
type Definition struct {
	// Name of the declared type.
	Name string
	// TypeParams are the type parameters declared on the template.
	TypeParams []TypeParam
	// Fields in declaration order, one per name.
	Fields []Field
	// Positional is true when every field is blank and keyed by position.
	Positional bool
	// Struct is false when the directive annotates a non-struct type.
	Struct bool
	// Doc holds the doc comment lines preceding the directive, verbatim.
	Doc []string
	// Directive is the settings and derivation list text.
	Directive string
	// Pos is the position of the type name.
	Pos token.Pos
	// Source is the verbatim text of the declaration, doc comment included.
	// It is set by callers holding the file contents and used to pass
	// non-struct declarations through.
	Source string

	// segments map offsets of Directive to source positions.
	segments []segment
	// marker recognizes the either.Choice type in the template's file.
	marker *marker
}

// TypeParam is a type parameter declared on a template.
type TypeParam struct {
	Name       string
	Constraint string
}

// Field is a single field of a template. Fields declared with several names
// are split into one Field per name.
type Field struct {
	Key Key
	// Name is the declared name, "_" for blank and "" for embedded fields.
	Name string
	// Type is the source text of the declared type.
	Type string
	// Expr is the declared type.
	Expr ast.Expr
	// Tag is the tag literal including its quotes, or "".
	Tag string
	// Doc and Comment hold the field's comments, verbatim.
	Doc     []string
	Comment []string
	// Choice is true when the type is the either.Choice marker.
	Choice bool
	Pos    token.Pos
	TagPos token.Pos
}

// Embedded reports whether the field is an embedded field.
func (f *Field) Embedded() bool {
	return f.Name == ""
}

// Blank reports whether the field is a blank field.
func (f *Field) Blank() bool {
	return f.Name == "_"
}

// ChoiceField describes one choice field of a template.
type ChoiceField struct {
	Key Key
	// Field is the index of the field in Definition.Fields.
	Field int
	// Candidates in source order; the first one is the default.
	Candidates []grammar.Type
}

// Contains reports whether t is one of the candidates.
func (c *ChoiceField) Contains(t grammar.Type) bool {
	for _, cand := range c.Candidates {
		if cand.Text == t.Text {
			return true
		}
	}

	return false
}

// Default returns the first candidate.
func (c *ChoiceField) Default() grammar.Type {
	return c.Candidates[0]
}

// FieldIndex returns the index of the field addressed by key, or -1.
func (d *Definition) FieldIndex(key Key) int {
	for i := range d.Fields {
		if d.Fields[i].Key == key {
			return i
		}
	}

	return -1
}

// ParamNames returns the names of the declared type parameters.
func (d *Definition) ParamNames() []string {
	names := make([]string, 0, len(d.TypeParams))
	for _, tp := range d.TypeParams {
		names = append(names, tp.Name)
	}

	return names
}
