package emit

import (
	"fmt"

	"either-generator/internal/common"
	"either-generator/internal/diagnostic"
)

// Kind classifies an emitted declaration.
type Kind int

const (
	// KindTemplate is the template itself, rewritten for the emission mode.
	KindTemplate Kind = iota
	// KindStruct is a struct generated for a derivation.
	KindStruct
	// KindAlias is a type alias generated for a derivation.
	KindAlias
	// KindPassthrough is a declaration copied unchanged.
	KindPassthrough
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindTemplate:
		return "template"
	case KindStruct:
		return "struct"
	case KindAlias:
		return "alias"
	case KindPassthrough:
		return "passthrough"
	default:
		return common.UnknownStr
	}
}

// Decl is one emitted declaration.
type Decl struct {
	Kind Kind
	Name string
	// Source is the rendered, unformatted Go declaration.
	Source string
}

// Output is the result of one invocation.
type Output struct {
	Decls       []Decl
	Diagnostics diagnostic.Diagnostics
}

// Names returns the names of the emitted declarations in order.
func (o *Output) Names() []string {
	names := make([]string, 0, len(o.Decls))
	for _, d := range o.Decls {
		names = append(names, d.Name)
	}

	return names
}

// Options tune the rendering of emitted declarations.
type Options struct {
	// PositionalPrefix prefixes the synthesized names of positional fields.
	PositionalPrefix string
}

// DefaultPositionalPrefix names positional fields F0, F1, ...
const DefaultPositionalPrefix = "F"

// DefaultOptions returns the default emission options.
func DefaultOptions() Options {
	return Options{PositionalPrefix: DefaultPositionalPrefix}
}

// PreconditionError reports a template that cannot be expanded at all.
type PreconditionError struct {
	Code     diagnostic.Code
	Template string
}

func (e *PreconditionError) Error() string {
	switch e.Code {
	case diagnostic.NoFieldsToTemplate:
		return fmt.Sprintf("template %s has no fields to vary across derivations", e.Template)
	case diagnostic.PositionalRequiresStructMode:
		return fmt.Sprintf("template %s has positional fields and requires GenStructs: true", e.Template)
	default:
		return fmt.Sprintf("template %s: %s", e.Template, e.Code)
	}
}
