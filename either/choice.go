package either

// ImportPath is the import path a choice field's marker type must resolve to.
const ImportPath = "either-generator/either"

// TagKey is the struct tag key carrying the candidate list of a choice field.
const TagKey = "either"

// Directive introduces the settings and derivation list of a template. It is
// written as a line comment, "//either:template", ending the doc comment of
// the struct type it applies to.
const Directive = "either:template"

// Choice marks a struct field as a choice field. It carries no data: it only
// lets a template type-check before either-gen replaces it with a concrete
// type or a type parameter.
type Choice struct{}
