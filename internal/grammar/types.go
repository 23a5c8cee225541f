package grammar

import (
	"go/ast"
	"strconv"

	"either-generator/internal/common"
)

// Type is a parsed Go type expression.
type Type struct {
	// Expr is the parsed expression.
	Expr ast.Expr
	// Text is the canonical single-line rendering used for comparisons.
	Text string
	// Offset is the byte offset of the type within the parsed text.
	Offset int
}

// String returns the canonical text of the type.
func (t Type) String() string {
	return t.Text
}

// IsWildcard reports whether the type is the wildcard marker "_".
func (t Type) IsWildcard() bool {
	id, ok := t.Expr.(*ast.Ident)
	return ok && id.Name == "_"
}

// IsEmptyStruct reports whether the type is the empty product type struct{}.
func (t Type) IsEmptyStruct() bool {
	expr := t.Expr
	for {
		p, ok := expr.(*ast.ParenExpr)
		if !ok {
			break
		}

		expr = p.X
	}

	st, ok := expr.(*ast.StructType)

	return ok && (st.Fields == nil || len(st.Fields.List) == 0)
}

// Key addresses a template field, either by name or by position.
// A positional key never equals a named key.
type Key struct {
	Name       string
	Index      int
	Positional bool
}

// NamedKey returns the key of a name-keyed field.
func NamedKey(name string) Key {
	return Key{Name: name}
}

// IndexKey returns the key of a position-keyed field.
func IndexKey(i int) Key {
	return Key{Index: i, Positional: true}
}

// String returns the field name, or the decimal index for positional keys.
func (k Key) String() string {
	if k.Positional {
		return strconv.Itoa(k.Index)
	}

	return k.Name
}

// Visibility of a derived definition.
type Visibility int

const (
	// VisibilityInherited keeps the derivation name as written.
	VisibilityInherited Visibility = iota
	// VisibilityExported upper-cases the first letter of the name.
	VisibilityExported
	// VisibilityUnexported lower-cases the first letter of the name.
	VisibilityUnexported
)

// String returns the keyword of the visibility, or "" when inherited.
func (v Visibility) String() string {
	switch v {
	case VisibilityInherited:
		return ""
	case VisibilityExported:
		return "exported"
	case VisibilityUnexported:
		return "unexported"
	default:
		return common.UnknownStr
	}
}

// Apply returns name with the visibility applied.
func (v Visibility) Apply(name string) string {
	switch v {
	case VisibilityExported:
		return common.UpperFirst(name)
	case VisibilityUnexported:
		return common.LowerFirst(name)
	default:
		return name
	}
}

// Binding binds one field key to a type or to the wildcard.
type Binding struct {
	Key  Key
	Type Type
	// Implicit is true when the key was not written and comes from the
	// binding's position in the list.
	Implicit bool
	// Offset is the byte offset of the binding.
	Offset int
}

// Derivation is one named request of a derivation list.
type Derivation struct {
	Name       string
	Visibility Visibility
	Bindings   []Binding
	Offset     int
}

// TypeName returns the name of the derived definition with its visibility
// applied.
func (d Derivation) TypeName() string {
	return d.Visibility.Apply(d.Name)
}

// Lookup returns the binding for key, if any.
func (d Derivation) Lookup(key Key) (Binding, bool) {
	for _, b := range d.Bindings {
		if b.Key == key {
			return b, true
		}
	}

	return Binding{}, false
}

// Settings control the emission strategy.
type Settings struct {
	GenerateStructs      bool `yaml:"gen_structs"`
	DeleteTemplate       bool `yaml:"delete_template"`
	OmitEmptyTupleFields bool `yaml:"omit_empty_tuple_fields"`
}

// Setting names recognized in the settings segment.
const (
	SettingGenStructs           = "GenStructs"
	SettingDeleteTemplate       = "DeleteTemplate"
	SettingOmitEmptyTupleFields = "OmitEmptyTupleFields"
)

// Input is a parsed template directive.
type Input struct {
	Settings    Settings
	Derivations []Derivation
	// Warnings lists ignored settings.
	Warnings []Error
}
