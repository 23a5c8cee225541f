package resolve

import (
	"either-generator/internal/grammar"
	"either-generator/internal/match"
	"either-generator/internal/template"
)

// Field is the resolved type of one choice field.
type Field struct {
	Key grammar.Key
	// Index of the field in template.Definition.Fields.
	Index int
	Type  grammar.Type
	// Default is true when the field fell back to its first candidate.
	Default bool
}

// Derivation is a derivation with every choice field resolved.
type Derivation struct {
	// Name is the derived type name with its visibility applied.
	Name string
	// Fields follow the declaration order of the choice fields.
	Fields []Field
}

// Lookup returns the resolved field at index i of the template's fields.
func (d *Derivation) Lookup(i int) (Field, bool) {
	for _, f := range d.Fields {
		if f.Index == i {
			return f, true
		}
	}

	return Field{}, false
}

// Resolve resolves d against the choice fields of def. Bindings are checked
// first: every key must address a choice field. Then each choice field is
// resolved in declaration order.
func Resolve(def *template.Definition, choices []template.ChoiceField, d grammar.Derivation) (*Derivation, error) {
	name := d.TypeName()

	for _, b := range d.Bindings {
		i := def.FieldIndex(b.Key)
		if i < 0 {
			return nil, &KeyError{Derivation: name, Key: b.Key, offset: b.Offset, hint: keyHint(b.Key, choices)}
		}

		if !def.Fields[i].Choice {
			return nil, &KeyError{Derivation: name, Key: b.Key, Field: true, offset: b.Offset}
		}
	}

	out := &Derivation{Name: name, Fields: make([]Field, 0, len(choices))}

	for _, c := range choices {
		f := Field{Key: c.Key, Index: c.Field}

		b, ok := d.Lookup(c.Key)

		switch {
		case !ok || b.Type.IsWildcard():
			f.Type = c.Default()
			f.Default = true
		case c.Contains(b.Type):
			f.Type = b.Type
		default:
			return nil, &CandidateError{
				Derivation: name,
				Key:        c.Key,
				Offending:  b.Type,
				Candidates: c.Candidates,
				offset:     b.Type.Offset,
				hint:       match.Hint(b.Type.Text, candidateTexts(c.Candidates)),
			}
		}

		out.Fields = append(out.Fields, f)
	}

	return out, nil
}

// keyHint suggests the choice field a misspelled named key probably meant.
func keyHint(key grammar.Key, choices []template.ChoiceField) string {
	if key.Positional {
		return ""
	}

	names := make([]string, 0, len(choices))
	for _, c := range choices {
		if !c.Key.Positional {
			names = append(names, c.Key.Name)
		}
	}

	return match.Hint(key.Name, names)
}

func candidateTexts(types []grammar.Type) []string {
	texts := make([]string, 0, len(types))
	for _, t := range types {
		texts = append(texts, t.Text)
	}

	return texts
}
