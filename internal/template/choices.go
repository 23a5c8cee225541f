package template

import (
	"errors"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/fatih/structtag"

	"either-generator/either"
	"either-generator/internal/diagnostic"
	"either-generator/internal/grammar"
)

// ExtractChoices walks the fields of d in declaration order and returns its
// choice fields with their parsed candidate lists.
func ExtractChoices(d *Definition) ([]ChoiceField, error) {
	var choices []ChoiceField

	for i := range d.Fields {
		f := &d.Fields[i]
		if !f.Choice {
			continue
		}

		if f.Embedded() || (f.Blank() && !d.Positional) {
			return nil, errorf(diagnostic.UnaddressableChoiceField, f.Pos,
				"choice field %s of %s has no addressable key", describe(f), d.Name)
		}

		tag, err := f.unquotedTag()
		if err != nil {
			return nil, errorf(diagnostic.MalformedChoice, f.TagPos, "field %s: %v", describe(f), err)
		}

		value, ok := reflect.StructTag(tag).Lookup(either.TagKey)
		if !ok {
			return nil, errorf(diagnostic.EmptyChoiceSet, f.Pos,
				"choice field %s has no %q tag listing its candidates", describe(f), either.TagKey)
		}

		candidates, err := grammar.ParseChoice(value)
		if err != nil {
			var gerr *grammar.Error
			if errors.As(err, &gerr) {
				return nil, errorf(gerr.Code, f.tagValuePos(gerr.Offset), "field %s: %s", describe(f), gerr.Message)
			}

			return nil, err
		}

		if _, err := f.StrippedTag(); err != nil {
			return nil, errorf(diagnostic.MalformedChoice, f.TagPos, "field %s: malformed struct tag: %v", describe(f), err)
		}

		choices = append(choices, ChoiceField{Key: f.Key, Field: i, Candidates: candidates})
	}

	return choices, nil
}

// StrippedTag returns the tag literal of f with the either key removed, or ""
// when no other key remains. Tags without the either key are returned as
// written.
func (f *Field) StrippedTag() (string, error) {
	if f.Tag == "" {
		return "", nil
	}

	tag, err := f.unquotedTag()
	if err != nil {
		return "", err
	}

	if _, ok := reflect.StructTag(tag).Lookup(either.TagKey); !ok {
		return f.Tag, nil
	}

	tags, err := structtag.Parse(tag)
	if err != nil {
		return "", err
	}

	tags.Delete(either.TagKey)

	if tags.Len() == 0 {
		return "", nil
	}

	s := tags.String()
	if strings.Contains(s, "`") {
		return strconv.Quote(s), nil
	}

	return "`" + s + "`", nil
}

func (f *Field) unquotedTag() (string, error) {
	if f.Tag == "" {
		return "", nil
	}

	return strconv.Unquote(f.Tag)
}

// tagValuePos returns the position of byte offset off within the either value
// of the field's tag.
func (f *Field) tagValuePos(off int) token.Pos {
	opening := either.TagKey + `:"`

	start := strings.Index(f.Tag, opening)
	if start < 0 {
		return f.TagPos
	}

	return f.TagPos + token.Pos(start+len(opening)+off)
}

func describe(f *Field) string {
	if f.Blank() || f.Embedded() {
		return f.Key.String()
	}

	return f.Name
}
