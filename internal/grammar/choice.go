package grammar

import (
	"go/token"
	"strings"

	"either-generator/internal/diagnostic"
)

// ParseChoice parses the candidate list of a choice field, a "|"-separated
// list of Go types. The candidates keep their source order; duplicates are
// kept as written.
func ParseChoice(src string) ([]Type, error) {
	if strings.TrimSpace(src) == "" {
		return nil, errorf(diagnostic.EmptyChoiceSet, 0, "choice field lists no candidate types")
	}

	items, err := lex(src, diagnostic.MalformedChoice)
	if err != nil {
		return nil, err
	}

	p := newTypeParser(src, items, diagnostic.MalformedChoice)

	var candidates []Type

	for {
		t, err := p.parseType(func(tok token.Token) bool { return tok == token.OR })
		if err != nil {
			return nil, err
		}

		if t.IsWildcard() {
			return nil, errorf(diagnostic.MalformedChoice, t.Offset, "the wildcard _ cannot be a candidate type")
		}

		candidates = append(candidates, t)

		if p.done() {
			return candidates, nil
		}

		if sep := p.next(); sep.tok != token.OR {
			return nil, errorf(diagnostic.MalformedChoice, sep.off, "expected '|' between candidate types, found %s", sep.describe())
		}
	}
}
