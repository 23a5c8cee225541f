package grammar

import (
	"go/token"
	"strconv"

	"either-generator/internal/diagnostic"
	"either-generator/internal/match"
)

var settingNames = []string{SettingGenStructs, SettingDeleteTemplate, SettingOmitEmptyTupleFields}

// ParseInput parses a template directive: an optional settings segment
// terminated by ";" followed by a non-empty derivation list.
func ParseInput(src string) (*Input, error) {
	items, err := lex(src, diagnostic.MalformedDerivation)
	if err != nil {
		return nil, err
	}

	p := &inputParser{typeParser: newTypeParser(src, items, diagnostic.MalformedDerivation)}
	in := &Input{}

	if p.hasSettings() {
		if err := p.parseSettings(in); err != nil {
			return nil, err
		}
	}

	if err := p.parseDerivations(in); err != nil {
		return nil, err
	}

	return in, nil
}

type inputParser struct {
	*typeParser
}

// hasSettings reports whether a ";" appears outside of any brackets.
func (p *inputParser) hasSettings() bool {
	depth := 0

	for _, it := range p.items {
		switch it.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
		case token.SEMICOLON:
			if depth == 0 {
				return true
			}
		}
	}

	return false
}

func (p *inputParser) parseSettings(in *Input) error {
	if p.peek().tok == token.SEMICOLON {
		p.next()
		return nil
	}

	for {
		name := p.next()
		if name.tok != token.IDENT {
			return errorf(diagnostic.InvalidSetting, name.off, "expected setting name, found %s", name.describe())
		}

		if colon := p.next(); colon.tok != token.COLON {
			return errorf(diagnostic.InvalidSetting, colon.off, "expected ':' after setting %s, found %s", name.lit, colon.describe())
		}

		val := p.next()
		if val.tok != token.IDENT || (val.lit != "true" && val.lit != "false") {
			return errorf(diagnostic.InvalidSetting, val.off, "setting %s: %s is not a boolean literal", name.lit, val.describe())
		}

		on := val.lit == "true"

		switch name.lit {
		case SettingGenStructs:
			in.Settings.GenerateStructs = on
		case SettingDeleteTemplate:
			in.Settings.DeleteTemplate = on
		case SettingOmitEmptyTupleFields:
			in.Settings.OmitEmptyTupleFields = on
		default:
			w := errorf(diagnostic.UnknownSetting, name.off, "unknown setting %s ignored", name.lit)
			w.Hint = match.Hint(name.lit, settingNames)
			in.Warnings = append(in.Warnings, *w)
		}

		switch sep := p.next(); sep.tok {
		case token.SEMICOLON:
			return nil
		case token.COMMA:
		default:
			return errorf(diagnostic.InvalidSetting, sep.off, "expected ',' or ';' after setting %s, found %s", name.lit, sep.describe())
		}
	}
}

func (p *inputParser) parseDerivations(in *Input) error {
	if p.done() {
		return errorf(diagnostic.EmptyDerivationList, p.peek().off, "template lists no derivations")
	}

	seen := make(map[string]bool)

	for !p.done() {
		d, err := p.parseDerivation()
		if err != nil {
			return err
		}

		if seen[d.TypeName()] {
			return errorf(diagnostic.DuplicateDerivation, d.Offset, "derivation %s is declared twice", d.TypeName())
		}

		seen[d.TypeName()] = true
		in.Derivations = append(in.Derivations, d)

		if p.done() {
			break
		}

		if sep := p.next(); sep.tok != token.COMMA {
			return errorf(diagnostic.MalformedDerivation, sep.off, "expected ',' between derivations, found %s", sep.describe())
		}
	}

	return nil
}

func (p *inputParser) parseDerivation() (Derivation, error) {
	d := Derivation{Offset: p.peek().off}

	if first := p.peek(); first.tok == token.IDENT && p.peekN(1).tok == token.IDENT {
		switch first.lit {
		case "exported":
			d.Visibility = VisibilityExported
		case "unexported":
			d.Visibility = VisibilityUnexported
		default:
			return d, errorf(diagnostic.MalformedDerivation, first.off, "unknown visibility %s", first.describe())
		}

		p.next()
	}

	name := p.next()
	if name.tok != token.IDENT || name.lit == "_" {
		return d, errorf(diagnostic.MalformedDerivation, name.off, "expected derivation name, found %s", name.describe())
	}

	d.Name = name.lit

	if colon := p.next(); colon.tok != token.COLON {
		return d, errorf(diagnostic.MalformedDerivation, colon.off, "expected ':' after derivation %s, found %s", d.Name, colon.describe())
	}

	if open := p.next(); open.tok != token.LBRACK {
		return d, errorf(diagnostic.MalformedDerivation, open.off, "expected '[' to open the fields of %s, found %s", d.Name, open.describe())
	}

	if p.peek().tok == token.RBRACK {
		return d, errorf(diagnostic.MalformedDerivation, p.peek().off, "derivation %s binds no fields", d.Name)
	}

	seen := make(map[Key]bool)

	for pos := 0; ; pos++ {
		b, err := p.parseBinding(pos)
		if err != nil {
			return d, err
		}

		if seen[b.Key] {
			return d, errorf(diagnostic.DuplicateKey, b.Offset, "derivation %s binds field %s twice", d.Name, b.Key)
		}

		seen[b.Key] = true
		d.Bindings = append(d.Bindings, b)

		switch sep := p.next(); sep.tok {
		case token.RBRACK:
			return d, nil
		case token.COMMA:
		default:
			return d, errorf(diagnostic.MalformedDerivation, sep.off, "expected ',' or ']' in derivation %s, found %s", d.Name, sep.describe())
		}
	}
}

func (p *inputParser) parseBinding(pos int) (Binding, error) {
	b := Binding{Offset: p.peek().off}

	if p.peekN(1).tok != token.COLON {
		b.Key = IndexKey(pos)
		b.Implicit = true
	} else {
		key := p.peek()

		switch key.tok {
		case token.IDENT:
			if key.lit == "_" {
				return b, errorf(diagnostic.MalformedDerivation, key.off, "field key cannot be blank")
			}

			b.Key = NamedKey(key.lit)
		case token.INT:
			n, ok := decimal(key.lit)
			if !ok {
				return b, errorf(diagnostic.NonNumericKey, key.off, "field key %s is not a decimal number", key.describe())
			}

			b.Key = IndexKey(n)
		case token.FLOAT, token.IMAG, token.CHAR, token.STRING:
			return b, errorf(diagnostic.NonNumericKey, key.off, "field key %s is not a decimal number", key.describe())
		default:
			return b, errorf(diagnostic.MalformedDerivation, key.off, "expected field key, found %s", key.describe())
		}

		p.next()
		p.next()
	}

	t, err := p.parseType(func(tok token.Token) bool { return tok == token.COMMA })
	if err != nil {
		return b, err
	}

	b.Type = t

	return b, nil
}

// decimal parses a literal made of decimal digits only.
func decimal(lit string) (int, bool) {
	for _, r := range lit {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(lit)
	if err != nil {
		return 0, false
	}

	return n, true
}
