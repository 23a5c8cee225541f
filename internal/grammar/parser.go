package grammar

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strings"

	"either-generator/internal/diagnostic"
)

// typeParser walks a token stream and cuts Go type expressions out of it.
type typeParser struct {
	src   string
	items []item
	i     int
	// code is reported for malformed types.
	code diagnostic.Code
}

func newTypeParser(src string, items []item, code diagnostic.Code) *typeParser {
	return &typeParser{src: src, items: items, code: code}
}

func (p *typeParser) done() bool {
	return p.i >= len(p.items)
}

func (p *typeParser) peekN(n int) item {
	if p.i+n >= len(p.items) {
		return item{tok: token.EOF, off: len(p.src)}
	}

	return p.items[p.i+n]
}

func (p *typeParser) peek() item {
	return p.peekN(0)
}

func (p *typeParser) next() item {
	it := p.peek()
	if !p.done() {
		p.i++
	}

	return it
}

// parseType consumes tokens up to the first depth-0 token for which stop
// returns true, or up to an unbalanced closing bracket, and parses them as a
// Go type.
func (p *typeParser) parseType(stop func(token.Token) bool) (Type, error) {
	start := p.i
	depth := 0

loop:
	for !p.done() {
		tok := p.peek().tok

		switch tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth == 0 {
				break loop
			}

			depth--
		default:
			if depth == 0 && stop(tok) {
				break loop
			}
		}

		p.i++
	}

	if start == p.i {
		return Type{}, errorf(p.code, p.peek().off, "expected type, found %s", p.peek().describe())
	}

	from := p.items[start].off
	to := p.items[p.i-1].end()

	return parseTypeText(p.src[from:to], from, p.code)
}

// parseTypeText parses text as a Go type expression located at offset.
func parseTypeText(text string, offset int, code diagnostic.Code) (Type, error) {
	expr, err := parser.ParseExpr(text)
	if err != nil {
		return Type{}, errorf(code, offset, "invalid type %q: %v", text, err)
	}

	if !isTypeExpr(expr) {
		return Type{}, errorf(code, offset, "%q is not a type", text)
	}

	canonical, err := canonicalText(expr)
	if err != nil {
		return Type{}, errorf(code, offset, "printing type %q: %v", text, err)
	}

	return Type{Expr: expr, Text: canonical, Offset: offset}, nil
}

// canonicalText prints expr on a single line without its source layout, so
// equal types written differently compare equal.
func canonicalText(expr ast.Expr) (string, error) {
	var buf bytes.Buffer

	// An empty file set drops the positions, collapsing the layout.
	if err := format.Node(&buf, token.NewFileSet(), expr); err != nil {
		return "", err
	}

	return oneLine(buf.String()), nil
}

// oneLine joins the lines of a printed type. Fields and methods are separated
// by semicolons and the padding of aligned columns is dropped.
func oneLine(printed string) string {
	var sb strings.Builder

	for i, line := range strings.Split(strings.TrimSpace(printed), "\n") {
		line = squeeze(strings.TrimSpace(line))

		switch {
		case i == 0:
		case strings.HasSuffix(sb.String(), "{"), strings.HasPrefix(line, "}"):
			sb.WriteByte(' ')
		default:
			sb.WriteString("; ")
		}

		// struct { and interface { open a multi-line list.
		if rest, ok := strings.CutSuffix(line, " {"); ok {
			line = rest + "{"
		}

		sb.WriteString(line)
	}

	return sb.String()
}

// squeeze collapses runs of blanks outside string literals into one space.
func squeeze(s string) string {
	var (
		sb    strings.Builder
		quote rune
		blank bool
	)

	escaped := false

	for _, r := range s {
		switch {
		case quote != 0:
			switch {
			case escaped:
				escaped = false
			case r == '\\' && quote == '"':
				escaped = true
			case r == quote:
				quote = 0
			}
		case r == ' ' || r == '\t':
			blank = true
			continue
		case r == '"' || r == '`':
			quote = r
		}

		if blank {
			sb.WriteByte(' ')
			blank = false
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// isTypeExpr reports whether expr can denote a type.
func isTypeExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(e.X)
	case *ast.ParenExpr:
		return isTypeExpr(e.X)
	case *ast.ArrayType:
		return isTypeExpr(e.Elt)
	case *ast.MapType:
		return isTypeExpr(e.Key) && isTypeExpr(e.Value)
	case *ast.ChanType:
		return isTypeExpr(e.Value)
	case *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	case *ast.IndexExpr:
		return isTypeExpr(e.X) && isTypeExpr(e.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(e.X) {
			return false
		}

		for _, idx := range e.Indices {
			if !isTypeExpr(idx) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
