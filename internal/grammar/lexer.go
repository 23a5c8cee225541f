package grammar

import (
	"go/scanner"
	"go/token"
	"strconv"

	"either-generator/internal/diagnostic"
)

// item is a single token of the parsed text.
type item struct {
	tok token.Token
	lit string
	off int
}

// text returns the source spelling of the token.
func (it item) text() string {
	if it.lit != "" {
		return it.lit
	}

	return it.tok.String()
}

// end returns the offset just past the token.
func (it item) end() int {
	return it.off + len(it.text())
}

// describe returns the token for use in error messages.
func (it item) describe() string {
	if it.tok == token.EOF {
		return "end of input"
	}

	return strconv.Quote(it.text())
}

// lex tokenizes src with the Go scanner. Semicolons inserted automatically at
// line ends are dropped, only a written ";" is kept.
func lex(src string, code diagnostic.Code) ([]item, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var firstErr *Error

	var s scanner.Scanner
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if firstErr == nil {
			firstErr = errorf(code, pos.Offset, "%s", msg)
		}
	}, 0)

	var items []item

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok == token.SEMICOLON && lit != ";" {
			continue
		}

		items = append(items, item{tok: tok, lit: lit, off: file.Offset(pos)})
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return items, nil
}
