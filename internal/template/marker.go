package template

import (
	"go/ast"
	"strconv"

	"either-generator/either"
	"either-generator/internal/common"
)

const markerName = "Choice"

// marker recognizes the either.Choice type through the imports of one file.
type marker struct {
	// names the either package is imported under.
	names map[string]bool
	dot   bool
}

func newMarker(file *ast.File) *marker {
	m := &marker{names: make(map[string]bool)}
	if file == nil {
		return m
	}

	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil || p != either.ImportPath {
			continue
		}

		switch {
		case imp.Name == nil:
			m.names[common.PkgAlias(p)] = true
		case imp.Name.Name == ".":
			m.dot = true
		case imp.Name.Name != "_":
			m.names[imp.Name.Name] = true
		}
	}

	return m
}

// matches reports whether expr denotes either.Choice.
func (m *marker) matches(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.SelectorExpr:
		x, ok := e.X.(*ast.Ident)
		return ok && e.Sel.Name == markerName && m.names[x.Name]
	case *ast.Ident:
		return m.dot && e.Name == markerName
	default:
		return false
	}
}
