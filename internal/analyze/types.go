package analyze

import (
	"go/ast"
	"go/token"

	"either-generator/internal/template"
)

// PackageInfo describes a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory holding the package files
	// Templates lists the template files of the package, sorted.
	Templates []string
}

// TemplateFile is a parsed template file.
type TemplateFile struct {
	Path    string
	Package string
	Src     []byte
	Fset    *token.FileSet
	File    *ast.File
	// Templates are the annotated declarations in source order.
	Templates []*Template
}

// Template is one annotated declaration of a template file.
type Template struct {
	Def *template.Definition
	// Start and End are the byte offsets of the declaration in the file, its
	// doc comment included.
	Start, End int
}

// Names returns the names of the annotated declarations.
func (f *TemplateFile) Names() []string {
	names := make([]string, 0, len(f.Templates))
	for _, t := range f.Templates {
		names = append(names, t.Def.Name)
	}

	return names
}
