package template

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"strings"

	"either-generator/either"
	"either-generator/internal/grammar"
)

const directivePrefix = "//" + either.Directive

// segment maps the start of one directive line to its source position.
type segment struct {
	off int
	pos token.Pos
}

// DocComment returns the doc comment of spec, falling back to the one of its
// declaration when the declaration holds a single unparenthesized spec.
func DocComment(decl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}

	if decl != nil && !decl.Lparen.IsValid() {
		return decl.Doc
	}

	return nil
}

// HasDirective reports whether doc carries a template directive.
func HasDirective(doc *ast.CommentGroup) bool {
	return directiveIndex(doc) >= 0
}

func directiveIndex(doc *ast.CommentGroup) int {
	if doc == nil {
		return -1
	}

	for i, c := range doc.List {
		if isDirective(c.Text) {
			return i
		}
	}

	return -1
}

func isDirective(text string) bool {
	if !strings.HasPrefix(text, directivePrefix) {
		return false
	}

	rest := text[len(directivePrefix):]

	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// FromTypeSpec builds the template Definition of spec, declared by decl in
// file. The doc comment of the spec must carry the directive.
func FromTypeSpec(fset *token.FileSet, file *ast.File, decl *ast.GenDecl, spec *ast.TypeSpec) (*Definition, error) {
	doc := DocComment(decl, spec)

	if !HasDirective(doc) {
		return nil, fmt.Errorf("type %s has no %s directive", spec.Name.Name, directivePrefix)
	}

	def := &Definition{
		Name:   spec.Name.Name,
		Pos:    spec.Name.Pos(),
		marker: newMarker(file),
	}

	def.readDoc(doc)

	if spec.TypeParams != nil {
		for _, f := range spec.TypeParams.List {
			constraint := printExpr(fset, f.Type)
			for _, n := range f.Names {
				def.TypeParams = append(def.TypeParams, TypeParam{Name: n.Name, Constraint: constraint})
			}
		}
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return def, nil
	}

	def.Struct = true
	def.readFields(fset, st)

	return def, nil
}

// readDoc splits doc into its decoration lines and the directive text. The
// directive may span several directive lines; their texts are joined with
// newlines.
func (d *Definition) readDoc(doc *ast.CommentGroup) {
	var b strings.Builder

	for _, c := range doc.List {
		if !isDirective(c.Text) {
			d.Doc = append(d.Doc, c.Text)
			continue
		}

		if len(d.segments) > 0 {
			b.WriteByte('\n')
		}

		d.segments = append(d.segments, segment{off: b.Len(), pos: c.Slash + token.Pos(len(directivePrefix))})
		b.WriteString(c.Text[len(directivePrefix):])
	}

	for len(d.Doc) > 0 && strings.TrimSpace(d.Doc[len(d.Doc)-1]) == "//" {
		d.Doc = d.Doc[:len(d.Doc)-1]
	}

	d.Directive = b.String()
}

func (d *Definition) readFields(fset *token.FileSet, st *ast.StructType) {
	if st.Fields == nil {
		return
	}

	for _, f := range st.Fields.List {
		base := Field{
			Type:    printExpr(fset, f.Type),
			Expr:    f.Type,
			Doc:     commentLines(f.Doc),
			Comment: commentLines(f.Comment),
			Choice:  d.marker.matches(f.Type),
			Pos:     f.Pos(),
		}

		if f.Tag != nil {
			base.Tag = f.Tag.Value
			base.TagPos = f.Tag.Pos()
		}

		if len(f.Names) == 0 {
			base.Key = grammar.NamedKey(embeddedName(f.Type))
			d.Fields = append(d.Fields, base)

			continue
		}

		for _, n := range f.Names {
			field := base
			field.Name = n.Name
			field.Key = grammar.NamedKey(n.Name)
			field.Pos = n.Pos()
			d.Fields = append(d.Fields, field)
		}
	}

	d.Positional = len(d.Fields) > 0
	for i := range d.Fields {
		if !d.Fields[i].Blank() {
			d.Positional = false
			break
		}
	}

	if d.Positional {
		for i := range d.Fields {
			d.Fields[i].Key = grammar.IndexKey(i)
		}
	}
}

// DirectivePos returns the source position of byte offset off of the
// directive text.
func (d *Definition) DirectivePos(off int) token.Pos {
	if len(d.segments) == 0 {
		return d.Pos
	}

	seg := d.segments[0]
	for _, s := range d.segments[1:] {
		if s.off > off {
			break
		}

		seg = s
	}

	return seg.pos + token.Pos(off-seg.off)
}

// Idents returns the identifiers referenced by the template: its name, its
// type parameters and every identifier in its field types.
func (d *Definition) Idents() map[string]struct{} {
	taken := map[string]struct{}{d.Name: {}}

	for _, tp := range d.TypeParams {
		taken[tp.Name] = struct{}{}
	}

	for i := range d.Fields {
		if d.Fields[i].Choice {
			continue
		}

		CollectIdents(d.Fields[i].Expr, taken)
	}

	return taken
}

// CollectIdents adds every identifier of expr to into.
func CollectIdents(expr ast.Expr, into map[string]struct{}) {
	if expr == nil {
		return
	}

	ast.Inspect(expr, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			into[id.Name] = struct{}{}
		}

		return true
	})
}

// embeddedName returns the field name implied by an embedded type.
func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	default:
		return ""
	}
}

func commentLines(g *ast.CommentGroup) []string {
	if g == nil {
		return nil
	}

	lines := make([]string, 0, len(g.List))
	for _, c := range g.List {
		lines = append(lines, c.Text)
	}

	return lines
}

func printExpr(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, expr); err != nil {
		return ""
	}

	return buf.String()
}
