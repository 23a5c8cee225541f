package gen

import (
	"bytes"
	"fmt"
	"go/build/constraint"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"either-generator/internal/analyze"
	"either-generator/internal/diagnostic"
	"either-generator/internal/emit"
	"either-generator/internal/engine"
	"either-generator/internal/logger"
)

// DefaultOutputSuffix replaces the ".go" extension of a template file to name
// its generated file.
const DefaultOutputSuffix = "_either.go"

// header starts every generated file.
const header = "// Code generated by either-gen. DO NOT EDIT.\n// Source: %s\n\n"

// Options holds configuration for code generation.
type Options struct {
	// OutputSuffix names generated files after their template file.
	OutputSuffix string
	// Emit tunes the rendering of expanded declarations.
	Emit emit.Options
}

// DefaultOptions returns the default generator configuration.
func DefaultOptions() Options {
	return Options{
		OutputSuffix: DefaultOutputSuffix,
		Emit:         emit.DefaultOptions(),
	}
}

// Generator generates Go files from template files.
type Generator struct {
	opts   Options
	engine *engine.Engine
	log    *zap.SugaredLogger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(opts Options) *Generator {
	if opts.OutputSuffix == "" {
		opts.OutputSuffix = DefaultOutputSuffix
	}

	return &Generator{
		opts:   opts,
		engine: engine.New(opts.Emit),
		log:    logger.ComponentLogger("gen"),
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Path is where the file is written, next to its template file.
	Path string
	// Source is the path of the template file.
	Source string
	// Content is the formatted Go source code.
	Content []byte
	// Diagnostics of every expansion in the file. They are also written into
	// Content as comments.
	Diagnostics diagnostic.Diagnostics
}

// OutputPath returns the path of the file generated from the template file at
// path.
func (g *Generator) OutputPath(path string) string {
	return strings.TrimSuffix(path, ".go") + g.opts.OutputSuffix
}

// Generate expands every annotated declaration of tf and returns the
// generated file. Expansion failures are reported in the diagnostics of the
// file, not as an error. An error is returned only when the generated code
// cannot be formatted; the unformatted code is then written to a sidecar
// file.
func (g *Generator) Generate(tf *analyze.TemplateFile) (*GeneratedFile, error) {
	gf := &GeneratedFile{
		Path:   g.OutputPath(tf.Path),
		Source: tf.Path,
	}

	edits := constraintEdits(tf)

	for _, t := range tf.Templates {
		out := g.engine.Expand(t.Def, tf.Fset)
		g.logDiagnostics(tf.Path, out.Diagnostics)
		gf.Diagnostics.Merge(out.Diagnostics)

		edits = append(edits, edit{start: t.Start, end: t.End, text: render(out)})

		g.log.Debugw("template expanded",
			logger.FieldFile, tf.Path,
			logger.FieldTemplate, t.Def.Name,
			logger.FieldCount, len(out.Decls))
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, header, filepath.Base(tf.Path))
	buf.Write(apply(tf.Src, edits))

	content, err := imports.Process(gf.Path, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		_ = writeDebugUnformatted(filepath.Dir(gf.Path), filepath.Base(gf.Path), buf.Bytes())

		return nil, errors.WithHint(errors.Wrapf(err, "failed to format %s", gf.Path),
			"the unformatted output was written next to it with the .unformatted.go suffix")
	}

	gf.Content = content

	return gf, nil
}

// GenerateAll generates a file for every template file.
func (g *Generator) GenerateAll(files []*analyze.TemplateFile) ([]*GeneratedFile, error) {
	out := make([]*GeneratedFile, 0, len(files))

	for _, tf := range files {
		gf, err := g.Generate(tf)
		if err != nil {
			return nil, err
		}

		out = append(out, gf)
	}

	return out, nil
}

func (g *Generator) logDiagnostics(path string, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []any{
			logger.FieldFile, path,
			logger.FieldTemplate, d.Template,
			logger.FieldCode, d.Code.String(),
			logger.FieldPosition, d.Pos.String(),
		}

		if d.Severity == diagnostic.DiagnosticError {
			g.log.Errorw(d.Message, fields...)
		} else {
			g.log.Warnw(d.Message, fields...)
		}
	}
}

// edit replaces src[start:end] with text.
type edit struct {
	start, end int
	text       string
}

func apply(src []byte, edits []edit) []byte {
	slices.SortFunc(edits, func(a, b edit) int { return a.start - b.start })

	var buf bytes.Buffer

	last := 0

	for _, e := range edits {
		buf.Write(src[last:e.start])
		buf.WriteString(e.text)
		last = e.end
	}

	buf.Write(src[last:])

	return buf.Bytes()
}

// constraintEdits removes the build constraint lines above the package
// clause, along with the newlines following them.
func constraintEdits(tf *analyze.TemplateFile) []edit {
	var edits []edit

	for _, group := range tf.File.Comments {
		if group.Pos() >= tf.File.Package {
			break
		}

		for _, c := range group.List {
			if !constraint.IsGoBuild(c.Text) && !constraint.IsPlusBuild(c.Text) {
				continue
			}

			start := tf.Fset.Position(c.Pos()).Offset
			end := tf.Fset.Position(c.End()).Offset

			for end < len(tf.Src) && tf.Src[end] == '\n' {
				end++
			}

			edits = append(edits, edit{start: start, end: end})
		}
	}

	return edits
}

// render joins the declarations of out, preceded by its diagnostics as
// comments.
func render(out *emit.Output) string {
	var sb strings.Builder

	for _, d := range out.Diagnostics.All() {
		sb.WriteString(diagnosticComment(d))
		sb.WriteByte('\n')
	}

	if sb.Len() > 0 && len(out.Decls) > 0 {
		sb.WriteByte('\n')
	}

	for i, d := range out.Decls {
		if i > 0 {
			sb.WriteString("\n\n")
		}

		sb.WriteString(d.Source)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func diagnosticComment(d diagnostic.Diagnostic) string {
	msg := strings.Join(strings.Fields(d.Message), " ")
	if d.Hint != "" {
		msg += " (" + d.Hint + ")"
	}

	if d.Code == 0 {
		return fmt.Sprintf("// either-gen: %s: %s", d.Severity, msg)
	}

	return fmt.Sprintf("// either-gen: %s: %s: %s", d.Severity, d.Code, msg)
}
