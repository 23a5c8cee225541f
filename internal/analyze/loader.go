package analyze

import (
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"either-generator/internal/logger"
	"either-generator/internal/template"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName | packages.NeedFiles

// Analyzer locates template files.
type Analyzer struct {
	buildTag string
	log      *zap.SugaredLogger
}

// NewAnalyzer creates an Analyzer recognizing template files by buildTag.
func NewAnalyzer(buildTag string) *Analyzer {
	return &Analyzer{
		buildTag: buildTag,
		log:      logger.ComponentLogger("analyze"),
	}
}

// LoadPackages resolves the package patterns (e.g. "./...",
// "either-generator/examples/scores") and finds the template files of each
// package.
func (a *Analyzer) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}

	var infos []*PackageInfo

	for _, pkg := range pkgs {
		info, err := a.processPackage(pkg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to process package %s", pkg.PkgPath)
		}

		if len(info.Templates) == 0 && len(pkg.Errors) > 0 {
			return nil, errors.Newf("package errors: %v", pkg.Errors)
		}

		if len(pkg.Errors) > 0 {
			a.log.Debugw("ignoring package errors", logger.FieldPackage, pkg.PkgPath, logger.FieldError, pkg.Errors)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// Load resolves the package patterns and parses every template file found.
func (a *Analyzer) Load(patterns ...string) ([]*TemplateFile, error) {
	infos, err := a.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	var files []*TemplateFile

	for _, info := range infos {
		for _, path := range info.Templates {
			f, err := a.ParseFile(path)
			if err != nil {
				return nil, err
			}

			files = append(files, f)
		}
	}

	return files, nil
}

func (a *Analyzer) processPackage(pkg *packages.Package) (*PackageInfo, error) {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	candidates := append(slices.Clone(pkg.GoFiles), pkg.IgnoredFiles...)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	for _, path := range candidates {
		if info.Dir == "" {
			info.Dir = filepath.Dir(path)
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			continue
		}

		ok, err := a.IsTemplateFile(path)
		if err != nil {
			return nil, err
		}

		if ok {
			info.Templates = append(info.Templates, path)
		}
	}

	a.log.Debugw("package scanned",
		logger.FieldPackage, pkg.PkgPath,
		logger.FieldCount, len(info.Templates))

	return info, nil
}

// IsTemplateFile reports whether the //go:build constraint of the file at
// path requires the template build tag.
func (a *Analyzer) IsTemplateFile(path string) (bool, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, path, nil, parser.PackageClauseOnly|parser.ParseComments)
	if err != nil {
		return false, errors.Wrapf(err, "failed to parse %s", path)
	}

	return hasBuildTag(file, a.buildTag), nil
}

// ParseFile reads and parses the template file at path.
func (a *Analyzer) ParseFile(path string) (*TemplateFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return a.ParseSource(path, src)
}

// ParseSource parses src as the template file at path.
func (a *Analyzer) ParseSource(path string, src []byte) (*TemplateFile, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	if !hasBuildTag(file, a.buildTag) {
		return nil, errors.WithHintf(errors.Newf("%s is not a template file", path),
			"template files start with //go:build %s", a.buildTag)
	}

	tf := &TemplateFile{
		Path:    path,
		Package: file.Name.Name,
		Src:     src,
		Fset:    fset,
		File:    file,
	}

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		if gd.Lparen.IsValid() {
			for _, spec := range gd.Specs {
				if ts := spec.(*ast.TypeSpec); template.HasDirective(ts.Doc) {
					a.log.Warnw("template directive inside a grouped type declaration ignored",
						logger.FieldFile, path,
						logger.FieldTemplate, ts.Name.Name,
						logger.FieldPosition, fset.Position(ts.Pos()).String())
				}
			}

			continue
		}

		ts := gd.Specs[0].(*ast.TypeSpec)

		doc := template.DocComment(gd, ts)
		if !template.HasDirective(doc) {
			continue
		}

		def, err := template.FromTypeSpec(fset, file, gd, ts)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read template %s", ts.Name.Name)
		}

		start := fset.Position(doc.Pos()).Offset
		end := fset.Position(gd.End()).Offset
		def.Source = string(src[start:end])

		tf.Templates = append(tf.Templates, &Template{Def: def, Start: start, End: end})
	}

	a.log.Debugw("template file parsed",
		logger.FieldFile, path,
		logger.FieldCount, len(tf.Templates))

	return tf, nil
}

func hasBuildTag(file *ast.File, tag string) bool {
	for _, g := range file.Comments {
		if g.Pos() >= file.Package {
			break
		}

		for _, c := range g.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}

			expr, err := constraint.Parse(c.Text)
			if err != nil {
				return false
			}

			return requires(expr, tag)
		}
	}

	return false
}

// requires reports whether expr can only be satisfied with tag set.
func requires(expr constraint.Expr, tag string) bool {
	switch e := expr.(type) {
	case *constraint.TagExpr:
		return e.Tag == tag
	case *constraint.AndExpr:
		return requires(e.X, tag) || requires(e.Y, tag)
	case *constraint.OrExpr:
		return requires(e.X, tag) && requires(e.Y, tag)
	default:
		return false
	}
}
