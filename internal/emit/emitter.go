package emit

import (
	"strings"

	"either-generator/internal/diagnostic"
	"either-generator/internal/grammar"
	"either-generator/internal/naming"
	"either-generator/internal/resolve"
	tmpl "either-generator/internal/template"
)

// Emitter expands one template.
type Emitter struct {
	def      *tmpl.Definition
	choices  []tmpl.ChoiceField
	settings grammar.Settings
	opts     Options
}

// New creates an Emitter for def and its choice fields.
func New(def *tmpl.Definition, choices []tmpl.ChoiceField, settings grammar.Settings, opts Options) *Emitter {
	if opts.PositionalPrefix == "" {
		opts.PositionalPrefix = DefaultPositionalPrefix
	}

	return &Emitter{
		def:      def,
		choices:  choices,
		settings: settings,
		opts:     opts,
	}
}

// Emit expands the derivations. A precondition failure returns no
// declarations. The first resolution failure stops the expansion: the
// declarations emitted before it are returned along with the error.
func (e *Emitter) Emit(derivations []grammar.Derivation) ([]Decl, error) {
	if len(e.def.Fields) == 0 {
		return nil, &PreconditionError{Code: diagnostic.NoFieldsToTemplate, Template: e.def.Name}
	}

	if e.settings.GenerateStructs {
		return e.structs(derivations)
	}

	if e.def.Positional {
		return nil, &PreconditionError{Code: diagnostic.PositionalRequiresStructMode, Template: e.def.Name}
	}

	return e.aliases(derivations)
}

// Params returns the type parameters synthesized for the choice fields in
// alias mode, in field order.
func (e *Emitter) Params() []tmpl.TypeParam {
	taken := e.def.Idents()
	for _, c := range e.choices {
		for _, cand := range c.Candidates {
			tmpl.CollectIdents(cand.Expr, taken)
		}
	}

	params := make([]tmpl.TypeParam, 0, len(e.choices))
	index := 0

	for range e.choices {
		var name string
		name, index = naming.Next(index, taken)
		params = append(params, tmpl.TypeParam{Name: name, Constraint: "any"})
	}

	return params
}

func (e *Emitter) aliases(derivations []grammar.Derivation) ([]Decl, error) {
	synthesized := e.Params()

	paramOf := make(map[int]string, len(e.choices))
	for i, c := range e.choices {
		paramOf[c.Field] = synthesized[i].Name
	}

	data := &declData{
		Doc:    e.def.Doc,
		Name:   e.def.Name,
		Params: paramList(append(append([]tmpl.TypeParam(nil), e.def.TypeParams...), synthesized...)),
	}

	for i := range e.def.Fields {
		f := &e.def.Fields[i]

		typ := f.Type
		if p, ok := paramOf[i]; ok {
			typ = p
		}

		fd, err := newField(f, f.Name, typ)
		if err != nil {
			return nil, err
		}

		data.Fields = append(data.Fields, fd)
	}

	src, err := render("struct", data)
	if err != nil {
		return nil, err
	}

	decls := []Decl{{Kind: KindTemplate, Name: e.def.Name, Source: src}}

	for _, d := range derivations {
		r, err := resolve.Resolve(e.def, e.choices, d)
		if err != nil {
			return decls, err
		}

		args := e.def.ParamNames()
		for _, f := range r.Fields {
			args = append(args, f.Type.Text)
		}

		src, err := render("alias", &declData{
			Doc:    derivedDoc(r.Name, e.def.Name),
			Name:   r.Name,
			Params: paramList(e.def.TypeParams),
			Target: e.def.Name + "[" + strings.Join(args, ", ") + "]",
		})
		if err != nil {
			return decls, err
		}

		decls = append(decls, Decl{Kind: KindAlias, Name: r.Name, Source: src})
	}

	return decls, nil
}

func (e *Emitter) structs(derivations []grammar.Derivation) ([]Decl, error) {
	var decls []Decl

	var failure error

	for _, d := range derivations {
		r, err := resolve.Resolve(e.def, e.choices, d)
		if err != nil {
			failure = err
			break
		}

		decl, err := e.derivedStruct(r)
		if err != nil {
			return decls, err
		}

		decls = append(decls, decl)
	}

	if e.settings.DeleteTemplate {
		return decls, failure
	}

	decl, err := e.templateStruct()
	if err != nil {
		return decls, err
	}

	return append(decls, decl), failure
}

// derivedStruct clones the template under the derivation's name with the
// resolved types substituted.
func (e *Emitter) derivedStruct(r *resolve.Derivation) (Decl, error) {
	data := &declData{
		Doc:    derivedDoc(r.Name, e.def.Name),
		Name:   r.Name,
		Params: paramList(e.def.TypeParams),
	}

	stem := naming.NewStem(e.opts.PositionalPrefix, nil)

	for i := range e.def.Fields {
		f := &e.def.Fields[i]

		typ := f.Type
		if rf, ok := r.Lookup(i); ok {
			if e.settings.OmitEmptyTupleFields && rf.Type.IsEmptyStruct() {
				continue
			}

			typ = rf.Type.Text
		}

		fd, err := newField(f, e.fieldName(f, stem), typ)
		if err != nil {
			return Decl{}, err
		}

		data.Fields = append(data.Fields, fd)
	}

	src, err := render("struct", data)
	if err != nil {
		return Decl{}, err
	}

	return Decl{Kind: KindStruct, Name: r.Name, Source: src}, nil
}

// templateStruct renders the template with every choice field set to its
// default candidate.
func (e *Emitter) templateStruct() (Decl, error) {
	data := &declData{
		Doc:    e.def.Doc,
		Name:   e.def.Name,
		Params: paramList(e.def.TypeParams),
	}

	defaults := make(map[int]string, len(e.choices))
	for _, c := range e.choices {
		defaults[c.Field] = c.Default().Text
	}

	stem := naming.NewStem(e.opts.PositionalPrefix, nil)

	for i := range e.def.Fields {
		f := &e.def.Fields[i]

		typ := f.Type
		if d, ok := defaults[i]; ok {
			typ = d
		}

		fd, err := newField(f, e.fieldName(f, stem), typ)
		if err != nil {
			return Decl{}, err
		}

		data.Fields = append(data.Fields, fd)
	}

	src, err := render("struct", data)
	if err != nil {
		return Decl{}, err
	}

	return Decl{Kind: KindTemplate, Name: e.def.Name, Source: src}, nil
}

// fieldName returns the emitted name of f. Positional fields are numbered in
// emission order so the emitted names stay contiguous.
func (e *Emitter) fieldName(f *tmpl.Field, stem *naming.Stem) string {
	if e.def.Positional {
		return stem.Next()
	}

	return f.Name
}
