package engine

import (
	"errors"
	"go/token"

	"either-generator/internal/diagnostic"
	"either-generator/internal/emit"
	"either-generator/internal/grammar"
	"either-generator/internal/resolve"
	"either-generator/internal/template"
)

// Engine expands templates.
type Engine struct {
	opts emit.Options
}

// New creates an Engine emitting with opts.
func New(opts emit.Options) *Engine {
	return &Engine{opts: opts}
}

// Expand expands def with the default options.
func Expand(def *template.Definition, fset *token.FileSet) *emit.Output {
	return New(emit.DefaultOptions()).Expand(def, fset)
}

// Plan is the parsed form of one template, before emission.
type Plan struct {
	Input   *grammar.Input
	Choices []template.ChoiceField
	// Params are the type parameters synthesized for alias mode.
	Params []template.TypeParam
}

// Expand runs one invocation on def. Grammar and precondition failures yield
// an output holding only diagnostics. A resolution failure keeps the
// declarations emitted before it.
func (e *Engine) Expand(def *template.Definition, fset *token.FileSet) *emit.Output {
	out := &emit.Output{}

	if !def.Struct {
		out.Diagnostics.AddWarning(diagnostic.NotAStruct,
			"the template directive only applies to struct types; declaration copied unchanged",
			fset.Position(def.Pos), def.Name)
		out.Decls = append(out.Decls, emit.Decl{Kind: emit.KindPassthrough, Name: def.Name, Source: def.Source})

		return out
	}

	plan, ok := e.plan(def, fset, &out.Diagnostics)
	if !ok {
		return out
	}

	decls, err := emit.New(def, plan.Choices, plan.Input.Settings, e.opts).Emit(plan.Input.Derivations)
	out.Decls = decls

	if err != nil {
		report(&out.Diagnostics, def, fset, err)
	}

	return out
}

// Plan parses def without emitting anything. The returned plan is nil when
// the template cannot be expanded; the reasons are added to diags.
func (e *Engine) Plan(def *template.Definition, fset *token.FileSet, diags *diagnostic.Diagnostics) *Plan {
	if !def.Struct {
		diags.AddWarning(diagnostic.NotAStruct, "not a struct type", fset.Position(def.Pos), def.Name)
		return nil
	}

	plan, ok := e.plan(def, fset, diags)
	if !ok {
		return nil
	}

	if !plan.Input.Settings.GenerateStructs {
		if def.Positional {
			report(diags, def, fset, &emit.PreconditionError{Code: diagnostic.PositionalRequiresStructMode, Template: def.Name})
			return nil
		}

		plan.Params = emit.New(def, plan.Choices, plan.Input.Settings, e.opts).Params()
	}

	return plan
}

func (e *Engine) plan(def *template.Definition, fset *token.FileSet, diags *diagnostic.Diagnostics) (*Plan, bool) {
	if len(def.Fields) == 0 {
		report(diags, def, fset, &emit.PreconditionError{Code: diagnostic.NoFieldsToTemplate, Template: def.Name})
		return nil, false
	}

	in, err := grammar.ParseInput(def.Directive)
	if err != nil {
		report(diags, def, fset, err)
		return nil, false
	}

	for _, w := range in.Warnings {
		diags.Add(diagnostic.Diagnostic{
			Code:     w.Code,
			Message:  w.Message,
			Pos:      fset.Position(def.DirectivePos(w.Offset)),
			Template: def.Name,
			Hint:     w.Hint,
		})
	}

	choices, err := template.ExtractChoices(def)
	if err != nil {
		report(diags, def, fset, err)
		return nil, false
	}

	return &Plan{Input: in, Choices: choices}, true
}

// report converts err into a diagnostic positioned in the source.
func report(diags *diagnostic.Diagnostics, def *template.Definition, fset *token.FileSet, err error) {
	var (
		gerr *grammar.Error
		terr *template.Error
		perr *emit.PreconditionError
		rerr resolve.Error
	)

	switch {
	case errors.As(err, &gerr):
		diags.Add(diagnostic.Diagnostic{
			Code:     gerr.Code,
			Message:  gerr.Message,
			Pos:      fset.Position(def.DirectivePos(gerr.Offset)),
			Template: def.Name,
			Hint:     gerr.Hint,
		})
	case errors.As(err, &terr):
		diags.AddError(terr.Code, terr.Message, fset.Position(terr.Pos), def.Name)
	case errors.As(err, &perr):
		diags.AddError(perr.Code, perr.Error(), fset.Position(def.Pos), def.Name)
	case errors.As(err, &rerr):
		diags.Add(diagnostic.Diagnostic{
			Code:     rerr.Code(),
			Message:  rerr.Error(),
			Pos:      fset.Position(def.DirectivePos(rerr.Offset())),
			Template: def.Name,
			Hint:     rerr.Hint(),
		})
	default:
		diags.AddError(0, err.Error(), fset.Position(def.Pos), def.Name)
	}
}
