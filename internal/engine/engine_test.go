package engine

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"either-generator/internal/diagnostic"
	"either-generator/internal/emit"
	"either-generator/internal/template"
)

func definition(t *testing.T, src string) (*token.FileSet, *template.Definition) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "score.go", src, parser.ParseComments)
	require.NoError(t, err)

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		ts := gd.Specs[0].(*ast.TypeSpec)
		if !template.HasDirective(template.DocComment(gd, ts)) {
			continue
		}

		def, err := template.FromTypeSpec(fset, file, gd, ts)
		require.NoError(t, err)

		start := fset.Position(gd.Doc.Pos()).Offset
		def.Source = src[start:fset.Position(gd.End()).Offset]

		return fset, def
	}

	t.Fatal("no annotated declaration")

	return nil, nil
}

const header = "package scores\n\nimport \"either-generator/either\"\n\n"

const scoreStruct = "type Score struct {\n" +
	"\tPlayerName either.Choice `either:\"struct{} | string\"`\n" +
	"\tPlayer     either.Choice `either:\"struct{} | PlayerData\"`\n" +
	"}\n"

func TestExpand(t *testing.T) {
	t.Parallel()

	fset, def := definition(t, header+
		"//either:template ScoreWithPlayer: [Player: PlayerData], ScoreWithoutPlayer: [PlayerName: string]\n"+
		scoreStruct)

	out := Expand(def, fset)
	require.True(t, out.Diagnostics.IsValid(), out.Diagnostics.Error())
	assert.Equal(t, []string{"Score", "ScoreWithPlayer", "ScoreWithoutPlayer"}, out.Names())
}

func TestExpand_Diagnostics(t *testing.T) {
	t.Parallel()

	// The directive sits on line 5, after the prefix "//either:template ".
	const col = len("//either:template ") + 1

	tests := []struct {
		name      string
		directive string
		fields    string
		code      diagnostic.Code
		line      int
		column    int
		decls     []string
	}{
		{
			name:      "grammar error",
			directive: "A: [Player PlayerData]",
			code:      diagnostic.MalformedDerivation,
			line:      5,
			column:    col + len("A: ["),
		},
		{
			name:      "invalid setting",
			directive: "GenStructs: maybe; A: [Player: PlayerData]",
			code:      diagnostic.InvalidSetting,
			line:      5,
			column:    col + len("GenStructs: "),
		},
		{
			name:      "type outside the candidate set",
			directive: "A: [Player: PlayerData], B: [Player: int], C: [PlayerName: string]",
			code:      diagnostic.TypeNotInCandidateSet,
			line:      5,
			column:    col + len("A: [Player: PlayerData], B: [Player: "),
			decls:     []string{"Score", "A"},
		},
		{
			name:      "unknown field",
			directive: "GenStructs: true; A: [Name: string]",
			code:      diagnostic.UnknownField,
			line:      5,
			column:    col + len("GenStructs: true; A: ["),
			decls:     []string{"Score"},
		},
		{
			name:      "positional template in alias mode",
			directive: "A: [0: int]",
			fields:    "type Score struct {\n\t_ either.Choice `either:\"int | string\"`\n}\n",
			code:      diagnostic.PositionalRequiresStructMode,
			line:      6,
			column:    6,
		},
		{
			name:      "malformed candidate list",
			directive: "A: [x: int]",
			fields:    "type Score struct {\n\tx either.Choice `either:\"int |\"`\n}\n",
			code:      diagnostic.MalformedChoice,
			line:      7,
			column:    len("\tx either.Choice `either:\"int |") + 1,
		},
		{
			name:      "field-less template wins over grammar errors",
			directive: "not a derivation list",
			fields:    "type Score struct{}\n",
			code:      diagnostic.NoFieldsToTemplate,
			line:      6,
			column:    6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := tt.fields
			if fields == "" {
				fields = scoreStruct
			}

			fset, def := definition(t, header+"//either:template "+tt.directive+"\n"+fields)

			out := Expand(def, fset)
			require.True(t, out.Diagnostics.HasErrors())
			require.Len(t, out.Diagnostics.Errors, 1)

			d := out.Diagnostics.Errors[0]
			assert.Equal(t, tt.code, d.Code, d.Message)
			assert.Equal(t, "Score", d.Template)
			assert.Equal(t, "score.go", d.Pos.Filename)
			assert.Equal(t, tt.line, d.Pos.Line, d.String())
			assert.Equal(t, tt.column, d.Pos.Column, d.String())

			if tt.decls == nil {
				assert.Empty(t, out.Decls)
			} else {
				assert.Equal(t, tt.decls, out.Names())
			}
		})
	}
}

func TestExpand_UnknownSettingWarning(t *testing.T) {
	t.Parallel()

	fset, def := definition(t, header+
		"//either:template Verbose: true, GenStructs: true; A: [Player: PlayerData]\n"+
		scoreStruct)

	out := Expand(def, fset)
	require.True(t, out.Diagnostics.IsValid())
	require.Len(t, out.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.UnknownSetting, out.Diagnostics.Warnings[0].Code)
	assert.Equal(t, len("//either:template ")+1, out.Diagnostics.Warnings[0].Pos.Column)
	assert.Equal(t, []string{"A", "Score"}, out.Names())
}

func TestExpand_Hint(t *testing.T) {
	t.Parallel()

	fset, def := definition(t, header+
		"//either:template GenStruct: true; A: [Playr: PlayerData]\n"+
		scoreStruct)

	out := Expand(def, fset)
	require.Len(t, out.Diagnostics.Warnings, 1)
	assert.Equal(t, "did you mean GenStructs?", out.Diagnostics.Warnings[0].Hint)

	require.Len(t, out.Diagnostics.Errors, 1)
	d := out.Diagnostics.Errors[0]
	assert.Equal(t, diagnostic.UnknownField, d.Code)
	assert.Equal(t, "did you mean Player?", d.Hint)
	assert.True(t, strings.HasSuffix(d.String(), "(did you mean Player?)"), d.String())
}

func TestExpand_NotAStruct(t *testing.T) {
	t.Parallel()

	src := header + "// IDs lists identifiers.\n//either:template A: [x: int]\ntype IDs []int\n"
	fset, def := definition(t, src)

	out := Expand(def, fset)
	require.True(t, out.Diagnostics.IsValid())
	require.Len(t, out.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.NotAStruct, out.Diagnostics.Warnings[0].Code)

	require.Len(t, out.Decls, 1)
	assert.Equal(t, emit.KindPassthrough, out.Decls[0].Kind)
	assert.Equal(t, "// IDs lists identifiers.\n//either:template A: [x: int]\ntype IDs []int", out.Decls[0].Source)
}

func TestEngine_Plan(t *testing.T) {
	t.Parallel()

	fset, def := definition(t, header+
		"//either:template ScoreWithPlayer: [Player: PlayerData]\n"+
		scoreStruct)

	var diags diagnostic.Diagnostics

	plan := New(emit.DefaultOptions()).Plan(def, fset, &diags)
	require.NotNil(t, plan)
	assert.True(t, diags.IsValid())

	require.Len(t, plan.Choices, 2)
	require.Len(t, plan.Params, 2)
	assert.Equal(t, "A", plan.Params[0].Name)
	assert.Equal(t, "B", plan.Params[1].Name)
	require.Len(t, plan.Input.Derivations, 1)

	fset, def = definition(t, header+"//either:template A: [x: int]\ntype Unit struct{}\n")
	assert.Nil(t, New(emit.DefaultOptions()).Plan(def, fset, &diags))
	assert.True(t, diags.HasErrors())
}

func TestEngine_Plan_Positional(t *testing.T) {
	t.Parallel()

	fields := "type Pair struct {\n\t_ either.Choice `either:\"int | string\"`\n}\n"

	fset, def := definition(t, header+"//either:template A: [0: int]\n"+fields)

	var diags diagnostic.Diagnostics

	assert.Nil(t, New(emit.DefaultOptions()).Plan(def, fset, &diags))
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.PositionalRequiresStructMode, diags.Errors[0].Code)
	assert.Equal(t, Expand(def, fset).Diagnostics.Errors[0].Code, diags.Errors[0].Code)

	fset, def = definition(t, header+"//either:template GenStructs: true; A: [0: int]\n"+fields)
	diags = diagnostic.Diagnostics{}

	plan := New(emit.DefaultOptions()).Plan(def, fset, &diags)
	require.NotNil(t, plan)
	assert.True(t, diags.IsValid())
	assert.Empty(t, plan.Params)
}
