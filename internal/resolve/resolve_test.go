package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"either-generator/internal/diagnostic"
	"either-generator/internal/grammar"
	"either-generator/internal/template"
)

func mustChoice(t *testing.T, src string) []grammar.Type {
	t.Helper()

	types, err := grammar.ParseChoice(src)
	require.NoError(t, err)

	return types
}

func mustDerivation(t *testing.T, src string) grammar.Derivation {
	t.Helper()

	in, err := grammar.ParseInput(src)
	require.NoError(t, err)
	require.Len(t, in.Derivations, 1)

	return in.Derivations[0]
}

// scoreTemplate has two choice fields and one fixed field.
func scoreTemplate(t *testing.T) (*template.Definition, []template.ChoiceField) {
	t.Helper()

	def := &template.Definition{
		Name:   "Score",
		Struct: true,
		Fields: []template.Field{
			{Key: grammar.NamedKey("PlayerName"), Name: "PlayerName", Choice: true},
			{Key: grammar.NamedKey("Player"), Name: "Player", Choice: true},
			{Key: grammar.NamedKey("Value"), Name: "Value", Type: "int64"},
		},
	}

	choices := []template.ChoiceField{
		{Key: grammar.NamedKey("PlayerName"), Field: 0, Candidates: mustChoice(t, "struct{} | string")},
		{Key: grammar.NamedKey("Player"), Field: 1, Candidates: mustChoice(t, "struct{} | PlayerData | PlayerData")},
	}

	return def, choices
}

func TestResolve(t *testing.T) {
	t.Parallel()

	def, choices := scoreTemplate(t)

	tests := []struct {
		name     string
		src      string
		want     []string
		defaults []bool
	}{
		{
			name:     "bound field",
			src:      "WithPlayer: [Player: PlayerData]",
			want:     []string{"struct{}", "PlayerData"},
			defaults: []bool{true, false},
		},
		{
			name:     "wildcard falls back to the default",
			src:      "WithName: [PlayerName: string, Player: _]",
			want:     []string{"string", "struct{}"},
			defaults: []bool{false, true},
		},
		{
			name:     "binding the default explicitly",
			src:      "Plain: [PlayerName: struct{}]",
			want:     []string{"struct{}", "struct{}"},
			defaults: []bool{false, true},
		},
		{
			name:     "spelling differences do not matter",
			src:      "Spaced: [PlayerName: struct {  }]",
			want:     []string{"struct{}", "struct{}"},
			defaults: []bool{false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(def, choices, mustDerivation(t, tt.src))
			require.NoError(t, err)
			require.Len(t, got.Fields, len(tt.want))

			for i, f := range got.Fields {
				assert.Equal(t, tt.want[i], f.Type.Text)
				assert.Equal(t, tt.defaults[i], f.Default)
				assert.Equal(t, choices[i].Key, f.Key)
				assert.Equal(t, choices[i].Field, f.Index)
			}
		})
	}
}

func TestResolve_Visibility(t *testing.T) {
	t.Parallel()

	def, choices := scoreTemplate(t)

	got, err := Resolve(def, choices, mustDerivation(t, "unexported WithPlayer: [Player: PlayerData]"))
	require.NoError(t, err)
	assert.Equal(t, "withPlayer", got.Name)

	f, ok := got.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "PlayerData", f.Type.Text)

	_, ok = got.Lookup(2)
	assert.False(t, ok)
}

func TestResolve_TypeNotInCandidateSet(t *testing.T) {
	t.Parallel()

	def, choices := scoreTemplate(t)

	src := "Bad: [PlayerName: int]"
	_, err := Resolve(def, choices, mustDerivation(t, src))
	require.Error(t, err)

	var cerr *CandidateError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Bad", cerr.Derivation)
	assert.Equal(t, grammar.NamedKey("PlayerName"), cerr.Key)
	assert.Equal(t, "int", cerr.Offending.Text)
	assert.Equal(t, choices[0].Candidates, cerr.Candidates)
	assert.Equal(t, diagnostic.TypeNotInCandidateSet, cerr.Code())
	assert.Equal(t, len("Bad: [PlayerName: "), cerr.Offset())
	assert.Equal(t,
		"derivation Bad binds field PlayerName to int, which is not one of its candidates: struct{} | string",
		cerr.Error())
	assert.Empty(t, cerr.Hint())

	_, err = Resolve(def, choices, mustDerivation(t, "Bad: [PlayerName: strng]"))
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "did you mean string?", cerr.Hint())
}

func TestResolve_KeyHint(t *testing.T) {
	t.Parallel()

	def, choices := scoreTemplate(t)

	_, err := Resolve(def, choices, mustDerivation(t, "A: [Playr: int]"))

	var kerr *KeyError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "did you mean Player?", kerr.Hint())

	_, err = Resolve(def, choices, mustDerivation(t, "A: [Unrelated: int]"))
	require.ErrorAs(t, err, &kerr)
	assert.Empty(t, kerr.Hint())
}

func TestResolve_KeyErrors(t *testing.T) {
	t.Parallel()

	def, choices := scoreTemplate(t)

	tests := []struct {
		name   string
		src    string
		code   diagnostic.Code
		offset int
	}{
		{name: "unknown field", src: "A: [Missing: int]", code: diagnostic.UnknownField, offset: 4},
		{name: "positional key on a named template", src: "A: [0: string]", code: diagnostic.UnknownField, offset: 4},
		{name: "fixed field", src: "A: [Player: _, Value: int64]", code: diagnostic.NotAChoiceField, offset: 15},
		{
			name:   "key errors win over candidate errors",
			src:    "A: [PlayerName: int, Missing: int]",
			code:   diagnostic.UnknownField,
			offset: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(def, choices, mustDerivation(t, tt.src))
			require.Error(t, err)

			var rerr Error
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.code, rerr.Code())
			assert.Equal(t, tt.offset, rerr.Offset())
		})
	}
}

func TestResolve_Positional(t *testing.T) {
	t.Parallel()

	def := &template.Definition{
		Name:       "Tuple",
		Struct:     true,
		Positional: true,
		Fields: []template.Field{
			{Key: grammar.IndexKey(0), Name: "_", Choice: true},
			{Key: grammar.IndexKey(1), Name: "_", Choice: true},
			{Key: grammar.IndexKey(2), Name: "_", Choice: true},
		},
	}

	choices := []template.ChoiceField{
		{Key: grammar.IndexKey(0), Field: 0, Candidates: mustChoice(t, "struct{} | int32")},
		{Key: grammar.IndexKey(1), Field: 1, Candidates: mustChoice(t, "struct{} | int32 | uint32")},
		{Key: grammar.IndexKey(2), Field: 2, Candidates: mustChoice(t, "struct{} | int32 | string")},
	}

	got, err := Resolve(def, choices, mustDerivation(t, "C: [_, _, string]"))
	require.NoError(t, err)
	assert.Equal(t, "struct{}", got.Fields[0].Type.Text)
	assert.Equal(t, "struct{}", got.Fields[1].Type.Text)
	assert.Equal(t, "string", got.Fields[2].Type.Text)

	_, err = Resolve(def, choices, mustDerivation(t, "B: [1: string]"))

	var cerr *CandidateError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, grammar.IndexKey(1), cerr.Key)

	_, err = Resolve(def, choices, mustDerivation(t, "D: [x: int32]"))

	var kerr *KeyError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, diagnostic.UnknownField, kerr.Code())
}
