package diagnostic

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Add(t *testing.T) {
	t.Parallel()

	var d Diagnostics

	d.Add(Diagnostic{Code: UnknownSetting, Message: "unknown setting Foo ignored"})
	assert.True(t, d.IsValid())
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, DiagnosticWarning, d.Warnings[0].Severity)

	d.Add(Diagnostic{Code: TypeNotInCandidateSet, Message: "bad"})
	assert.True(t, d.HasErrors())
	require.Len(t, d.Errors, 1)
	assert.Equal(t, DiagnosticError, d.Errors[0].Severity)

	all := d.All()
	require.Len(t, all, 2)
	assert.Equal(t, TypeNotInCandidateSet, all[0].Code)
	assert.Equal(t, UnknownSetting, all[1].Code)
}

func TestDiagnostics_Merge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics

	a.AddWarning(NotAStruct, "not a struct", token.Position{}, "Alias")
	b.AddError(UnknownField, "no field x", token.Position{}, "Score")
	b.AddError(NotAChoiceField, "field y", token.Position{}, "Score")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostics_Error(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	require.NoError(t, d.Error())

	pos := token.Position{Filename: "score.go", Line: 3, Column: 5}
	d.AddError(UnknownField, "derivation A binds unknown field x", pos, "Score")
	d.AddError(EmptyChoiceSet, "empty", token.Position{}, "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"score.go:3:5 [Score]: UnknownField: derivation A binds unknown field x; EmptyChoiceSet: empty",
		err.Error())
}

func TestCode_Class(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code  Code
		class Class
		fatal bool
	}{
		{EmptyChoiceSet, ClassGrammar, true},
		{DuplicateDerivation, ClassGrammar, true},
		{PositionalRequiresStructMode, ClassPrecondition, true},
		{UnaddressableChoiceField, ClassPrecondition, true},
		{TypeNotInCandidateSet, ClassResolution, false},
		{NotAChoiceField, ClassResolution, false},
		{UnknownSetting, ClassWarning, false},
		{NotAStruct, ClassWarning, false},
		{Code(0), ClassUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.class, tt.code.Class())
			assert.Equal(t, tt.fatal, tt.code.Fatal())
		})
	}
}

func TestCode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EmptyChoiceSet", EmptyChoiceSet.String())
	assert.Equal(t, "PositionalRequiresStructMode", PositionalRequiresStructMode.String())
	assert.Equal(t, "NotAStruct", NotAStruct.String())
	assert.Equal(t, "Code(0)", Code(0).String())
	assert.Equal(t, "Code(99)", Code(99).String())
}
