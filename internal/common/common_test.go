package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"time", "time"},
		{"either-generator/either", "either"},
		{"github.com/cockroachdb/errors", "errors"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PkgAlias(tt.path))
		})
	}
}

func TestUpperLowerFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Score", UpperFirst("score"))
	assert.Equal(t, "Émile", UpperFirst("émile"))
	assert.Equal(t, "score", LowerFirst("Score"))
	assert.Empty(t, UpperFirst(""))
	assert.Empty(t, LowerFirst(""))
}
