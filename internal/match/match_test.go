package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"abc", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"createdat", "updatedat", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("abc", "abc"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
	assert.InDelta(t, 1.0, NameSimilarity("player_name", "PlayerName"), 0.001)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]string{
		"":              "",
		"PlayerName":    "playername",
		"player_name":   "playername",
		"player-name":   "playername",
		"GenStructs":    "genstructs",
		"order_item-ID": "orderitemid",
		"Ünïcode":       "ünïcode",
	} {
		assert.Equal(t, want, Normalize(input), input)
	}
}

func TestClosest(t *testing.T) {
	t.Parallel()

	settings := []string{"GenStructs", "DeleteTemplate", "OmitEmptyTupleFields"}

	tests := []struct {
		name   string
		known  []string
		want   string
		wantOK bool
	}{
		{"GenStruct", settings, "GenStructs", true},
		{"gen_structs", settings, "GenStructs", true},
		{"DeleteTemplates", settings, "DeleteTemplate", true},
		{"Verbose", settings, "", false},
		{"GenStructs", settings, "", false},
		{"Playr", []string{"PlayerName", "Player"}, "Player", true},
		{"x", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Closest(tt.name, tt.known)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "did you mean int32?", Hint("int23", []string{"struct{}", "int32"}))
	assert.Empty(t, Hint("float64", []string{"struct{}", "string"}))
}

func BenchmarkNameSimilarity(b *testing.B) {
	for b.Loop() {
		NameSimilarity("CustomerOrderID", "customer_order_id")
	}
}
