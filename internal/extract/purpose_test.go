package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPurpose(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"direct containment", "I need money for my Education", "education"},
		{"multi word term", "loan for home renovation work", "home renovation"},
		{"medical", "need it for medical bills!", "medical"},
		{"amid other fields", "80000; 12 months; travel", "travel"},
		{"fuzzy one deletion", "its for eduation", "education"},
		{"fuzzy two edits", "weddng expenses", "wedding"},
		{"typo table business", "bussiness loan", "business"},
		{"no match", "xyzzyqq plumbus", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Purpose(tt.message))
		})
	}
}

func TestPurposeFarWordsResolveEmpty(t *testing.T) {
	// Every vocabulary term is at least edit distance 3 from this word.
	require.Equal(t, "", Purpose("cryptography"))
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"education", "education", 0},
		{"eduation", "education", 1},
		{"educatoin", "education", 2},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}
