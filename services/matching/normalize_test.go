package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Athens", "athens"},
		{"trims", "  athens  ", "athens"},
		{"collapses whitespace runs", "nea   smyrni", "nea smyrni"},
		{"collapses punctuation runs", "athens,, ;; centre", "athens centre"},
		{"trailing punctuation dropped", "Αθήνα, ", "αθήνα"},
		{"leading punctuation dropped", ", Athens", "athens"},
		{"leading separator run dropped", ";,.athens", "athens"},
		{"greek case folding", "ΑΘΉΝΑ", "αθήνα"},
		{"periods treated as separators", "ag. dimitrios", "ag dimitrios"},
		{"empty", "", ""},
		{"only separators", " ,.; ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLocation(tt.in))
		})
	}
}

func TestNormalizeLocationKeepsDiacritics(t *testing.T) {
	// Accent differences are not bridged: the rule only folds case,
	// punctuation and whitespace.
	assert.NotEqual(t, NormalizeLocation("Αθηνα"), NormalizeLocation("Αθήνα"))
}

func TestLocationMatches(t *testing.T) {
	assert.True(t, locationMatches(nil, "Αθήνα, ", "αθήνα"))
	assert.True(t, locationMatches(nil, ", Athens", "Athens"))
	assert.False(t, locationMatches(nil, "Αθηνα", "Αθήνα"))

	// The multi-location list supersedes the legacy field entirely.
	assert.True(t, locationMatches([]string{"Glyfada", "Voula"}, "", "voula"))
	assert.False(t, locationMatches([]string{"Glyfada"}, "voula", "voula"))
}
