package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_IllegalCharacters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"slashes and colons", "a/b:c", "a_b_c"},
		{"backslash", `a\b`, "a_b"},
		{"angle brackets", "<note>", "_note_"},
		{"quotes pipe question star", `a"b|c?d*e`, "a_b_c_d_e"},
		{"clean title untouched", "Meeting notes 2025", "Meeting notes 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_WhitespaceCollapsed(t *testing.T) {
	assert.Equal(t, "a b", Sanitize("a  b"))
	assert.Equal(t, "a b c", Sanitize("a \t b\n c"))
	assert.Equal(t, "trimmed", Sanitize("   trimmed   "))
}

func TestSanitize_PeriodRunsCollapsed(t *testing.T) {
	assert.Equal(t, "a.b", Sanitize("a..b"))
	assert.Equal(t, "a.b", Sanitize("a....b"))
	assert.Equal(t, "a.b.c", Sanitize("a..b...c"))
}

func TestSanitize_TruncatesTo200Characters(t *testing.T) {
	in := strings.Repeat("x", 250)
	got := Sanitize(in)
	assert.Len(t, got, 200)
}

func TestSanitize_TruncationCountsRunes(t *testing.T) {
	in := strings.Repeat("ü", 250)
	got := Sanitize(in)
	assert.Equal(t, 200, len([]rune(got)))
}

func TestSanitize_TruncationAfterNormalization(t *testing.T) {
	// Whitespace collapse happens before the length check.
	in := strings.Repeat("x  ", 150)
	got := Sanitize(in)
	assert.LessOrEqual(t, len([]rune(got)), 200)
	assert.NotContains(t, got, "  ")
}
