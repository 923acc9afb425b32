package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no change", "a b\nc", "a b\nc"},
		{"newline run", "a\n\n\nb", "a\nb"},
		{"space run", "b   c", "b c"},
		{"mixed", "a\n\n\nb   c", "a\nb c"},
		{"only newlines", "\n\n\n", "\n"},
		{"only spaces", "     ", " "},
		{"tabs untouched", "a\t\tb", "a\t\tb"},
		{"carriage returns untouched", "a\r\n\r\nb", "a\r\n\r\nb"},
		{"space newline space", "a \n\n b", "a \n b"},
		{"trailing newlines", "x\ty\n1\n\n", "x\ty\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func FuzzSanitize(f *testing.F) {
	for _, seed := range []string{"", "a\n\n\nb   c", "  \n \n  ", "\t\r\n\n", "日本語  \n\nテキスト"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		once := Sanitize(input)

		if Sanitize(once) != once {
			t.Fatalf("not idempotent for %q", input)
		}
		if strings.Contains(once, "\n\n") {
			t.Fatalf("newline run left in %q", once)
		}
		if strings.Contains(once, "  ") {
			t.Fatalf("space run left in %q", once)
		}
	})
}
