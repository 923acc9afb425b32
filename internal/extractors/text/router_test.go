package text

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

type stubExtractor struct {
	types  []string
	result string
	calls  int
}

func (s *stubExtractor) SupportedMIMETypes() []string { return s.types }

func (s *stubExtractor) ExtractText(_ context.Context, _ domain.Content, _ string) (string, error) {
	s.calls++
	return s.result, nil
}

func TestNewRouter_DefaultFallback(t *testing.T) {
	r := NewRouter(nil)
	require.NotNil(t, r.fallback)
	assert.Empty(t, r.SupportedMIMETypes())
}

func TestRouter_RegisterAndDispatch(t *testing.T) {
	fallback := &stubExtractor{result: "fallback"}
	special := &stubExtractor{types: []string{"text/x-special"}, result: "special"}

	r := NewRouter(fallback)
	r.Register(special)

	text, err := r.ExtractText(context.Background(), domain.Content{}, "text/x-special", "")
	require.NoError(t, err)
	assert.Equal(t, "special", text)
	assert.Equal(t, 1, special.calls)
	assert.Equal(t, 0, fallback.calls)

	text, err = r.ExtractText(context.Background(), domain.Content{}, "text/x-other", "")
	require.NoError(t, err)
	assert.Equal(t, "fallback", text)
	assert.Equal(t, 1, fallback.calls)
}

func TestRouter_CaseInsensitiveLookup(t *testing.T) {
	special := &stubExtractor{types: []string{"text/X-Special"}, result: "special"}
	r := NewRouter(&stubExtractor{})
	r.Register(special)

	text, err := r.ExtractText(context.Background(), domain.Content{}, "TEXT/x-special", "")
	require.NoError(t, err)
	assert.Equal(t, "special", text)
}

func TestRouter_UppercaseTypeUsesFallback(t *testing.T) {
	fallback := &stubExtractor{result: "fallback"}
	r := NewRouter(fallback)

	text, err := r.ExtractText(context.Background(), domain.Content{}, "Text/Plain", "")
	require.NoError(t, err)
	assert.Equal(t, "fallback", text)
	assert.Equal(t, 1, fallback.calls)

	_, err = r.ExtractText(context.Background(), domain.Content{}, "APPLICATION/PDF", "")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRouter_LaterRegistrationWins(t *testing.T) {
	first := &stubExtractor{types: []string{"text/html"}, result: "first"}
	second := &stubExtractor{types: []string{"text/html"}, result: "second"}

	r := NewRouter(nil)
	r.Register(first)
	r.Register(second)

	text, err := r.ExtractText(context.Background(), domain.Content{}, "text/html", "")
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestRouter_RejectsNonText(t *testing.T) {
	r := NewDefaultRouter()

	_, err := r.ExtractText(context.Background(), domain.Content{}, domain.MIMETypePDF, "")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestNewDefaultRouter(t *testing.T) {
	r := NewDefaultRouter()
	types := r.SupportedMIMETypes()

	assert.Contains(t, types, "text/plain")
	assert.Contains(t, types, "text/html")
	assert.Contains(t, types, "text/xml")
	assert.Contains(t, types, "text/markdown")
	assert.IsIncreasing(t, types)
	for _, mimeType := range types {
		assert.True(t, domain.IsTextMIMEType(mimeType), "unreachable type %q", mimeType)
	}
}

func TestDefaultRouter_Formats(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		input    string
		expected string
	}{
		{"plain", "text/plain", "hello\nworld", "hello\nworld"},
		{"csv", "text/csv", "a,b\n1,2", "a,b\n1,2"},
		{"html", "text/html", "<p>Hello</p><p>World</p>", "Hello\nWorld"},
		{"xml", "text/xml", "<r><a>one</a><b>two</b></r>", "one\ntwo"},
		{"markdown", "text/markdown", "# Hi\n\nthere", "Hi\nthere"},
		{"unknown text falls back", "text/x-unknown", "as is", "as is"},
	}

	r := NewDefaultRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := r.ExtractText(context.Background(), domain.Content{Data: []byte(tt.input)}, tt.mimeType, "UTF-8")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}
