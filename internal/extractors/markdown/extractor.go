// Package markdown provides a TextFormatExtractor for Markdown documents.
// Markdown is rendered to HTML with goldmark and the visible text of the
// rendered HTML is returned.
package markdown

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/extractors/charset"
	"github.com/custodia-labs/doctext/internal/extractors/html"
)

// Ensure Extractor implements the interface.
var _ driven.TextFormatExtractor = (*Extractor)(nil)

// Extractor handles Markdown documents.
type Extractor struct {
	md goldmark.Markdown
}

// New creates a new Markdown extractor with GitHub Flavored Markdown enabled.
// Raw HTML in the source is passed through so its text survives stripping.
func New() *Extractor {
	return &Extractor{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// ExtractText renders the document and returns its visible text.
func (e *Extractor) ExtractText(ctx context.Context, content domain.Content, encoding string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source := charset.Decode(content.Data, encoding)

	var rendered bytes.Buffer
	if err := e.md.Convert([]byte(source), &rendered); err != nil {
		return "", domain.NewExtractionError("markdown", domain.ExtractionMalformed, err)
	}

	return html.VisibleText(&rendered), nil
}
