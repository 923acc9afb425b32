// Package plaintext provides the fallback TextFormatExtractor: it decodes
// any text/* document with its detected encoding and returns it unchanged.
package plaintext

import (
	"context"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/extractors/charset"
)

// Ensure Extractor implements the interface.
var _ driven.TextFormatExtractor = (*Extractor)(nil)

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
// Any other text/* type also lands here as the router's fallback.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/tab-separated-values",
		"text/x-go",
		"text/x-python",
		"text/x-c",
		"text/x-shellscript",
		"text/javascript",
		"text/css",
		"text/rtf",
		"text/calendar",
		"text/vcard",
	}
}

// ExtractText decodes the content. Undecodable sequences are dropped.
func (e *Extractor) ExtractText(ctx context.Context, content domain.Content, encoding string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return charset.Decode(content.Data, encoding), nil
}
