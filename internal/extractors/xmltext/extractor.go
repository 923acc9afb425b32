// Package xmltext provides a TextFormatExtractor for XML documents.
// It returns the character data of every element, one text node per line.
package xmltext

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/extractors/charset"
)

// Ensure Extractor implements the interface.
var _ driven.TextFormatExtractor = (*Extractor)(nil)

// Extractor handles XML documents.
type Extractor struct{}

// New creates a new XML extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/xml"}
}

// ExtractText returns the non-blank text nodes of the document, trimmed,
// in document order. Tags, comments and processing instructions are dropped.
func (e *Extractor) ExtractText(ctx context.Context, content domain.Content, encoding string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	decoded := charset.Decode(content.Data, encoding)
	decoder := xml.NewDecoder(strings.NewReader(decoded))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	// Content is already UTF-8 whatever the declaration says.
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var lines []string
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", domain.NewExtractionError("xml", domain.ExtractionMalformed, err)
		}
		if data, ok := tok.(xml.CharData); ok {
			if text := strings.TrimSpace(string(bytes.ToValidUTF8(data, nil))); text != "" {
				lines = append(lines, text)
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}
