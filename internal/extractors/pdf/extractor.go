// Package pdf extracts plain text from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

const format = "pdf"

// Extractor handles PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the format label used in errors.
func (e *Extractor) Format() string {
	return format
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{domain.MIMETypePDF}
}

// Extract returns the plain text of every page, each followed by a
// newline. The parser panics on some malformed input; that is reported
// as a malformed document.
func (e *Extractor) Extract(ctx context.Context, content domain.Content) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = domain.NewExtractionError(format, domain.ExtractionMalformed, fmt.Errorf("parser panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content.Data), int64(len(content.Data)))
	if err != nil {
		return "", domain.NewExtractionError(format, domain.ExtractionMalformed, err)
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", domain.NewExtractionError(format, domain.ExtractionMalformed, fmt.Errorf("page %d: %w", i, err))
		}
		buf.WriteString(pageText)
		buf.WriteByte('\n')
	}

	return buf.String(), nil
}
