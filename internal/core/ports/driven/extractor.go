package driven

import (
	"context"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

// Extractor produces raw text from one binary document format.
// Output is not sanitized; the caller does that exactly once.
// Failures are returned as *domain.ExtractionError.
type Extractor interface {
	// Format names the handled format, e.g. "pdf".
	Format() string

	// Extract returns the document text.
	Extract(ctx context.Context, content domain.Content) (string, error)
}

// SpreadsheetExtractor is an Extractor with sheet-level access.
type SpreadsheetExtractor interface {
	Extractor

	// ExtractSheet returns the text of the named sheet only.
	// An unknown sheet name is domain.ErrNotFound.
	ExtractSheet(ctx context.Context, content domain.Content, sheet string) (string, error)

	// SheetNames returns sheet names in workbook order.
	SheetNames(ctx context.Context, content domain.Content) ([]string, error)
}

// TextExtractor produces text from text/* documents.
// It branches on the MIME subtype (markup is stripped, other text is decoded).
type TextExtractor interface {
	ExtractText(ctx context.Context, content domain.Content, mimeType, encoding string) (string, error)
}

// TextFormatExtractor handles one family of text/* subtypes.
type TextFormatExtractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// ExtractText decodes content with encoding (empty means unknown)
	// and returns its visible text.
	ExtractText(ctx context.Context, content domain.Content, encoding string) (string, error)
}
