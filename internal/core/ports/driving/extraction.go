package driving

import (
	"context"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

// ExtractionService identifies documents and extracts their text.
// Every text result is sanitized.
type ExtractionService interface {
	// Describe reads and classifies the file at path.
	// An unreadable file yields an unclassified Descriptor, not an error.
	Describe(ctx context.Context, path string) (*domain.Descriptor, error)

	// DescribeBytes classifies in-memory content. Name is an optional hint.
	DescribeBytes(ctx context.Context, data []byte, name string) (*domain.Descriptor, error)

	// Extract dispatches a Descriptor to its extractor.
	// Unclassified and unsupported documents yield empty text.
	Extract(ctx context.Context, desc *domain.Descriptor) (string, error)

	// ExtractFile describes and extracts the file at path.
	ExtractFile(ctx context.Context, path string) (string, error)

	// ExtractBytes describes and extracts in-memory content.
	ExtractBytes(ctx context.Context, data []byte, name string) (string, error)

	// ExtractBase64 stages a base64 payload in a temporary file with the
	// given extension, extracts it and removes the file.
	ExtractBase64(ctx context.Context, extension, payload string) (string, error)

	// Identify reports the classification of the file at path.
	Identify(ctx context.Context, path string) (domain.Identification, error)

	// SheetNames lists the sheets of a spreadsheet file.
	SheetNames(ctx context.Context, path string) ([]string, error)

	// ExtractSheet extracts one sheet of a spreadsheet file.
	ExtractSheet(ctx context.Context, path, sheet string) (string, error)
}
