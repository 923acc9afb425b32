package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/core/ports/driving"
	"github.com/custodia-labs/doctext/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// Extractors groups the collaborators the dispatcher routes to.
// A nil field means documents of that type yield an error.
type Extractors struct {
	Text         driven.TextExtractor
	PDF          driven.Extractor
	Spreadsheet  driven.SpreadsheetExtractor
	Word         driven.Extractor
	Presentation driven.Extractor
}

// ExtractionService classifies documents and routes each to exactly one
// extractor. It holds no per-request state and is safe for concurrent use.
type ExtractionService struct {
	classifier driven.Classifier
	extractors Extractors
	maxBytes   int64
	tempDir    string
}

// NewExtractionService creates a new extraction service.
func NewExtractionService(
	classifier driven.Classifier,
	extractors Extractors,
	settings domain.ExtractSettings,
) *ExtractionService {
	return &ExtractionService{
		classifier: classifier,
		extractors: extractors,
		maxBytes:   settings.MaxBytes,
		tempDir:    settings.TempDir,
	}
}

// Describe reads and classifies the file at path. A file that cannot be
// read produces an unclassified Descriptor.
func (s *ExtractionService) Describe(ctx context.Context, path string) (*domain.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.readFile(path)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		logger.Debug("Classification failed for %s: %v", path, err)
		return domain.NewDescriptor(path, nil, "", ""), nil
	}

	return s.DescribeBytes(ctx, data, path)
}

// DescribeBytes classifies in-memory content.
func (s *ExtractionService) DescribeBytes(ctx context.Context, data []byte, name string) (*domain.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkSize(int64(len(data))); err != nil {
		return nil, err
	}

	c := s.classifier.Classify(data, name)
	return domain.NewDescriptor(name, data, c.MIMEType, c.Encoding), nil
}

// Extract dispatches desc to the extractor for its document type and
// sanitizes the result. Unclassified, image and unsupported documents
// yield empty text.
func (s *ExtractionService) Extract(ctx context.Context, desc *domain.Descriptor) (string, error) {
	if desc == nil {
		return "", fmt.Errorf("%w: nil descriptor", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !desc.Classified() {
		logger.Debug("Classification failed for %s, no text extracted", desc.Name())
		return "", nil
	}

	docType := desc.Type()
	content := desc.Content()

	var (
		raw string
		err error
	)
	switch docType {
	case domain.DocumentTypeText:
		if s.extractors.Text == nil {
			return "", s.missing(docType)
		}
		raw, err = s.extractors.Text.ExtractText(ctx, content, desc.MIMEType(), desc.Encoding())
	case domain.DocumentTypePDF:
		raw, err = s.run(ctx, s.extractors.PDF, docType, content)
	case domain.DocumentTypeSpreadsheet:
		if s.extractors.Spreadsheet == nil {
			return "", s.missing(docType)
		}
		raw, err = s.extractors.Spreadsheet.Extract(ctx, content)
	case domain.DocumentTypeWordDocument:
		raw, err = s.run(ctx, s.extractors.Word, docType, content)
	case domain.DocumentTypePresentation:
		raw, err = s.run(ctx, s.extractors.Presentation, docType, content)
	default:
		logger.Error("Unsupported document type %s (%s) for %s", docType, desc.MIMEType(), desc.Name())
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", desc.Name(), err)
	}

	logger.Debug("Extracted %d bytes of %s from %s", len(raw), docType, desc.Name())
	return domain.Sanitize(raw), nil
}

// ExtractFile describes and extracts the file at path.
func (s *ExtractionService) ExtractFile(ctx context.Context, path string) (string, error) {
	desc, err := s.Describe(ctx, path)
	if err != nil {
		return "", err
	}
	return s.Extract(ctx, desc)
}

// ExtractBytes describes and extracts in-memory content.
func (s *ExtractionService) ExtractBytes(ctx context.Context, data []byte, name string) (string, error) {
	desc, err := s.DescribeBytes(ctx, data, name)
	if err != nil {
		return "", err
	}
	return s.Extract(ctx, desc)
}

// ExtractBase64 decodes payload into a temporary file named with
// extension, extracts it and removes the file on every path.
// An empty payload yields empty text without touching the filesystem.
func (s *ExtractionService) ExtractBase64(ctx context.Context, extension, payload string) (string, error) {
	if payload == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return "", fmt.Errorf("%w: base64 payload: %w", domain.ErrInvalidInput, err)
	}
	if err := s.checkSize(int64(len(data))); err != nil {
		return "", err
	}

	path, err := s.stage(data, extension)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logger.Warn("Failed to remove temp file %s: %v", path, err)
		}
	}()

	// The staged file was just written, so a read failure is a real error.
	staged, err := s.readFile(path)
	if err != nil {
		return "", fmt.Errorf("read staged payload: %w", err)
	}
	return s.ExtractBytes(ctx, staged, path)
}

// Identify reports the classification of the file at path.
func (s *ExtractionService) Identify(ctx context.Context, path string) (domain.Identification, error) {
	desc, err := s.Describe(ctx, path)
	if err != nil {
		return domain.Identification{}, err
	}
	return desc.Identify(), nil
}

// SheetNames lists the sheets of the spreadsheet at path.
func (s *ExtractionService) SheetNames(ctx context.Context, path string) ([]string, error) {
	desc, err := s.spreadsheet(ctx, path)
	if err != nil {
		return nil, err
	}
	names, err := s.extractors.Spreadsheet.SheetNames(ctx, desc.Content())
	if err != nil {
		return nil, fmt.Errorf("sheet names %s: %w", path, err)
	}
	return names, nil
}

// ExtractSheet extracts and sanitizes one sheet of the spreadsheet at path.
func (s *ExtractionService) ExtractSheet(ctx context.Context, path, sheet string) (string, error) {
	desc, err := s.spreadsheet(ctx, path)
	if err != nil {
		return "", err
	}
	raw, err := s.extractors.Spreadsheet.ExtractSheet(ctx, desc.Content(), sheet)
	if err != nil {
		return "", fmt.Errorf("extract sheet %q of %s: %w", sheet, path, err)
	}
	return domain.Sanitize(raw), nil
}

// spreadsheet reads path and checks it is a workbook. Unlike Describe,
// a missing file is reported.
func (s *ExtractionService) spreadsheet(ctx context.Context, path string) (*domain.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.extractors.Spreadsheet == nil {
		return nil, s.missing(domain.DocumentTypeSpreadsheet)
	}

	data, err := s.readFile(path)
	if err != nil {
		return nil, err
	}
	desc, err := s.DescribeBytes(ctx, data, path)
	if err != nil {
		return nil, err
	}
	if desc.Type() != domain.DocumentTypeSpreadsheet {
		return nil, fmt.Errorf("%w: %s is %s, not a spreadsheet", domain.ErrUnsupportedType, path, desc.Type())
	}
	return desc, nil
}

func (s *ExtractionService) run(
	ctx context.Context,
	extractor driven.Extractor,
	docType domain.DocumentType,
	content domain.Content,
) (string, error) {
	if extractor == nil {
		return "", s.missing(docType)
	}
	return extractor.Extract(ctx, content)
}

func (s *ExtractionService) missing(docType domain.DocumentType) error {
	return fmt.Errorf("%w: no extractor configured for %s", domain.ErrUnsupportedType, docType)
}

// readFile reads path, enforcing the size limit before loading it.
func (s *ExtractionService) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if err := s.checkSize(info.Size()); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (s *ExtractionService) checkSize(size int64) error {
	if s.maxBytes > 0 && size > s.maxBytes {
		return fmt.Errorf("%w: document is %d bytes, limit is %d", domain.ErrInvalidInput, size, s.maxBytes)
	}
	return nil
}

// stage writes data to a uniquely named temp file ending in extension.
func (s *ExtractionService) stage(data []byte, extension string) (string, error) {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	if strings.ContainsAny(extension, `/\`) {
		return "", fmt.Errorf("%w: extension %q", domain.ErrInvalidInput, extension)
	}

	f, err := os.CreateTemp(s.tempDir, "doctext-*"+extension)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return path, nil
}

// decodeBase64 accepts standard and URL alphabets, padded or not, and
// ignores embedded whitespace.
func decodeBase64(payload string) ([]byte, error) {
	payload = strings.Join(strings.Fields(payload), "")
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var firstErr error
	for _, enc := range encodings {
		data, err := enc.DecodeString(payload)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
