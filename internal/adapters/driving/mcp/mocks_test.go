package mcp

import (
	"context"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	text  string
	names []string
	ident domain.Identification
	err   error

	path      string
	sheet     string
	extension string
	payload   string
}

func (m *mockExtractionService) Describe(_ context.Context, path string) (*domain.Descriptor, error) {
	return domain.NewDescriptor(path, nil, m.ident.MIMEType, m.ident.Encoding), m.err
}

func (m *mockExtractionService) DescribeBytes(_ context.Context, data []byte, name string) (*domain.Descriptor, error) {
	return domain.NewDescriptor(name, data, m.ident.MIMEType, m.ident.Encoding), m.err
}

func (m *mockExtractionService) Extract(_ context.Context, _ *domain.Descriptor) (string, error) {
	return m.text, m.err
}

func (m *mockExtractionService) ExtractFile(_ context.Context, path string) (string, error) {
	m.path = path
	return m.text, m.err
}

func (m *mockExtractionService) ExtractBytes(_ context.Context, _ []byte, _ string) (string, error) {
	return m.text, m.err
}

func (m *mockExtractionService) ExtractBase64(_ context.Context, extension, payload string) (string, error) {
	m.extension = extension
	m.payload = payload
	return m.text, m.err
}

func (m *mockExtractionService) Identify(_ context.Context, path string) (domain.Identification, error) {
	m.path = path
	return m.ident, m.err
}

func (m *mockExtractionService) SheetNames(_ context.Context, path string) ([]string, error) {
	m.path = path
	return m.names, m.err
}

func (m *mockExtractionService) ExtractSheet(_ context.Context, path, sheet string) (string, error) {
	m.path = path
	m.sheet = sheet
	return m.text, m.err
}

// mockArchiveService is a mock implementation of driving.ArchiveService.
type mockArchiveService struct {
	entries []string
	err     error

	path     string
	paths    []string
	dest     string
	password string
}

func (m *mockArchiveService) List(_ context.Context, path string) ([]string, error) {
	m.path = path
	return m.entries, m.err
}

func (m *mockArchiveService) Extract(_ context.Context, path, destDir, password string) error {
	m.path = path
	m.dest = destDir
	m.password = password
	return m.err
}

func (m *mockArchiveService) Create(_ context.Context, paths []string, output, password string) error {
	m.paths = paths
	m.dest = output
	m.password = password
	return m.err
}

func newTestServer(ext *mockExtractionService, arc *mockArchiveService) (*Server, error) {
	return NewServer(&Ports{Extraction: ext, Archive: arc})
}
