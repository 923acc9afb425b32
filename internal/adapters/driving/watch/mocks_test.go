package watch

import (
	"context"
	"os"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

// mockExtractionService reads the file and prefixes its content.
type mockExtractionService struct {
	err   error
	calls []string
}

func (m *mockExtractionService) Describe(_ context.Context, path string) (*domain.Descriptor, error) {
	return domain.NewDescriptor(path, nil, "", ""), nil
}

func (m *mockExtractionService) DescribeBytes(_ context.Context, data []byte, name string) (*domain.Descriptor, error) {
	return domain.NewDescriptor(name, data, "", ""), nil
}

func (m *mockExtractionService) Extract(_ context.Context, _ *domain.Descriptor) (string, error) {
	return "", nil
}

func (m *mockExtractionService) ExtractFile(_ context.Context, path string) (string, error) {
	m.calls = append(m.calls, path)
	if m.err != nil {
		return "", m.err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return "text:" + string(data), nil
}

func (m *mockExtractionService) ExtractBytes(_ context.Context, _ []byte, _ string) (string, error) {
	return "", nil
}

func (m *mockExtractionService) ExtractBase64(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

func (m *mockExtractionService) Identify(_ context.Context, path string) (domain.Identification, error) {
	return domain.Identification{Path: path}, nil
}

func (m *mockExtractionService) SheetNames(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (m *mockExtractionService) ExtractSheet(_ context.Context, _, _ string) (string, error) {
	return "", nil
}
