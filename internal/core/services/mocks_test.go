package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockClassifier implements driven.Classifier for testing.
type mockClassifier struct {
	result driven.Classification
	calls  int
	names  []string
}

func (m *mockClassifier) Classify(_ []byte, name string) driven.Classification {
	m.calls++
	m.names = append(m.names, name)
	return m.result
}

// mockTextExtractor implements driven.TextExtractor for testing.
type mockTextExtractor struct {
	text         string
	err          error
	calls        int
	lastMIMEType string
	lastEncoding string
	lastContent  domain.Content
}

func (m *mockTextExtractor) ExtractText(
	_ context.Context, content domain.Content, mimeType, encoding string,
) (string, error) {
	m.calls++
	m.lastMIMEType = mimeType
	m.lastEncoding = encoding
	m.lastContent = content
	return m.text, m.err
}

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	format      string
	text        string
	err         error
	calls       int
	lastContent domain.Content
}

func (m *mockExtractor) Format() string { return m.format }

func (m *mockExtractor) Extract(_ context.Context, content domain.Content) (string, error) {
	m.calls++
	m.lastContent = content
	return m.text, m.err
}

// mockSpreadsheetExtractor implements driven.SpreadsheetExtractor for testing.
type mockSpreadsheetExtractor struct {
	mockExtractor
	sheets     map[string]string
	names      []string
	namesErr   error
	sheetCalls int
}

func (m *mockSpreadsheetExtractor) ExtractSheet(_ context.Context, _ domain.Content, sheet string) (string, error) {
	m.sheetCalls++
	text, ok := m.sheets[sheet]
	if !ok {
		return "", domain.ErrNotFound
	}
	return text, nil
}

func (m *mockSpreadsheetExtractor) SheetNames(_ context.Context, _ domain.Content) ([]string, error) {
	return m.names, m.namesErr
}

// mockArchiver implements driven.Archiver for testing.
type mockArchiver struct {
	entries     []string
	err         error
	listed      []string
	extracted   []string
	lastDest    string
	lastPass    string
	created     []string
	createdFrom []string
}

func (m *mockArchiver) List(_ context.Context, path string) ([]string, error) {
	m.listed = append(m.listed, path)
	return m.entries, m.err
}

func (m *mockArchiver) Extract(_ context.Context, path, destDir, password string) error {
	m.extracted = append(m.extracted, path)
	m.lastDest = destDir
	m.lastPass = password
	return m.err
}

func (m *mockArchiver) Create(_ context.Context, paths []string, output, password string) error {
	m.created = append(m.created, output)
	m.createdFrom = paths
	m.lastPass = password
	return m.err
}

// mockConfigStore implements driven.ConfigStore in memory for testing.
type mockConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	v, _ := m.Get(key)
	s, _ := v.(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	v, _ := m.Get(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}

func (m *mockConfigStore) GetBool(key string) bool {
	v, _ := m.Get(key)
	b, _ := v.(bool)
	return b
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	v, _ := m.Get(key)
	s, _ := v.([]string)
	return s
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return ":memory:" }
