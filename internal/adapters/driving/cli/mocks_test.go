package cli

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	text   string
	names  []string
	idents map[string]domain.Identification
	err    error

	path      string
	sheet     string
	extension string
	payload   string
}

func (m *mockExtractionService) Describe(_ context.Context, path string) (*domain.Descriptor, error) {
	return domain.NewDescriptor(path, nil, "", ""), m.err
}

func (m *mockExtractionService) DescribeBytes(_ context.Context, data []byte, name string) (*domain.Descriptor, error) {
	return domain.NewDescriptor(name, data, "", ""), m.err
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
	id, ok := m.idents[path]
	if !ok {
		id = domain.Identification{DocumentType: domain.DocumentTypeUnsupported}
	}
	id.Path = path
	return id, m.err
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

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
	setErr   error

	setKey   string
	setValue string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		s := domain.DefaultAppSettings()
		return &s, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	m.setKey = key
	m.setValue = value
	return m.setErr
}

func (m *mockSettingsService) Keys() []string {
	return []string{
		"extract.max_bytes", "extract.temp_dir", "log.verbose",
		"server.addr", "server.rate_burst", "server.rate_limit",
	}
}

func (m *mockSettingsService) Path() string {
	return "/tmp/doctext/config.toml"
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	extraction *mockExtractionService
	archive    *mockArchiveService
	settings   *mockSettingsService
}

// setupTestServices installs fresh mocks and returns a cleanup func.
func setupTestServices() (*testServices, func()) {
	prevExtraction, prevArchive, prevSettings := extractionService, archiveService, settingsService

	ts := &testServices{
		extraction: &mockExtractionService{},
		archive:    &mockArchiveService{},
		settings:   &mockSettingsService{},
	}
	SetServices(Services{Extraction: ts.extraction, Archive: ts.archive, Settings: ts.settings})

	return ts, func() {
		extractionService, archiveService, settingsService = prevExtraction, prevArchive, prevSettings
	}
}

// run executes the root command with args and returns its combined output.
func run(args ...string) (string, error) {
	return runWithInput("", args...)
}

func runWithInput(stdin string, args ...string) (string, error) {
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
