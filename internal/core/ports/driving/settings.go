package driving

import "github.com/custodia-labs/doctext/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// Set parses and stores one setting by key, e.g. "server.addr".
	Set(key, value string) error

	// Keys lists the settable keys.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
