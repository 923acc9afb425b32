package domain

import (
	"errors"
	"fmt"
)

// Default setting values.
const (
	DefaultServerAddr = ":8000"

	// DefaultRateLimit is sustained requests per second per client.
	DefaultRateLimit = 20.0

	// DefaultRateBurst is the maximum burst per client.
	DefaultRateBurst = 40

	// DefaultMaxBytes caps a single input document at 64 MiB.
	DefaultMaxBytes = 64 << 20
)

// ServerSettings holds HTTP API configuration.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string

	// RateLimit is sustained requests per second per client. Zero disables limiting.
	RateLimit float64

	// RateBurst is the maximum burst per client.
	RateBurst int
}

// ExtractSettings holds extraction pipeline configuration.
type ExtractSettings struct {
	// MaxBytes rejects larger inputs. Zero means unlimited.
	MaxBytes int64

	// TempDir is where base64 payloads are staged. Empty uses os.TempDir.
	TempDir string
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// Verbose enables debug output on stderr.
	Verbose bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Server holds HTTP API settings.
	Server ServerSettings

	// Extract holds extraction settings.
	Extract ExtractSettings

	// Log holds logging settings.
	Log LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Addr:      DefaultServerAddr,
			RateLimit: DefaultRateLimit,
			RateBurst: DefaultRateBurst,
		},
		Extract: ExtractSettings{
			MaxBytes: DefaultMaxBytes,
		},
	}
}

// Validate checks settings for values the pipeline cannot run with.
func (s AppSettings) Validate() error {
	var errs []error
	if s.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if s.Server.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit must not be negative, got %v", s.Server.RateLimit))
	}
	if s.Server.RateLimit > 0 && s.Server.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("server.rate_burst must be at least 1, got %d", s.Server.RateBurst))
	}
	if s.Extract.MaxBytes < 0 {
		errs = append(errs, fmt.Errorf("extract.max_bytes must not be negative, got %d", s.Extract.MaxBytes))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}
