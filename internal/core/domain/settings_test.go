package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, ":8000", s.Server.Addr)
	assert.InDelta(t, 20.0, s.Server.RateLimit, 0.0001)
	assert.Equal(t, 40, s.Server.RateBurst)
	assert.Equal(t, int64(64<<20), s.Extract.MaxBytes)
	assert.Empty(t, s.Extract.TempDir)
	assert.False(t, s.Log.Verbose)
	require.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*AppSettings)
		wantErr string
	}{
		{
			name:    "empty addr",
			modify:  func(s *AppSettings) { s.Server.Addr = "" },
			wantErr: "server.addr",
		},
		{
			name:    "negative rate",
			modify:  func(s *AppSettings) { s.Server.RateLimit = -1 },
			wantErr: "server.rate_limit",
		},
		{
			name:    "zero burst with limit",
			modify:  func(s *AppSettings) { s.Server.RateBurst = 0 },
			wantErr: "server.rate_burst",
		},
		{
			name:    "negative max bytes",
			modify:  func(s *AppSettings) { s.Extract.MaxBytes = -5 },
			wantErr: "extract.max_bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.modify(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAppSettings_Validate_RateLimitDisabled(t *testing.T) {
	s := DefaultAppSettings()
	s.Server.RateLimit = 0
	s.Server.RateBurst = 0

	assert.NoError(t, s.Validate())
}
