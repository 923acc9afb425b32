package httpapi

import (
	"errors"

	"github.com/custodia-labs/doctext/internal/core/ports/driving"
)

// Ports holds the services the API calls.
type Ports struct {
	Extraction driving.ExtractionService
	Archive    driving.ArchiveService
}

// Validate checks that all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("ports is nil")
	}
	if p.Extraction == nil {
		return errors.New("extraction service is required")
	}
	if p.Archive == nil {
		return errors.New("archive service is required")
	}
	return nil
}
