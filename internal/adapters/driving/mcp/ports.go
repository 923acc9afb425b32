package mcp

import (
	"github.com/custodia-labs/doctext/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server calls.
type Ports struct {
	// Extraction identifies documents and extracts text.
	Extraction driving.ExtractionService

	// Archive lists, extracts and creates zip files.
	Archive driving.ArchiveService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	if p.Archive == nil {
		return ErrMissingArchiveService
	}
	return nil
}
