// Package mcp provides an MCP (Model Context Protocol) server adapter for doctext.
// It lets AI assistants identify documents, extract their text and work with
// zip archives on the host running the server.
package mcp

import "errors"

var (
	// ErrMissingExtractionService is returned when the extraction service is not provided.
	ErrMissingExtractionService = errors.New("mcp: extraction service is required")

	// ErrMissingArchiveService is returned when the archive service is not provided.
	ErrMissingArchiveService = errors.New("mcp: archive service is required")
)
