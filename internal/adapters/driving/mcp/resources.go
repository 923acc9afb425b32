package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for doctext resources.
	uriScheme = "doctext://"

	// textPrefix precedes an absolute, percent-encoded file path.
	textPrefix = uriScheme + "text"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "document-types",
		Name:        "document-types",
		Description: "Document types and whether each yields text",
		MIMEType:    "application/json",
	}, s.handleDocumentTypesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: textPrefix + "{+path}",
		Name:        "file-text",
		Description: "Sanitized text extracted from a file on the server",
		MIMEType:    "text/plain",
	}, s.handleFileTextResource)
}

// handleDocumentTypesResource lists every document type.
func (s *Server) handleDocumentTypesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type typeInfo struct {
		Name          string `json:"name"`
		HasExtraction bool   `json:"has_extraction"`
	}

	types := domain.AllDocumentTypes()
	infos := make([]typeInfo, len(types))
	for i, t := range types {
		infos[i] = typeInfo{Name: t.String(), HasExtraction: t.HasExtractor()}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling document types: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFileTextResource returns the extracted text of the file named by the URI.
func (s *Server) handleFileTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path := extractFilePath(req.Params.URI)
	if path == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extraction reads a missing file as unclassified, so check first.
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	text, err := s.ports.Extraction.ExtractFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// extractFilePath extracts the file path from a URI like doctext://text/srv/a%20b.pdf.
func extractFilePath(uri string) string {
	if !strings.HasPrefix(uri, textPrefix) {
		return ""
	}

	path, err := url.PathUnescape(strings.TrimPrefix(uri, textPrefix))
	if err != nil || !strings.HasPrefix(path, "/") {
		return ""
	}
	return path
}
