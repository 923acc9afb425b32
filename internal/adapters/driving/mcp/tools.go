package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/doctext/internal/logger"
)

// PathInput names a file on the server host.
type PathInput struct {
	FilePath string `json:"file_path" jsonschema:"absolute path of the file on the server"`
}

// SheetInput selects one sheet of a workbook.
type SheetInput struct {
	FilePath  string `json:"file_path" jsonschema:"absolute path of the .xlsx workbook"`
	SheetName string `json:"sheet_name" jsonschema:"name of the sheet to extract"`
}

// Base64Input carries an inline document.
type Base64Input struct {
	Extension  string `json:"extension,omitempty" jsonschema:"file extension hint such as .md or .txt"`
	Base64Data string `json:"base64_data" jsonschema:"base64 encoded document bytes"`
}

// ExtractZipInput is the input schema for extract_zip.
type ExtractZipInput struct {
	FilePath  string `json:"file_path" jsonschema:"absolute path of the zip file"`
	ExtractTo string `json:"extract_to" jsonschema:"absolute destination directory"`
	Password  string `json:"password,omitempty" jsonschema:"password for encrypted entries"`
}

// CreateZipInput is the input schema for create_zip.
type CreateZipInput struct {
	FilePaths []string `json:"file_paths" jsonschema:"absolute paths of files or directories to add"`
	OutputZip string   `json:"output_zip" jsonschema:"absolute path of the zip to write"`
	Password  string   `json:"password,omitempty" jsonschema:"encrypt entries with AES-256 using this password"`
}

// MIMETypeOutput reports a classification. Empty fields mean unknown.
type MIMETypeOutput struct {
	FilePath string `json:"file_path"`
	MIMEType string `json:"mime_type,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// DocumentTypeOutput reports the extraction route of a file.
type DocumentTypeOutput struct {
	FilePath     string `json:"file_path"`
	DocumentType string `json:"document_type"`
}

// SheetNamesOutput lists workbook sheets.
type SheetNamesOutput struct {
	SheetNames []string `json:"sheet_names"`
}

// TextOutput carries extracted text.
type TextOutput struct {
	Text string `json:"text"`
}

// EntriesOutput lists zip entries.
type EntriesOutput struct {
	Entries []string `json:"entries"`
}

// SuccessOutput acknowledges a write.
type SuccessOutput struct {
	Success bool `json:"success"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_mime_type",
		Description: "Detect the MIME type and, for text, the character encoding of a file",
	}, s.handleGetMIMEType)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document_type",
		Description: "Report which extraction route a file takes (text, pdf, spreadsheet, ...)",
	}, s.handleGetDocumentType)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sheet_names",
		Description: "List the sheet names of an .xlsx workbook",
	}, s.handleGetSheetNames)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_excel_sheet",
		Description: "Extract one sheet of an .xlsx workbook as tab separated text",
	}, s.handleExtractExcelSheet)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_text_from_file",
		Description: "Extract sanitized text from a text, HTML, XML, Markdown, PDF, XLSX, DOCX or PPTX file",
	}, s.handleExtractTextFromFile)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_base64_to_text",
		Description: "Extract sanitized text from a base64 encoded document",
	}, s.handleExtractBase64ToText)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_zip_contents",
		Description: "List the entry names of a zip file",
	}, s.handleListZipContents)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_zip",
		Description: "Extract a zip file into a directory",
	}, s.handleExtractZip)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_zip",
		Description: "Create a zip file from files and directories",
	}, s.handleCreateZip)
}

// call scopes a tool invocation's logs under a fresh ID.
func call(tool string) logger.Scoped {
	log := logger.With(uuid.NewString())
	log.Debug("tool %s", tool)
	return log
}

func (s *Server) handleGetMIMEType(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, MIMETypeOutput, error) {
	log := call("get_mime_type")
	id, err := s.ports.Extraction.Identify(ctx, input.FilePath)
	if err != nil {
		log.Debug("identify %s: %v", input.FilePath, err)
		return nil, MIMETypeOutput{}, err
	}
	return nil, MIMETypeOutput{FilePath: input.FilePath, MIMEType: id.MIMEType, Encoding: id.Encoding}, nil
}

func (s *Server) handleGetDocumentType(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, DocumentTypeOutput, error) {
	log := call("get_document_type")
	id, err := s.ports.Extraction.Identify(ctx, input.FilePath)
	if err != nil {
		log.Debug("identify %s: %v", input.FilePath, err)
		return nil, DocumentTypeOutput{}, err
	}
	return nil, DocumentTypeOutput{FilePath: input.FilePath, DocumentType: id.DocumentType.String()}, nil
}

func (s *Server) handleGetSheetNames(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, SheetNamesOutput, error) {
	log := call("get_sheet_names")
	names, err := s.ports.Extraction.SheetNames(ctx, input.FilePath)
	if err != nil {
		log.Debug("sheet names %s: %v", input.FilePath, err)
		return nil, SheetNamesOutput{}, err
	}
	if names == nil {
		names = []string{}
	}
	return nil, SheetNamesOutput{SheetNames: names}, nil
}

func (s *Server) handleExtractExcelSheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SheetInput,
) (*mcp.CallToolResult, TextOutput, error) {
	log := call("extract_excel_sheet")
	text, err := s.ports.Extraction.ExtractSheet(ctx, input.FilePath, input.SheetName)
	if err != nil {
		log.Debug("extract sheet %q of %s: %v", input.SheetName, input.FilePath, err)
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Text: text}, nil
}

func (s *Server) handleExtractTextFromFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, TextOutput, error) {
	log := call("extract_text_from_file")
	text, err := s.ports.Extraction.ExtractFile(ctx, input.FilePath)
	if err != nil {
		log.Debug("extract %s: %v", input.FilePath, err)
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Text: text}, nil
}

func (s *Server) handleExtractBase64ToText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input Base64Input,
) (*mcp.CallToolResult, TextOutput, error) {
	log := call("extract_base64_to_text")
	text, err := s.ports.Extraction.ExtractBase64(ctx, input.Extension, input.Base64Data)
	if err != nil {
		log.Debug("extract base64 (%d chars): %v", len(input.Base64Data), err)
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Text: text}, nil
}

func (s *Server) handleListZipContents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, EntriesOutput, error) {
	log := call("list_zip_contents")
	entries, err := s.ports.Archive.List(ctx, input.FilePath)
	if err != nil {
		log.Debug("list %s: %v", input.FilePath, err)
		return nil, EntriesOutput{}, err
	}
	if entries == nil {
		entries = []string{}
	}
	return nil, EntriesOutput{Entries: entries}, nil
}

func (s *Server) handleExtractZip(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractZipInput,
) (*mcp.CallToolResult, SuccessOutput, error) {
	log := call("extract_zip")
	if err := s.ports.Archive.Extract(ctx, input.FilePath, input.ExtractTo, input.Password); err != nil {
		log.Debug("extract %s: %v", input.FilePath, err)
		return nil, SuccessOutput{}, err
	}
	return nil, SuccessOutput{Success: true}, nil
}

func (s *Server) handleCreateZip(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateZipInput,
) (*mcp.CallToolResult, SuccessOutput, error) {
	log := call("create_zip")
	if err := s.ports.Archive.Create(ctx, input.FilePaths, input.OutputZip, input.Password); err != nil {
		log.Debug("create %s: %v", input.OutputZip, err)
		return nil, SuccessOutput{}, err
	}
	return nil, SuccessOutput{Success: true}, nil
}
