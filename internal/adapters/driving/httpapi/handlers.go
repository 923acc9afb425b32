package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

type handler struct {
	ports     *Ports
	bodyLimit int64
}

// fileRequest names a file on the server.
type fileRequest struct {
	FilePath string `json:"file_path"`
}

type sheetRequest struct {
	FilePath  string `json:"file_path"`
	SheetName string `json:"sheet_name"`
}

type base64Request struct {
	Extension  string `json:"extension"`
	Base64Data string `json:"base64_data"`
}

type extractZipRequest struct {
	FilePath  string `json:"file_path"`
	ExtractTo string `json:"extract_to"`
	Password  string `json:"password"`
}

type createZipRequest struct {
	FilePaths []string `json:"file_paths"`
	OutputZip string   `json:"output_zip"`
	Password  string   `json:"password"`
}

type mimeTypeResponse struct {
	FilePath string  `json:"file_path"`
	MIMEType *string `json:"mime_type"`
	Encoding *string `json:"encoding"`
}

type documentTypeResponse struct {
	FilePath     string              `json:"file_path"`
	DocumentType domain.DocumentType `json:"document_type"`
}

type sheetNamesResponse struct {
	SheetNames []string `json:"sheet_names"`
}

type textResponse struct {
	Text string `json:"text"`
}

type entriesResponse struct {
	Entries []string `json:"entries"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// decode reads a JSON body into dst. An empty body leaves dst untouched.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Method == http.MethodGet {
		return nil
	}
	body := http.MaxBytesReader(w, r.Body, h.bodyLimit)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return fmt.Errorf("%w: request body: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

// fill copies query parameters into fields the body left empty.
func fill(r *http.Request, fields map[string]*string) {
	q := r.URL.Query()
	for name, field := range fields {
		if *field == "" {
			*field = q.Get(name)
		}
	}
}

func required(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) getMIMEType(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("file_path")
	if err := required("file_path", path); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.ports.Extraction.Identify(r.Context(), path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mimeTypeResponse{
		FilePath: path,
		MIMEType: optional(id.MIMEType),
		Encoding: optional(id.Encoding),
	})
}

func (h *handler) getDocumentType(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("file_path")
	if err := required("file_path", path); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.ports.Extraction.Identify(r.Context(), path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentTypeResponse{FilePath: path, DocumentType: id.DocumentType})
}

func (h *handler) getSheetNames(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("file_path")
	if err := required("file_path", path); err != nil {
		writeError(w, r, err)
		return
	}

	names, err := h.ports.Extraction.SheetNames(r.Context(), path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, sheetNamesResponse{SheetNames: names})
}

func (h *handler) extractExcelSheet(w http.ResponseWriter, r *http.Request) {
	var req sheetRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	fill(r, map[string]*string{"file_path": &req.FilePath, "sheet_name": &req.SheetName})
	if err := errors.Join(required("file_path", req.FilePath), required("sheet_name", req.SheetName)); err != nil {
		writeError(w, r, err)
		return
	}

	text, err := h.ports.Extraction.ExtractSheet(r.Context(), req.FilePath, req.SheetName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: text})
}

func (h *handler) extractTextFromFile(w http.ResponseWriter, r *http.Request) {
	var req fileRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	fill(r, map[string]*string{"file_path": &req.FilePath})
	if err := required("file_path", req.FilePath); err != nil {
		writeError(w, r, err)
		return
	}

	text, err := h.ports.Extraction.ExtractFile(r.Context(), req.FilePath)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: text})
}

func (h *handler) extractBase64ToText(w http.ResponseWriter, r *http.Request) {
	var req base64Request
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	fill(r, map[string]*string{"extension": &req.Extension, "base64_data": &req.Base64Data})

	text, err := h.ports.Extraction.ExtractBase64(r.Context(), req.Extension, req.Base64Data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: text})
}

func (h *handler) listZipContents(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("file_path")

	entries, err := h.ports.Archive.List(r.Context(), path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []string{}
	}
	writeJSON(w, http.StatusOK, entriesResponse{Entries: entries})
}

func (h *handler) extractZip(w http.ResponseWriter, r *http.Request) {
	var req extractZipRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	fill(r, map[string]*string{"file_path": &req.FilePath, "extract_to": &req.ExtractTo, "password": &req.Password})

	if err := h.ports.Archive.Extract(r.Context(), req.FilePath, req.ExtractTo, req.Password); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *handler) createZip(w http.ResponseWriter, r *http.Request) {
	var req createZipRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	fill(r, map[string]*string{"output_zip": &req.OutputZip, "password": &req.Password})
	if len(req.FilePaths) == 0 {
		req.FilePaths = r.URL.Query()["file_paths"]
	}

	if err := h.ports.Archive.Create(r.Context(), req.FilePaths, req.OutputZip, req.Password); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
