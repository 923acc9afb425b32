package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/logger"
)

// Prefix is where the API is mounted.
const Prefix = "/api/file_util"

// DefaultBodyLimit caps request bodies when Options leaves it unset.
const DefaultBodyLimit = 128 << 20

// Options tunes the router.
type Options struct {
	// RateLimit is sustained requests per second per client. Zero disables it.
	RateLimit float64

	// RateBurst is the per-client burst.
	RateBurst int

	// BodyLimit caps JSON request bodies in bytes.
	BodyLimit int64
}

// OptionsFromSettings derives router options from server settings.
func OptionsFromSettings(s domain.AppSettings) Options {
	limit := int64(DefaultBodyLimit)
	if s.Extract.MaxBytes > 0 {
		// Base64 inflates payloads by a third.
		limit = s.Extract.MaxBytes/3*4 + 4096
	}
	return Options{
		RateLimit: s.Server.RateLimit,
		RateBurst: s.Server.RateBurst,
		BodyLimit: limit,
	}
}

// NewRouter builds the API handler.
func NewRouter(ports *Ports, opts Options) (http.Handler, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	if opts.BodyLimit <= 0 {
		opts.BodyLimit = DefaultBodyLimit
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(withRequestID)
	r.Use(chimiddleware.Recoverer)
	if opts.RateLimit > 0 {
		r.Use(NewRateLimiter(opts.RateLimit, opts.RateBurst).Limit)
	}

	h := &handler{ports: ports, bodyLimit: opts.BodyLimit}

	r.Get("/healthz", h.healthz)
	r.Route(Prefix, func(r chi.Router) {
		r.Get("/get_mime_type", h.getMIMEType)
		r.Get("/get_document_type", h.getDocumentType)
		r.Get("/get_sheet_names", h.getSheetNames)
		r.Post("/extract_excel_sheet", h.extractExcelSheet)
		r.Post("/extract_text_from_file", h.extractTextFromFile)
		r.Get("/extract_base64_to_text", h.extractBase64ToText)
		r.Post("/extract_base64_to_text", h.extractBase64ToText)
		r.Get("/list_zip_contents", h.listZipContents)
		r.Post("/extract_zip", h.extractZip)
		r.Post("/create_zip", h.createZip)
	})

	return r, nil
}

// Serve runs handler on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown: %v", err)
		}
	}()

	logger.Info("Listening on %s", addr)
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
