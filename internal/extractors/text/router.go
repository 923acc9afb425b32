// Package text routes text-type documents to the extractor registered for
// their MIME type. Types without a dedicated extractor fall back to plain
// text decoding.
package text

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/extractors/html"
	"github.com/custodia-labs/doctext/internal/extractors/markdown"
	"github.com/custodia-labs/doctext/internal/extractors/plaintext"
	"github.com/custodia-labs/doctext/internal/extractors/xmltext"
)

// Ensure Router implements the interface.
var _ driven.TextExtractor = (*Router)(nil)

// Router dispatches by MIME type. It is safe for concurrent use.
type Router struct {
	mu       sync.RWMutex
	byType   map[string]driven.TextFormatExtractor
	fallback driven.TextFormatExtractor
}

// NewRouter creates a router with the given fallback. A nil fallback uses
// the plain text extractor.
func NewRouter(fallback driven.TextFormatExtractor) *Router {
	if fallback == nil {
		fallback = plaintext.New()
	}
	return &Router{
		byType:   make(map[string]driven.TextFormatExtractor),
		fallback: fallback,
	}
}

// NewDefaultRouter creates a router with the HTML, XML and Markdown
// extractors registered on top of the plain text fallback.
func NewDefaultRouter() *Router {
	r := NewRouter(nil)
	r.Register(plaintext.New())
	r.Register(html.New())
	r.Register(xmltext.New())
	r.Register(markdown.New())
	return r
}

// Register adds an extractor for every MIME type it supports. A later
// registration replaces an earlier one for the same type.
func (r *Router) Register(extractor driven.TextFormatExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, mimeType := range extractor.SupportedMIMETypes() {
		r.byType[strings.ToLower(mimeType)] = extractor
	}
}

// SupportedMIMETypes returns every explicitly registered MIME type, sorted.
func (r *Router) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.byType))
	for mimeType := range r.byType {
		types = append(types, mimeType)
	}
	sort.Strings(types)
	return types
}

// ExtractText extracts text with the extractor for mimeType.
// MIME types compare case-insensitively.
func (r *Router) ExtractText(ctx context.Context, content domain.Content, mimeType, encoding string) (string, error) {
	mimeType = strings.ToLower(mimeType)
	if !domain.IsTextMIMEType(mimeType) {
		return "", fmt.Errorf("%w: %q is not a text type", domain.ErrUnsupportedType, mimeType)
	}
	return r.lookup(mimeType).ExtractText(ctx, content, encoding)
}

func (r *Router) lookup(mimeType string) driven.TextFormatExtractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if extractor, ok := r.byType[mimeType]; ok {
		return extractor
	}
	return r.fallback
}
