package detect

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/logger"
)

// Ensure Classifier implements the interface.
var _ driven.Classifier = (*Classifier)(nil)

// unknownMIMEType is what the sniffer reports when nothing matched.
const unknownMIMEType = "application/octet-stream"

// textSubtypesByExtension refines a generic text/plain verdict.
// Content sniffing cannot tell Markdown or CSV from prose.
var textSubtypesByExtension = map[string]string{
	".md":       domain.MIMETypeMarkdown,
	".markdown": domain.MIMETypeMarkdown,
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".htm":      domain.MIMETypeHTML,
	".html":     domain.MIMETypeHTML,
	".xml":      domain.MIMETypeXML,
}

// Classifier sniffs MIME types from content and detects the encoding of
// text-like content.
type Classifier struct {
	encoding driven.EncodingDetector
}

// NewClassifier creates a classifier. A nil detector uses the chardet-backed default.
func NewClassifier(encoding driven.EncodingDetector) *Classifier {
	if encoding == nil {
		encoding = NewEncodingDetector()
	}
	return &Classifier{encoding: encoding}
}

// Classify sniffs data and, for text-like content, detects its encoding.
// Empty or unrecognised content and internal sniffer failures yield an
// empty Classification.
func (c *Classifier) Classify(data []byte, name string) (result driven.Classification) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("classifier panicked on %q: %v", name, r)
			result = driven.Classification{}
		}
	}()

	if len(data) == 0 {
		logger.Debug("classification failed for %q: empty content", name)
		return driven.Classification{}
	}

	detected := mimetype.Detect(data)
	mimeType := baseMIMEType(detected.String())
	if mimeType == "" || mimeType == unknownMIMEType {
		logger.Debug("classification failed for %q: no signature matched", name)
		return driven.Classification{}
	}

	if !isTextLike(detected) {
		return driven.Classification{MIMEType: mimeType}
	}

	if mimeType == domain.MIMETypePlain {
		mimeType = refineTextSubtype(mimeType, name)
	}

	sample := data
	if len(sample) > driven.SampleSize {
		sample = sample[:driven.SampleSize]
	}
	result = driven.Classification{MIMEType: mimeType}
	if enc, ok := c.encoding.Detect(sample); ok {
		result.Encoding = enc
	}
	return result
}

// baseMIMEType strips parameters such as "; charset=utf-8".
func baseMIMEType(s string) string {
	mediaType, _, err := mime.ParseMediaType(s)
	if err != nil {
		mediaType, _, _ = strings.Cut(s, ";")
		return strings.TrimSpace(strings.ToLower(mediaType))
	}
	return mediaType
}

// isTextLike reports whether m or one of its ancestors is text/plain.
func isTextLike(m *mimetype.MIME) bool {
	for cur := m; cur != nil; cur = cur.Parent() {
		if cur.Is(domain.MIMETypePlain) {
			return true
		}
	}
	return false
}

func refineTextSubtype(mimeType, name string) string {
	if name == "" {
		return mimeType
	}
	if refined, ok := textSubtypesByExtension[strings.ToLower(filepath.Ext(name))]; ok {
		return refined
	}
	return mimeType
}
