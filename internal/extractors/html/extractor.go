package html

import (
	"context"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/extractors/charset"
)

// Ensure Extractor implements the interface.
var _ driven.TextFormatExtractor = (*Extractor)(nil)

// Extractor handles HTML documents.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/html"}
}

// ExtractText returns the visible text of an HTML document, one line per
// block element.
func (e *Extractor) ExtractText(ctx context.Context, content domain.Content, encoding string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return VisibleText(strings.NewReader(charset.Decode(content.Data, encoding))), nil
}

// hiddenElements never contribute text.
var hiddenElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Head:     true,
	atom.Svg:      true,
	atom.Template: true,
}

// blockElements start and end on their own line.
var blockElements = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Br:         true,
	atom.Hr:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Li:         true,
	atom.Tr:         true,
	atom.Td:         true,
	atom.Th:         true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.Table:      true,
	atom.Section:    true,
	atom.Article:    true,
	atom.Header:     true,
	atom.Footer:     true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Dt:         true,
	atom.Dd:         true,
}

// VisibleText strips markup from an HTML stream. Entities are decoded,
// each line is trimmed and blank lines are dropped.
func VisibleText(r io.Reader) string {
	tokenizer := xhtml.NewTokenizer(r)

	var b strings.Builder
	hiddenDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case xhtml.ErrorToken:
			// io.EOF or a read error: either way the stream is done.
			return collectLines(b.String())

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			a := atom.Lookup(name)
			if hiddenElements[a] && tt == xhtml.StartTagToken {
				hiddenDepth++
				continue
			}
			if blockElements[a] {
				b.WriteByte('\n')
			}

		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			a := atom.Lookup(name)
			if hiddenElements[a] {
				if hiddenDepth > 0 {
					hiddenDepth--
				}
				continue
			}
			if blockElements[a] {
				b.WriteByte('\n')
			}

		case xhtml.TextToken:
			if hiddenDepth == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

// collectLines trims each line and removes empty lines.
func collectLines(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
