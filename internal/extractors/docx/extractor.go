// Package docx extracts text from Word (.docx) documents.
package docx

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/extractors/ooxml"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

const (
	format       = "docx"
	documentPart = "word/document.xml"
)

// Extractor handles DOCX documents.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the format label used in errors.
func (e *Extractor) Format() string {
	return format
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{domain.MIMETypeWordDocument}
}

// Extract returns the text of every body paragraph in order, each followed
// by a newline. Run-level tabs and breaks are kept.
func (e *Extractor) Extract(ctx context.Context, content domain.Content) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pkg, err := ooxml.Open(format, content.Data)
	if err != nil {
		return "", err
	}

	decoder, closer, err := pkg.Decoder(documentPart)
	if err != nil {
		return "", err
	}
	defer closer.Close()

	text, err := paragraphs(decoder)
	if err != nil {
		return "", pkg.Malformed(err)
	}
	return text, nil
}

// paragraphs walks the document part. Only paragraphs that are direct
// children of w:body count, so table cells are skipped.
func paragraphs(decoder *xml.Decoder) (string, error) {
	var (
		out   strings.Builder
		stack []string
		inPar bool
		inT   bool
	)

	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return out.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch {
			case name == "p" && parent() == "body":
				inPar = true
			case inPar && parent() == "r":
				switch name {
				case "t":
					inT = true
				case "tab":
					out.WriteByte('\t')
				case "br", "cr":
					out.WriteByte('\n')
				}
			}
			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			switch {
			case t.Name.Local == "t":
				inT = false
			case t.Name.Local == "p" && parent() == "body":
				out.WriteByte('\n')
				inPar = false
			}

		case xml.CharData:
			if inPar && inT {
				out.Write(t)
			}
		}
	}
}
