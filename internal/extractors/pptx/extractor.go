// Package pptx extracts text from PowerPoint (.pptx) presentations.
package pptx

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/extractors/ooxml"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

const format = "pptx"

var slidePart = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Extractor handles PPTX documents.
type Extractor struct{}

// New creates a new PPTX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the format label used in errors.
func (e *Extractor) Format() string {
	return format
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{domain.MIMETypePresentation}
}

// Extract returns the text of every text-bearing shape, slide by slide.
// Each shape's paragraphs are joined by newlines and the shape is followed
// by a newline.
func (e *Extractor) Extract(ctx context.Context, content domain.Content) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pkg, err := ooxml.Open(format, content.Data)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, name := range slides(pkg) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := extractSlide(pkg, name, &out); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// slides returns slide part names ordered by slide number.
func slides(pkg *ooxml.Package) []string {
	type slide struct {
		name string
		num  int
	}

	var found []slide
	for _, name := range pkg.Names() {
		m := slidePart.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, slide{name: name, num: num})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].num < found[j].num })

	names := make([]string, len(found))
	for i, s := range found {
		names[i] = s.name
	}
	return names
}

func extractSlide(pkg *ooxml.Package, name string, out *strings.Builder) error {
	decoder, closer, err := pkg.Decoder(name)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := shapes(decoder, out); err != nil {
		return pkg.Malformed(err)
	}
	return nil
}

// shape collects the paragraphs of one top-level p:sp.
type shape struct {
	hasText    bool
	paragraphs []string
	current    strings.Builder
}

// shapes writes the text of each top-level p:sp in the slide's shape tree.
// Shapes without a text body contribute nothing.
func shapes(decoder *xml.Decoder, out *strings.Builder) error {
	var (
		stack []string
		sp    *shape
		spAt  int
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
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch {
			case name == "sp" && parent() == "spTree" && sp == nil:
				sp = &shape{}
				spAt = len(stack)
			case sp != nil && name == "txBody":
				sp.hasText = true
			case sp != nil && name == "p" && parent() == "txBody":
				sp.current.Reset()
			case sp != nil && name == "t":
				inT = true
			case sp != nil && name == "br" && parent() == "p":
				sp.current.WriteByte('\n')
			}
			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			name := t.Name.Local
			switch {
			case name == "t":
				inT = false
			case sp != nil && name == "p" && parent() == "txBody":
				sp.paragraphs = append(sp.paragraphs, sp.current.String())
			case sp != nil && name == "sp" && len(stack) == spAt:
				if sp.hasText {
					out.WriteString(strings.Join(sp.paragraphs, "\n"))
					out.WriteByte('\n')
				}
				sp = nil
			}

		case xml.CharData:
			if sp != nil && inT {
				sp.current.Write(t)
			}
		}
	}
}
