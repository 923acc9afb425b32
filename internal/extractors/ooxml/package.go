// Package ooxml reads the zip container shared by Office Open XML formats.
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

// ErrPartNotFound is returned when a package lacks a required part.
var ErrPartNotFound = errors.New("part not found")

// Package is an opened OOXML document.
type Package struct {
	format string
	parts  map[string]*zip.File
}

// Open parses data as an OOXML package. format labels any extraction error.
func Open(format string, data []byte) (*Package, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.NewExtractionError(format, domain.ExtractionMalformed, err)
	}

	parts := make(map[string]*zip.File, len(reader.File))
	for _, file := range reader.File {
		parts[file.Name] = file
	}
	return &Package{format: format, parts: parts}, nil
}

// Names returns every part name in the package.
func (p *Package) Names() []string {
	names := make([]string, 0, len(p.parts))
	for name := range p.parts {
		names = append(names, name)
	}
	return names
}

// Has reports whether the package contains the named part.
func (p *Package) Has(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// Decoder returns an XML decoder over the named part. The caller closes
// the returned closer.
func (p *Package) Decoder(name string) (*xml.Decoder, io.Closer, error) {
	file, ok := p.parts[name]
	if !ok {
		return nil, nil, domain.NewExtractionError(p.format, domain.ExtractionMalformed,
			fmt.Errorf("%w: %s", ErrPartNotFound, name))
	}

	rc, err := file.Open()
	if err != nil {
		return nil, nil, domain.NewExtractionError(p.format, domain.ExtractionIO, err)
	}
	return xml.NewDecoder(rc), rc, nil
}

// Malformed wraps err as a malformed-document error for this package.
func (p *Package) Malformed(err error) error {
	return domain.NewExtractionError(p.format, domain.ExtractionMalformed, err)
}
