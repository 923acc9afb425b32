package domain

import "strings"

// MIME types with a dedicated extraction route.
const (
	MIMETypePDF          = "application/pdf"
	MIMETypeSpreadsheet  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMETypeWordDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MIMETypeHTML         = "text/html"
	MIMETypeXML          = "text/xml"
	MIMETypeMarkdown     = "text/markdown"
	MIMETypePlain        = "text/plain"
)

// DocumentType is the closed set of extraction routes a document can take.
type DocumentType string

// Available document types.
const (
	DocumentTypeText         DocumentType = "text"
	DocumentTypePDF          DocumentType = "pdf"
	DocumentTypeSpreadsheet  DocumentType = "spreadsheet"
	DocumentTypeWordDocument DocumentType = "word-processing-document"
	DocumentTypePresentation DocumentType = "presentation"
	DocumentTypeImage        DocumentType = "image"
	DocumentTypeUnsupported  DocumentType = "unsupported"
)

// AllDocumentTypes lists every DocumentType in derivation order.
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeText,
		DocumentTypePDF,
		DocumentTypeSpreadsheet,
		DocumentTypeWordDocument,
		DocumentTypePresentation,
		DocumentTypeImage,
		DocumentTypeUnsupported,
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// HasExtractor returns true if documents of this type produce text.
// Images are identified but never extracted.
func (t DocumentType) HasExtractor() bool {
	switch t {
	case DocumentTypeText, DocumentTypePDF, DocumentTypeSpreadsheet,
		DocumentTypeWordDocument, DocumentTypePresentation:
		return true
	default:
		return false
	}
}

// DocumentTypeOf maps a MIME type to its DocumentType.
// Rules are evaluated in order and the first match wins; an empty
// mimeType means classification failed and maps to unsupported.
func DocumentTypeOf(mimeType string) DocumentType {
	switch {
	case mimeType == "":
		return DocumentTypeUnsupported
	case strings.HasPrefix(mimeType, "text/"):
		return DocumentTypeText
	case mimeType == MIMETypePDF:
		return DocumentTypePDF
	case mimeType == MIMETypeSpreadsheet:
		return DocumentTypeSpreadsheet
	case mimeType == MIMETypeWordDocument:
		return DocumentTypeWordDocument
	case mimeType == MIMETypePresentation:
		return DocumentTypePresentation
	case strings.HasPrefix(mimeType, "image/"):
		return DocumentTypeImage
	default:
		return DocumentTypeUnsupported
	}
}

// IsTextMIMEType returns true for MIME types where encoding detection applies.
func IsTextMIMEType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "text/")
}

// Content is the document handed to a format extractor.
// Extractors must treat Data as read-only.
type Content struct {
	// Name is the path or label the bytes came from. May be empty.
	Name string

	// Data is the full document.
	Data []byte
}

// Descriptor is the classified, immutable view of one input document.
// Re-classifying means building a new Descriptor.
type Descriptor struct {
	name     string
	data     []byte
	mimeType string
	encoding string
}

// NewDescriptor builds a Descriptor over a private copy of data.
// An empty mimeType records a classification failure. The encoding is
// dropped unless mimeType is text-like.
func NewDescriptor(name string, data []byte, mimeType, encoding string) *Descriptor {
	if !IsTextMIMEType(mimeType) {
		encoding = ""
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Descriptor{
		name:     name,
		data:     owned,
		mimeType: mimeType,
		encoding: encoding,
	}
}

// Name returns the path or label the document was read from.
func (d *Descriptor) Name() string {
	return d.name
}

// Size returns the document length in bytes.
func (d *Descriptor) Size() int {
	return len(d.data)
}

// MIMEType returns the classified MIME type, or "" if classification failed.
func (d *Descriptor) MIMEType() string {
	return d.mimeType
}

// Encoding returns the detected character encoding, or "" if unknown.
func (d *Descriptor) Encoding() string {
	return d.encoding
}

// Classified returns true if a MIME type was identified.
func (d *Descriptor) Classified() bool {
	return d.mimeType != ""
}

// Type derives the DocumentType from the MIME type.
func (d *Descriptor) Type() DocumentType {
	return DocumentTypeOf(d.mimeType)
}

// Content returns the document for handing to an extractor.
func (d *Descriptor) Content() Content {
	return Content{Name: d.name, Data: d.data}
}

// Identification reports what a document was classified as.
type Identification struct {
	// Path is where the document was read from.
	Path string `json:"path"`

	// MIMEType is empty when classification failed.
	MIMEType string `json:"mime_type,omitempty"`

	// Encoding is only set for text-like documents.
	Encoding string `json:"encoding,omitempty"`

	// DocumentType is the extraction route.
	DocumentType DocumentType `json:"document_type"`
}

// Identify summarises a Descriptor.
func (d *Descriptor) Identify() Identification {
	return Identification{
		Path:         d.name,
		MIMEType:     d.mimeType,
		Encoding:     d.encoding,
		DocumentType: d.Type(),
	}
}
