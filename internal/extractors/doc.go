// Package extractors provides implementations of the Extractor interfaces
// for various document formats. Each extractor knows how to produce raw
// text from a specific MIME type.
//
// Binary formats (pdf, docx, pptx, xlsx) implement driven.Extractor.
// Text formats (html, xml, markdown, plaintext) implement
// driven.TextFormatExtractor and are selected by the text Router.
//
// Extractors never sanitize their output; the extraction service does
// that exactly once before returning text to a caller.
package extractors
