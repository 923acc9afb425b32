// Package html provides a TextFormatExtractor for HTML documents.
// It extracts readable text content from HTML, dropping tags, scripts,
// styles and the document head, and decoding entities.
package html
