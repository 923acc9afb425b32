package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a document type with no extractor.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtraction indicates a format extractor could not read a document.
	// Match with errors.Is; the concrete value is an *ExtractionError.
	ErrExtraction = errors.New("extraction failed")

	// Archive Errors.

	// ErrPasswordRequired indicates an encrypted archive entry was opened without a password.
	ErrPasswordRequired = errors.New("password required")

	// ErrUnsafePath indicates an archive entry would be written outside the destination.
	ErrUnsafePath = errors.New("unsafe archive entry path")
)

// ExtractionErrorKind classifies why an extractor failed.
type ExtractionErrorKind string

const (
	// ExtractionMalformed means the document bytes could not be parsed.
	ExtractionMalformed ExtractionErrorKind = "malformed"

	// ExtractionIO means reading the document failed.
	ExtractionIO ExtractionErrorKind = "io"
)

// ExtractionError is the failure half of an extractor result.
// The dispatcher never recovers from it; it surfaces to the caller.
type ExtractionError struct {
	// Format names the extractor, e.g. "pdf" or "xlsx".
	Format string

	// Kind classifies the failure.
	Kind ExtractionErrorKind

	// Err is the underlying cause.
	Err error
}

// NewExtractionError wraps err as a failure of the named extractor.
func NewExtractionError(format string, kind ExtractionErrorKind, err error) *ExtractionError {
	return &ExtractionError{Format: format, Kind: kind, Err: err}
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s document", e.Format, e.Kind)
	}
	return fmt.Sprintf("%s: %s document: %v", e.Format, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExtraction.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}
