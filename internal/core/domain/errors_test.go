package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrExtraction", ErrExtraction},
		{"ErrPasswordRequired", ErrPasswordRequired},
		{"ErrUnsafePath", ErrUnsafePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrInvalidInput tests ErrInvalidInput error
func TestErrInvalidInput(t *testing.T) {
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
	assert.True(t, errors.Is(ErrInvalidInput, ErrInvalidInput))
	assert.False(t, errors.Is(ErrInvalidInput, ErrNotFound))
}

func TestExtractionError_Error(t *testing.T) {
	err := NewExtractionError("pdf", ExtractionMalformed, errors.New("bad xref"))
	assert.Equal(t, "pdf: malformed document: bad xref", err.Error())

	bare := NewExtractionError("docx", ExtractionIO, nil)
	assert.Equal(t, "docx: io document", bare.Error())
}

func TestExtractionError_Is(t *testing.T) {
	err := fmt.Errorf("extracting report.pdf: %w", NewExtractionError("pdf", ExtractionIO, io.ErrUnexpectedEOF))

	assert.ErrorIs(t, err, ErrExtraction)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, err, ErrInvalidInput)

	var extractErr *ExtractionError
	assert.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "pdf", extractErr.Format)
	assert.Equal(t, ExtractionIO, extractErr.Kind)
}
