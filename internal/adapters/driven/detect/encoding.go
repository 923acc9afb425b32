package detect

import (
	"github.com/saintfish/chardet"

	"github.com/custodia-labs/doctext/internal/core/ports/driven"
)

// Ensure EncodingDetector implements the interface.
var _ driven.EncodingDetector = (*EncodingDetector)(nil)

// EncodingDetector guesses charsets with a statistical text detector.
type EncodingDetector struct{}

// NewEncodingDetector creates a new encoding detector.
func NewEncodingDetector() *EncodingDetector {
	return &EncodingDetector{}
}

// Detect returns the most likely charset label for the first
// driven.SampleSize bytes of sample.
func (d *EncodingDetector) Detect(sample []byte) (string, bool) {
	if len(sample) == 0 {
		return "", false
	}
	if len(sample) > driven.SampleSize {
		sample = sample[:driven.SampleSize]
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result == nil || result.Charset == "" {
		return "", false
	}
	return result.Charset, true
}
