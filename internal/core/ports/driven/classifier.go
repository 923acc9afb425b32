package driven

// SampleSize is how many leading bytes are used for encoding detection.
const SampleSize = 8192

// Classification is the outcome of content sniffing.
// An empty MIMEType means classification failed.
type Classification struct {
	// MIMEType is the detected type without parameters, e.g. "text/html".
	MIMEType string

	// Encoding is the detected charset. Only set for text-like types.
	Encoding string
}

// OK returns true if a MIME type was identified.
func (c Classification) OK() bool {
	return c.MIMEType != ""
}

// Classifier infers the MIME type of document bytes.
// Implementations must be deterministic: identical inputs give identical results.
type Classifier interface {
	// Classify sniffs data. The name is an optional path or filename hint
	// used only to refine generic text subtypes. Failures are reported as
	// an empty Classification, never as an error.
	Classify(data []byte, name string) Classification
}

// EncodingDetector guesses the character encoding of a byte sample.
type EncodingDetector interface {
	// Detect returns the best-guess encoding label and true, or false if
	// the sample is empty or no confident result was produced.
	Detect(sample []byte) (string, bool)
}
