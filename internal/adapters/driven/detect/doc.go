// Package detect provides content-sniffing adapters for the driven
// Classifier and EncodingDetector ports.
//
// Classifier wraps github.com/gabriel-vasile/mimetype, which walks a
// signature tree (including zip inspection for OOXML documents) and falls
// back to text heuristics. EncodingDetector wraps github.com/saintfish/chardet,
// a statistical charset detector ported from ICU.
package detect
