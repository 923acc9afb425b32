// Package domain defines the core business entities for doctext.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Descriptor: An immutable, classified view of one input document
//   - DocumentType: The closed set of extraction routes
//   - Content: The bytes handed to a format extractor
//   - Settings: Application configuration
//
// It also owns Sanitize, the whitespace normalisation applied to every
// extraction result before it reaches a caller.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
