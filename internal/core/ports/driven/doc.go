// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Classifier: Sniffs the MIME type of raw bytes
//   - EncodingDetector: Guesses the character encoding of text bytes
//   - Extractor: Produces text from one binary document format
//   - TextExtractor: Produces text from text/* documents, branching on subtype
//   - SpreadsheetExtractor: Extractor with sheet-level access
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Archiver: Zip list/extract/create. Without it the archive commands and tools are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
