package driven

import "context"

// Archiver lists, extracts and creates zip archives.
// It is independent of the extraction pipeline.
type Archiver interface {
	// List returns entry names in archive order.
	List(ctx context.Context, path string) ([]string, error)

	// Extract unpacks path into destDir. Password may be empty.
	Extract(ctx context.Context, path, destDir, password string) error

	// Create writes the given files and directories to output.
	// Entries are encrypted when password is non-empty.
	Create(ctx context.Context, paths []string, output, password string) error
}
