package driving

import "context"

// ArchiveService manages zip archives on the local filesystem.
// All paths must be absolute.
type ArchiveService interface {
	// List returns entry names in archive order.
	List(ctx context.Context, path string) ([]string, error)

	// Extract unpacks path into destDir. Password may be empty.
	Extract(ctx context.Context, path, destDir, password string) error

	// Create writes files and directories into a new archive at output.
	Create(ctx context.Context, paths []string, output, password string) error
}
