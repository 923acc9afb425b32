package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/core/ports/driving"
	"github.com/custodia-labs/doctext/internal/logger"
)

// Ensure ArchiveService implements the interface.
var _ driving.ArchiveService = (*ArchiveService)(nil)

// ArchiveService validates archive requests and delegates to an Archiver.
type ArchiveService struct {
	archiver driven.Archiver
}

// NewArchiveService creates a new archive service.
func NewArchiveService(archiver driven.Archiver) *ArchiveService {
	return &ArchiveService{archiver: archiver}
}

// List returns the entry names of the archive at path.
func (s *ArchiveService) List(ctx context.Context, path string) ([]string, error) {
	if err := requireAbsolute("path", path); err != nil {
		return nil, err
	}
	names, err := s.archiver.List(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	return names, nil
}

// Extract unpacks the archive at path into destDir.
func (s *ArchiveService) Extract(ctx context.Context, path, destDir, password string) error {
	if err := requireAbsolute("path", path); err != nil {
		return err
	}
	if err := requireAbsolute("destination", destDir); err != nil {
		return err
	}

	logger.Debug("Extracting %s to %s", path, destDir)
	if err := s.archiver.Extract(ctx, path, destDir, password); err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}
	return nil
}

// Create writes paths into a new archive at output.
func (s *ArchiveService) Create(ctx context.Context, paths []string, output, password string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: no input paths", domain.ErrInvalidInput)
	}
	for _, p := range paths {
		if err := requireAbsolute("input", p); err != nil {
			return err
		}
	}
	if err := requireAbsolute("output", output); err != nil {
		return err
	}

	logger.Debug("Creating %s from %d paths (encrypted: %t)", output, len(paths), password != "")
	if err := s.archiver.Create(ctx, paths, output, password); err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	return nil
}

func requireAbsolute(what, path string) error {
	if path == "" {
		return fmt.Errorf("%w: %s path is required", domain.ErrInvalidInput, what)
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %s path must be absolute: %s", domain.ErrInvalidInput, what, path)
	}
	return nil
}
