// Package watch extracts text from files as they appear in a directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/doctext/internal/core/ports/driving"
	"github.com/custodia-labs/doctext/internal/logger"
)

// OutputSuffix is appended to a source file name to name its text output.
const OutputSuffix = ".txt"

// Watcher writes <name>.txt for every file created or written in a directory.
type Watcher struct {
	extraction driving.ExtractionService
	dir        string
	outDir     string

	// written tracks outputs so our own writes are not re-extracted.
	written map[string]struct{}

	// OnExtracted, if set, is called after each output file is written.
	OnExtracted func(source, output string)
}

// New creates a watcher for dir. An empty outDir writes next to the source.
func New(extraction driving.ExtractionService, dir, outDir string) (*Watcher, error) {
	if extraction == nil {
		return nil, errors.New("extraction service is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch %s: not a directory", dir)
	}
	if outDir == "" {
		outDir = dir
	}
	return &Watcher{
		extraction: extraction,
		dir:        filepath.Clean(dir),
		outDir:     filepath.Clean(outDir),
		written:    make(map[string]struct{}),
	}, nil
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
// Extraction failures are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logger.Info("Watching %s, writing text to %s", w.dir, w.outDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if _, err := w.handleEvent(ctx, event); err != nil {
				logger.Warn("%v", err)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// handleEvent extracts the file behind event. It returns the output path,
// or "" when the event is ignored.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) (string, error) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", nil
	}
	if w.skip(event.Name) {
		return "", nil
	}

	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", nil
	}

	text, err := w.extraction.ExtractFile(ctx, event.Name)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", event.Name, err)
	}

	out := w.outputFor(event.Name)
	w.written[out] = struct{}{}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	logger.Debug("Extracted %s -> %s", event.Name, out)

	if w.OnExtracted != nil {
		w.OnExtracted(event.Name, out)
	}
	return out, nil
}

func (w *Watcher) skip(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}
	_, ours := w.written[filepath.Clean(path)]
	return ours
}

func (w *Watcher) outputFor(path string) string {
	return filepath.Join(w.outDir, filepath.Base(path)+OutputSuffix)
}
