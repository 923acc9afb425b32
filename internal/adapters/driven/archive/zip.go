package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeka/zip"

	"github.com/custodia-labs/doctext/internal/core/domain"
	"github.com/custodia-labs/doctext/internal/core/ports/driven"
	"github.com/custodia-labs/doctext/internal/logger"
)

// Ensure Zip implements the interface.
var _ driven.Archiver = (*Zip)(nil)

// Zip lists, extracts and creates zip archives.
type Zip struct{}

// New creates a new zip archiver.
func New() *Zip {
	return &Zip{}
}

// List returns entry names in archive order.
func (z *Zip) List(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// Extract unpacks every entry of path into destDir. Entries that would
// land outside destDir are rejected before anything is written.
func (z *Zip) Extract(ctx context.Context, path, destDir, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r, err := open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	root, err := filepath.Abs(destDir)
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}

	targets := make([]string, len(r.File))
	for i, f := range r.File {
		target, err := safeJoin(root, f.Name)
		if err != nil {
			return err
		}
		if f.IsEncrypted() && password == "" {
			return fmt.Errorf("%w: %s", domain.ErrPasswordRequired, f.Name)
		}
		targets[i] = target
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	for i, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := extractEntry(f, targets[i], password); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}

	logger.Debug("Extracted %d entries from %s", len(r.File), path)
	return nil
}

// Create writes paths into a new archive at output. Each path is stored
// relative to its parent directory and directories are walked recursively.
// With a password every file entry is AES-256 encrypted.
func (z *Zip) Create(ctx context.Context, paths []string, output, password string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", domain.ErrNotFound, p)
			}
			return err
		}
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(output)
		}
	}()

	absOutput, _ := filepath.Abs(output)
	w := zip.NewWriter(out)
	for _, p := range paths {
		if err := addTree(ctx, w, p, absOutput, password); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	return nil
}

func open(path string) (*zip.ReadCloser, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s is not a readable zip archive: %w", domain.ErrInvalidInput, path, err)
	}
	return r, nil
}

// safeJoin resolves name under root, refusing absolute names and any
// name that escapes root.
func safeJoin(root, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsafePath, name)
	}
	target := filepath.Join(root, filepath.FromSlash(name))
	if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsafePath, name)
	}
	return target, nil
}

func extractEntry(f *zip.File, target, password string) error {
	if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if f.IsEncrypted() {
		f.SetPassword(password)
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, rc); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

func addTree(ctx context.Context, w *zip.Writer, root, skip, password string) error {
	base := filepath.Dir(filepath.Clean(root))

	return filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if abs, _ := filepath.Abs(p); abs == skip {
			return nil
		}

		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			header, err := zip.FileInfoHeader(info)
			if err != nil {
				return err
			}
			header.Name = name + "/"
			_, err = w.CreateHeader(header)
			return err
		}
		if !info.Mode().IsRegular() {
			logger.Debug("Skipping non-regular file %s", p)
			return nil
		}
		return addFile(w, p, name, info, password)
	})
}

func addFile(w *zip.Writer, path, name string, info fs.FileInfo, password string) error {
	var (
		dst io.Writer
		err error
	)
	if password != "" {
		dst, err = w.Encrypt(name, password, zip.AES256Encryption)
	} else {
		var header *zip.FileHeader
		header, err = zip.FileInfoHeader(info)
		if err == nil {
			header.Name = name
			header.Method = zip.Deflate
			dst, err = w.CreateHeader(header)
		}
	}
	if err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	return nil
}
