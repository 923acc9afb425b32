package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeka/zip"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

// createTree writes files (relative path -> content) under a new temp dir.
func createTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// rawZip writes an archive with exactly the given entry names.
func rawZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raw.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, content := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestZip_CreateListExtract(t *testing.T) {
	ctx := context.Background()
	src := createTree(t, map[string]string{
		"docs/a.txt":     "alpha",
		"docs/sub/b.txt": "beta",
		"single.txt":     "solo",
	})
	output := filepath.Join(t.TempDir(), "out.zip")

	z := New()
	require.NoError(t, z.Create(ctx, []string{
		filepath.Join(src, "docs"),
		filepath.Join(src, "single.txt"),
	}, output, ""))

	names, err := z.List(ctx, output)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"docs/",
		"docs/a.txt",
		"docs/sub/",
		"docs/sub/b.txt",
		"single.txt",
	}, names)

	dest := t.TempDir()
	require.NoError(t, z.Extract(ctx, output, dest, ""))
	assert.Equal(t, "alpha", readFile(t, filepath.Join(dest, "docs", "a.txt")))
	assert.Equal(t, "beta", readFile(t, filepath.Join(dest, "docs", "sub", "b.txt")))
	assert.Equal(t, "solo", readFile(t, filepath.Join(dest, "single.txt")))
}

func TestZip_EncryptedRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := createTree(t, map[string]string{"secret.txt": "classified"})
	output := filepath.Join(t.TempDir(), "secret.zip")

	z := New()
	require.NoError(t, z.Create(ctx, []string{filepath.Join(src, "secret.txt")}, output, "hunter2"))

	r, err := zip.OpenReader(output)
	require.NoError(t, err)
	require.Len(t, r.File, 1)
	assert.True(t, r.File[0].IsEncrypted())
	require.NoError(t, r.Close())

	err = z.Extract(ctx, output, t.TempDir(), "")
	assert.ErrorIs(t, err, domain.ErrPasswordRequired)

	dest := t.TempDir()
	require.NoError(t, z.Extract(ctx, output, dest, "hunter2"))
	assert.Equal(t, "classified", readFile(t, filepath.Join(dest, "secret.txt")))
}

func TestZip_ExtractWrongPassword(t *testing.T) {
	ctx := context.Background()
	src := createTree(t, map[string]string{"s.txt": "data"})
	output := filepath.Join(t.TempDir(), "s.zip")

	z := New()
	require.NoError(t, z.Create(ctx, []string{filepath.Join(src, "s.txt")}, output, "right"))

	assert.Error(t, z.Extract(ctx, output, t.TempDir(), "wrong"))
}

func TestZip_ExtractRejectsUnsafeEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{"parent traversal", "../evil.txt"},
		{"nested traversal", "a/../../evil.txt"},
		{"absolute", "/etc/evil.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archive := rawZip(t, map[string]string{tt.entry: "x", "ok.txt": "fine"})
			dest := filepath.Join(t.TempDir(), "dest")

			err := New().Extract(context.Background(), archive, dest, "")
			assert.ErrorIs(t, err, domain.ErrUnsafePath)

			_, statErr := os.Stat(filepath.Join(dest, "ok.txt"))
			assert.True(t, os.IsNotExist(statErr), "nothing written")
		})
	}
}

func TestZip_ExtractAllowsInnerDotDot(t *testing.T) {
	archive := rawZip(t, map[string]string{"a/../b.txt": "inside"})
	dest := t.TempDir()

	require.NoError(t, New().Extract(context.Background(), archive, dest, ""))
	assert.Equal(t, "inside", readFile(t, filepath.Join(dest, "b.txt")))
}

func TestZip_Errors(t *testing.T) {
	ctx := context.Background()
	z := New()
	missing := filepath.Join(t.TempDir(), "missing.zip")

	_, err := z.List(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	notZip := filepath.Join(t.TempDir(), "not.zip")
	require.NoError(t, os.WriteFile(notZip, []byte("plain text"), 0o644))
	_, err = z.List(ctx, notZip)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = z.Extract(ctx, missing, t.TempDir(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	output := filepath.Join(t.TempDir(), "out.zip")
	err = z.Create(ctx, []string{filepath.Join(t.TempDir(), "nope")}, output, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestZip_CreateSkipsOutputInsideInput(t *testing.T) {
	ctx := context.Background()
	src := createTree(t, map[string]string{"a.txt": "a"})
	output := filepath.Join(src, "self.zip")

	z := New()
	require.NoError(t, z.Create(ctx, []string{src}, output, ""))

	names, err := z.List(ctx, output)
	require.NoError(t, err)
	base := filepath.Base(src)
	assert.Equal(t, []string{base + "/", base + "/a.txt"}, names)
}

func TestZip_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	z := New()

	_, err := z.List(ctx, "/any.zip")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, z.Extract(ctx, "/any.zip", "/tmp", ""), context.Canceled)
	assert.ErrorIs(t, z.Create(ctx, []string{"/a"}, "/b.zip", ""), context.Canceled)
}

func TestSafeJoin(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "dest")

	got, err := safeJoin(root, "dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "dir", "file.txt"), got)

	_, err = safeJoin(root, "")
	assert.ErrorIs(t, err, domain.ErrUnsafePath)

	_, err = safeJoin(root, "../x")
	assert.ErrorIs(t, err, domain.ErrUnsafePath)

	_, err = safeJoin(root, "../dest2/x")
	assert.ErrorIs(t, err, domain.ErrUnsafePath)
}
