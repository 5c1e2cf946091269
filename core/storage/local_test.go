package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgames/core/storage"
)

func TestLocalStoragePutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	root := t.TempDir()
	store := storage.NewLocalStorage(root)

	require.NoError(t, storage.WriteText(ctx, store, "game/url/url.txt", "data:text/html;base64,AA=="))

	got, err := storage.ReadText(ctx, store, "game/url/url.txt")
	require.NoError(t, err)
	assert.Equal(t, "data:text/html;base64,AA==", got)

	raw, err := os.ReadFile(filepath.Join(root, "game", "url", "url.txt"))
	require.NoError(t, err)
	assert.Equal(t, "data:text/html;base64,AA==", string(raw))

	// overwrite
	require.NoError(t, storage.WriteBytes(ctx, store, "game/url/url.txt", []byte("second")))
	b, err := storage.ReadBytes(ctx, store, "game/url/url.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), b)

	entries, err := os.ReadDir(filepath.Join(root, "game", "url"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLocalStoragePermissions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	root := t.TempDir()
	store := storage.NewLocalStorage(root, storage.WithPermissions(0o600))

	require.NoError(t, storage.WriteText(ctx, store, "a.txt", "x"))
	info, err := os.Stat(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLocalStorageWithoutCreateDirs(t *testing.T) {
	t.Parallel()
	store := storage.NewLocalStorage(t.TempDir(), storage.WithCreateDirs(false))
	err := storage.WriteText(context.Background(), store, "missing/dir/a.txt", "x")
	assert.ErrorIs(t, err, storage.ErrWriteFailed)
}

func TestLocalStorageExistsDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewLocalStorage(t.TempDir())

	ok, err := store.Exists(ctx, "a.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.WriteText(ctx, store, "dir/a.txt", "x"))
	ok, err = store.Exists(ctx, "dir/a.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "dir")
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	require.NoError(t, store.Delete(ctx, "dir/a.txt"))
	require.NoError(t, store.Delete(ctx, "dir/a.txt"))
	ok, err = store.Exists(ctx, "dir/a.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorageErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewLocalStorage(t.TempDir())

	_, err := store.Get(ctx, "nope.txt")
	assert.ErrorIs(t, err, storage.ErrFileNotFound)

	for _, p := range []string{"", "../outside.txt", "a/../../outside.txt", "/etc/passwd"} {
		_, err := store.Get(ctx, p)
		assert.ErrorIs(t, err, storage.ErrInvalidPath, p)
		assert.ErrorIs(t, store.Put(ctx, p, strings.NewReader("x")), storage.ErrInvalidPath, p)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.Get(canceled, "a.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadTextDecodesByteOrderMarks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	root := t.TempDir()
	store := storage.NewLocalStorage(root)

	utf8BOM := append([]byte{0xEF, 0xBB, 0xBF}, "<p>☃</p>"...)
	require.NoError(t, os.WriteFile(filepath.Join(root, "utf8.html"), utf8BOM, 0o644))

	// "<p>" in UTF-16LE with BOM
	utf16LE := []byte{0xFF, 0xFE, '<', 0, 'p', 0, '>', 0}
	require.NoError(t, os.WriteFile(filepath.Join(root, "utf16.html"), utf16LE, 0o644))

	got, err := storage.ReadText(ctx, store, "utf8.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>☃</p>", got)

	got, err = storage.ReadText(ctx, store, "utf16.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>", got)
}
