package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var _ Storage = (*LocalStorage)(nil)

// LocalStorage stores files below a root directory.
type LocalStorage struct {
	root       string
	fileMode   os.FileMode
	dirMode    os.FileMode
	createDirs bool
}

// LocalOption configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithPermissions sets the mode of written files (default 0644).
func WithPermissions(mode os.FileMode) LocalOption {
	return func(s *LocalStorage) {
		s.fileMode = mode
	}
}

// WithDirPermissions sets the mode of created directories (default 0755).
func WithDirPermissions(mode os.FileMode) LocalOption {
	return func(s *LocalStorage) {
		s.dirMode = mode
	}
}

// WithCreateDirs toggles creating missing parent directories on Put (default true).
func WithCreateDirs(create bool) LocalOption {
	return func(s *LocalStorage) {
		s.createDirs = create
	}
}

// NewLocalStorage returns a storage rooted at root.
func NewLocalStorage(root string, opts ...LocalOption) *LocalStorage {
	s := &LocalStorage{
		root:       filepath.Clean(root),
		fileMode:   0o644,
		dirMode:    0o755,
		createDirs: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the root directory.
func (s *LocalStorage) Root() string {
	return s.root
}

// resolve maps a relative path into the root and refuses anything that
// would escape it.
func (s *LocalStorage) resolve(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	rel := filepath.Clean(filepath.FromSlash(path))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q escapes storage root", ErrInvalidPath, path)
	}
	return filepath.Join(s.root, rel), nil
}

// Get opens the file at path.
func (s *LocalStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFailed, path, err)
	}
	return f, nil
}

// Put writes r to path, replacing any existing file. Data goes to a temporary
// file first so readers never observe a partial write.
func (s *LocalStorage) Put(ctx context.Context, path string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(full)
	if s.createDirs {
		if err := os.MkdirAll(dir, s.dirMode); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(full)+".*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	if err := os.Chmod(tmp.Name(), s.fileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

// Exists reports whether a regular file exists at path.
func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	full, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s: %w", ErrReadFailed, path, err)
	}
	return info.Mode().IsRegular(), nil
}

// Delete removes the file at path. Deleting a missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}
