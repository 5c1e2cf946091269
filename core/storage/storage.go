package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Storage is a flat-file store addressed by slash-separated relative paths.
type Storage interface {
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Put(ctx context.Context, path string, r io.Reader) error
	Exists(ctx context.Context, path string) (bool, error)
	Delete(ctx context.Context, path string) error
}

// ReadText reads a text file as UTF-8. A UTF-8 or UTF-16 byte order mark
// selects the encoding and is stripped; text without one is taken as UTF-8.
func ReadText(ctx context.Context, s Storage, path string) (string, error) {
	rc, err := s.Get(ctx, path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(rc, dec))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailed, path, err)
	}
	return string(b), nil
}

// WriteText writes s as UTF-8 without a byte order mark.
func WriteText(ctx context.Context, s Storage, path, text string) error {
	return s.Put(ctx, path, strings.NewReader(text))
}

// ReadBytes reads a whole file.
func ReadBytes(ctx context.Context, s Storage, path string) ([]byte, error) {
	rc, err := s.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFailed, path, err)
	}
	return b, nil
}

// WriteBytes writes b to path.
func WriteBytes(ctx context.Context, s Storage, path string, b []byte) error {
	return s.Put(ctx, path, bytes.NewReader(b))
}
