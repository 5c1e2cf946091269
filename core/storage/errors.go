package storage

import "errors"

var (
	ErrFileNotFound = errors.New("storage: file not found")
	ErrInvalidPath  = errors.New("storage: invalid path")
	ErrReadFailed   = errors.New("storage: read failed")
	ErrWriteFailed  = errors.New("storage: write failed")
)
