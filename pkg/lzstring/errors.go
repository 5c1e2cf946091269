package lzstring

import "errors"

var (
	ErrInvalidCharacter = errors.New("lzstring: invalid character in compressed input")
	ErrTruncated        = errors.New("lzstring: compressed input ends before end of stream marker")
	ErrCorrupt          = errors.New("lzstring: compressed input references an unknown code")
)
