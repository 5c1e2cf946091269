package qrcode

import "errors"

var (
	ErrEmptyContent     = errors.New("qrcode: content is empty")
	ErrContentTooLong   = errors.New("qrcode: content too long for any QR code version")
	ErrInvalidLevel     = errors.New("qrcode: invalid error correction level")
	ErrInvalidSize      = errors.New("qrcode: invalid image size")
	ErrGenerationFailed = errors.New("qrcode: generation failed")
)
