package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/qrgames/pkg/dataurl"
)

// Code is a rendered QR code.
type Code struct {
	PNG     []byte
	Version int
	Level   Level
}

// Generate renders content as a PNG QR code of the smallest version that fits.
func Generate(content string, opts ...Option) (*Code, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	recovery, err := o.level.recovery()
	if err != nil {
		return nil, err
	}

	size := o.size
	if size == 0 {
		if o.pixelsPerModule <= 0 {
			return nil, fmt.Errorf("%w: %d pixels per module", ErrInvalidSize, o.pixelsPerModule)
		}
		// negative size means pixels per module in go-qrcode
		size = -o.pixelsPerModule
	} else if size < 0 {
		return nil, fmt.Errorf("%w: %d pixels", ErrInvalidSize, size)
	}

	q, err := qr.New(content, recovery)
	if err != nil {
		// Byte mode fits up to MaxBytes at any level, and denser modes fit
		// more, so a failure past that size can only be a capacity failure.
		if len(content) > MaxBytes(o.level) {
			return nil, fmt.Errorf("%w: %d bytes at level %s, at most %d", ErrContentTooLong, len(content), o.level, MaxBytes(o.level))
		}
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	q.DisableBorder = o.disableBorder
	q.ForegroundColor = o.foreground
	q.BackgroundColor = o.background

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return &Code{PNG: png, Version: q.VersionNumber, Level: o.level}, nil
}

// GenerateBase64Image renders content as a PNG QR code wrapped in a data URI,
// ready for an img src attribute.
func GenerateBase64Image(content string, opts ...Option) (string, error) {
	code, err := Generate(content, opts...)
	if err != nil {
		return "", err
	}
	return dataurl.Encode(dataurl.MediaTypePNG, code.PNG), nil
}
