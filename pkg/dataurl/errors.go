package dataurl

import "errors"

var (
	ErrNotDataURL          = errors.New("not a data URL")
	ErrUnsupportedEncoding = errors.New("data URL is not base64 encoded")
	ErrInvalidPayload      = errors.New("invalid data URL payload")
	ErrUnexpectedMediaType = errors.New("unexpected data URL media type")
)
