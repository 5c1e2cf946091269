package qrcode

import "image/color"

const (
	DefaultPixelsPerModule = 10
)

type options struct {
	level           Level
	pixelsPerModule int
	size            int
	disableBorder   bool
	foreground      color.Color
	background      color.Color
}

func defaultOptions() options {
	return options{
		level:           Low,
		pixelsPerModule: DefaultPixelsPerModule,
		foreground:      color.Black,
		background:      color.White,
	}
}

// Option configures QR code generation.
type Option func(*options)

// WithLevel sets the error correction level (default Low).
func WithLevel(level Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithPixelsPerModule sets the width of one module in pixels, so the image
// grows with the version. Overridden by WithSize.
func WithPixelsPerModule(n int) Option {
	return func(o *options) {
		o.pixelsPerModule = n
	}
}

// WithSize renders a fixed-size square image of n pixels. If n is too small
// for the version, a larger image is returned.
func WithSize(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// WithoutBorder drops the quiet zone around the symbol.
func WithoutBorder() Option {
	return func(o *options) {
		o.disableBorder = true
	}
}

// WithColors sets the module and background colors.
func WithColors(foreground, background color.Color) Option {
	return func(o *options) {
		if foreground != nil {
			o.foreground = foreground
		}
		if background != nil {
			o.background = background
		}
	}
}
