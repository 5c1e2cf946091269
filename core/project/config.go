package project

import "github.com/dmitrymomot/qrgames/pkg/qrcode"

// Config holds the settings of a Service, loadable from the environment.
type Config struct {
	Root            string       `env:"QRGAMES_ROOT" envDefault:"."`
	Level           qrcode.Level `env:"QR_LEVEL" envDefault:"L"`
	PixelsPerModule int          `env:"QR_PIXELS_PER_MODULE" envDefault:"10"`
	Concurrency     int          `env:"QR_CONCURRENCY" envDefault:"4"`
	LoaderTitle     string       `env:"LOADER_TITLE" envDefault:"Loading..."`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Root:            ".",
		Level:           qrcode.Low,
		PixelsPerModule: qrcode.DefaultPixelsPerModule,
		Concurrency:     4,
		LoaderTitle:     "Loading...",
	}
}
