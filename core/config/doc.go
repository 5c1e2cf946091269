// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use (a
// missing file is ignored) and uses the caarlos0/env library to parse
// environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/qrgames/core/config"
//
//	type QRConfig struct {
//		Level           qrcode.Level `env:"QR_LEVEL" envDefault:"L"`
//		PixelsPerModule int          `env:"QR_PIXELS_PER_MODULE" envDefault:"10"`
//	}
//
//	func main() {
//		var qr QRConfig
//
//		if err := config.Load(&qr); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&qr)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process:
//
//	var cfg1 QRConfig
//	config.Load(&cfg1) // parses the environment
//
//	var cfg2 QRConfig
//	config.Load(&cfg2) // returns the cached value, cfg1 == cfg2
//
// Different types are cached independently.
package config
