package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	dotenvErr  error
	cache      sync.Map // reflect.Type -> T
)

// loadDotenv reads .env once per process. A missing file is fine and variables
// already set in the environment win.
func loadDotenv() error {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotenvErr = fmt.Errorf("%w: .env: %w", ErrParse, err)
		}
	})
	return dotenvErr
}

// Load fills cfg from environment variables using `env` struct tags.
// Every type is parsed once; later calls copy the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	typ := reflect.TypeFor[T]()
	if v, ok := cache.Load(typ); ok {
		*cfg = v.(T)
		return nil
	}

	if err := loadDotenv(); err != nil {
		return err
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	v, _ := cache.LoadOrStore(typ, parsed)
	*cfg = v.(T)
	return nil
}

// MustLoad is Load that panics on error, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
