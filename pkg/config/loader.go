package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	files       []string
	explicit    bool
	prefix      string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles loads the given files instead of ".env". Unlike the default
// file, a missing explicit file is an error. Variables already present in the
// process environment are never overwritten.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		if len(files) > 0 {
			o.files = files
			o.explicit = true
		}
	}
}

// WithPrefix prepends prefix to every variable name, so that `env:"HTTP_ADDR"`
// reads OSDETECT_HTTP_ADDR with prefix "OSDETECT_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process
// environment. No env file is read.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load fills v from the environment according to its `env` and `envDefault`
// struct tags, after loading a .env file if one exists.
//
// Example:
//
//	type Config struct {
//		Addr     string        `env:"HTTP_ADDR" envDefault:":8080"`
//		CacheTTL time.Duration `env:"OS_DETECT_TTL" envDefault:"5m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	if o.environment == nil {
		if err := godotenv.Load(o.files...); err != nil {
			if o.explicit || !errors.Is(err, fs.ErrNotExist) {
				return errors.Join(ErrLoadingEnvFile, err)
			}
		}
	}

	parseOpts := env.Options{Prefix: o.prefix, Environment: o.environment}
	if err := env.ParseWithOptions(v, parseOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
