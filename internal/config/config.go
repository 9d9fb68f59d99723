// Package config defines the osdetect application configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/osdetect/pkg/config"
	"github.com/dmitrymomot/osdetect/pkg/httpserver"
	"github.com/dmitrymomot/osdetect/pkg/logger"
	"github.com/dmitrymomot/osdetect/pkg/platform"
)

// ServiceName is attached to every log record.
const ServiceName = "osdetect"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete application configuration, read from the
// environment and an optional .env file.
type Config struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// LogLevel and LogFormat override the presets chosen by Env when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// CacheSize bounds the classification cache of the HTTP API.
	CacheSize int `env:"CLASSIFY_CACHE_SIZE" envDefault:"1024"`

	HTTP     httpserver.Config
	Platform platform.Config
}

// Load reads the configuration and validates it.
func Load(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express.
func (c Config) Validate() error {
	if c.CacheSize <= 0 {
		return fmt.Errorf("%w: CLASSIFY_CACHE_SIZE must be positive, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if c.Platform.TTL < 0 {
		return fmt.Errorf("%w: OS_DETECT_TTL must not be negative", ErrInvalidConfig)
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	if c.LogFormat != "" {
		if _, err := logger.ParseFormat(c.LogFormat); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	return nil
}

// LoggerOptions returns the logger options for this configuration: the
// environment preset first, then explicit level and format overrides.
func (c Config) LoggerOptions(out io.Writer, extra ...logger.Option) []logger.Option {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, ServiceName),
		logger.WithOutput(out),
	}
	if c.LogLevel != "" {
		if lvl, err := logger.ParseLevel(c.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(lvl))
		}
	}
	if c.LogFormat != "" {
		if f, err := logger.ParseFormat(c.LogFormat); err == nil {
			opts = append(opts, logger.WithFormat(f))
		}
	}
	return append(opts, extra...)
}

// Logger builds the application logger writing to out.
func (c Config) Logger(out io.Writer, extra ...logger.Option) *slog.Logger {
	return logger.New(c.LoggerOptions(out, extra...)...)
}
