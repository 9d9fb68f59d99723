// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// Load reads a `.env` file when one is present (existing variables win), then
// parses the environment into a struct using its `env` and `envDefault` tags.
//
// # Usage
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Options select other env files (WithEnvFiles), a variable prefix
// (WithPrefix) or a fixed variable set for tests (WithEnvironment).
//
// # Error Handling
//
// Load returns ErrNilPointer for a nil target, ErrLoadingEnvFile when an
// explicitly requested file cannot be read and ErrParsingConfig, joined with
// the parser's error, when a value is missing or malformed. MustLoad panics
// instead.
package config
