package platform

import (
	"time"

	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

// Config overrides what the host reports and controls how long a detection
// stays fresh.
type Config struct {
	Name    string        `env:"OS_NAME"`
	Version string        `env:"OS_VERSION"`
	Arch    string        `env:"OS_ARCH"`
	TTL     time.Duration `env:"OS_DETECT_TTL" envDefault:"5m"`
}

// Override returns the configured identity. It is only set when a name is.
func (c Config) Override() (osinfo.Identity, bool) {
	if c.Name == "" {
		return osinfo.Identity{}, false
	}
	return osinfo.Identity{Name: c.Name, Version: c.Version, Architecture: c.Arch}, true
}

// NewSourceFromConfig returns a StaticSource for a configured override and
// the default host chain otherwise.
func NewSourceFromConfig(cfg Config) osinfo.Source {
	if id, ok := cfg.Override(); ok {
		return Named("config", StaticSource(id))
	}
	return DefaultSource()
}
