// Package config holds the process-wide configuration, read once at startup
// from environment variables and passed explicitly into the server and
// pipeline. The value is never mutated after Load returns.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultMaxImageSize is the byte ceiling applied when MAX_IMAGE_SIZE is unset.
const DefaultMaxImageSize = 10 * 1024 * 1024

// Config is the immutable process configuration.
type Config struct {
	// MaxImageSize is the maximum permitted byte size for an acquired
	// image buffer.
	MaxImageSize int64 `env:"MAX_IMAGE_SIZE" envDefault:"10485760"`

	// AllowedDomains restricts URL fetches to hostnames equal to or ending
	// with one of these entries. Empty means unrestricted.
	AllowedDomains []string `env:"ALLOWED_DOMAINS" envSeparator:","`

	// LogLevel enables debug logging when set to "debug".
	LogLevel string `env:"IMAGE_EXTRACT_LOG_LEVEL"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.MaxImageSize <= 0 {
		return nil, fmt.Errorf("MAX_IMAGE_SIZE must be positive, got %d", cfg.MaxImageSize)
	}

	// Drop empty entries so ALLOWED_DOMAINS="" and stray commas mean
	// unrestricted rather than an unmatchable list.
	domains := cfg.AllowedDomains[:0]
	for _, d := range cfg.AllowedDomains {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, d)
		}
	}
	cfg.AllowedDomains = domains

	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}
