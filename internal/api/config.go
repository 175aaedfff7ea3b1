package api

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds client configuration for the scoring service.
type Config struct {
	// BaseURL is the service endpoint, e.g. "https://assess.example.com".
	// Always environment-supplied; never hardcoded.
	BaseURL string

	// Timeout is the per-request transport timeout. Default: 30s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with defaults for everything but BaseURL.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("RESILIQ_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("RESILIQ_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("RESILIQ_API_URL is required (or pass --api)")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("service URL %q must start with http:// or https://", c.BaseURL)
	}
	return nil
}
