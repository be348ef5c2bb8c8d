// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, catalog lookups, screens and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Catalog contains remote catalog lookup configuration
	Catalog CatalogConfig

	// Screens contains screen registry limits
	Screens ScreenConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `env:"PORT,default=8000"`

	// RateLimit is the number of requests allowed per client per window; 0 disables it
	RateLimit int `env:"RATE_LIMIT,default=100"`

	// RateWindow is the rate limit window
	RateWindow time.Duration `env:"RATE_WINDOW,default=1m"`

	// TrustProxy keys rate limiting on X-Forwarded-For and X-Real-IP; only
	// enable it behind a proxy that overwrites those headers
	TrustProxy bool `env:"TRUST_PROXY,default=false"`
}

// CatalogConfig holds catalog lookup configuration
type CatalogConfig struct {
	// BaseURL is the catalog endpoint
	BaseURL string `env:"CATALOG_BASE_URL,default=https://itunes.apple.com"`

	// Country is the storefront country code
	Country string `env:"CATALOG_COUNTRY,default=us"`

	// Limit is the page size requested per lookup
	Limit int `env:"CATALOG_LIMIT,default=50"`

	// Timeout bounds a single lookup request
	Timeout time.Duration `env:"CATALOG_TIMEOUT,default=15s"`

	// MaxAttempts is how many times a failing request is sent; 1 means no retry
	MaxAttempts int `env:"CATALOG_MAX_ATTEMPTS,default=1"`

	// RatePerMinute caps outbound lookups; 0 disables limiting
	RatePerMinute int `env:"CATALOG_RATE_PER_MINUTE,default=20"`

	// SearchTimeout bounds a whole search, including retries and time queued
	// behind the outbound rate limiter
	SearchTimeout time.Duration `env:"CATALOG_SEARCH_TIMEOUT,default=30s"`
}

// ScreenConfig holds screen registry limits
type ScreenConfig struct {
	// Max caps live screens; opening past it evicts the least recently used. 0 disables it
	Max int `env:"SCREENS_MAX,default=1000"`

	// IdleTTL discards screens unused for this long; 0 disables it
	IdleTTL time.Duration `env:"SCREEN_IDLE_TTL,default=30m"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `env:"LOG_LEVEL,default=info"`

	// Format is text or json
	Format string `env:"LOG_FORMAT,default=text"`

	// File sends logs to a rotating file when set
	File string `env:"LOG_FILE"`
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is read first when present; real environment
// variables win over it.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Server.RateLimit > 0 && c.Server.RateWindow <= 0 {
		return errors.New("rate window must be positive when rate limiting is enabled")
	}

	if !strings.HasPrefix(c.Catalog.BaseURL, "http://") && !strings.HasPrefix(c.Catalog.BaseURL, "https://") {
		return errors.New("catalog base URL must be an http(s) URL")
	}

	if c.Catalog.Limit < 1 || c.Catalog.Limit > 200 {
		return errors.New("catalog limit must be between 1 and 200")
	}

	if c.Catalog.Timeout <= 0 {
		return errors.New("catalog timeout must be positive")
	}

	if c.Catalog.MaxAttempts < 1 {
		return errors.New("catalog max attempts must be at least 1")
	}

	if c.Catalog.RatePerMinute < 0 {
		return errors.New("catalog rate cannot be negative")
	}

	if c.Catalog.SearchTimeout <= 0 {
		return errors.New("catalog search timeout must be positive")
	}

	if c.Screens.Max < 0 {
		return errors.New("screen cap cannot be negative")
	}

	if c.Screens.IdleTTL < 0 {
		return errors.New("screen idle TTL cannot be negative")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
