// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Placeholder credential values shipped in .env.example. When either is
// still in place the gateway is treated as unconfigured.
const (
	placeholderURL = "https://your-project.supabase.co"
	placeholderKey = "your-anon-key-here"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Remote data gateway (hosted backend's table API)
	GatewayURL     string
	GatewayAnonKey string

	// Fetch precedence for categories/tags: when true the in-memory
	// fallback dataset is tried before the remote gateway. Defaults to
	// true, matching the historical behavior.
	PreferFallback bool

	// Local persistence directory (session token, principal, language).
	DataDir string

	// Key used to sign session tokens.
	SessionSigningKey string

	// Default UI language ("zh" or "en") when none is persisted.
	Language string

	// Origin allowed to call the API from a browser. Empty means any.
	AllowedOrigin string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		GatewayURL:     os.Getenv("GATEWAY_URL"),
		GatewayAnonKey: os.Getenv("GATEWAY_ANON_KEY"),

		PreferFallback: envBool("PREFER_FALLBACK", true),

		DataDir:           envOrDefault("DATA_DIR", defaultDataDir()),
		SessionSigningKey: envOrDefault("SESSION_SIGNING_KEY", "inkwell-dev-signing-key"),
		Language:          envOrDefault("SITE_LANGUAGE", "zh"),
		AllowedOrigin:     os.Getenv("ALLOWED_ORIGIN"),
	}

	return cfg, nil
}

// GatewayConfigured reports whether usable gateway credentials are present.
// Missing values and the well-known placeholders both count as unconfigured;
// in that state every gateway-backed operation fails fast instead of
// attempting a network call.
func (c *Config) GatewayConfigured() bool {
	if c.GatewayURL == "" || c.GatewayAnonKey == "" {
		return false
	}
	if c.GatewayURL == placeholderURL || c.GatewayAnonKey == placeholderKey {
		return false
	}
	return true
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// defaultDataDir places local persistence under the user config dir,
// falling back to a hidden directory in the working directory.
func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "inkwell")
	}
	return ".inkwell"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envBool reads a boolean environment variable, returning a fallback if
// unset or unparsable.
func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
