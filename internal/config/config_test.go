// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import "testing"

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"GATEWAY_URL", "GATEWAY_ANON_KEY",
		"PREFER_FALLBACK", "DATA_DIR", "SESSION_SIGNING_KEY", "SITE_LANGUAGE",
	}
	// envOrDefault treats empty the same as unset, so clearing to ""
	// is enough to exercise the defaults.
	for _, key := range envVars {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("GatewayURL", cfg.GatewayURL, "")
	check("GatewayAnonKey", cfg.GatewayAnonKey, "")
	check("Language", cfg.Language, "zh")

	if !cfg.PreferFallback {
		t.Error("PreferFallback should default to true")
	}
	if cfg.DataDir == "" {
		t.Error("DataDir should never be empty")
	}
	if !cfg.IsDev() {
		t.Error("IsDev() should be true with default env")
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Addr())
	}
}

// TestGatewayConfigured covers the unconfigured-detection rules: missing
// values and the documented placeholders both disable the gateway.
func TestGatewayConfigured(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
		want bool
	}{
		{"both set", "https://abc.supabase.co", "real-key", true},
		{"missing url", "", "real-key", false},
		{"missing key", "https://abc.supabase.co", "", false},
		{"both missing", "", "", false},
		{"placeholder url", "https://your-project.supabase.co", "real-key", false},
		{"placeholder key", "https://abc.supabase.co", "your-anon-key-here", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{GatewayURL: tt.url, GatewayAnonKey: tt.key}
			if got := cfg.GatewayConfigured(); got != tt.want {
				t.Errorf("GatewayConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_PreferFallbackParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"nonsense", true}, // unparsable falls back to the default
		{"", true},
	}

	for _, tt := range tests {
		t.Setenv("PREFER_FALLBACK", tt.value)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() with PREFER_FALLBACK=%q: %v", tt.value, err)
		}
		if cfg.PreferFallback != tt.want {
			t.Errorf("PREFER_FALLBACK=%q: PreferFallback = %v, want %v", tt.value, cfg.PreferFallback, tt.want)
		}
	}
}
