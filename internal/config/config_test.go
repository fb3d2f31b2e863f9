package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_RATE_MAX", "")
	t.Setenv("AUTH_RATE_WINDOW", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("default port = %s, want 8080", cfg.Port)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("default CORS origin = %s, want *", cfg.CORSOrigin)
	}
	if cfg.AuthRateMax != 10 {
		t.Errorf("default auth rate max = %d, want 10", cfg.AuthRateMax)
	}
	if cfg.AuthRateWindow != time.Minute {
		t.Errorf("default auth rate window = %s, want 1m", cfg.AuthRateWindow)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/budget")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AUTH_RATE_MAX", "25")
	t.Setenv("AUTH_RATE_WINDOW", "30s")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("port = %s, want 9090", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/budget" {
		t.Errorf("database url = %s", cfg.DatabaseURL)
	}
	if cfg.AuthRateMax != 25 {
		t.Errorf("auth rate max = %d, want 25", cfg.AuthRateMax)
	}
	if cfg.AuthRateWindow != 30*time.Second {
		t.Errorf("auth rate window = %s, want 30s", cfg.AuthRateWindow)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Port:        "8080",
		DatabaseURL: "postgres://localhost/budget",
		JWTSecret:   "secret",
		AuthRateMax: 10,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "nope" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"zero rate max", func(c *Config) { c.AuthRateMax = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := *valid
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
