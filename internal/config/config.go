package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, sourced from the environment.
type Config struct {
	// HTTP server
	Port       string
	CORSOrigin string
	Env        string

	// Database
	DatabaseURL string

	// Auth
	JWTSecret string

	// Rate limiting for auth endpoints
	AuthRateMax    int
	AuthRateWindow time.Duration
}

// Load reads configuration from the environment. A local .env file is
// loaded first when present so development setups match production wiring.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		Env:        getEnv("ENV", "dev"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		AuthRateMax:    getEnvInt("AUTH_RATE_MAX", 10),
		AuthRateWindow: getEnvDuration("AUTH_RATE_WINDOW", time.Minute),
	}
}

// Validate returns an error describing every invalid or missing setting.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		problems = append(problems, "DATABASE_URL is not set")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		problems = append(problems, "JWT_SECRET is not set")
	}
	if c.AuthRateMax < 1 {
		problems = append(problems, "AUTH_RATE_MAX must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
