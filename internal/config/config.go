package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultJWTSecret is the insecure fallback signing key. Deployments
// must override it via JWT_SECRET; main logs a warning when it is in use.
const DefaultJWTSecret = "super-secret-key"

type Config struct {
	// Database. A plain path means a local SQLite file; a
	// postgres:// or postgresql:// URL selects PostgreSQL.
	DatabaseURL string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Server
	Port        string
	CORSOrigins string

	// Logging
	LogRetentionDays int
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "users.db"),

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "1h")),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogRetentionDays: parsePositiveInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Hour
	}
	return d
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
