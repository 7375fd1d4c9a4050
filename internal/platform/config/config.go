// Package config loads process-wide configuration once at startup. The result
// is immutable; secrets are passed explicitly into the token services rather
// than read from ambient globals.
package config

import (
	"os"
	"time"
)

// Server captures the full service configuration.
type Server struct {
	Addr        string
	DatabaseURL string
	RedisURL    string

	// Distinct signing domains: an admin token can never validate as a user
	// token and vice versa.
	AdminJWTSecret string
	UserJWTSecret  string

	TokenTTL        time.Duration
	CatalogCacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean.
func FromEnv() Server {
	addr := os.Getenv("COURSEBAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	adminSecret := os.Getenv("JWT_ADMIN_SECRET")
	if adminSecret == "" {
		// Development fallback - must be overridden in production.
		adminSecret = "dev-admin-secret-change-in-production"
	}
	userSecret := os.Getenv("JWT_USER_SECRET")
	if userSecret == "" {
		userSecret = "dev-user-secret-change-in-production"
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		AdminJWTSecret:  adminSecret,
		UserJWTSecret:   userSecret,
		TokenTTL:        durationFromEnv("TOKEN_TTL", time.Hour),
		CatalogCacheTTL: durationFromEnv("CATALOG_CACHE_TTL", 30*time.Second),
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
