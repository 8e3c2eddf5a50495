package config

import (
	"os"
	"time"
)

// Server captures process-level configuration for the intake service.
type Server struct {
	Addr            string
	JWTSigningKey   string
	RegistrationURL string // base URL of the remote registration/matching API
	GeocodeURL      string // base URL of the address search endpoint
	ExportDir       string // where CSV snapshots are written
	RedisURL        string // optional; empty keeps auth sessions in memory
	OutboundTimeout time.Duration
	LogLevel        string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:            envOr("INTAKE_ADDR", ":8080"),
		JWTSigningKey:   envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		RegistrationURL: envOr("REGISTRATION_API_URL", "http://127.0.0.1:8000/api"),
		GeocodeURL:      envOr("GEOCODE_API_URL", "https://nominatim.openstreetmap.org"),
		ExportDir:       envOr("EXPORT_DIR", "."),
		RedisURL:        os.Getenv("REDIS_URL"),
		OutboundTimeout: 10 * time.Second,
		LogLevel:        envOr("LOG_LEVEL", "info"),
	}
	if raw := os.Getenv("OUTBOUND_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.OutboundTimeout = d
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
