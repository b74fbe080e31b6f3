// Package config reads service configuration from the environment. main
// loads .env first via godotenv, so a local file and real env vars both
// work.
package config

import (
	"errors"
	"os"
	"time"
)

// Config holds everything the server needs to start.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	MongoURI      string
	MongoDB       string
}

// defaultSessionTTL matches the original 30-day cookie max-age.
const defaultSessionTTL = 30 * 24 * time.Hour

// Load builds a Config from the environment. DATABASE_URL and
// SESSION_SECRET are required; everything else has a default. MONGO_URI
// is optional; without it the image endpoints are simply not mounted.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    defaultSessionTTL,
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       getEnv("MONGO_DB", "eatsopinion"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("SESSION_TTL must be a duration like 720h")
		}
		cfg.SessionTTL = ttl
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
