package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string
	Env  string

	// AuthSecret enables bearer-token auth on the API when non-empty.
	AuthSecret string
	TokenTTL   time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	MinPasswordLength     int
	MaxPasswordLength     int
	DefaultPasswordLength int
}

func Load() Config {
	cfg := Config{
		Port:                  getEnv("PORT", "8080"),
		Env:                   getEnv("ENV", "development"),
		AuthSecret:            getEnv("AUTH_SECRET", ""),
		TokenTTL:              24 * time.Hour,
		RateLimitRPS:          getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:        getEnvInt("RATE_LIMIT_BURST", 10),
		MinPasswordLength:     getEnvInt("MIN_PASSWORD_LENGTH", 4),
		MaxPasswordLength:     getEnvInt("MAX_PASSWORD_LENGTH", 80),
		DefaultPasswordLength: getEnvInt("DEFAULT_PASSWORD_LENGTH", 12),
	}

	if cfg.MinPasswordLength > cfg.MaxPasswordLength {
		slog.Error("MIN_PASSWORD_LENGTH must not exceed MAX_PASSWORD_LENGTH",
			"min", cfg.MinPasswordLength, "max", cfg.MaxPasswordLength)
		os.Exit(1)
	}

	if cfg.Env == "production" && cfg.AuthSecret == "" {
		slog.Warn("AUTH_SECRET not set — API runs unauthenticated in production")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		slog.Warn("invalid number in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}
