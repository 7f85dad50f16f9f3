package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env  string
	Port int

	MongoURL string
	MongoDB  string

	JWTSecret string
	TokenTTL  time.Duration

	// exact-match origin allow-list, comma separated in the env
	AllowedOrigins []string

	// optional bootstrap admin, seeded at startup when both are set
	AdminEmail    string
	AdminPassword string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	OtelEnabled  bool
	OtelEndpoint string

	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load reads configuration from the environment. It only validates the
// pieces the process cannot run without; everything else has a fallback.
func Load() (Config, error) {
	cfg := Config{
		Env:             getEnv("APP_ENV", "dev"),
		Port:            getEnvInt("PORT", 8080),
		MongoURL:        os.Getenv("MONGO_URL"),
		MongoDB:         getEnv("MONGO_DB", "real-estate"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTL:        24 * time.Hour,
		AllowedOrigins:  splitList(getEnv("CORS_ORIGINS", "")),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		OtelEnabled:     getEnv("OTEL_ENABLED", "false") == "true",
		OtelEndpoint:    getEnv("OTEL_EXPORTER_ENDPOINT", ""),
		LoginRateLimit:  getEnvInt("RATE_LIMIT", 10),
		LoginRateWindow: time.Duration(getEnvInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}

	if cfg.MongoURL == "" {
		return Config{}, fmt.Errorf("MONGO_URL is not set")
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "prod" {
			return Config{}, fmt.Errorf("JWT_SECRET is required in prod")
		}
		cfg.JWTSecret = "dev-only-secret"
	}

	return cfg, nil
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			return fallback
		}

		return num
	}

	return fallback
}
