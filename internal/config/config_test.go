package config_test

import (
	"testing"

	"github.com/yuvrajghadi/thakkar-backend/internal/config"
)

func TestLoadRequiresMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "")

	_, err := config.Load()

	if err == nil {
		t.Fatal("Load should fail without MONGO_URL")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := config.Load()

	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "dev" || cfg.Port != 8080 {
		t.Errorf("env/port = %q/%d", cfg.Env, cfg.Port)
	}

	if cfg.MongoDB != "real-estate" {
		t.Errorf("mongo db = %q", cfg.MongoDB)
	}

	if cfg.TokenTTL.Hours() != 24 {
		t.Errorf("token ttl = %v", cfg.TokenTTL)
	}

	if cfg.JWTSecret == "" {
		t.Error("dev fallback secret missing")
	}

	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadRequiresSecretInProd(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()

	if err == nil {
		t.Fatal("Load should fail in prod without JWT_SECRET")
	}
}

func TestLoadSplitsOrigins(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("CORS_ORIGINS", "https://example.com, https://admin.example.com ,")

	cfg, err := config.Load()

	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"https://example.com", "https://admin.example.com"}

	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}

	for i, o := range want {
		if cfg.AllowedOrigins[i] != o {
			t.Errorf("origin %d = %q, want %q", i, cfg.AllowedOrigins[i], o)
		}
	}
}
