package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, env := range envKeys {
		t.Setenv(env, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.ViaCEP.Timeout != 10*time.Second {
		t.Errorf("viacep timeout = %s, want 10s", cfg.ViaCEP.Timeout)
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be disabled without a secret")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", " SQLite ")
	t.Setenv("DATABASE_PATH", "/tmp/agrodog.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("VIA_CEP_BASE_URL", "http://localhost:9999/")
	t.Setenv("VIACEP_TIMEOUT", "2s")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("expected production environment")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Database.Path != "/tmp/agrodog.db" {
		t.Errorf("path = %q", cfg.Database.Path)
	}
	if cfg.Database.MaxOpenConns != 3 {
		t.Errorf("max open conns = %d, want 3", cfg.Database.MaxOpenConns)
	}
	if cfg.ViaCEP.BaseURL != "http://localhost:9999" {
		t.Errorf("base url = %q", cfg.ViaCEP.BaseURL)
	}
	if cfg.ViaCEP.Timeout != 2*time.Second {
		t.Errorf("timeout = %s, want 2s", cfg.ViaCEP.Timeout)
	}
	if !cfg.AuthEnabled() {
		t.Error("auth should be enabled when a secret is set")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("VIACEP_TIMEOUT", "10s")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}
