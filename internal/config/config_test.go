package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadFailsWithoutSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingSecret) {
		t.Errorf("Load() error = %v, want ErrMissingSecret", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("ERROR_LOG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr got = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.DatabasePath != "./tasks.db" {
		t.Errorf("DatabasePath got = %q, want %q", cfg.DatabasePath, "./tasks.db")
	}
	if cfg.ErrorLogPath != "./log.txt" {
		t.Errorf("ErrorLogPath got = %q, want %q", cfg.ErrorLogPath, "./log.txt")
	}
	if cfg.TokenLifetime != 30*time.Minute {
		t.Errorf("TokenLifetime got = %v, want 30m", cfg.TokenLifetime)
	}
	if string(cfg.TokenSecret) != "s3cret" {
		t.Errorf("TokenSecret got = %q", cfg.TokenSecret)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ADDR", ":9090")
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("ERROR_LOG_PATH", "/tmp/errors.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":9090" || cfg.DatabasePath != "/tmp/other.db" || cfg.ErrorLogPath != "/tmp/errors.log" {
		t.Errorf("Load() did not honor overrides: %+v", cfg)
	}
}
