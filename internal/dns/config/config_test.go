package config

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/knadh/koanf/v2"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DNSWIRE_ENV")
	os.Unsetenv("DNSWIRE_LOG_LEVEL")
	os.Unsetenv("DNSWIRE_FORMAT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %q", cfg.LogLevel)
	}
	if cfg.Format != "hex" {
		t.Errorf("expected Format=hex, got %q", cfg.Format)
	}
}

func TestLoad_ValidOverrides(t *testing.T) {
	t.Setenv("DNSWIRE_ENV", "dev")
	t.Setenv("DNSWIRE_LOG_LEVEL", "debug")
	t.Setenv("DNSWIRE_FORMAT", "raw")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected Env=dev, got %q", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %q", cfg.LogLevel)
	}
	if cfg.Format != "raw" {
		t.Errorf("expected Format=raw, got %q", cfg.Format)
	}
}

func TestLoad_WhenKoanfLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error {
		return errors.New("mocked error")
	}
	defer func() { envLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading env, got nil")
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("DNSWIRE_ENV", "staging")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid DNSWIRE_ENV, got nil")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("DNSWIRE_LOG_LEVEL", "trace")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid DNSWIRE_LOG_LEVEL, got nil")
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	t.Setenv("DNSWIRE_FORMAT", "base64")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid DNSWIRE_FORMAT, got nil")
	}
}
