package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "")
	t.Setenv("SECURE_COOKIES", "")
	t.Setenv("SESSION_TTL", "")

	cfg := Load()

	if cfg.Port != "5050" {
		t.Errorf("default port: got %q", cfg.Port)
	}
	if cfg.SessionCookieName != "session_id" {
		t.Errorf("default cookie name: got %q", cfg.SessionCookieName)
	}
	if cfg.SessionTTL != 30*24*time.Hour {
		t.Errorf("default session TTL: got %v", cfg.SessionTTL)
	}
	if cfg.SecureCookies {
		t.Error("secure cookies should default off for local dev")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "port: \"8080\"\nsession_cookie_name: qt_session\nsession_ttl: 24h\nallowed_origins:\n  - https://app.quicktask.dev\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "")
	t.Setenv("SECURE_COOKIES", "")
	t.Setenv("SESSION_TTL", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("yaml port: got %q", cfg.Port)
	}
	if cfg.SessionCookieName != "qt_session" {
		t.Errorf("yaml cookie name: got %q", cfg.SessionCookieName)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("yaml session TTL: got %v", cfg.SessionTTL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://app.quicktask.dev" {
		t.Errorf("yaml origins: got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"8080\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9090")
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("SESSION_TTL", "720h")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("env should beat file: got %q", cfg.Port)
	}
	if !cfg.SecureCookies {
		t.Error("SECURE_COOKIES=true should enable secure cookies")
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Errorf("SESSION_TTL override: got %v", cfg.SessionTTL)
	}
}
