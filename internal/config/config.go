// Package config holds runtime settings for the QuickTask backend.
//
// Settings come from three layers, each overriding the last: built-in
// defaults, an optional YAML file (CONFIG_FILE, default config.yaml), and
// environment variables. DATABASE_URL is intentionally not here — the db
// package reads it directly at connect time.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Port              string        `yaml:"port"`
	SessionCookieName string        `yaml:"session_cookie_name"`
	SessionTTL        time.Duration `yaml:"session_ttl"`
	SecureCookies     bool          `yaml:"secure_cookies"`
	AllowedOrigins    []string      `yaml:"allowed_origins"`
}

func defaults() Config {
	return Config{
		Port:              "5050",
		SessionCookieName: "session_id",
		SessionTTL:        30 * 24 * time.Hour,
		SecureCookies:     false,
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
	}
}

// Load builds the effective configuration. A missing YAML file is fine;
// a malformed one is not.
func Load() Config {
	cfg := defaults()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatal("Failed to parse config file: ", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatal("SECURE_COOKIES must be a boolean, got: ", v)
		}
		cfg.SecureCookies = secure
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			log.Fatal("SESSION_TTL must be a duration (e.g. 720h), got: ", v)
		}
		cfg.SessionTTL = ttl
	}

	return cfg
}
