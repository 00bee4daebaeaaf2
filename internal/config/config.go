// Package config loads server configuration from an optional YAML file with
// environment-variable overrides. The API key is only ever read from the
// environment, never from the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds resolved server settings.
type Config struct {
	Port string

	// Model and BaseURL override the chat-completion defaults.
	Model   string
	BaseURL string

	// RequestTimeout bounds each upstream completion call.
	RequestTimeout time.Duration

	// RequestsPerMinute bounds completion calls across all sessions.
	// Zero disables limiting.
	RequestsPerMinute int

	// SessionTTL reaps sessions idle longer than this.
	SessionTTL time.Duration

	// TokenSecret signs session tokens. Overridden by SESSION_SECRET.
	TokenSecret string
	TokenTTL    time.Duration
}

// fileConfig is the YAML schema. Durations are plain integers so the file
// stays obvious; zero values fall back to defaults.
type fileConfig struct {
	Port                  string `yaml:"port"`
	Model                 string `yaml:"model"`
	BaseURL               string `yaml:"base_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	RequestsPerMinute     *int   `yaml:"requests_per_minute"`
	SessionTTLMinutes     int    `yaml:"session_ttl_minutes"`
	TokenSecret           string `yaml:"token_secret"`
	TokenTTLHours         int    `yaml:"token_ttl_hours"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:              "8080",
		RequestTimeout:    30 * time.Second,
		RequestsPerMinute: 30,
		SessionTTL:        time.Hour,
		TokenTTL:          24 * time.Hour,
	}
}

// Load reads configuration from path (if non-empty) and applies environment
// overrides. A missing file at an explicitly given path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.apply(fc)
	}

	cfg.applyEnv()

	if cfg.TokenSecret == "" {
		return cfg, fmt.Errorf("session token secret required (set SESSION_SECRET)")
	}

	return cfg, nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.Model != "" {
		c.Model = fc.Model
	}
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.RequestTimeoutSeconds > 0 {
		c.RequestTimeout = time.Duration(fc.RequestTimeoutSeconds) * time.Second
	}
	if fc.RequestsPerMinute != nil {
		c.RequestsPerMinute = *fc.RequestsPerMinute
	}
	if fc.SessionTTLMinutes > 0 {
		c.SessionTTL = time.Duration(fc.SessionTTLMinutes) * time.Minute
	}
	if fc.TokenSecret != "" {
		c.TokenSecret = fc.TokenSecret
	}
	if fc.TokenTTLHours > 0 {
		c.TokenTTL = time.Duration(fc.TokenTTLHours) * time.Hour
	}
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.Model = getEnv("GROQ_MODEL", c.Model)
	c.TokenSecret = getEnv("SESSION_SECRET", c.TokenSecret)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
