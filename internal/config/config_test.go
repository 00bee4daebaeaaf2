package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("SESSION_SECRET", "hunter2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30, cfg.RequestsPerMinute)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "hunter2", cfg.TokenSecret)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoadFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("SESSION_SECRET", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
port: "9090"
model: llama3-8b-8192
request_timeout_seconds: 10
requests_per_minute: 0
session_ttl_minutes: 5
token_secret: file-secret
token_ttl_hours: 1
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "llama3-8b-8192", cfg.Model)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.RequestsPerMinute)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "file-secret", cfg.TokenSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("SESSION_SECRET", "env-secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\ntoken_secret: file-secret\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "env-secret", cfg.TokenSecret)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("SESSION_SECRET", "hunter2")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
