package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)

	assert.Equal(t, filepath.Join(cfg.ConfigDir, "token"), cfg.TokenPath)
	assert.Equal(t, filepath.Join(cfg.ConfigDir, "notice"), cfg.NoticePath)
	assert.Equal(t, filepath.Join(cfg.ConfigDir, "client.log"), cfg.LogPath)
	assert.DirExists(t, cfg.ConfigDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SERVER_URL", "https://vault.example.com")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "10")
	t.Setenv("SEARCH_DEBOUNCE_MS", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "https://vault.example.com", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
}

func TestLoad_RejectsBadServerURL(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("SERVER_URL", "ftp://vault.example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_URL")
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT_SECONDS")
}
