package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.Daemon.StartupWait)
	assert.Equal(t, 5*time.Second, cfg.Daemon.KillTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
	assert.Equal(t, uint64(10*1024*1024), cfg.Storage.MinFreeSpace)
	assert.Equal(t, "https://notepal.app", cfg.Offline.Origin)
	assert.Equal(t, "127.0.0.1:8943", cfg.Offline.ListenAddr)
	assert.Empty(t, cfg.OCR.Endpoint)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NOTEPAL_DAEMON_STARTUP_WAIT", "2s")
	t.Setenv("NOTEPAL_HTTP_MAX_RETRIES", "5")
	t.Setenv("NOTEPAL_ORIGIN", "https://notes.example.com")
	t.Setenv("NOTEPAL_OCR_ENDPOINT", "https://ocr.example.com/recognize")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, 2*time.Second, cfg.Daemon.StartupWait)
	assert.Equal(t, 5, cfg.HTTP.MaxRetries)
	assert.Equal(t, "https://notes.example.com", cfg.Offline.Origin)
	assert.Equal(t, "https://ocr.example.com/recognize", cfg.OCR.Endpoint)
}

func TestEnvOverridesIgnoreInvalid(t *testing.T) {
	t.Setenv("NOTEPAL_HTTP_TIMEOUT", "not-a-duration")
	t.Setenv("NOTEPAL_HTTP_MAX_RETRIES", "-1")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
}

func TestReset(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Offline.Origin = "https://changed.example.com"
	cfg.HTTP.MaxRetries = 99

	cfg.Reset()

	assert.Equal(t, "https://notepal.app", cfg.Offline.Origin)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
}
