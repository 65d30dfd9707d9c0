// Package config provides centralized configuration for NotePal runtime values.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds runtime configuration values that would otherwise
// be hardcoded as magic values throughout the codebase.
type RuntimeConfig struct {
	// Daemon configuration
	Daemon DaemonConfig

	// HTTP client configuration
	HTTP HTTPConfig

	// Storage configuration
	Storage StorageConfig

	// Offline shell configuration
	Offline OfflineConfig

	// OCR configuration
	OCR OCRConfig
}

// DaemonConfig holds daemon-related configuration.
type DaemonConfig struct {
	// StartupWait is the time to wait for the daemon to start before checking status.
	// Default: 500ms
	StartupWait time.Duration

	// KillTimeout is the timeout for graceful shutdown before force kill.
	// Default: 5s
	KillTimeout time.Duration
}

// HTTPConfig holds HTTP client configuration.
type HTTPConfig struct {
	// Timeout is the default HTTP request timeout.
	// Default: 30s
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts.
	// Default: 3
	MaxRetries int
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// MinFreeSpace is the minimum free space required for write operations.
	// Default: 10MB (10 * 1024 * 1024 bytes)
	MinFreeSpace uint64

	// MinFreeSpaceWarning is the threshold for warning about low disk space.
	// Default: 50MB (50 * 1024 * 1024 bytes)
	MinFreeSpaceWarning uint64
}

// OfflineConfig holds shell cache and serve configuration.
type OfflineConfig struct {
	// Origin is the upstream the shell assets are fetched from.
	// Default: https://notepal.app
	Origin string

	// ListenAddr is the address `notepal serve` binds to.
	// Default: 127.0.0.1:8943
	ListenAddr string
}

// OCRConfig holds OCR service configuration.
type OCRConfig struct {
	// Endpoint is the OCR service URL. Empty disables OCR commands.
	Endpoint string
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Daemon: DaemonConfig{
			StartupWait: 500 * time.Millisecond,
			KillTimeout: 5 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 3,
		},
		Storage: StorageConfig{
			MinFreeSpace:        10 * 1024 * 1024, // 10MB
			MinFreeSpaceWarning: 50 * 1024 * 1024, // 50MB
		},
		Offline: OfflineConfig{
			Origin:     "https://notepal.app",
			ListenAddr: "127.0.0.1:8943",
		},
		OCR: OCRConfig{},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Daemon configuration
	if v := os.Getenv("NOTEPAL_DAEMON_STARTUP_WAIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Daemon.StartupWait = d
		}
	}
	if v := os.Getenv("NOTEPAL_DAEMON_KILL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Daemon.KillTimeout = d
		}
	}

	// HTTP configuration
	if v := os.Getenv("NOTEPAL_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTP.Timeout = d
		}
	}
	if v := os.Getenv("NOTEPAL_HTTP_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.HTTP.MaxRetries = n
		}
	}

	// Storage configuration
	if v := os.Getenv("NOTEPAL_MIN_FREE_SPACE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpace = n
		}
	}
	if v := os.Getenv("NOTEPAL_MIN_FREE_SPACE_WARNING"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpaceWarning = n
		}
	}

	// Offline configuration
	if v := os.Getenv("NOTEPAL_ORIGIN"); v != "" {
		c.Offline.Origin = v
	}
	if v := os.Getenv("NOTEPAL_LISTEN_ADDR"); v != "" {
		c.Offline.ListenAddr = v
	}

	// OCR configuration
	if v := os.Getenv("NOTEPAL_OCR_ENDPOINT"); v != "" {
		c.OCR.Endpoint = v
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
