// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the application.
type Config struct {
	// DBPath is the SQLite file location.
	DBPath string
	// NotifyTick is the polling interval of the notification loop.
	NotifyTick time.Duration
	// NotifyEnabled gates the background notification loop entirely.
	NotifyEnabled bool
	// LogPath receives structured service and notifier logs. Empty
	// disables file logging.
	LogPath string
}

// DefaultConfig returns a Config with sensible defaults. The database
// lives under the user's home directory.
func DefaultConfig() Config {
	cfg := Config{
		DBPath:        "agenda.db",
		NotifyTick:    60 * time.Second,
		NotifyEnabled: true,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".agenda", "agenda.db")
	}
	return cfg
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("AGENDA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("AGENDA_NOTIFY"); v != "" {
		cfg.NotifyEnabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("AGENDA_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.NotifyTick = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("AGENDA_LOG"); v != "" {
		cfg.LogPath = v
	}

	return cfg
}
