package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	Version = "0.0.1"

	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second
	DefaultDir            = ".kilo"
	LogFileName           = "kilo.log"
)

// Config holds the editor settings. There is no config file; every field has a
// default that an environment variable may override.
type Config struct {
	QuitTimes      int           // extra Ctrl-Q presses required while the buffer is dirty
	MessageTimeout time.Duration // how long a status message stays on the message line
	LogPath        string        // empty disables logging
}

// GetConfigDir returns ~/.kilo, or the current directory when the home
// directory cannot be determined.
func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, DefaultDir)
}

// Default returns the built-in settings without consulting the environment.
func Default() *Config {
	return &Config{
		QuitTimes:      DefaultQuitTimes,
		MessageTimeout: DefaultMessageTimeout,
		LogPath:        filepath.Join(GetConfigDir(), LogFileName),
	}
}

// Load returns the defaults overridden by KILO_QUIT_TIMES, KILO_MESSAGE_TIMEOUT
// and KILO_LOG. A malformed value is reported and the default kept.
func Load() (*Config, error) {
	cfg := Default()
	var firstErr error

	if v := os.Getenv("KILO_QUIT_TIMES"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			firstErr = fmt.Errorf("KILO_QUIT_TIMES: %w", err)
		case n < 0:
			firstErr = fmt.Errorf("KILO_QUIT_TIMES: must not be negative, got %d", n)
		default:
			cfg.QuitTimes = n
		}
	}
	if v := os.Getenv("KILO_MESSAGE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("KILO_MESSAGE_TIMEOUT: %w", err)
			}
		} else {
			cfg.MessageTimeout = d
		}
	}
	// Set but empty turns logging off.
	if v, ok := os.LookupEnv("KILO_LOG"); ok {
		cfg.LogPath = v
	}

	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0755); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return cfg, firstErr
}
