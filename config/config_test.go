package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("KILO_QUIT_TIMES", "")
	t.Setenv("KILO_MESSAGE_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.QuitTimes != DefaultQuitTimes {
		t.Errorf("expected QuitTimes %d, got %d", DefaultQuitTimes, cfg.QuitTimes)
	}
	if cfg.MessageTimeout != DefaultMessageTimeout {
		t.Errorf("expected MessageTimeout %v, got %v", DefaultMessageTimeout, cfg.MessageTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "edit.log")
	t.Setenv("KILO_QUIT_TIMES", "1")
	t.Setenv("KILO_MESSAGE_TIMEOUT", "250ms")
	t.Setenv("KILO_LOG", logPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.QuitTimes != 1 {
		t.Errorf("expected QuitTimes 1, got %d", cfg.QuitTimes)
	}
	if cfg.MessageTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.MessageTimeout)
	}
	if cfg.LogPath != logPath {
		t.Errorf("expected LogPath %q, got %q", logPath, cfg.LogPath)
	}
}

func TestLoadEmptyLogDisablesLogging(t *testing.T) {
	t.Setenv("KILO_LOG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogPath != "" {
		t.Errorf("expected logging disabled, got %q", cfg.LogPath)
	}
}

func TestLoadBadValuesKeepDefaults(t *testing.T) {
	t.Setenv("KILO_LOG", "")
	t.Setenv("KILO_QUIT_TIMES", "many")
	t.Setenv("KILO_MESSAGE_TIMEOUT", "soon")

	cfg, err := Load()
	if err == nil {
		t.Fatal("expected an error for malformed values")
	}
	if cfg.QuitTimes != DefaultQuitTimes {
		t.Errorf("expected default QuitTimes, got %d", cfg.QuitTimes)
	}
	if cfg.MessageTimeout != DefaultMessageTimeout {
		t.Errorf("expected default MessageTimeout, got %v", cfg.MessageTimeout)
	}
}
