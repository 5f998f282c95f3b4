package util

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "hyperfocus"

// GetXDGDataDir returns the XDG data directory for hyperfocus.
// It respects XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/hyperfocus
func GetXDGDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigDir returns the XDG config directory for hyperfocus.
// It respects XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/hyperfocus
func GetXDGConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

func xdgDir(env string, fallback ...string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	parts := append([]string{homeDir}, fallback...)
	return filepath.Join(append(parts, appName)...), nil
}
