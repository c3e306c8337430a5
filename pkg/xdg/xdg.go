// pkg/xdg/xdg.go

// Package xdg resolves per-user file locations under the XDG base
// directory variables, falling back to the conventional home paths.
package xdg

import (
	"os"
	"path/filepath"
)

// GetEnvOrDefault returns the value of envVar, or fallback when unset or empty.
func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

// ConfigPath is $XDG_CONFIG_HOME/app/file, default ~/.config/app/file.
func ConfigPath(app, file string) string {
	return filepath.Join(GetEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(home(), ".config")), app, file)
}

// StatePath is $XDG_STATE_HOME/app/file, default ~/.local/state/app/file.
func StatePath(app, file string) string {
	return filepath.Join(GetEnvOrDefault("XDG_STATE_HOME", filepath.Join(home(), ".local", "state")), app, file)
}

// EnsureDir creates the parent directory of path with perm.
func EnsureDir(path string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(path), perm)
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.TempDir()
}
