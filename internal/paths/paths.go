// Package paths resolves where Stockroom keeps its config.yaml and its
// inventory file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// appName is the directory created under the platform config root.
const appName = "stockroom"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "STOCKROOM_CONFIG_DIR"
	EnvDataDir   = "STOCKROOM_DATA_DIR"
)

// Lookups that tests replace.
var (
	userHomeDir   = os.UserHomeDir
	userConfigDir = os.UserConfigDir
	workingDir    = os.Getwd
)

// DefaultConfigDir returns the per-user configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/stockroom, else ~/.config/stockroom
// Others:  os.UserConfigDir()/stockroom
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := userHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}

	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir picks the config directory: flag, then
// STOCKROOM_CONFIG_DIR, then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	return firstOf(DefaultConfigDir, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir picks the directory holding the inventory file: flag, then
// data_dir from config.yaml, then STOCKROOM_DATA_DIR, then the working
// directory.
func ResolveDataDir(flag, configValue string) (string, error) {
	return firstOf(workingDir, flag, configValue, os.Getenv(EnvDataDir))
}

// firstOf returns the first non-empty candidate as an absolute path, or the
// fallback when every candidate is empty.
func firstOf(fallback func() (string, error), candidates ...string) (string, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		expanded, err := ExpandHome(c)
		if err != nil {
			return "", err
		}
		return filepath.Abs(expanded)
	}
	return fallback()
}

// ExpandHome replaces a leading "~" with the user's home directory. Other
// paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
