package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvPrefix namespaces the environment variables that mirror the CLI
// flags, e.g. ANSILOG_LEVEL or ANSILOG_NO_COLOR.
const EnvPrefix = "ANSILOG"

// Dir returns the ansilog configuration directory path.
// By default, this is ~/.config/ansilog/. If the XDG_CONFIG_HOME
// environment variable is set, it uses $XDG_CONFIG_HOME/ansilog/ instead.
// The returned path always has a trailing slash.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return ExpandHome(base) + "/ansilog/"
}

// EnsureDir creates the directory holding path if it doesn't exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}

// Path returns the full path to the default configuration file.
// This is Dir() + "config.yaml".
func Path() string {
	return Dir() + "config.yaml"
}

// ExpandHome replaces a leading ~ in path with the user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
