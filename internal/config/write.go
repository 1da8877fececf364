package config

import (
	"errors"
	"fmt"
	"os"
)

// WriteDefault creates a commented default configuration file at path.
// An empty path means Path(). If the file already exists, it returns
// false and nil without overwriting. The parent directory is created if
// needed and the file is written with 0600 permissions.
func WriteDefault(path string) (bool, error) {
	if path == "" {
		path = Path()
	}
	path = ExpandHome(path)

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := EnsureDir(path); err != nil {
		return false, err
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}
