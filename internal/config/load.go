package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/ansilog/internal/clog"
)

// Load loads the configuration at path. An empty path means Path().
// If the file doesn't exist, it returns Default().
// If the file exists but cannot be read, parsed or validated, it returns
// an error. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	path = ExpandHome(path)
	clog.Debug("Config", "Load", "loading config from "+path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			clog.Debug("Config", "Load", "file not found, using defaults")
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return Merge(Default(), cfg), nil
}
