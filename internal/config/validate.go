package config

import (
	"fmt"

	"github.com/xdg/ansilog/internal/clog"
)

// Validate checks that all fields of a parsed Config contain valid values.
// It validates:
//   - LogLevel is a severity name (if non-empty)
//
// Returns nil if the config is valid, or an error naming the invalid field.
func Validate(cfg *Config) error {
	if cfg.LogLevel != "" {
		if _, err := clog.ParseSeverity(cfg.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

// LoggerConfig converts cfg to the logger's configuration.
// An empty LogLevel leaves the level unset (debug).
func (c *Config) LoggerConfig() (clog.Config, error) {
	var lc clog.Config
	if c.LogLevel != "" {
		level, err := clog.ParseSeverity(c.LogLevel)
		if err != nil {
			return clog.Config{}, fmt.Errorf("log_level: %w", err)
		}
		lc.Level = level
	}
	if c.LogColors != nil {
		lc.Colors = boolPtr(*c.LogColors)
	}
	return lc, nil
}
