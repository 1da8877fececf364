// Package config provides the ansilog configuration file. It maps to
// YAML and resolves to a clog.Config plus the labels bound to a logger.
package config

// Config represents the ansilog configuration file.
// It is typically stored at ~/.config/ansilog/config.yaml.
type Config struct {
	// LogLevel is the minimum severity to emit:
	// debug, info, warning, error or special.
	LogLevel string `yaml:"log_level,omitempty"`
	// LogColors enables ANSI styling. Unset means true.
	LogColors *bool `yaml:"log_colors,omitempty"`
	// System is bound to every line unless the call names one.
	System string `yaml:"system,omitempty"`
	// Component is bound to every line unless the call names one.
	Component string `yaml:"component,omitempty"`
}
