package config

// Merge returns base with every field set in override applied on top.
func Merge(base, override *Config) *Config {
	merged := *base
	if override.LogLevel != "" {
		merged.LogLevel = override.LogLevel
	}
	if override.LogColors != nil {
		merged.LogColors = boolPtr(*override.LogColors)
	}
	if override.System != "" {
		merged.System = override.System
	}
	if override.Component != "" {
		merged.Component = override.Component
	}
	return &merged
}
