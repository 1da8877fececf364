package config

func boolPtr(b bool) *bool {
	return &b
}

// Default returns a Config with all defaults populated: every severity
// is emitted, color is on, and no labels are bound.
func Default() *Config {
	return &Config{
		LogLevel:  "debug",
		LogColors: boolPtr(true),
	}
}

// defaultConfigTemplate is written by WriteDefault. It documents every
// field and matches Default().
const defaultConfigTemplate = `# ansilog configuration
#
# Minimum severity to emit. One of, lowest to highest:
#   debug, info, warning, error, special
log_level: debug

# Emit ANSI color. Color is also disabled when the output is not a
# terminal, when NO_COLOR is set, or when TERM=dumb. FORCE_COLOR=1
# overrides terminal detection.
log_colors: true

# Labels bound to every line. A call that names its own system or
# component takes precedence.
# system: Main
# component: Worker
`
