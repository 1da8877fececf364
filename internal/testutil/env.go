package testutil

import (
	"testing"

	"github.com/xdg/ansilog/internal/config"
)

var flagEnvNames = []string{"CONFIG", "LEVEL", "NO_COLOR", "SYSTEM", "COMPONENT", "QUIET", "VERBOSE"}

// IsolateEnv points the config directory at a fresh temp dir, turns
// color off and clears every ANSILOG_* variable so the host environment
// cannot leak into a test. It returns the config home.
func IsolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "")
	for _, name := range flagEnvNames {
		t.Setenv(config.EnvPrefix+"_"+name, "")
	}
	return home
}
