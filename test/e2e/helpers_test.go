//go:build e2e

package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// result is what one run of the binary produced.
type result struct {
	Stdout string
	Stderr string
	Code   int
}

// runAnsilog runs the binary with args and stdin in an environment
// stripped of ANSILOG_* and color variables. extraEnv entries are
// appended last so they win.
func runAnsilog(t *testing.T, stdin string, extraEnv []string, args ...string) result {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(cleanEnv(t), extraEnv...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.Code = exitErr.ExitCode()
	case err != nil:
		t.Fatalf("run %v: %v", args, err)
	}
	return res
}

func cleanEnv(t *testing.T) []string {
	t.Helper()
	env := []string{"XDG_CONFIG_HOME=" + t.TempDir()}
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		switch {
		case strings.HasPrefix(name, "ANSILOG_"),
			name == "NO_COLOR", name == "FORCE_COLOR", name == "XDG_CONFIG_HOME":
			continue
		}
		env = append(env, kv)
	}
	return env
}
