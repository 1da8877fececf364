// Package testutil provides shared test helpers for ansilog tests.
package testutil

import (
	"bytes"
	"testing"

	"github.com/xdg/ansilog/internal/term"
)

// CaptureTerm redirects the term streams to buffers for the duration of
// the test and restores them on cleanup.
func CaptureTerm(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	term.SetOutput(stdout)
	term.SetErrOutput(stderr)
	t.Cleanup(term.Reset)
	return stdout, stderr
}
