package term

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Environment variables that override terminal detection.
const (
	NoColorEnv    = "NO_COLOR"
	ForceColorEnv = "FORCE_COLOR"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// ColorSupported reports whether w can render ANSI color.
//
// Precedence:
//   - NO_COLOR set to any non-empty value disables color (https://no-color.org)
//   - FORCE_COLOR set to anything but "0" enables color
//   - TERM=dumb disables color
//   - otherwise w must be a terminal file descriptor
func ColorSupported(w io.Writer) bool {
	if os.Getenv(NoColorEnv) != "" {
		return false
	}
	if v := os.Getenv(ForceColorEnv); v != "" && v != "0" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

var stdoutColor = sync.OnceValue(func() bool {
	return ColorSupported(os.Stdout)
})

// StdoutColor reports whether the process stdout can render color.
// It is evaluated once, on first use.
func StdoutColor() bool {
	return stdoutColor()
}
