package clog

import (
	"io"
	"sync"
)

var (
	stdMu sync.RWMutex
	// std is the global logger used by package-level functions.
	std = New(nil, "", "")
)

func defaultLogger() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// Configure replaces the global logger with one built from cfg and the
// bound labels.
func Configure(cfg *Config, system, component string, opts ...Option) {
	ReplaceGlobal(New(cfg, system, component, opts...))
}

// Default returns the global logger.
func Default() *Logger {
	return defaultLogger()
}

// ReplaceGlobal replaces the global logger and returns the previous one.
// Caller should restore the original logger after a test.
func ReplaceGlobal(l *Logger) *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	old := std
	std = l
	return old
}

// Reset resets the global logger to default state.
// This is primarily useful for testing.
func Reset() {
	ReplaceGlobal(New(nil, "", ""))
}

// Discard configures the global logger to drop all output.
func Discard() {
	ReplaceGlobal(New(nil, "", "",
		WithSink(func(string) {}),
		WithDiagnostics(func(string, ...any) {}),
	))
}

// Debug logs at SeverityDebug using the global logger.
func Debug(args ...string) {
	defaultLogger().Debug(args...)
}

// Info logs at SeverityInfo using the global logger.
func Info(args ...string) {
	defaultLogger().Info(args...)
}

// Warning logs at SeverityWarning using the global logger.
func Warning(args ...string) {
	defaultLogger().Warning(args...)
}

// Error logs at SeverityError using the global logger.
func Error(args ...string) {
	defaultLogger().Error(args...)
}

// Special logs at SeveritySpecial using the global logger.
func Special(args ...string) {
	defaultLogger().Special(args...)
}

// Writer returns an io.Writer that logs each write through the global
// logger at sev, with system and component as the explicit labels.
// An empty system falls back to the severity title.
// It lets the standard library log package write through clog:
//
//	log.SetFlags(0)
//	log.SetOutput(clog.Writer(clog.SeverityDebug, "Stdlib", ""))
func Writer(sev Severity, system, component string) io.Writer {
	return &levelWriter{sev: sev, system: system, component: component}
}

type levelWriter struct {
	sev       Severity
	system    string
	component string
}

func (w *levelWriter) Write(p []byte) (n int, err error) {
	msg := string(p)
	// Trim trailing newline since each log line gets its own
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	system := w.system
	if system == "" {
		system = w.sev.Title()
	}
	defaultLogger().Log(w.sev, Entry{System: system, Component: w.component, Text: msg})
	return len(p), nil
}
