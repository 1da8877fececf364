package clog

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xdg/ansilog/internal/ansi"
	"github.com/xdg/ansilog/internal/term"
)

// ErrArgCount is returned when an emit call has fewer than one or more
// than four arguments.
var ErrArgCount = errors.New("log call takes 1 to 4 arguments")

// timestampLayout is the local wall-clock prefix of every line.
const timestampLayout = "2006-01-02 15:04:05"

// Config selects the minimum severity and whether to emit color.
type Config struct {
	// Level is the minimum severity to emit. Zero means SeverityDebug.
	Level Severity
	// Colors enables ANSI styling. Nil means true. Color is still
	// disabled when the output cannot render it.
	Colors *bool
}

// Sink receives one assembled line per log call, without a trailing newline.
type Sink func(line string)

// Entry is the resolved content of one log line.
// Empty Component and Subcategory are omitted from the line.
type Entry struct {
	System      string
	Component   string
	Text        string
	Subcategory string
}

// Logger writes severity-colored, timestamped lines.
// A Logger is immutable after New and keeps no state between calls.
type Logger struct {
	minLevel  Severity
	colors    bool
	system    string
	component string

	palette   ansi.Palette
	colorizer Colorizer
	now       func() time.Time
	sink      Sink
	warn      func(format string, args ...any)
}

// Option customizes a Logger.
type Option func(*options)

type options struct {
	colorCapable *bool
	now          func() time.Time
	sink         Sink
	warn         func(format string, args ...any)
}

// WithColorCapable overrides terminal detection for the output.
func WithColorCapable(capable bool) Option {
	return func(o *options) {
		o.colorCapable = &capable
	}
}

// WithClock sets the time source for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithSink sets the line sink.
func WithSink(sink Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithWriter writes each line to w followed by a newline.
func WithWriter(w io.Writer) Option {
	return WithSink(func(line string) {
		_, _ = io.WriteString(w, line+"\n")
	})
}

// WithDiagnostics sets where misuse such as an unknown severity or a bad
// argument count is reported. It defaults to term.Warn.
func WithDiagnostics(warn func(format string, args ...any)) Option {
	return func(o *options) {
		o.warn = warn
	}
}

// New creates a Logger. cfg may be nil. A non-empty system or component
// is bound to every line the Logger writes; see Resolve.
func New(cfg *Config, system, component string, opts ...Option) *Logger {
	o := options{
		now:  time.Now,
		sink: term.Line,
		warn: term.Warn,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var c Config
	if cfg != nil {
		c = *cfg
	}

	colors := c.Colors == nil || *c.Colors
	if colors {
		if o.colorCapable != nil {
			colors = *o.colorCapable
		} else {
			colors = term.StdoutColor()
		}
	}

	palette := ansi.NewPalette(colors)
	return &Logger{
		minLevel:  c.Level.orDefault(),
		colors:    colors,
		system:    system,
		component: component,
		palette:   palette,
		colorizer: NewColorizer(palette, o.warn),
		now:       o.now,
		sink:      o.sink,
		warn:      o.warn,
	}
}

// Level returns the minimum severity the Logger emits.
func (l *Logger) Level() Severity {
	return l.minLevel
}

// Colors reports whether the Logger emits ANSI styling.
func (l *Logger) Colors() bool {
	return l.colors
}

// Enabled reports whether lines of severity sev pass the filter.
func (l *Logger) Enabled(sev Severity) bool {
	return sev >= l.minLevel
}

// Debug logs at SeverityDebug. See Resolve for the meaning of args.
func (l *Logger) Debug(args ...string) {
	l.emit(SeverityDebug, args)
}

// Info logs at SeverityInfo. See Resolve for the meaning of args.
func (l *Logger) Info(args ...string) {
	l.emit(SeverityInfo, args)
}

// Warning logs at SeverityWarning. See Resolve for the meaning of args.
func (l *Logger) Warning(args ...string) {
	l.emit(SeverityWarning, args)
}

// Error logs at SeverityError. See Resolve for the meaning of args.
func (l *Logger) Error(args ...string) {
	l.emit(SeverityError, args)
}

// Special logs at SeveritySpecial. See Resolve for the meaning of args.
func (l *Logger) Special(args ...string) {
	l.emit(SeveritySpecial, args)
}

func (l *Logger) emit(sev Severity, args []string) {
	if !l.Enabled(sev) {
		return
	}
	e, err := l.Resolve(sev, args...)
	if err != nil {
		if l.warn != nil {
			l.warn("%s: %v", sev, err)
		}
		return
	}
	l.write(sev, e)
}

// Resolve maps positional arguments to an Entry.
//
//	bound system  args  system       component       text  subcategory
//	no            1     sev.Title()  bound           a0
//	no            2     a0           bound           a1
//	yes           1     bound        bound           a0
//	yes           2     bound        a0              a1
//	any           3     a0           a1              a2
//	any           4     a0           a1              a2    a3
//
// Any other argument count returns ErrArgCount.
func (l *Logger) Resolve(sev Severity, args ...string) (Entry, error) {
	bound := l.system != ""
	switch {
	case len(args) == 1 && !bound:
		return Entry{System: sev.Title(), Component: l.component, Text: args[0]}, nil
	case len(args) == 2 && !bound:
		return Entry{System: args[0], Component: l.component, Text: args[1]}, nil
	case len(args) == 1:
		return Entry{System: l.system, Component: l.component, Text: args[0]}, nil
	case len(args) == 2:
		return Entry{System: l.system, Component: args[0], Text: args[1]}, nil
	case len(args) == 3:
		return Entry{System: args[0], Component: args[1], Text: args[2]}, nil
	case len(args) == 4:
		return Entry{System: args[0], Component: args[1], Text: args[2], Subcategory: args[3]}, nil
	default:
		return Entry{}, fmt.Errorf("%w, got %d", ErrArgCount, len(args))
	}
}

// Log writes e at severity sev if sev passes the filter.
func (l *Logger) Log(sev Severity, e Entry) {
	if !l.Enabled(sev) {
		return
	}
	l.write(sev, e)
}

func (l *Logger) write(sev Severity, e Entry) {
	l.sink(l.Format(sev, e))
}

// Format assembles the line for e without filtering or writing it.
func (l *Logger) Format(sev Severity, e Entry) string {
	entryDesc := l.now().Format(timestampLayout) + " [" + e.System + "]\t"

	var b strings.Builder
	if !l.colors {
		b.WriteString(entryDesc)
		if e.Component != "" {
			b.WriteString("[" + e.Component + "] ")
		}
		if e.Subcategory != "" {
			b.WriteString("(" + e.Subcategory + ") ")
		}
		b.WriteString(e.Text)
		return b.String()
	}

	b.WriteString(l.colorizer.Colorize(sev, entryDesc))
	if e.Component != "" {
		b.WriteString(l.palette.Italic("[" + e.Component + "] "))
	}
	if e.Subcategory != "" {
		b.WriteString(l.palette.Gray(l.palette.Bold("(" + e.Subcategory + ") ")))
	}
	if e.Component != "" {
		b.WriteString(l.palette.Gray(e.Text))
	} else {
		b.WriteString(e.Text)
	}
	return b.String()
}
