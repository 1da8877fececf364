// Package clog provides leveled, ANSI-colored console logging.
//
// Severities, lowest to highest:
//   - Debug: green
//   - Info: bright blue
//   - Warning: yellow
//   - Error: red
//   - Special: underlined cyan
//
// A Logger writes one line per call:
//
//	2024-05-01 13:04:05 [System]	[Component] (subcategory) message
//
// The timestamp and system tag take the severity color. Component,
// subcategory and message are styled independently. Without color
// capability the same line is written with no escape sequences.
package clog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownSeverity is returned when a severity name is not recognized.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity ranks a log line. The zero value is unset.
type Severity int

const (
	// SeverityDebug is for verbose diagnostic information.
	SeverityDebug Severity = iota + 1
	// SeverityInfo is for normal operational events.
	SeverityInfo
	// SeverityWarning is for unexpected conditions that don't prevent operation.
	SeverityWarning
	// SeverityError is for failures that affect functionality.
	SeverityError
	// SeveritySpecial highlights lines above every other severity.
	SeveritySpecial
)

var severityNames = map[Severity]string{
	SeverityDebug:   "debug",
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
	SeveritySpecial: "special",
}

// Severities returns all severities in rank order.
func Severities() []Severity {
	return []Severity{SeverityDebug, SeverityInfo, SeverityWarning, SeverityError, SeveritySpecial}
}

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Title returns the name with its first character upper-cased.
// The rest of the name is left as is.
func (s Severity) Title() string {
	return capitalize(s.String())
}

// Valid reports whether s is one of the five defined severities.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// orDefault maps the unset severity to SeverityDebug.
func (s Severity) orDefault() Severity {
	if s == 0 {
		return SeverityDebug
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity parses a severity name (case-insensitive).
// "warn" and "err" are accepted as aliases.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error", "err":
		return SeverityError, nil
	case "special":
		return SeveritySpecial, nil
	default:
		return 0, fmt.Errorf("%w %q, must be one of: debug, info, warning, error, special", ErrUnknownSeverity, name)
	}
}

// capitalize upper-cases the first rune of s only.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
