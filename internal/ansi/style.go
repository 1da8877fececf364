// Package ansi wraps text in ANSI SGR escape sequences.
//
// A Styler is built from an open and a close sequence. When the text being
// wrapped already contains the close sequence (a nested styled substring),
// the styler re-opens its style after each occurrence so the rest of the
// text keeps rendering in the outer style.
package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// Styler wraps a value in an escape sequence pair.
// The value is converted to text with fmt.Sprint.
type Styler func(v any) string

// SGR returns the escape sequence ESC [ n m.
func SGR(n int) string {
	return "\x1b[" + strconv.Itoa(n) + "m"
}

// NewStyler returns a Styler for the open and close sequences.
// If enabled is false the Styler returns the text unchanged.
func NewStyler(open, end string, enabled bool) Styler {
	if !enabled {
		return func(v any) string {
			return text(v)
		}
	}
	return func(v any) string {
		return wrap(text(v), open, end)
	}
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// wrap puts s between open and end. Each end already present in s is
// followed by open so styling resumes after the nested close.
func wrap(s, open, end string) string {
	idx := strings.Index(s, end)
	if idx < 0 || end == "" {
		return open + s + end
	}

	var b strings.Builder
	b.Grow(len(open)*2 + len(s) + len(end))
	b.WriteString(open)
	for idx >= 0 {
		b.WriteString(s[:idx])
		b.WriteString(end)
		b.WriteString(open)
		s = s[idx+len(end):]
		idx = strings.Index(s, end)
	}
	b.WriteString(s)
	b.WriteString(end)
	return b.String()
}
