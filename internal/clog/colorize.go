package clog

import "github.com/xdg/ansilog/internal/ansi"

// Colorizer styles text with the color of a severity.
type Colorizer struct {
	palette ansi.Palette
	warn    func(format string, args ...any)
}

// NewColorizer returns a Colorizer over palette. Unknown severities are
// reported through warn, which must not write to the log stream.
func NewColorizer(palette ansi.Palette, warn func(format string, args ...any)) Colorizer {
	return Colorizer{palette: palette, warn: warn}
}

// Colorize wraps text in the style of sev.
// An unknown severity is reported and the text falls back to italic.
func (c Colorizer) Colorize(sev Severity, text string) string {
	switch sev {
	case SeverityDebug:
		return c.palette.Green(text)
	case SeverityInfo:
		return c.palette.BrightBlue(text)
	case SeverityWarning:
		return c.palette.Yellow(text)
	case SeverityError:
		return c.palette.Red(text)
	case SeveritySpecial:
		return c.palette.Cyan(c.palette.Underline(text))
	default:
		if c.warn != nil {
			c.warn("unknown severity %d", int(sev))
		}
		return c.palette.Italic(text)
	}
}
