package ansi

import "strings"

// SGR parameter pairs. Each style closes with its own reset code so that
// nested styles of a different kind are not cancelled.
const (
	boldOpen, boldClose           = 1, 22
	italicOpen, italicClose       = 3, 23
	underlineOpen, underlineClose = 4, 24
	redOpen                       = 31
	greenOpen                     = 32
	yellowOpen                    = 33
	cyanOpen                      = 36
	grayOpen                      = 90
	brightBlueOpen                = 94
	fgClose                       = 39
)

// Palette holds the stylers used for log output.
type Palette struct {
	Bold       Styler
	Italic     Styler
	Underline  Styler
	Red        Styler
	Green      Styler
	Yellow     Styler
	Cyan       Styler
	Gray       Styler
	BrightBlue Styler
}

// NewPalette builds the palette. With enabled false every styler is the
// identity.
func NewPalette(enabled bool) Palette {
	s := func(open, end int) Styler {
		return NewStyler(SGR(open), SGR(end), enabled)
	}
	return Palette{
		Bold:       s(boldOpen, boldClose),
		Italic:     s(italicOpen, italicClose),
		Underline:  s(underlineOpen, underlineClose),
		Red:        s(redOpen, fgClose),
		Green:      s(greenOpen, fgClose),
		Yellow:     s(yellowOpen, fgClose),
		Cyan:       s(cyanOpen, fgClose),
		Gray:       s(grayOpen, fgClose),
		BrightBlue: s(brightBlueOpen, fgClose),
	}
}

// Strip removes CSI escape sequences (ESC [ params intermediates final)
// from s, which covers SGR styling and cursor control. An ESC that does
// not start a complete sequence is kept along with the bytes after it.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			if n := csiLen(s[i:]); n > 0 {
				i += n - 1
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// csiLen returns the length of the CSI sequence at the start of s, or 0
// if s does not start with a complete one.
func csiLen(s string) int {
	if len(s) < 3 || s[0] != '\x1b' || s[1] != '[' {
		return 0
	}
	i := 2
	for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3f {
		i++
	}
	for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f {
		i++
	}
	if i < len(s) && s[i] >= 0x40 && s[i] <= 0x7e {
		return i + 1
	}
	return 0
}
