package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// PlainText strips terminal escape sequences and control characters from s,
// keeping newlines and turning tabs into spaces. Stored note text passes
// through here before it reaches a terminal.
func PlainText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case r < 0x20, r == 0x7f, r >= 0x80 && r < 0xa0:
			return -1
		}
		return r
	}, s)
}

// Truncate shortens s to at most width terminal cells, ending with an
// ellipsis when anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Lines wraps s to width cells per line (hard wrap on cell count, existing
// newlines kept) and returns at most max lines. The last kept line gets an
// ellipsis if text was dropped.
func Lines(s string, width, max int) []string {
	if width <= 0 || max <= 0 {
		return nil
	}

	var out []string
	for _, para := range strings.Split(s, "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		for para != "" {
			line := runewidth.Truncate(para, width, "")
			if line == "" {
				// A single rune wider than the card.
				line = string([]rune(para)[:1])
			}
			out = append(out, line)
			para = para[len(line):]
		}
	}

	if len(out) > max {
		out = out[:max]
		out[max-1] = Truncate(out[max-1]+"…", width)
	}
	return out
}
