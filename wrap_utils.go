package mdhtml

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	return runewidth.Truncate(text, limit, "…")
}

// padCell pads text to width according to align. Text wider than width is
// returned unchanged.
func padCell(text string, width int, align Align) string {
	gap := width - ansi.PrintableRuneWidth(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

// wrapLines word-wraps text to limit columns, ignoring ANSI sequences. A
// limit below one disables wrapping.
func wrapLines(text string, limit int) []string {
	if limit < 1 {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, limit), "\n")
}
