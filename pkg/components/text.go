package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the width of s in terminal cells, ignoring ANSI
// escape sequences.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most width cells. Escape sequences opened before
// the cut survive it.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// TruncateWithTail is Truncate with a marker (usually "…") appended when a
// cut happens. The marker counts toward width.
func TruncateWithTail(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, tail)
}

// PadRight pads s with trailing spaces to exactly width cells. Strings at
// or past width pass through unchanged.
func PadRight(s string, width int) string {
	if n := width - VisibleLen(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
