package components

import (
	"strings"
)

// BorderStyle selects the box-drawing character set for a frame.
type BorderStyle int

const (
	// BorderNone draws no frame; only padding applies.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderRounded is BorderSingle with rounded corners.
	BorderRounded
)

type borderChars struct {
	tl, tr, bl, br, h, v string
}

var borderSets = map[BorderStyle]borderChars{
	BorderSingle:  {"┌", "┐", "└", "┘", "─", "│"},
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
}

// BoxStyle controls how RenderBox draws the frame around the widget.
type BoxStyle struct {
	Border  BorderStyle
	Title   string // embedded in the top border, left-aligned
	Padding Padding
	FG      string // hex border color, e.g. "#89b4fa"
}

// DefaultBoxStyle returns the widget's rounded, untitled frame.
func DefaultBoxStyle() BoxStyle {
	return BoxStyle{Border: BorderRounded}
}

// RenderBox draws content inside a frame of exactly width by height outer
// cells. Content lines are truncated or padded to the interior width, and
// missing lines render blank. Returns "" when the frame cannot fit.
func RenderBox(content string, width, height int, style BoxStyle) string {
	bordered := style.Border != BorderNone
	edge := 0
	if bordered {
		edge = 1
	}
	if width < 2*edge || height < 2*edge || width <= 0 || height <= 0 {
		return ""
	}

	inWidth := width - 2*edge - style.Padding.Left - style.Padding.Right
	if inWidth < 0 {
		inWidth = 0
	}
	inRows := height - 2*edge - style.Padding.Top - style.Padding.Bottom
	if inRows < 0 {
		inRows = 0
	}

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	var pre, suf string
	if style.FG != "" {
		pre, suf = Color(style.FG), Reset
	}
	chars := borderSets[style.Border]
	left := strings.Repeat(" ", style.Padding.Left)
	right := strings.Repeat(" ", style.Padding.Right)
	blank := strings.Repeat(" ", inWidth)

	row := func(body string) string {
		if !bordered {
			return left + body + right
		}
		return pre + chars.v + suf + left + body + right + pre + chars.v + suf
	}

	rows := make([]string, 0, height)
	if bordered {
		rows = append(rows, topBorder(style.Title, width-2, chars, pre, suf))
	}
	for i := 0; i < style.Padding.Top; i++ {
		rows = append(rows, row(blank))
	}
	for i := 0; i < inRows; i++ {
		if i < len(lines) {
			rows = append(rows, row(fitLine(lines[i], inWidth)))
		} else {
			rows = append(rows, row(blank))
		}
	}
	for i := 0; i < style.Padding.Bottom; i++ {
		rows = append(rows, row(blank))
	}
	if bordered {
		rows = append(rows, pre+chars.bl+strings.Repeat(chars.h, width-2)+chars.br+suf)
	}
	return strings.Join(rows, "\n")
}

// topBorder fills the bar between the corners, embedding the title when at
// least one horizontal cell fits on each side of it.
func topBorder(title string, fill int, chars borderChars, pre, suf string) string {
	room := fill - 4 // one h-char and one space on each side of the title
	if title == "" || room <= 0 {
		return pre + chars.tl + strings.Repeat(chars.h, fill) + chars.tr + suf
	}
	if VisibleLen(title) > room {
		title = TruncateWithTail(title, room, "…")
	}
	rest := fill - VisibleLen(title) - 3
	return pre + chars.tl + chars.h + suf + " " + title + " " +
		pre + strings.Repeat(chars.h, rest) + chars.tr + suf
}

// fitLine truncates or right-pads one content line to exactly width cells.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(line) > width {
		return Truncate(line, width)
	}
	return PadRight(line, width)
}
