// Package components provides box/border rendering, a sub-cell progress
// gauge, and ANSI-aware text primitives for the chime TUI.
package components

// Padding defines spacing on each side of a content area.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewPadding returns a Padding with the same value on all four sides.
func NewPadding(all int) Padding {
	if all < 0 {
		all = 0
	}
	return Padding{Top: all, Right: all, Bottom: all, Left: all}
}

// NewPaddingHV returns a Padding with horiz on the left and right sides
// and vert on the top and bottom.
func NewPaddingHV(horiz, vert int) Padding {
	if horiz < 0 {
		horiz = 0
	}
	if vert < 0 {
		vert = 0
	}
	return Padding{Top: vert, Right: horiz, Bottom: vert, Left: horiz}
}
