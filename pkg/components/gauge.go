package components

import (
	"fmt"
	"math"
	"strings"
)

// Block characters for sub-cell precision (8 levels per cell).
var gaugeBlocks = [9]rune{
	' ',      // 0/8 empty
	'▏', // 1/8 ▏
	'▎', // 2/8 ▎
	'▍', // 3/8 ▍
	'▌', // 4/8 ▌
	'▋', // 5/8 ▋
	'▊', // 6/8 ▊
	'▉', // 7/8 ▉
	'█', // 8/8 █
}

// GaugeStyle configures the appearance of a horizontal progress gauge.
type GaugeStyle struct {
	Width             int     // total width in cells for the bar portion
	ShowPercent       bool    // show "73%" label after the bar
	FilledColor       string  // hex color for the filled portion
	EmptyColor        string  // hex color for the empty portion
	ImminentColor     string  // fill color once progress passes ImminentThreshold
	ImminentThreshold float64 // 0-1 threshold where the fill switches color (0 = never)
}

// Gauge renders a horizontal progress bar with sub-cell precision.
type Gauge struct {
	style GaugeStyle
}

// NewGauge creates a new Gauge with the given style.
func NewGauge(style GaugeStyle) *Gauge {
	return &Gauge{style: style}
}

// Render renders the bar for a progress percentage in [0, 100]. The width
// parameter overrides the style width for this call when positive.
func (g *Gauge) Render(percent float64, width int) string {
	if width <= 0 {
		width = g.style.Width
	}
	if width <= 0 {
		width = 20
	}

	ratio := percent / 100
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	fillColor := g.style.FilledColor
	if fillColor == "" {
		fillColor = "#7C3AED"
	}
	if g.style.ImminentThreshold > 0 && ratio >= g.style.ImminentThreshold && g.style.ImminentColor != "" {
		fillColor = g.style.ImminentColor
	}

	var b strings.Builder
	b.WriteString(gaugeBar(ratio, width, fillColor, g.style.EmptyColor))

	if g.style.ShowPercent {
		b.WriteString(fmt.Sprintf(" %d%%", int(math.Round(ratio*100))))
	}

	return b.String()
}

// gaugeBar builds the ANSI-colored bar string with sub-cell precision.
func gaugeBar(ratio float64, width int, fillColor, emptyColor string) string {
	totalUnits := width * 8
	filledUnits := int(math.Round(ratio * float64(totalUnits)))
	if filledUnits < 0 {
		filledUnits = 0
	}
	if filledUnits > totalUnits {
		filledUnits = totalUnits
	}

	fullCells := filledUnits / 8
	partialEighths := filledUnits % 8
	emptyCells := width - fullCells
	if partialEighths > 0 {
		emptyCells--
	}
	if emptyCells < 0 {
		emptyCells = 0
	}

	fgFill := Color(fillColor)
	bgEmpty := BgColor(emptyColor)
	fgEmpty := Color(emptyColor)

	var b strings.Builder

	// Full filled cells: filled-color foreground over the empty background.
	if fullCells > 0 {
		b.WriteString(fgFill)
		b.WriteString(bgEmpty)
		b.WriteString(strings.Repeat(string(gaugeBlocks[8]), fullCells))
		b.WriteString(Reset)
	}

	// Partial cell at the boundary.
	if partialEighths > 0 {
		b.WriteString(fgFill)
		b.WriteString(bgEmpty)
		b.WriteRune(gaugeBlocks[partialEighths])
		b.WriteString(Reset)
	}

	if emptyCells > 0 {
		b.WriteString(fgEmpty)
		b.WriteString(strings.Repeat(" ", emptyCells))
		b.WriteString(Reset)
	}

	return b.String()
}
