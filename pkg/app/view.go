package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chime/pkg/components"
	"gitlab.com/tinyland/lab/chime/pkg/format"
)

// Display geometry. The widget renders at a fixed compact width and lets
// the terminal center it via lipgloss.Place.
const (
	boxWidth   = 44
	labelWidth = 9
)

// View renders the widget. Buttons and the help bar live outside the box:
// bubblezone markers must not pass through the box's width fitting.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}

	snap := m.sched.Snapshot(m.now())

	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.th.StatusOK))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.th.Dim))
	fgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.th.Foreground))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(m.th.Accent))

	label := func(s string) string {
		return dimStyle.Render(components.PadRight(s, labelWidth))
	}

	var status string
	if snap.Running {
		status = okStyle.Render("● playing randomly")
	} else {
		status = dimStyle.Render("■ stopped")
	}

	next := dimStyle.Render("—")
	if snap.Armed {
		next = fgStyle.Render(format.Countdown(snap.Countdown))
	}

	last := dimStyle.Render("not yet played")
	if snap.HasPlayed {
		last = fgStyle.Render(format.Ago(snap.SincePlay))
	}

	gauge := components.NewGauge(components.GaugeStyle{
		Width:             boxWidth - labelWidth - 11,
		ShowPercent:       true,
		FilledColor:       m.th.GaugeFilled,
		EmptyColor:        m.th.GaugeEmpty,
		ImminentColor:     m.th.GaugeImminent,
		ImminentThreshold: 0.9,
	})

	lines := []string{
		status,
		label("window") + fgStyle.Render(format.WindowRange(snap.Window)),
		label("next") + next,
		label("progress") + gauge.Render(snap.Progress, 0),
		label("last") + last,
	}
	content := strings.Join(lines, "\n")

	boxStyle := components.DefaultBoxStyle()
	boxStyle.Title = m.title()
	boxStyle.Padding = components.NewPaddingHV(2, 0)
	boxStyle.FG = m.th.Border
	if snap.Running {
		boxStyle.FG = m.th.BorderFocus
	}
	box := components.RenderBox(content, boxWidth, len(lines)+2, boxStyle)

	sections := []string{box, m.buttons(snap.Running, accent), m.help.View(m.keys)}

	if m.art != nil {
		if cover, err := m.art.Render(boxWidth-2, 8); err == nil && cover != "" {
			sections = append([]string{cover}, sections...)
		}
	}

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > boxWidth && m.height > 0 {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}

	// Scan registers the marked zones against the final layout.
	return m.zones.Scan(out)
}

// buttons renders the clickable control row, each control wrapped in its
// mouse zone.
func (m Model) buttons(running bool, style lipgloss.Style) string {
	toggle := "[start]"
	if running {
		toggle = "[stop]"
	}
	parts := []string{
		m.zones.Mark(zoneToggle, style.Render(toggle)),
		m.zones.Mark(zonePlay, style.Render("[play now]")),
		m.zones.Mark(zoneShrink, style.Render("[-]")),
		m.zones.Mark(zoneExpand, style.Render("[+]")),
	}
	return strings.Join(parts, " ")
}

func (m Model) title() string {
	if m.clipName == "" {
		return "chime"
	}
	return fmt.Sprintf("chime · %s", m.clipName)
}
