package components

import (
	"strings"
	"testing"
)

func TestGaugeFullAndEmpty(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 10, FilledColor: "#00ff00", EmptyColor: "#333333"})

	full := g.Render(100, 0)
	if got := strings.Count(full, string(gaugeBlocks[8])); got != 10 {
		t.Errorf("100%% bar has %d full blocks, want 10", got)
	}

	empty := g.Render(0, 0)
	if strings.Contains(empty, string(gaugeBlocks[8])) {
		t.Error("0% bar should contain no full blocks")
	}
	if VisibleLen(empty) != 10 {
		t.Errorf("0%% bar visible width = %d, want 10", VisibleLen(empty))
	}
}

func TestGaugeHalfFill(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 10, FilledColor: "#00ff00", EmptyColor: "#333333"})
	bar := g.Render(50, 0)
	if got := strings.Count(bar, string(gaugeBlocks[8])); got != 5 {
		t.Errorf("50%% bar has %d full blocks, want 5", got)
	}
}

func TestGaugeSubCellPrecision(t *testing.T) {
	// 25% of 10 cells = 20 eighths = 2 full cells + a half-cell block.
	g := NewGauge(GaugeStyle{Width: 10, FilledColor: "#00ff00", EmptyColor: "#333333"})
	bar := g.Render(25, 0)
	if got := strings.Count(bar, string(gaugeBlocks[8])); got != 2 {
		t.Errorf("25%% bar has %d full blocks, want 2", got)
	}
	if !strings.Contains(bar, string(gaugeBlocks[4])) {
		t.Error("25% bar should contain the 4/8 partial block")
	}
}

func TestGaugePercentLabel(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 5, ShowPercent: true})
	if bar := g.Render(73, 0); !strings.HasSuffix(bar, " 73%") {
		t.Errorf("bar = %q, want trailing percent label", bar)
	}
	g2 := NewGauge(GaugeStyle{Width: 5})
	if bar := g2.Render(73, 0); strings.Contains(bar, "%") {
		t.Errorf("bar = %q, percent label should be absent", bar)
	}
}

func TestGaugeImminentColorSwitch(t *testing.T) {
	style := GaugeStyle{
		Width:             10,
		FilledColor:       "#00ff00",
		ImminentColor:     "#ff0000",
		ImminentThreshold: 0.9,
	}
	g := NewGauge(style)

	if bar := g.Render(95, 0); !strings.Contains(bar, Color("#ff0000")) {
		t.Error("bar past threshold should use the imminent color")
	}
	if bar := g.Render(50, 0); strings.Contains(bar, Color("#ff0000")) {
		t.Error("bar below threshold should not use the imminent color")
	}
}

func TestGaugeClampsOutOfRange(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 10, FilledColor: "#00ff00", EmptyColor: "#333333"})
	if got, want := g.Render(-20, 0), g.Render(0, 0); got != want {
		t.Error("negative percent should render like 0")
	}
	if got, want := g.Render(150, 0), g.Render(100, 0); got != want {
		t.Error("percent above 100 should render like 100")
	}
}

func TestGaugeWidthOverride(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 10, FilledColor: "#00ff00"})
	bar := g.Render(100, 4)
	if got := strings.Count(bar, string(gaugeBlocks[8])); got != 4 {
		t.Errorf("override width bar has %d full blocks, want 4", got)
	}
}
