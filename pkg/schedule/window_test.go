package schedule

import (
	"testing"
	"time"
)

func sec(n int) time.Duration { return time.Duration(n) * time.Second }

func TestClampEnforcesBounds(t *testing.T) {
	tests := []struct {
		name     string
		in       Window
		wantMin  time.Duration
		wantMax  time.Duration
	}{
		{"already valid", Window{sec(60), sec(300)}, sec(60), sec(300)},
		{"min below floor", Window{sec(5), sec(300)}, sec(30), sec(300)},
		{"min above ceiling", Window{sec(4000), sec(7200)}, sec(3600), sec(7200)},
		{"max below min+gap", Window{sec(60), sec(70)}, sec(60), sec(90)},
		{"max above ceiling", Window{sec(60), sec(9000)}, sec(60), sec(7200)},
		{"both out of range", Window{sec(0), sec(0)}, sec(30), sec(60)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp()
			if got.Min != tt.wantMin || got.Max != tt.wantMax {
				t.Errorf("Clamp(%v) = [%v, %v], want [%v, %v]",
					tt.in, got.Min, got.Max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestExpandWidensWindow(t *testing.T) {
	w := Window{sec(60), sec(300)}.Expand(DefaultStep)
	if w.Min != sec(120) || w.Max != sec(420) {
		t.Errorf("expand [60,300] = [%v, %v], want [2m0s, 7m0s]", w.Min, w.Max)
	}
}

func TestExpandAtCeilingIsClamped(t *testing.T) {
	// At [3600, 7200] both bounds are pinned at their ceilings: expanding
	// must leave the window unchanged.
	w := Window{sec(3600), sec(7200)}.Expand(DefaultStep)
	if w.Min != sec(3600) || w.Max != sec(7200) {
		t.Errorf("expand [3600,7200] = [%v, %v], want unchanged", w.Min, w.Max)
	}
}

func TestShrinkAtFloorIsClamped(t *testing.T) {
	w := Window{sec(30), sec(60)}.Shrink(DefaultStep)
	if w.Min != sec(30) || w.Max != sec(60) {
		t.Errorf("shrink [30,60] = [%v, %v], want unchanged", w.Min, w.Max)
	}
}

// The window invariant must hold after any sequence of expand/shrink calls.
func TestInvariantHoldsUnderRandomWalk(t *testing.T) {
	w := DefaultWindow()
	for i := 0; i < 500; i++ {
		if i%3 == 0 {
			w = w.Shrink(DefaultStep)
		} else {
			w = w.Expand(DefaultStep)
		}
		if w.Min < MinFloor || w.Min > MinCeil {
			t.Fatalf("step %d: Min %v out of [%v, %v]", i, w.Min, MinFloor, MinCeil)
		}
		if w.Max < w.Min+MinGap || w.Max > MaxCeil {
			t.Fatalf("step %d: Max %v out of [Min+%v, %v]", i, w.Max, MinGap, MaxCeil)
		}
	}
}

func TestDrawStaysInsideWindow(t *testing.T) {
	w := Window{sec(60), sec(300)}
	for i := 0; i < 1000; i++ {
		d := w.Draw()
		if d < w.Min || d > w.Max {
			t.Fatalf("draw %v outside [%v, %v]", d, w.Min, w.Max)
		}
		if d != d.Truncate(time.Second) {
			t.Fatalf("draw %v is not a whole second", d)
		}
	}
}

func TestDrawCoversBothEndpoints(t *testing.T) {
	w := Window{sec(30), sec(60)}
	seenMin, seenMax := false, false
	for i := 0; i < 5000 && !(seenMin && seenMax); i++ {
		switch w.Draw() {
		case w.Min:
			seenMin = true
		case w.Max:
			seenMax = true
		}
	}
	if !seenMin || !seenMax {
		t.Errorf("endpoints not covered: min=%v max=%v", seenMin, seenMax)
	}
}

func TestDrawDegenerateWindowReturnsMin(t *testing.T) {
	w := Window{sec(60), sec(60)}
	if got := w.Draw(); got != sec(60) {
		t.Errorf("draw on degenerate window = %v, want 1m0s", got)
	}
}
