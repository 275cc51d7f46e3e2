package components

import "testing"

func TestVisibleLenIgnoresEscapes(t *testing.T) {
	s := Color("#ff0000") + "next" + Reset
	if got := VisibleLen(s); got != 4 {
		t.Errorf("VisibleLen = %d, want 4", got)
	}
}

func TestTruncateKeepsEscapes(t *testing.T) {
	s := Color("#ff0000") + "3m 12s" + Reset
	got := Truncate(s, 2)
	if VisibleLen(got) != 2 {
		t.Errorf("truncated width = %d, want 2", VisibleLen(got))
	}
	if got == "3m" {
		t.Error("escape sequence lost in truncation")
	}
	if Truncate("anything", 0) != "" {
		t.Error("zero width must yield an empty string")
	}
}

func TestTruncateWithTailCountsTail(t *testing.T) {
	got := TruncateWithTail("a long title", 6, "…")
	if VisibleLen(got) != 6 {
		t.Errorf("width = %d, want 6", VisibleLen(got))
	}
	if got[len(got)-len("…"):] != "…" {
		t.Errorf("%q does not end with the tail", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("last", 9); got != "last     " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("already wide", 4); got != "already wide" {
		t.Errorf("wide string changed: %q", got)
	}
	// Escape sequences take no cells, so padding is computed on the
	// visible width.
	colored := Color("#00ff00") + "ok" + Reset
	if got := PadRight(colored, 4); VisibleLen(got) != 4 {
		t.Errorf("padded width = %d, want 4", VisibleLen(got))
	}
}
