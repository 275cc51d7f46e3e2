package schedule

import (
	"math/rand"
	"time"
)

// Window bound clamps. Bounds are whole seconds; the gap keeps the random
// draw from degenerating into a fixed delay.
const (
	MinFloor = 30 * time.Second
	MinCeil  = 3600 * time.Second
	MaxCeil  = 7200 * time.Second
	MinGap   = 30 * time.Second

	// DefaultStep is the Expand/Shrink increment.
	DefaultStep = 60 * time.Second
)

// Window holds the bounds for the random delay between scheduled plays.
// The zero value is not valid; use DefaultWindow or Clamp.
type Window struct {
	Min time.Duration
	Max time.Duration
}

// DefaultWindow returns the 1–5 minute window used when no configuration
// overrides it.
func DefaultWindow() Window {
	return Window{Min: 60 * time.Second, Max: 300 * time.Second}
}

// Clamp returns w adjusted into the valid range:
// MinFloor <= Min <= MinCeil and Min+MinGap <= Max <= MaxCeil.
// Min is clamped first, then Max relative to the clamped Min.
func (w Window) Clamp() Window {
	w.Min = w.Min.Truncate(time.Second)
	w.Max = w.Max.Truncate(time.Second)

	if w.Min < MinFloor {
		w.Min = MinFloor
	}
	if w.Min > MinCeil {
		w.Min = MinCeil
	}
	if w.Max < w.Min+MinGap {
		w.Max = w.Min + MinGap
	}
	if w.Max > MaxCeil {
		w.Max = MaxCeil
	}
	return w
}

// Expand moves the window up and widens it: Min gains one step, Max gains
// two, so each expand also stretches the draw range by a step. The result
// is clamped.
func (w Window) Expand(step time.Duration) Window {
	w.Min += step
	w.Max += 2 * step
	return w.Clamp()
}

// Shrink is the inverse of Expand: Min loses one step, Max loses two,
// clamped.
func (w Window) Shrink(step time.Duration) Window {
	w.Min -= step
	w.Max -= 2 * step
	return w.Clamp()
}

// Valid reports whether w already satisfies the window invariant.
func (w Window) Valid() bool {
	return w == w.Clamp()
}

// draw picks a delay uniformly from [Min, Max], inclusive, in whole
// seconds. intn must behave like rand.Intn.
func (w Window) draw(intn func(int) int) time.Duration {
	lo := int(w.Min / time.Second)
	hi := int(w.Max / time.Second)
	if hi <= lo {
		return time.Duration(lo) * time.Second
	}
	return time.Duration(lo+intn(hi-lo+1)) * time.Second
}

// Draw picks a delay uniformly from [Min, Max] using the package-level
// math/rand source.
func (w Window) Draw() time.Duration {
	return w.draw(rand.Intn)
}
