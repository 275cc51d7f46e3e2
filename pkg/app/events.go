// Package app hosts the bubbletea Elm-architecture widget: the root Model,
// the event types that flow through its update loop, and the commands that
// defer work back into it.
//
// Scheduling correctness hinges on one rule: every deferred fire carries the
// generation it was armed with, and the scheduler only honors a fire whose
// generation still matches. tea.Tick cannot be cancelled, so stale ticks do
// arrive; the generation check makes them inert.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/chime/pkg/schedule"
)

// TickEvent is sent by the refresh ticker to redraw the countdown and
// progress display. It circulates only while the scheduler runs. Seq ties
// the tick to the run that started it: a stop/start inside one refresh
// interval leaves the old tick in flight, and without the tag it would
// re-arm a second chain alongside the new one.
type TickEvent struct {
	Time time.Time
	Seq  uint64
}

// FireEvent is a scheduled play coming due. Generation is the epoch the
// fire was armed under; the update loop drops the event when the scheduler
// has moved on.
type FireEvent struct {
	Generation schedule.Generation
}

// PlayResultEvent reports a finished playback attempt, scheduled or manual.
// For scheduled plays, Generation ties the result back to the epoch that
// triggered it so a stop during playback suppresses the re-arm.
type PlayResultEvent struct {
	Generation schedule.Generation
	Scheduled  bool
	At         time.Time
	Err        error
}
