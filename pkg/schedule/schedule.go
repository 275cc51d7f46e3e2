// Package schedule implements the single-timer scheduling core of chime:
// at most one pending scheduled play exists at any time, every reset or
// re-arm bumps a generation counter, and a deferred fire whose captured
// generation no longer matches the current one is a no-op.
//
// The package is deliberately free of timers and goroutines. A Scheduler is
// a plain state machine driven by the caller's clock: the caller arms it,
// receives an Arming (delay + generation token), defers execution however
// it likes (tea.Tick, time.AfterFunc, a test calling methods directly), and
// reports the fire back. The generation token is the cancellation
// mechanism, so the design works even where native timer cancellation is
// unavailable.
package schedule

import (
	"math/rand"
	"time"
)

// Generation is the epoch counter that invalidates stale deferred fires.
// It increments on every arm and every stop.
type Generation uint64

// Arming describes a newly armed schedule: wait Delay, then call
// Scheduler.Fire with Generation. A zero Arming (Delay 0, Generation 0) is
// never produced by a live scheduler.
type Arming struct {
	Delay      time.Duration
	Generation Generation
}

// Scheduler owns all scheduling state for one widget instance. It is not
// safe for concurrent use; in the TUI it lives inside the bubbletea update
// loop, which is single-threaded by construction.
type Scheduler struct {
	win  Window
	step time.Duration

	running    bool
	generation Generation

	scheduledAt time.Time
	fireAt      time.Time
	armed       bool

	lastPlayedAt time.Time
	hasPlayed    bool

	intn func(int) int
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithRand replaces the random source used for delay draws. intn must
// behave like rand.Intn. Used by tests for deterministic draws.
func WithRand(intn func(int) int) Option {
	return func(s *Scheduler) { s.intn = intn }
}

// WithStep overrides the expand/shrink increment (default 60s).
func WithStep(step time.Duration) Option {
	return func(s *Scheduler) {
		if step > 0 {
			s.step = step.Truncate(time.Second)
		}
	}
}

// New creates a stopped Scheduler with the given window (clamped into the
// valid range).
func New(win Window, opts ...Option) *Scheduler {
	s := &Scheduler{
		win:  win.Clamp(),
		step: DefaultStep,
		intn: rand.Intn,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Running reports whether the scheduler is started.
func (s *Scheduler) Running() bool { return s.running }

// Window returns the current delay window.
func (s *Scheduler) Window() Window { return s.win }

// Generation returns the current epoch. Only fires carrying exactly this
// value are live.
func (s *Scheduler) Generation() Generation { return s.generation }

// Start sets running and arms a fresh schedule. Calling Start while already
// running still re-arms: the previous pending fire is invalidated and a new
// delay is drawn.
func (s *Scheduler) Start(now time.Time) Arming {
	s.running = true
	return s.arm(now)
}

// Stop clears running, invalidates any pending fire by bumping the
// generation, and clears the schedule fields. Callers cancel their native
// timer as well where possible; the generation bump is what guarantees a
// late fire stays inert.
func (s *Scheduler) Stop() {
	s.running = false
	s.generation++
	s.armed = false
	s.scheduledAt = time.Time{}
	s.fireAt = time.Time{}
}

// Toggle starts when stopped and stops when running. The returned Arming is
// meaningful only when started is true.
func (s *Scheduler) Toggle(now time.Time) (a Arming, started bool) {
	if s.running {
		s.Stop()
		return Arming{}, false
	}
	return s.Start(now), true
}

// Expand widens the window by one step. When running, the pending fire is
// invalidated and a new delay is drawn from the new window.
func (s *Scheduler) Expand(now time.Time) (a Arming, rearmed bool) {
	s.win = s.win.Expand(s.step)
	return s.rearmIfRunning(now)
}

// Shrink narrows the window by one step, re-arming like Expand.
func (s *Scheduler) Shrink(now time.Time) (a Arming, rearmed bool) {
	s.win = s.win.Shrink(s.step)
	return s.rearmIfRunning(now)
}

// Fire validates a deferred fire. It returns true when the fire is live:
// the scheduler is still running and gen matches the current generation.
// A stale or stopped fire returns false and must be treated as a no-op by
// the caller. Fire itself does not mutate state; the schedule fields stay
// in place until Played re-arms or Stop clears them.
func (s *Scheduler) Fire(gen Generation) bool {
	return s.running && gen == s.generation
}

// Played records a completed scheduled playback and arms the next cycle.
// The playback did happen, so lastPlayedAt is recorded even when the
// scheduler stopped or re-armed while it was in flight; only the re-arm is
// gated on the generation still being current. Manual plays never call
// this: play-now does not touch lastPlayedAt or the schedule.
func (s *Scheduler) Played(now time.Time, gen Generation) (a Arming, ok bool) {
	s.lastPlayedAt = now
	s.hasPlayed = true
	if !s.running || gen != s.generation {
		return Arming{}, false
	}
	return s.arm(now), true
}

// arm invalidates any pending fire and registers a new schedule with a
// fresh uniform random delay.
func (s *Scheduler) arm(now time.Time) Arming {
	s.generation++
	delay := s.win.draw(s.intn)
	s.scheduledAt = now
	s.fireAt = now.Add(delay)
	s.armed = true
	return Arming{Delay: delay, Generation: s.generation}
}

func (s *Scheduler) rearmIfRunning(now time.Time) (Arming, bool) {
	if !s.running {
		return Arming{}, false
	}
	return s.arm(now), true
}
