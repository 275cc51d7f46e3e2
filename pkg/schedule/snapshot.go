package schedule

import "time"

// Snapshot is a read-only view of the scheduler for display purposes,
// computed against a single instant so countdown and progress agree.
type Snapshot struct {
	Running bool
	Window  Window

	// Armed schedule, valid only when Armed is true.
	Armed       bool
	ScheduledAt time.Time
	FireAt      time.Time
	Countdown   time.Duration // fireAt - now, floored at zero
	Progress    float64       // 0..100

	// Last scheduled play, valid only when HasPlayed is true.
	HasPlayed bool
	SincePlay time.Duration
}

// Snapshot computes the display view at the given instant. When the
// scheduler is stopped, progress is 0 and no countdown is reported
// regardless of leftover schedule fields.
func (s *Scheduler) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Running:   s.running,
		Window:    s.win,
		HasPlayed: s.hasPlayed,
	}
	if s.hasPlayed {
		snap.SincePlay = now.Sub(s.lastPlayedAt)
		if snap.SincePlay < 0 {
			snap.SincePlay = 0
		}
	}
	if !s.running || !s.armed {
		return snap
	}

	snap.Armed = true
	snap.ScheduledAt = s.scheduledAt
	snap.FireAt = s.fireAt

	snap.Countdown = s.fireAt.Sub(now)
	if snap.Countdown < 0 {
		snap.Countdown = 0
	}

	snap.Progress = s.progress(now)
	return snap
}

// progress returns the elapsed fraction of the current interval as a
// percentage, clamped to [0, 100].
func (s *Scheduler) progress(now time.Time) float64 {
	total := s.fireAt.Sub(s.scheduledAt)
	if total <= 0 {
		return 100
	}
	ratio := float64(now.Sub(s.scheduledAt)) / float64(total)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}
