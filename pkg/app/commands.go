package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/chime/pkg/schedule"
)

// Player is the playback surface the update loop drives. pkg/player
// satisfies it; tests substitute fakes.
type Player interface {
	Play() error
	Pause()
}

// TickCmd returns a Cmd that sends a TickEvent after the given duration.
// This drives the periodic display refresh while the scheduler runs; seq
// identifies the run the tick belongs to.
func TickCmd(d time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t, Seq: seq}
	})
}

// FireCmd returns a Cmd that delivers a FireEvent after the armed delay,
// carrying the generation the schedule was armed with.
func FireCmd(a schedule.Arming) tea.Cmd {
	return tea.Tick(a.Delay, func(time.Time) tea.Msg {
		return FireEvent{Generation: a.Generation}
	})
}

// PlayCmd returns a Cmd that plays the clip off the update loop and
// delivers the outcome as a PlayResultEvent.
func PlayCmd(p Player, gen schedule.Generation, scheduled bool) tea.Cmd {
	return func() tea.Msg {
		err := p.Play()
		return PlayResultEvent{
			Generation: gen,
			Scheduled:  scheduled,
			At:         time.Now(),
			Err:        err,
		}
	}
}
