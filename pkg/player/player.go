// Package player owns the single playback resource for the widget. Every
// play request pauses the stream and rewinds it to the start before
// playing, so overlapping requests (scheduled vs. manual) serialize into
// last-writer-wins on the one shared stream.
package player

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// RejectedError wraps any failed playback attempt: a missing audio device,
// a decode error mid-stream, a seek failure. Callers log it at Warn and
// swallow it; it never halts the scheduling loop.
type RejectedError struct {
	Err error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("playback rejected: %v", e.Err)
}

func (e *RejectedError) Unwrap() error { return e.Err }

// IsRejected reports whether err is (or wraps) a RejectedError.
func IsRejected(err error) bool {
	var re *RejectedError
	return errors.As(err, &re)
}

// speaker.Init configures a process-global mixer; doing it more than once
// drops anything already playing. The outcome is latched: when the device
// cannot be opened, every later play is rejected too, not just the first.
var speakerInit onceError

type onceError struct {
	mu   sync.Mutex
	done bool
	err  error
}

// Do runs f on the first call and returns the remembered result on every
// call after that.
func (o *onceError) Do(f func() error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.done {
		o.done = true
		o.err = f()
	}
	return o.err
}

// Player decodes one audio clip and plays it through the speaker. Methods
// are safe to call from the bubbletea command goroutines.
type Player struct {
	mu      sync.Mutex
	stream  beep.StreamSeekCloser
	format  beep.Format
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	started bool // speaker initialized
	closed  bool
}

// New opens and decodes the clip at path. The speaker is initialized lazily
// on the first Play, so New works on machines without an audio device (the
// widget still renders; plays are rejected).
func New(path string, volume float64) (*Player, error) {
	stream, format, err := decode(path)
	if err != nil {
		return nil, err
	}

	ctrl := &beep.Ctrl{Streamer: stream}
	vol := &effects.Volume{Streamer: ctrl, Base: 2}

	p := &Player{
		stream: stream,
		format: format,
		ctrl:   ctrl,
		volume: vol,
	}
	p.applyVolume(volume)
	return p, nil
}

// Duration returns the decoded length of the clip.
func (p *Player) Duration() time.Duration {
	return p.format.SampleRate.D(p.stream.Len())
}

// SetVolume sets the playback volume on a linear 0..1 scale. Zero is
// silent; values are clamped.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()

	if started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.applyVolume(v)
}

// applyVolume converts the linear scale to the exponential gain the
// effects.Volume streamer expects. Callers hold the speaker lock when the
// stream may be live.
func (p *Player) applyVolume(v float64) {
	if v <= 0 {
		p.volume.Silent = true
		p.volume.Volume = 0
		return
	}
	if v > 1 {
		v = 1
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(v)
}

// Play (re)starts the clip from the beginning. Any playback in progress is
// stopped and rewound first, whichever path requested it, so at most one
// playback is ever audible. Returns a RejectedError on failure.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return &RejectedError{Err: errors.New("player closed")}
	}

	if err := p.ensureSpeaker(); err != nil {
		return &RejectedError{Err: err}
	}

	// Drop the previous playback entirely, then rewind and resume. The
	// rewind happens under the speaker lock so the mixer never observes a
	// half-reset stream.
	speaker.Clear()
	speaker.Lock()
	seekErr := p.stream.Seek(0)
	p.ctrl.Paused = false
	speaker.Unlock()
	if seekErr != nil {
		return &RejectedError{Err: fmt.Errorf("rewind clip: %w", seekErr)}
	}

	speaker.Play(p.volume)
	return nil
}

// Pause halts playback without rewinding. A no-op before the first Play.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started || p.closed {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// Close stops playback and releases the decoded stream. The player cannot
// be reused afterwards.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.started {
		speaker.Clear()
	}
	return p.stream.Close()
}

// ensureSpeaker initializes the process-global speaker for this clip's
// sample rate. Callers hold p.mu.
func (p *Player) ensureSpeaker() error {
	if p.started {
		return nil
	}
	err := speakerInit.Do(func() error {
		// ~100ms of buffer: small enough to start promptly, large enough
		// to survive a busy render tick.
		return speaker.Init(p.format.SampleRate, p.format.SampleRate.N(100*time.Millisecond))
	})
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	p.started = true
	return nil
}
