package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/chime/pkg/art"
	"gitlab.com/tinyland/lab/chime/pkg/schedule"
	"gitlab.com/tinyland/lab/chime/pkg/theme"
)

// Mouse zone identifiers for the clickable controls.
const (
	zoneToggle = "chime-toggle"
	zonePlay   = "chime-play"
	zoneExpand = "chime-expand"
	zoneShrink = "chime-shrink"
)

// Options configures a Model.
type Options struct {
	Scheduler *schedule.Scheduler
	Player    Player
	Theme     theme.Theme
	Logger    *slog.Logger
	Refresh   time.Duration
	ClipName  string         // shown in the title bar
	Art       *art.Renderer  // nil disables the cover art panel
	Now       func() time.Time
}

// Model is the root bubbletea model. All scheduler mutation happens inside
// Update, so the single-owner rule of schedule.Scheduler holds by
// construction.
type Model struct {
	sched  *schedule.Scheduler
	player Player
	log    *slog.Logger
	th     theme.Theme

	refresh  time.Duration
	clipName string

	keys  KeyMap
	help  help.Model
	zones *zone.Manager
	art   *art.Renderer

	width    int
	height   int
	quitting bool
	tickSeq  uint64 // advances on every start; stale ticks are dropped

	now func() time.Time
}

// NewModel creates the widget model. The scheduler starts on Init.
func NewModel(o Options) Model {
	if o.Refresh <= 0 {
		o.Refresh = 200 * time.Millisecond
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(o.Theme.HelpKey))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(o.Theme.HelpDesc))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	return Model{
		sched:    o.Scheduler,
		player:   o.Player,
		log:      o.Logger,
		th:       o.Theme,
		refresh:  o.Refresh,
		clipName: o.ClipName,
		keys:     DefaultKeyMap(),
		help:     h,
		zones:    zone.New(),
		art:      o.Art,
		now:      o.Now,
	}
}

// Init starts the scheduler and kicks off the refresh and fire cycles.
func (m Model) Init() tea.Cmd {
	a := m.sched.Start(m.now())
	m.log.Info("scheduler started",
		"delay", a.Delay,
		"window", m.sched.Window())
	return tea.Batch(FireCmd(a), TickCmd(m.refresh, m.tickSeq))
}

// Update routes messages through the widget's state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickEvent:
		// The refresh loop lives only while the scheduler runs; redraws
		// when stopped come from input events. A tick from a previous run
		// is dropped so rapid stop/start cannot stack chains.
		if m.quitting || !m.sched.Running() || msg.Seq != m.tickSeq {
			return m, nil
		}
		return m, TickCmd(m.refresh, m.tickSeq)

	case FireEvent:
		if !m.sched.Fire(msg.Generation) {
			m.log.Debug("stale fire dropped", "generation", uint64(msg.Generation))
			return m, nil
		}
		return m, PlayCmd(m.player, msg.Generation, true)

	case PlayResultEvent:
		return m.handlePlayResult(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()

	case key.Matches(msg, m.keys.PlayNow):
		return m.playNow()

	case key.Matches(msg, m.keys.Expand):
		return m.reshape(m.sched.Expand)

	case key.Matches(msg, m.keys.Shrink):
		return m.reshape(m.sched.Shrink)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch {
	case m.zones.Get(zoneToggle).InBounds(msg):
		return m.toggle()
	case m.zones.Get(zonePlay).InBounds(msg):
		return m.playNow()
	case m.zones.Get(zoneExpand).InBounds(msg):
		return m.reshape(m.sched.Expand)
	case m.zones.Get(zoneShrink).InBounds(msg):
		return m.reshape(m.sched.Shrink)
	}
	return m, nil
}

func (m Model) handlePlayResult(ev PlayResultEvent) (tea.Model, tea.Cmd) {
	if ev.Err != nil {
		// A failed scheduled play ends the chain: no lastPlayedAt, no
		// re-arm. Space restarts the cycle.
		m.log.Warn("playback failed",
			"error", ev.Err,
			"scheduled", ev.Scheduled)
		return m, nil
	}
	if !ev.Scheduled {
		// Manual plays leave lastPlayedAt and the schedule untouched.
		return m, nil
	}
	if a, ok := m.sched.Played(m.now(), ev.Generation); ok {
		m.log.Debug("chime played, re-armed", "delay", a.Delay)
		return m, FireCmd(a)
	}
	return m, nil
}

func (m Model) toggle() (tea.Model, tea.Cmd) {
	a, started := m.sched.Toggle(m.now())
	if !started {
		m.player.Pause()
		m.log.Info("scheduler stopped")
		return m, nil
	}
	m.tickSeq++
	m.log.Info("scheduler started", "delay", a.Delay)
	return m, tea.Batch(FireCmd(a), TickCmd(m.refresh, m.tickSeq))
}

func (m Model) playNow() (tea.Model, tea.Cmd) {
	return m, PlayCmd(m.player, m.sched.Generation(), false)
}

// reshape applies a window expand or shrink and schedules the follow-up
// fire when the change re-armed a running scheduler.
func (m Model) reshape(op func(time.Time) (schedule.Arming, bool)) (tea.Model, tea.Cmd) {
	a, rearmed := op(m.now())
	m.log.Debug("window adjusted", "window", m.sched.Window())
	if rearmed {
		return m, FireCmd(a)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.sched.Stop()
	m.player.Pause()
	m.log.Info("shutting down")
	return m, tea.Quit
}

// Running reports whether the scheduler is currently running.
func (m Model) Running() bool { return m.sched.Running() }

// Quitting reports whether the model has begun teardown.
func (m Model) Quitting() bool { return m.quitting }
