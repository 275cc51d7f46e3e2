// chime is a terminal widget that plays an audio clip at random intervals.
//
// Each interval is drawn uniformly from a configurable window (for example
// 1–5 minutes). The TUI shows the window, a countdown to the next chime,
// progress through the current interval, and the time since the last play,
// with start/stop, play-now, and window widen/narrow controls on both keys
// and mouse.
//
// Usage:
//
//	chime [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/chime/config.toml)
//	-clip string    Audio clip path (overrides config)
//	-theme string   Color theme (overrides config)
//	-play           Play the clip once and exit
//	-list-themes    List available themes and exit
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/chime/pkg/app"
	"gitlab.com/tinyland/lab/chime/pkg/art"
	"gitlab.com/tinyland/lab/chime/pkg/config"
	"gitlab.com/tinyland/lab/chime/pkg/player"
	"gitlab.com/tinyland/lab/chime/pkg/schedule"
	"gitlab.com/tinyland/lab/chime/pkg/terminal"
	"gitlab.com/tinyland/lab/chime/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		clipPath    = flag.String("clip", "", "Audio clip path (overrides config)")
		themeName   = flag.String("theme", "", "Color theme (overrides config)")
		playOnce    = flag.Bool("play", false, "Play the clip once and exit")
		listThemes  = flag.Bool("list-themes", false, "List available themes and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("chime %s (%s, built %s)\n", version, commit, date)
		return
	}

	// Load configuration.
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides beat both file and environment.
	if *clipPath != "" {
		cfg.Clip.Path = *clipPath
	}
	if *themeName != "" {
		cfg.UI.Theme = *themeName
	}

	if cfg.UI.ThemeFile != "" {
		if _, err := theme.LoadFile(config.ExpandHome(cfg.UI.ThemeFile)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load theme file: %v\n", err)
			os.Exit(1)
		}
	}

	if *listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		return
	}

	notes := cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging. The TUI owns the terminal, so interactive runs log to
	// the file only; one-shot modes also mirror to stderr.
	if err := ensureLogDir(cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	var logWriter io.Writer = logFile
	if *playOnce {
		logWriter = io.MultiWriter(os.Stderr, logFile)
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level, *verbose),
	}))

	for _, note := range notes {
		logger.Warn("config adjusted", "note", note)
	}
	if !theme.Has(cfg.UI.Theme) {
		logger.Warn("unknown theme, using default", "theme", cfg.UI.Theme)
	}

	// The playback resource is shared by every mode.
	pl, err := player.New(config.ExpandHome(cfg.Clip.Path), cfg.Clip.Volume)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open clip: %v\n", err)
		os.Exit(1)
	}
	defer pl.Close()

	if *playOnce {
		logger.Info("playing clip once",
			"clip", cfg.Clip.Path,
			"duration", pl.Duration())
		if err := pl.Play(); err != nil {
			logger.Error("playback failed", "error", err)
			os.Exit(1)
		}
		// Play returns once the stream is handed to the speaker; wait for
		// the clip to finish before tearing the speaker down.
		time.Sleep(pl.Duration() + 200*time.Millisecond)
		return
	}

	if !terminal.IsTTY() {
		fmt.Fprintln(os.Stderr, "chime needs an interactive terminal (use -play for one-shot playback)")
		os.Exit(1)
	}

	caps := terminal.DetectCapabilities()
	logger.Debug("terminal detected",
		"term", caps.Term.String(),
		"protocol", caps.Protocol.String(),
		"truecolor", caps.TrueColor)

	var artRenderer *art.Renderer
	if cfg.UI.ArtEnabled && cfg.Clip.Art != "" {
		artRenderer = art.NewRenderer(caps, "")
		if err := artRenderer.Load(config.ExpandHome(cfg.Clip.Art)); err != nil {
			logger.Warn("cover art disabled", "error", err)
			artRenderer = nil
		}
	}

	model := app.NewModel(app.Options{
		Scheduler: scheduler(cfg),
		Player:    pl,
		Theme:     theme.Get(cfg.UI.Theme),
		Logger:    logger,
		Refresh:   cfg.UI.Refresh.Duration,
		ClipName:  filepath.Base(cfg.Clip.Path),
		Art:       artRenderer,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// SIGTERM quits the program cleanly; bubbletea already maps Ctrl+C to
	// a key event the model handles.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		os.Exit(1)
	}
	pl.Pause()
	logger.Info("chime exited")
}

// scheduler builds the scheduling core from the configured window and step.
func scheduler(cfg *config.Config) *schedule.Scheduler {
	return schedule.New(cfg.ScheduleWindow(), schedule.WithStep(cfg.Window.Step.Duration))
}

// logLevel maps the configured level name to a slog level; -verbose wins.
func logLevel(name string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureLogDir creates the parent directory of the log file.
func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
