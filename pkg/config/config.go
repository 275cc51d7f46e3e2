package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/chime/pkg/schedule"
)

// Config is the root configuration for the chime widget.
type Config struct {
	Clip   ClipConfig   `toml:"clip" yaml:"clip"`
	Window WindowConfig `toml:"window" yaml:"window"`
	UI     UIConfig     `toml:"ui" yaml:"ui"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// ClipConfig identifies the audio clip and how loudly to play it. The
// widget is inert without a clip path.
type ClipConfig struct {
	Path   string  `toml:"path" yaml:"path"`
	Volume float64 `toml:"volume" yaml:"volume"` // 0..1
	Art    string  `toml:"art" yaml:"art"`       // optional cover art image
}

// WindowConfig bounds the random delay between scheduled plays.
type WindowConfig struct {
	Min  Duration `toml:"min" yaml:"min"`
	Max  Duration `toml:"max" yaml:"max"`
	Step Duration `toml:"step" yaml:"step"`
}

// UIConfig controls the TUI refresh cadence and appearance.
type UIConfig struct {
	Refresh    Duration `toml:"refresh" yaml:"refresh"`
	Theme      string   `toml:"theme" yaml:"theme"`
	ThemeFile  string   `toml:"theme_file" yaml:"theme_file"`
	ArtEnabled bool     `toml:"art_enabled" yaml:"art_enabled"`
}

// LogConfig controls log output. An empty File defaults to the XDG state
// directory at load time.
type LogConfig struct {
	File  string `toml:"file" yaml:"file"`
	Level string `toml:"level" yaml:"level"`
}

// Refresh cadence clamps. Below 50ms the redraw costs more than it shows;
// above 1s the countdown visibly stutters.
const (
	minRefresh = 50 * time.Millisecond
	maxRefresh = time.Second
)

// Default returns the default configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Clip: ClipConfig{
			Volume: 0.8,
		},
		Window: WindowConfig{
			Min:  Duration{60 * time.Second},
			Max:  Duration{300 * time.Second},
			Step: Duration{schedule.DefaultStep},
		},
		UI: UIConfig{
			Refresh:    Duration{200 * time.Millisecond},
			Theme:      "default",
			ArtEnabled: true,
		},
		Log: LogConfig{
			File:  filepath.Join(xdgStateHome(home), "chime", "chime.log"),
			Level: "info",
		},
	}
}

// Validate checks the parts of the configuration that cannot be repaired
// by Normalize. The clip path is required and must exist.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Clip.Path) == "" {
		return fmt.Errorf("clip.path is required (the widget is inert without a clip)")
	}
	p := ExpandHome(c.Clip.Path)
	if _, err := os.Stat(p); err != nil {
		return fmt.Errorf("clip.path %q: %w", c.Clip.Path, err)
	}
	return nil
}

// Normalize clamps out-of-range values in place and returns a note per
// adjustment, for the caller to log at Warn.
func (c *Config) Normalize() []string {
	var notes []string

	win := schedule.Window{Min: c.Window.Min.Duration, Max: c.Window.Max.Duration}
	if !win.Valid() {
		clamped := win.Clamp()
		notes = append(notes, fmt.Sprintf("window [%v, %v] clamped to [%v, %v]",
			win.Min, win.Max, clamped.Min, clamped.Max))
		c.Window.Min = Duration{clamped.Min}
		c.Window.Max = Duration{clamped.Max}
	}
	if c.Window.Step.Duration <= 0 {
		notes = append(notes, fmt.Sprintf("window.step defaulted to %v", schedule.DefaultStep))
		c.Window.Step = Duration{schedule.DefaultStep}
	}

	if c.UI.Refresh.Duration < minRefresh {
		notes = append(notes, fmt.Sprintf("ui.refresh raised to %v", minRefresh))
		c.UI.Refresh = Duration{minRefresh}
	} else if c.UI.Refresh.Duration > maxRefresh {
		notes = append(notes, fmt.Sprintf("ui.refresh lowered to %v", maxRefresh))
		c.UI.Refresh = Duration{maxRefresh}
	}

	if c.Clip.Volume < 0 {
		notes = append(notes, "clip.volume raised to 0")
		c.Clip.Volume = 0
	} else if c.Clip.Volume > 1 {
		notes = append(notes, "clip.volume lowered to 1")
		c.Clip.Volume = 1
	}

	return notes
}

// ScheduleWindow returns the configured window as a schedule.Window.
func (c *Config) ScheduleWindow() schedule.Window {
	return schedule.Window{Min: c.Window.Min.Duration, Max: c.Window.Max.Duration}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CHIME_CLIP"); v != "" {
		cfg.Clip.Path = v
	}
	if v := os.Getenv("CHIME_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("CHIME_VOLUME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Clip.Volume = f
		}
	}
	if v := os.Getenv("CHIME_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// ExpandHome expands a leading "~/" to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgStateHome returns XDG_STATE_HOME or ~/.local/state as fallback.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
