package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultsAreValidAfterNormalize(t *testing.T) {
	cfg := Default()
	if notes := cfg.Normalize(); len(notes) != 0 {
		t.Errorf("defaults required normalization: %v", notes)
	}
	if cfg.Window.Min.Duration != 60*time.Second || cfg.Window.Max.Duration != 300*time.Second {
		t.Errorf("default window = [%v, %v], want [1m, 5m]",
			cfg.Window.Min.Duration, cfg.Window.Max.Duration)
	}
	if cfg.UI.Refresh.Duration != 200*time.Millisecond {
		t.Errorf("default refresh = %v, want 200ms", cfg.UI.Refresh.Duration)
	}
}

func TestLoadTOML(t *testing.T) {
	src := `
[clip]
path = "/tmp/chime.wav"
volume = 0.5

[window]
min = "90s"
max = "10m"

[ui]
refresh = "100ms"
theme = "gruvbox"
`
	cfg, err := LoadFromReader(strings.NewReader(src), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Clip.Path != "/tmp/chime.wav" || cfg.Clip.Volume != 0.5 {
		t.Errorf("clip = %+v", cfg.Clip)
	}
	if cfg.Window.Min.Duration != 90*time.Second || cfg.Window.Max.Duration != 10*time.Minute {
		t.Errorf("window = [%v, %v]", cfg.Window.Min.Duration, cfg.Window.Max.Duration)
	}
	if cfg.UI.Refresh.Duration != 100*time.Millisecond || cfg.UI.Theme != "gruvbox" {
		t.Errorf("ui = %+v", cfg.UI)
	}
	// Unset sections keep defaults.
	if cfg.Window.Step.Duration != 60*time.Second {
		t.Errorf("step = %v, want default 1m", cfg.Window.Step.Duration)
	}
}

func TestLoadLegacyYAML(t *testing.T) {
	src := `
clip:
  path: /tmp/chime.ogg
  volume: 1.0
window:
  min: 2m
  max: 8m
`
	cfg, err := LoadFromReader(strings.NewReader(src), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Clip.Path != "/tmp/chime.ogg" {
		t.Errorf("clip.path = %q", cfg.Clip.Path)
	}
	if cfg.Window.Min.Duration != 2*time.Minute || cfg.Window.Max.Duration != 8*time.Minute {
		t.Errorf("window = [%v, %v]", cfg.Window.Min.Duration, cfg.Window.Max.Duration)
	}
}

func TestLoadFromFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(tomlPath, []byte("[clip]\npath = \"a.wav\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("clip:\n  path: b.wav\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(tomlPath)
	if err != nil || cfg.Clip.Path != "a.wav" {
		t.Errorf("toml load: path=%q err=%v", cfg.Clip.Path, err)
	}
	cfg, err = LoadFromFile(yamlPath)
	if err != nil || cfg.Clip.Path != "b.wav" {
		t.Errorf("yaml load: path=%q err=%v", cfg.Clip.Path, err)
	}
}

func TestInvalidDurationIsRejected(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("[window]\nmin = \"soon\"\n"), FormatTOML); err == nil {
		t.Error("expected error for unparseable duration")
	}
	if _, err := LoadFromReader(strings.NewReader("[window]\nmin = \"-5s\"\n"), FormatTOML); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestNormalizeClampsOutOfRangeValues(t *testing.T) {
	cfg := Default()
	cfg.Window.Min = Duration{5 * time.Second}
	cfg.Window.Max = Duration{3 * time.Hour}
	cfg.UI.Refresh = Duration{5 * time.Millisecond}
	cfg.Clip.Volume = 1.7

	notes := cfg.Normalize()
	if len(notes) != 3 {
		t.Errorf("expected 3 adjustment notes, got %d: %v", len(notes), notes)
	}
	if cfg.Window.Min.Duration != 30*time.Second || cfg.Window.Max.Duration != 2*time.Hour {
		t.Errorf("window = [%v, %v]", cfg.Window.Min.Duration, cfg.Window.Max.Duration)
	}
	if cfg.UI.Refresh.Duration != 50*time.Millisecond {
		t.Errorf("refresh = %v", cfg.UI.Refresh.Duration)
	}
	if cfg.Clip.Volume != 1 {
		t.Errorf("volume = %v", cfg.Clip.Volume)
	}
}

func TestValidateRequiresClipPath(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing clip path")
	}

	f := filepath.Join(t.TempDir(), "c.wav")
	if err := os.WriteFile(f, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Clip.Path = f
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	cfg.Clip.Path = filepath.Join(t.TempDir(), "missing.wav")
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for nonexistent clip")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHIME_THEME", "nord")
	t.Setenv("CHIME_VOLUME", "0.25")

	cfg, err := LoadFromReader(strings.NewReader(""), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Theme != "nord" {
		t.Errorf("theme = %q, want nord", cfg.UI.Theme)
	}
	if cfg.Clip.Volume != 0.25 {
		t.Errorf("volume = %v, want 0.25", cfg.Clip.Volume)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := ExpandHome("~/x.wav"); got != filepath.Join(home, "x.wav") {
		t.Errorf("ExpandHome(~/x.wav) = %q", got)
	}
	if got := ExpandHome("/abs/x.wav"); got != "/abs/x.wav" {
		t.Errorf("ExpandHome(/abs/x.wav) = %q", got)
	}
}
