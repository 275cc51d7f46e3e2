package theme

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name   string     `toml:"name"`
	Base   tomlBase   `toml:"base"`
	Frame  tomlFrame  `toml:"frame"`
	Status tomlStatus `toml:"status"`
	Gauge  tomlGauge  `toml:"gauge"`
	Help   tomlHelp   `toml:"help"`
}

type tomlBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type tomlFrame struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type tomlStatus struct {
	OK    string `toml:"ok"`
	Warn  string `toml:"warn"`
	Error string `toml:"error"`
}

type tomlGauge struct {
	Filled   string `toml:"filled"`
	Empty    string `toml:"empty"`
	Imminent string `toml:"imminent"`
}

type tomlHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFile parses a TOML theme file, validates it, and registers the
// resulting theme. Colors left empty inherit from the default theme.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}

	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("parse theme file: %w", err)
	}
	if tt.Name == "" {
		return Theme{}, fmt.Errorf("theme file %s: name is required", path)
	}

	t := tt.toTheme()
	if err := validate(t); err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", t.Name, err)
	}

	Register(t)
	return t, nil
}

// toTheme converts the TOML form to a Theme, filling unset colors from the
// default palette.
func (tt tomlTheme) toTheme() Theme {
	base := defaultTheme()
	t := Theme{
		Name:          tt.Name,
		Background:    orDefault(tt.Base.Background, base.Background),
		Foreground:    orDefault(tt.Base.Foreground, base.Foreground),
		Dim:           orDefault(tt.Base.Dim, base.Dim),
		Accent:        orDefault(tt.Base.Accent, base.Accent),
		Border:        orDefault(tt.Frame.Border, base.Border),
		BorderFocus:   orDefault(tt.Frame.BorderFocus, base.BorderFocus),
		Title:         orDefault(tt.Frame.Title, base.Title),
		StatusOK:      orDefault(tt.Status.OK, base.StatusOK),
		StatusWarn:    orDefault(tt.Status.Warn, base.StatusWarn),
		StatusError:   orDefault(tt.Status.Error, base.StatusError),
		GaugeFilled:   orDefault(tt.Gauge.Filled, base.GaugeFilled),
		GaugeEmpty:    orDefault(tt.Gauge.Empty, base.GaugeEmpty),
		GaugeImminent: orDefault(tt.Gauge.Imminent, base.GaugeImminent),
		HelpKey:       orDefault(tt.Help.Key, base.HelpKey),
		HelpDesc:      orDefault(tt.Help.Desc, base.HelpDesc),
	}
	return t
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// validate checks that every color field is a well-formed hex color.
func validate(t Theme) error {
	fields := map[string]string{
		"background":     t.Background,
		"foreground":     t.Foreground,
		"dim":            t.Dim,
		"accent":         t.Accent,
		"border":         t.Border,
		"border_focus":   t.BorderFocus,
		"title":          t.Title,
		"status.ok":      t.StatusOK,
		"status.warn":    t.StatusWarn,
		"status.error":   t.StatusError,
		"gauge.filled":   t.GaugeFilled,
		"gauge.empty":    t.GaugeEmpty,
		"gauge.imminent": t.GaugeImminent,
		"help.key":       t.HelpKey,
		"help.desc":      t.HelpDesc,
	}
	for name, v := range fields {
		if !hexColorRe.MatchString(v) {
			return fmt.Errorf("%s: invalid color %q", name, v)
		}
	}
	return nil
}
