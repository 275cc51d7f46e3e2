// Package theme defines the color palettes for the chime widget: a handful
// of built-ins plus TOML theme files for user overrides.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is the complete color palette for the widget. All values are hex
// colors like "#7C3AED".
type Theme struct {
	Name string

	// Base colors
	Background string
	Foreground string
	Dim        string // de-emphasized text, placeholders
	Accent     string // title, keybinding highlights

	// Frame
	Border      string
	BorderFocus string // border while the scheduler is running
	Title       string

	// Status line
	StatusOK    string // running indicator
	StatusWarn  string // playback trouble
	StatusError string

	// Progress gauge
	GaugeFilled   string
	GaugeEmpty    string
	GaugeImminent string // fill color when the fire is close

	// Help bar
	HelpKey  string
	HelpDesc string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Get returns a named theme, falling back to the default when the name is
// unknown.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Has reports whether a theme with the given name is registered.
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Register adds or replaces a theme under its (lowercased) name.
func Register(t Theme) {
	if t.Name == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
