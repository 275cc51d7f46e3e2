// Package terminal provides terminal emulator detection, graphics protocol
// selection, and size queries for the chime TUI. Detection relies on
// environment variable inspection only, so it costs nothing and needs no
// terminal round-trips.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown Terminal = iota
	TermGhostty          // Ghostty (kitty graphics, true color)
	TermKitty            // Kitty (kitty graphics)
	TermWezTerm          // WezTerm (kitty graphics, sixel, iterm2 images)
	TermITerm2           // iTerm2 (iterm2 images, true color)
	TermVSCode           // VS Code integrated terminal
	TermTmux             // tmux multiplexer
	TermGeneric          // Unknown terminal with basic capabilities
)

var terminalNames = [...]string{
	TermUnknown: "unknown",
	TermGhostty: "ghostty",
	TermKitty:   "kitty",
	TermWezTerm: "wezterm",
	TermITerm2:  "iterm2",
	TermVSCode:  "vscode",
	TermTmux:    "tmux",
	TermGeneric: "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsKittyGraphics reports whether the terminal supports the Kitty
// graphics protocol for inline image rendering.
func (t Terminal) SupportsKittyGraphics() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm:
		return true
	default:
		return false
	}
}

// SupportsITerm2Images reports whether the terminal supports the iTerm2
// inline images protocol.
func (t Terminal) SupportsITerm2Images() bool {
	switch t {
	case TermITerm2, TermWezTerm:
		return true
	default:
		return false
	}
}

// SupportsTrueColor reports whether the terminal supports 24-bit true color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2, TermVSCode:
		return true
	default:
		return false
	}
}

// Detect identifies the terminal emulator from environment variables.
// Detection proceeds through signals ordered by reliability:
//
//  1. TERM_PROGRAM env var (most terminals set this)
//  2. TERM env var (xterm-ghostty, xterm-kitty)
//  3. Terminal-specific vars (KITTY_WINDOW_ID, ITERM_SESSION_ID, ...)
//  4. TMUX for the multiplexer
//  5. LC_TERMINAL for iTerm2 over SSH
//  6. Fallback to TermGeneric
func Detect() Terminal {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		switch strings.ToLower(tp) {
		case "ghostty":
			return TermGhostty
		case "kitty":
			return TermKitty
		case "wezterm":
			return TermWezTerm
		case "iterm.app":
			return TermITerm2
		case "vscode":
			return TermVSCode
		case "tmux":
			return TermTmux
		}
	}

	switch os.Getenv("TERM") {
	case "xterm-ghostty":
		return TermGhostty
	case "xterm-kitty":
		return TermKitty
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return TermKitty
	}
	if os.Getenv("ITERM_SESSION_ID") != "" {
		return TermITerm2
	}
	if os.Getenv("WEZTERM_EXECUTABLE") != "" {
		return TermWezTerm
	}

	// Checked late so inner terminal detection from TERM_PROGRAM wins.
	if os.Getenv("TMUX") != "" {
		return TermTmux
	}

	if os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}

	return TermGeneric
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
