package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is the cached capability summary for the current session.
// It aggregates terminal detection, graphics protocol selection, and the
// size query into a single struct.
type Capabilities struct {
	Term      Terminal         // Detected terminal emulator
	Protocol  GraphicsProtocol // Selected graphics protocol for cover art
	Size      Size             // Terminal dimensions
	TrueColor bool             // 24-bit color support
	TTY       bool             // Stdout is an interactive terminal
	SSH       bool             // Running over SSH
}

var (
	cached     *Capabilities
	detectOnce sync.Once
)

// DetectCapabilities performs full terminal detection and caches the result.
// Safe to call from multiple goroutines; detection runs exactly once via
// sync.Once.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// IsTTY reports whether stdout is attached to an interactive terminal,
// including Cygwin/MSYS pseudo-terminals.
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func detect() *Capabilities {
	t := Detect()

	// True color: the terminal natively supports it, or termenv resolves
	// the environment to a 24-bit profile (COLORTERM and friends).
	trueColor := t.SupportsTrueColor()
	if !trueColor {
		trueColor = termenv.EnvColorProfile() == termenv.TrueColor
	}

	return &Capabilities{
		Term:      t,
		Protocol:  SelectProtocol(t),
		Size:      GetSize(),
		TrueColor: trueColor,
		TTY:       IsTTY(),
		SSH:       isSSH(),
	}
}
