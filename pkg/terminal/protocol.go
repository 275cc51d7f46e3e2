package terminal

import "strings"

// GraphicsProtocol identifies which image rendering protocol to use for
// cover art.
type GraphicsProtocol int

const (
	ProtocolNone       GraphicsProtocol = iota // No graphics at all
	ProtocolKitty                              // Kitty graphics protocol
	ProtocolITerm2                             // iTerm2 inline images protocol
	ProtocolSixel                              // Sixel graphics protocol
	ProtocolHalfblocks                         // Unicode half-block cells with ANSI color
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

// String returns the human-readable name of the graphics protocol.
func (p GraphicsProtocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// SelectProtocol returns the best graphics protocol for the detected
// terminal. Pixel protocols over SSH are often unreliable, so SSH sessions
// degrade to halfblocks.
func SelectProtocol(term Terminal) GraphicsProtocol {
	if isSSH() {
		return ProtocolHalfblocks
	}
	switch term {
	case TermGhostty, TermKitty, TermWezTerm:
		return ProtocolKitty
	case TermITerm2:
		return ProtocolITerm2
	default:
		return ProtocolHalfblocks
	}
}

// SelectProtocolWithOverride allows user configuration to force a specific
// graphics protocol. If override is empty or unrecognized, detection
// proceeds normally.
func SelectProtocolWithOverride(term Terminal, override string) GraphicsProtocol {
	switch strings.ToLower(override) {
	case "kitty":
		return ProtocolKitty
	case "iterm2":
		return ProtocolITerm2
	case "sixel":
		return ProtocolSixel
	case "halfblocks", "unicode":
		return ProtocolHalfblocks
	case "none", "off", "disabled":
		return ProtocolNone
	default:
		return SelectProtocol(term)
	}
}
