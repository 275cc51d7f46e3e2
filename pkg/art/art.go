// Package art renders the clip's cover image as terminal escape sequences.
// Pixel-capable terminals get the Kitty or iTerm2 protocol via go-termimg;
// everything else falls back to Unicode half-block cells.
package art

import (
	"fmt"
	"image"
	"sync"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/chime/pkg/terminal"
)

// Renderer holds a loaded cover image and renders it at requested cell
// dimensions. Rendered output is memoized per size, since the image is
// static and only the terminal geometry changes.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	cellW    int
	cellH    int
	img      image.Image

	mu   sync.Mutex
	memo map[string]string
}

// NewRenderer creates a Renderer from the detected terminal capabilities.
// An override forces a specific protocol; pass "" for auto-detection.
func NewRenderer(caps *terminal.Capabilities, override string) *Renderer {
	proto := caps.Protocol
	if override != "" {
		proto = terminal.SelectProtocolWithOverride(caps.Term, override)
	}
	return &Renderer{
		protocol: proto,
		cellW:    caps.Size.CellW,
		cellH:    caps.Size.CellH,
		memo:     make(map[string]string),
	}
}

// Protocol returns the active rendering protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol {
	return r.protocol
}

// Load reads the cover image from disk. EXIF orientation is applied so
// phone photos come out upright.
func (r *Renderer) Load(path string) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("load cover art: %w", err)
	}
	r.mu.Lock()
	r.img = img
	r.memo = make(map[string]string)
	r.mu.Unlock()
	return nil
}

// Render produces the escape string for the loaded image fitted into the
// given cell box. Returns an empty string when no image is loaded or the
// protocol is disabled.
func (r *Renderer) Render(widthCells, heightCells int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.img == nil || r.protocol == terminal.ProtocolNone {
		return "", nil
	}
	if widthCells <= 0 || heightCells <= 0 {
		return "", nil
	}

	key := fmt.Sprintf("%s:%dx%d", r.protocol, widthCells, heightCells)
	if out, ok := r.memo[key]; ok {
		return out, nil
	}

	fitted := ResizeToFit(r.img, widthCells, heightCells, r.cellW, r.cellH)

	var out string
	var err error
	switch r.protocol {
	case terminal.ProtocolKitty:
		out, err = renderTermimg(fitted, termimg.Kitty, widthCells, heightCells)
	case terminal.ProtocolITerm2:
		out, err = renderTermimg(fitted, termimg.ITerm2, widthCells, heightCells)
	case terminal.ProtocolSixel:
		out, err = renderTermimg(fitted, termimg.Sixel, widthCells, heightCells)
	default:
		out = renderHalfblocks(fitted)
	}
	if err != nil {
		return "", fmt.Errorf("render cover art: %w", err)
	}

	r.memo[key] = out
	return out, nil
}

// renderTermimg delegates to go-termimg for the pixel protocols.
func renderTermimg(img image.Image, proto termimg.Protocol, widthCells, heightCells int) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("go-termimg: failed to wrap image")
	}
	ti.Protocol(proto).Size(widthCells, heightCells).Scale(termimg.ScaleFit)
	return ti.Render()
}
