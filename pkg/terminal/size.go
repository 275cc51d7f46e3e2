package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// Size represents terminal dimensions in both character cells and pixels.
// Pixel fields are zero when the terminal does not report them.
type Size struct {
	Cols   int // Character columns
	Rows   int // Character rows
	PixelW int // Total pixel width
	PixelH int // Total pixel height
	CellW  int // Pixel width per cell
	CellH  int // Pixel height per cell
}

// GetSize returns the current terminal dimensions. It tries multiple
// strategies in order:
//  1. TIOCGWINSZ ioctl on stdout, then stderr (yields pixel dimensions too)
//  2. x/term GetSize on stdout (cells only)
//  3. COLUMNS/LINES environment variables
//  4. Fallback to 80x24
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s := sizeFromIoctl(f.Fd()); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	if cols, rows, err := term.GetSize(os.Stdout.Fd()); err == nil && cols > 0 {
		return Size{Cols: cols, Rows: rows}
	}
	return sizeFromEnv()
}

// sizeFromIoctl queries the terminal size via TIOCGWINSZ. Returns a
// zero-value Size on failure.
func sizeFromIoctl(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}

	s := Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		PixelW: int(ws.Xpixel),
		PixelH: int(ws.Ypixel),
	}

	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}

	return s
}

func sizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback when unset or malformed.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
