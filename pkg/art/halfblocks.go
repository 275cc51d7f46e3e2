package art

import (
	"fmt"
	"image"
	"strings"
)

// renderHalfblocks renders an image with Unicode upper-half-block
// characters and 24-bit color. Each character cell encodes two vertical
// pixels: the top pixel as the foreground of U+2580, the bottom pixel as
// the background. Works on any terminal with true color support.
func renderHalfblocks(img image.Image) string {
	if img == nil {
		return ""
	}
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return ""
	}

	nrgba := toNRGBA(img)

	var b strings.Builder
	// Roughly 30 bytes per cell of escape overhead.
	b.Grow(srcW * (srcH/2 + 1) * 30)

	for y := 0; y < srcH; y += 2 {
		if y > 0 {
			b.WriteString("\x1b[0m\n")
		}

		for x := 0; x < srcW; x++ {
			top := nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)

			hasBottom := y+1 < srcH
			var botR, botG, botB, botA uint8
			if hasBottom {
				bot := nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
				botR, botG, botB, botA = bot.R, bot.G, bot.B, bot.A
			}

			switch {
			case top.A == 0 && botA == 0:
				// Fully transparent cell: terminal default.
				b.WriteString("\x1b[0m ")
			case top.A == 0:
				// Only the bottom pixel: lower half block, fg = bottom.
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", botR, botG, botB)
			case botA == 0 || !hasBottom:
				// Only the top pixel: upper half block, fg = top.
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, botR, botG, botB)
			}
		}
	}

	b.WriteString("\x1b[0m")
	return b.String()
}
