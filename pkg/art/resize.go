package art

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ResizeToFit scales an image to fit within the given cell box while
// preserving aspect ratio. CatmullRom resampling keeps downscaled art
// crisp. Images that already fit are returned unmodified; there is no
// upscaling.
//
// cellW and cellH are the pixel dimensions of one terminal cell; zero
// values fall back to the common 8x16.
func ResizeToFit(img image.Image, maxWidthCells, maxHeightCells, cellW, cellH int) image.Image {
	if img == nil {
		return nil
	}

	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	if maxWidthCells <= 0 {
		maxWidthCells = 1
	}
	if maxHeightCells <= 0 {
		maxHeightCells = 1
	}

	maxW := maxWidthCells * cellW
	maxH := maxHeightCells * cellH

	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return img
	}
	if srcW <= maxW && srcH <= maxH {
		return img
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	dstW := int(math.Round(float64(srcW) * scale))
	dstH := int(math.Round(float64(srcH) * scale))
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// toNRGBA converts any image.Image to *image.NRGBA for fast pixel access.
func toNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
