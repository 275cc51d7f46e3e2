package art

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/chime/pkg/terminal"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "art.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, solidImage(w, h, color.NRGBA{R: 200, G: 100, B: 50, A: 255})); err != nil {
		t.Fatal(err)
	}
	return path
}

func halfblockCaps() *terminal.Capabilities {
	return &terminal.Capabilities{
		Protocol: terminal.ProtocolHalfblocks,
		Size:     terminal.Size{Cols: 80, Rows: 24, CellW: 8, CellH: 16},
	}
}

func TestResizeToFitPreservesSmallImages(t *testing.T) {
	src := solidImage(10, 10, color.NRGBA{A: 255})
	got := ResizeToFit(src, 20, 20, 8, 16)
	if got != image.Image(src) {
		t.Error("image within budget should be returned unmodified")
	}
}

func TestResizeToFitDownscalesPreservingAspect(t *testing.T) {
	src := solidImage(800, 400, color.NRGBA{A: 255})
	got := ResizeToFit(src, 10, 10, 8, 16) // 80x160 pixel budget
	b := got.Bounds()
	if b.Dx() != 80 {
		t.Errorf("width = %d, want 80", b.Dx())
	}
	if b.Dy() != 40 {
		t.Errorf("height = %d, want 40 (2:1 aspect)", b.Dy())
	}
}

func TestRenderHalfblocksGeometry(t *testing.T) {
	out := renderHalfblocks(solidImage(4, 6, color.NRGBA{R: 255, A: 255}))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("6 pixel rows render as %d lines, want 3", len(lines))
	}
	if !strings.Contains(out, "▀") {
		t.Error("output missing upper half block")
	}
}

func TestRenderHalfblocksTransparency(t *testing.T) {
	out := renderHalfblocks(solidImage(2, 2, color.NRGBA{}))
	if strings.Contains(out, "▀") || strings.Contains(out, "▄") {
		t.Error("fully transparent image should render as blank cells")
	}
}

func TestRendererLoadAndRender(t *testing.T) {
	r := NewRenderer(halfblockCaps(), "")
	if err := r.Load(writeTestPNG(t, 64, 64)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	out, err := r.Render(8, 4)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out == "" {
		t.Fatal("expected non-empty halfblock output")
	}

	// Second render at the same size comes from the memo.
	again, err := r.Render(8, 4)
	if err != nil {
		t.Fatalf("Render (memoized): %v", err)
	}
	if again != out {
		t.Error("memoized render differs from first render")
	}
}

func TestRendererWithoutImage(t *testing.T) {
	r := NewRenderer(halfblockCaps(), "")
	out, err := r.Render(8, 4)
	if err != nil || out != "" {
		t.Errorf("Render with no image = (%q, %v), want empty", out, err)
	}
}

func TestRendererProtocolDisabled(t *testing.T) {
	r := NewRenderer(halfblockCaps(), "none")
	if err := r.Load(writeTestPNG(t, 16, 16)); err != nil {
		t.Fatal(err)
	}
	out, err := r.Render(8, 4)
	if err != nil || out != "" {
		t.Errorf("Render with protocol none = (%q, %v), want empty", out, err)
	}
}

func TestRendererLoadMissingFile(t *testing.T) {
	r := NewRenderer(halfblockCaps(), "")
	if err := r.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing art file")
	}
}
