package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/muurk/pinpad/internal/pinentry"
)

func sameRGB(c color.Color, r, g, b uint8) bool {
	cr, cg, cb, _ := c.RGBA()
	return uint8(cr>>8) == r && uint8(cg>>8) == g && uint8(cb>>8) == b
}

func renderImage(t *testing.T, scale float64, digits ...int) *Image {
	t.Helper()
	w := pinentry.MustNew(pinentry.Config{Capacity: 4}, pinentry.Hooks{})
	w.SizeSettled(80, 20)
	for _, d := range digits {
		w.AppendDigit(d)
	}
	img := NewImage(80, 20, scale)
	w.Render(img)
	return img
}

func TestImage_DotsAndBackground(t *testing.T) {
	img := renderImage(t, 2, 5)
	bmp := img.Image()

	if got := bmp.Bounds().Dx(); got != 160 {
		t.Errorf("width = %d px, want 160", got)
	}

	// Centre of the first cell holds a dot
	if c := bmp.At(20, 20); !sameRGB(c, 0x88, 0x88, 0x88) {
		t.Errorf("dot pixel = %v, want #888888", c)
	}
	// Centre of the second cell is background
	if c := bmp.At(60, 20); !sameRGB(c, 0xFF, 0xFF, 0xFF) {
		t.Errorf("empty cell pixel = %v, want white", c)
	}
}

func TestImage_SetBackground(t *testing.T) {
	img := NewImage(10, 10, 1)
	img.SetBackground("#000000")

	if c := img.Image().At(5, 5); !sameRGB(c, 0, 0, 0) {
		t.Errorf("pixel = %v, want black", c)
	}
}

func TestImage_EncodeAndSavePNG(t *testing.T) {
	img := renderImage(t, 1, 1, 2)

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds().Dx() != 80 || decoded.Bounds().Dy() != 20 {
		t.Errorf("decoded size = %v", decoded.Bounds())
	}

	path := filepath.Join(t.TempDir(), "pin.png")
	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
}

func TestImage_SavePNGBadPath(t *testing.T) {
	img := NewImage(4, 4, 1)
	if err := img.SavePNG(filepath.Join(t.TempDir(), "missing", "pin.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}
