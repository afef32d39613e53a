package canvas

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/muurk/pinpad/internal/pinentry"
)

// DefaultBackground is the colour an Image is cleared to
const DefaultBackground pinentry.Color = "#FFFFFF"

// Image is a bitmap surface backed by a gg context.
// Widget units are multiplied by Scale to get pixels.
type Image struct {
	dc         *gg.Context
	scale      float64
	background pinentry.Color
}

// NewImage creates a width x height (widget units) bitmap at the given scale
func NewImage(width, height int, scale float64) *Image {
	if scale <= 0 {
		scale = 1
	}
	w := max(1, int(math.Ceil(float64(width)*scale)))
	h := max(1, int(math.Ceil(float64(height)*scale)))

	img := &Image{
		dc:         gg.NewContext(w, h),
		scale:      scale,
		background: DefaultBackground,
	}
	img.Clear()
	return img
}

// SetBackground changes the clear colour and clears the bitmap
func (i *Image) SetBackground(c pinentry.Color) {
	i.background = c
	i.Clear()
}

// Clear fills the bitmap with the background colour
func (i *Image) Clear() {
	i.dc.SetHexColor(string(i.background))
	i.dc.Clear()
}

// StrokeRoundedRect implements pinentry.Surface.
// gg draws circular corners, so the smaller of rx and ry is used.
func (i *Image) StrokeRoundedRect(r pinentry.Rect, rx, ry float64, paint pinentry.Paint) {
	s := i.scale
	i.dc.DrawRoundedRectangle(r.Left*s, r.Top*s, r.Width()*s, r.Height()*s, math.Min(rx, ry)*s)
	i.apply(paint)
	i.dc.Stroke()
}

// StrokeLine implements pinentry.Surface
func (i *Image) StrokeLine(x1, y1, x2, y2 float64, paint pinentry.Paint) {
	s := i.scale
	i.dc.DrawLine(x1*s, y1*s, x2*s, y2*s)
	i.apply(paint)
	i.dc.Stroke()
}

// FillCircle implements pinentry.Surface
func (i *Image) FillCircle(cx, cy, r float64, paint pinentry.Paint) {
	s := i.scale
	i.dc.DrawCircle(cx*s, cy*s, r*s)
	i.apply(paint)
	i.dc.Fill()
}

// Image returns the underlying bitmap
func (i *Image) Image() image.Image {
	return i.dc.Image()
}

// EncodePNG writes the bitmap as PNG
func (i *Image) EncodePNG(w io.Writer) error {
	if err := i.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the bitmap to path
func (i *Image) SavePNG(path string) error {
	if err := i.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}

func (i *Image) apply(p pinentry.Paint) {
	i.dc.SetHexColor(string(p.Color))
	width := p.StrokeWidth
	if width <= 0 {
		width = 1
	}
	i.dc.SetLineWidth(width * i.scale)
}
