package ui

import (
	"github.com/muurk/pinpad/internal/canvas"
	"github.com/muurk/pinpad/internal/pinentry"
)

// RenderFrame draws the widget onto a width x height dot braille raster
// and returns the coloured terminal text
func RenderFrame(w *pinentry.Widget, width, height int) string {
	b := canvas.NewBraille(width, height)
	w.Render(b)
	return b.Render()
}

// FrameCells returns the terminal size of a width x height dot frame
func FrameCells(width, height int) (cols, rows int) {
	cols = (max(width, 0) + canvas.DotsPerCol - 1) / canvas.DotsPerCol
	rows = (max(height, 0) + canvas.DotsPerRow - 1) / canvas.DotsPerRow
	return cols, rows
}
