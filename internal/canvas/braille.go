package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pinpad/internal/pinentry"
)

const (
	// DotsPerCol is the number of horizontal dots in one terminal cell
	DotsPerCol = 2
	// DotsPerRow is the number of vertical dots in one terminal cell
	DotsPerRow = 4

	brailleBase = 0x2800
)

// brailleBits maps a dot position inside a cell ([x][y]) to its bit
var brailleBits = [DotsPerCol][DotsPerRow]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// arcSteps is the number of segments used per rounded corner
const arcSteps = 16

// Braille is a dot raster rendered as braille characters
type Braille struct {
	width  int // in dots
	height int // in dots
	cells  []rune
	colors []pinentry.Color
}

// NewBraille creates a blank raster width x height dots in size
func NewBraille(width, height int) *Braille {
	width = max(width, 0)
	height = max(height, 0)
	b := &Braille{width: width, height: height}
	n := b.Cols() * b.Rows()
	b.cells = make([]rune, n)
	b.colors = make([]pinentry.Color, n)
	return b
}

// Cols returns the width in terminal cells
func (b *Braille) Cols() int {
	return (b.width + DotsPerCol - 1) / DotsPerCol
}

// Rows returns the height in terminal cells
func (b *Braille) Rows() int {
	return (b.height + DotsPerRow - 1) / DotsPerRow
}

// Clear removes every dot
func (b *Braille) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
		b.colors[i] = ""
	}
}

// Set turns on the dot at (x, y). Out-of-range dots are dropped.
func (b *Braille) Set(x, y int, c pinentry.Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := (y/DotsPerRow)*b.Cols() + x/DotsPerCol
	b.cells[i] |= brailleBits[x%DotsPerCol][y%DotsPerRow]
	b.colors[i] = c
}

// IsSet reports whether the dot at (x, y) is on
func (b *Braille) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	i := (y/DotsPerRow)*b.Cols() + x/DotsPerCol
	return b.cells[i]&brailleBits[x%DotsPerCol][y%DotsPerRow] != 0
}

// StrokeLine implements pinentry.Surface
func (b *Braille) StrokeLine(x1, y1, x2, y2 float64, paint pinentry.Paint) {
	b.line(round(x1), round(y1), round(x2), round(y2), paint.Color)
}

// StrokeRoundedRect implements pinentry.Surface
func (b *Braille) StrokeRoundedRect(r pinentry.Rect, rx, ry float64, paint pinentry.Paint) {
	rx = math.Max(0, math.Min(rx, r.Width()/2))
	ry = math.Max(0, math.Min(ry, r.Height()/2))

	// Straight edges between the corners
	b.StrokeLine(r.Left+rx, r.Top, r.Right-rx, r.Top, paint)
	b.StrokeLine(r.Left+rx, r.Bottom, r.Right-rx, r.Bottom, paint)
	b.StrokeLine(r.Left, r.Top+ry, r.Left, r.Bottom-ry, paint)
	b.StrokeLine(r.Right, r.Top+ry, r.Right, r.Bottom-ry, paint)

	if rx == 0 || ry == 0 {
		return
	}

	corners := []struct {
		cx, cy float64
		start  float64
	}{
		{r.Right - rx, r.Top + ry, -math.Pi / 2},
		{r.Right - rx, r.Bottom - ry, 0},
		{r.Left + rx, r.Bottom - ry, math.Pi / 2},
		{r.Left + rx, r.Top + ry, math.Pi},
	}
	for _, c := range corners {
		px, py := c.cx+rx*math.Cos(c.start), c.cy+ry*math.Sin(c.start)
		for i := 1; i <= arcSteps; i++ {
			a := c.start + (math.Pi/2)*float64(i)/arcSteps
			x, y := c.cx+rx*math.Cos(a), c.cy+ry*math.Sin(a)
			b.StrokeLine(px, py, x, y, paint)
			px, py = x, y
		}
	}
}

// FillCircle implements pinentry.Surface
func (b *Braille) FillCircle(cx, cy, r float64, paint pinentry.Paint) {
	// A dot too small to cover any sample still marks its centre
	b.Set(int(math.Floor(cx)), int(math.Floor(cy)), paint.Color)

	r2 := r * r
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				b.Set(x, y, paint.Color)
			}
		}
	}
}

// Lines returns the raster as uncoloured text, one string per row
func (b *Braille) Lines() []string {
	cols := b.Cols()
	lines := make([]string, b.Rows())
	for row := range lines {
		var sb strings.Builder
		for col := 0; col < cols; col++ {
			sb.WriteRune(glyph(b.cells[row*cols+col]))
		}
		lines[row] = sb.String()
	}
	return lines
}

// String returns the uncoloured raster
func (b *Braille) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Render returns the raster with each cell coloured by the last paint that
// touched it. Runs of equal colour share one style.
func (b *Braille) Render() string {
	cols := b.Cols()
	lines := make([]string, b.Rows())
	for row := range lines {
		var sb strings.Builder
		var run strings.Builder
		var runColor pinentry.Color

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(string(runColor))).
					Render(run.String()))
			}
			run.Reset()
		}

		for col := 0; col < cols; col++ {
			i := row*cols + col
			if b.colors[i] != runColor {
				flush()
				runColor = b.colors[i]
			}
			run.WriteRune(glyph(b.cells[i]))
		}
		flush()
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// line draws a Bresenham line between dot coordinates
func (b *Braille) line(x0, y0, x1, y1 int, c pinentry.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func glyph(bits rune) rune {
	if bits == 0 {
		return ' '
	}
	return brailleBase + bits
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
