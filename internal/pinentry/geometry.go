package pinentry

import "fmt"

// ConstraintMode is how a host constrains one dimension during measurement
type ConstraintMode int

const (
	// ModeExact means the dimension must be exactly Value
	ModeExact ConstraintMode = iota
	// ModeAtMost means the widget may choose any size up to Value
	ModeAtMost
)

// Constraint is a host-imposed limit on one dimension
type Constraint struct {
	Mode  ConstraintMode
	Value int
}

// Exact returns a fixed-size constraint
func Exact(v int) Constraint {
	return Constraint{Mode: ModeExact, Value: v}
}

// AtMost returns an upper-bound constraint
func AtMost(v int) Constraint {
	return Constraint{Mode: ModeAtMost, Value: v}
}

// String returns "exact(v)" or "at_most(v)"
func (c Constraint) String() string {
	if c.Mode == ModeAtMost {
		return fmt.Sprintf("at_most(%d)", c.Value)
	}
	return fmt.Sprintf("exact(%d)", c.Value)
}

// Size is a definite widget size in host units
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in widget-local coordinates
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns Right - Left
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Geometry is the layout derived from capacity, density and the settled size
type Geometry struct {
	CellSize        int     // Side of one square cell
	Bounds          Rect    // Drawable area
	CornerRadius    float64 // Outline corner radius
	DefaultCellSize int     // Cell size used when nothing constrains the widget
	Settled         Size    // Last size passed to Settle
}

// NewGeometry returns the density-derived constants with an unsettled layout
func NewGeometry(density float64) Geometry {
	cell := int(defaultCellFactor * density)
	return Geometry{
		CellSize:        cell,
		CornerRadius:    cornerRadiusFactor * density,
		DefaultCellSize: cell,
	}
}

// Measure resolves host constraints into a definite size for capacity cells.
//
// An unconstrained (at-most) width is derived from the height and vice versa;
// when both are unconstrained the default cell size is used. The result never
// exceeds the proposed value on either axis. When a cell size is derived here
// it is stored in CellSize until Settle replaces it.
func (g *Geometry) Measure(capacity int, width, height Constraint) Size {
	w, h := width.Value, height.Value

	switch {
	case width.Mode == ModeAtMost && height.Mode == ModeAtMost:
		w = g.DefaultCellSize * capacity
		h = g.DefaultCellSize
	case width.Mode == ModeAtMost:
		w = h * capacity
		g.CellSize = h
	case height.Mode == ModeAtMost:
		h = w / capacity
		g.CellSize = h
	}

	return Size{
		Width:  min(w, width.Value),
		Height: min(h, height.Value),
	}
}

// Settle recomputes the cell size and drawable bounds for the final size
func (g *Geometry) Settle(capacity, width, height int) {
	g.Settled = Size{Width: width, Height: height}
	g.CellSize = width / capacity
	g.Bounds = Rect{
		Left:   0,
		Top:    0,
		Right:  float64(width - BorderMargin),
		Bottom: float64(height - BorderMargin),
	}
}
