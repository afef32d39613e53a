package pinentry

// Surface is the drawing target a host lends to Render.
// Implementations must not keep the Paint values past the call.
type Surface interface {
	StrokeRoundedRect(bounds Rect, rx, ry float64, paint Paint)
	StrokeLine(x1, y1, x2, y2 float64, paint Paint)
	FillCircle(cx, cy, r float64, paint Paint)
}

// dotRadiusDivisor sizes a dot relative to its cell
const dotRadiusDivisor = 6

// Render emits the draw calls for an entry: outline first, then the
// capacity-1 dividers, then one dot per entered digit. It reads state and
// geometry only.
func Render(state *EntryState, geom Geometry, style Style, surface Surface) {
	surface.StrokeRoundedRect(geom.Bounds, geom.CornerRadius, geom.CornerRadius, style.Border)

	cell := float64(geom.CellSize)
	for i := 1; i < state.Capacity(); i++ {
		x := float64(i) * cell
		surface.StrokeLine(x, geom.Bounds.Top, x, geom.Bounds.Bottom, style.Border)
	}

	radius := cell / dotRadiusDivisor
	for i := 0; i < state.Len(); i++ {
		cx := (float64(i) + 0.5) * cell
		cy := 0.5 * cell
		surface.FillCircle(cx, cy, radius, style.Dot)
	}
}
