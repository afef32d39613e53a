package pinentry

import "fmt"

// DrawOp identifies a Surface primitive
type DrawOp int

const (
	OpRoundedRect DrawOp = iota
	OpLine
	OpCircle
)

// String returns the primitive name
func (op DrawOp) String() string {
	switch op {
	case OpRoundedRect:
		return "rounded_rect"
	case OpLine:
		return "line"
	case OpCircle:
		return "circle"
	default:
		return fmt.Sprintf("DrawOp(%d)", op)
	}
}

// DrawCall is one recorded Surface call.
// Args holds the numeric arguments in call order.
type DrawCall struct {
	Op    DrawOp
	Args  []float64
	Paint Paint
}

// String formats the call for traces
func (c DrawCall) String() string {
	return fmt.Sprintf("%s%v %s %s", c.Op, c.Args, c.Paint.Style, c.Paint.Color)
}

// Recorder is a Surface that records calls instead of drawing them
type Recorder struct {
	calls []DrawCall
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// StrokeRoundedRect implements Surface
func (r *Recorder) StrokeRoundedRect(bounds Rect, rx, ry float64, paint Paint) {
	r.calls = append(r.calls, DrawCall{
		Op:    OpRoundedRect,
		Args:  []float64{bounds.Left, bounds.Top, bounds.Right, bounds.Bottom, rx, ry},
		Paint: paint,
	})
}

// StrokeLine implements Surface
func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, paint Paint) {
	r.calls = append(r.calls, DrawCall{
		Op:    OpLine,
		Args:  []float64{x1, y1, x2, y2},
		Paint: paint,
	})
}

// FillCircle implements Surface
func (r *Recorder) FillCircle(cx, cy, radius float64, paint Paint) {
	r.calls = append(r.calls, DrawCall{
		Op:    OpCircle,
		Args:  []float64{cx, cy, radius},
		Paint: paint,
	})
}

// Calls returns the recorded calls in order
func (r *Recorder) Calls() []DrawCall {
	return r.calls
}

// Count returns how many calls of op were recorded
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset discards recorded calls
func (r *Recorder) Reset() {
	r.calls = nil
}
