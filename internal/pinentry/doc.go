// Package pinentry implements a fixed-length numeric PIN entry widget.
//
// The widget is a box divided into Capacity equal cells. Each cell is either
// empty or shows a filled dot; the entered digits themselves are never drawn.
// Digits arrive as key events, and the widget reports completion once every
// cell is filled.
//
// # Host Boundary
//
// The package does not draw, measure, or read keys on its own. A host
// toolkit supplies:
//
//   - a Surface with rounded-rect, line, and filled-circle primitives
//   - size constraints through Measure, then the final size through SizeSettled
//   - KeyEvent values filtered to digit, delete, and enter codes
//   - a KeyboardController that shows or hides an input keyboard
//
// # Entry Lifecycle
//
//	w, err := pinentry.New(pinentry.DefaultConfig(), pinentry.Hooks{
//	    OnComplete:  func(pin string) { verify(pin) },
//	    Invalidator: pinentry.InvalidatorFunc(requestRedraw),
//	})
//	if err != nil {
//	    return err
//	}
//
//	size := w.Measure(pinentry.Exact(120), pinentry.AtMost(999))
//	w.SizeSettled(size.Width, size.Height)
//
//	w.HandleKey(pinentry.KeyEvent{Code: pinentry.Key4, Action: pinentry.ActionDown})
//	w.Render(surface)
//
// # Completion
//
// OnComplete fires on the append that fills the last cell, and again on every
// enter key while the entry stays full. Owners that act on completion must
// tolerate a second notification for the same fill.
//
// # Thread Safety
//
// A Widget is not safe for concurrent use. Hosts deliver every event from a
// single goroutine (the UI loop).
package pinentry
