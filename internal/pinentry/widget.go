package pinentry

import (
	"github.com/muurk/pinpad/internal/logging"
)

// Invalidator is asked to schedule a redraw after a state change
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to Invalidator
type InvalidatorFunc func()

// Invalidate calls f
func (f InvalidatorFunc) Invalidate() {
	f()
}

// Hooks are the callbacks a widget uses to reach its owner and host.
// Any of them may be nil.
type Hooks struct {
	OnComplete  func(pin string)
	Invalidator Invalidator
	Keyboard    KeyboardController
}

// Widget is a PIN entry control: entry state, layout and key handling.
type Widget struct {
	state   *EntryState
	geom    Geometry
	style   Style
	hooks   Hooks
	focused bool
}

// New creates an empty widget
func New(cfg Config, hooks Hooks) (*Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	state, err := NewEntryState(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	return &Widget{
		state: state,
		geom:  NewGeometry(cfg.Density),
		style: NewStyle(cfg.BorderColor, cfg.DotColor),
		hooks: hooks,
	}, nil
}

// MustNew is New that panics on an invalid configuration
func MustNew(cfg Config, hooks Hooks) *Widget {
	w, err := New(cfg, hooks)
	if err != nil {
		panic(err)
	}
	return w
}

// SetOnComplete replaces the completion callback
func (w *Widget) SetOnComplete(fn func(pin string)) {
	w.hooks.OnComplete = fn
}

// SetInvalidator replaces the redraw hook
func (w *Widget) SetInvalidator(inv Invalidator) {
	w.hooks.Invalidator = inv
}

// SetKeyboard replaces the keyboard controller
func (w *Widget) SetKeyboard(kc KeyboardController) {
	w.hooks.Keyboard = kc
}

// Capacity returns the number of cells
func (w *Widget) Capacity() int { return w.state.Capacity() }

// Len returns the number of entered digits
func (w *Widget) Len() int { return w.state.Len() }

// Digits returns a copy of the entered digits
func (w *Widget) Digits() []int { return w.state.Digits() }

// Phase returns the entry phase
func (w *Widget) Phase() Phase { return w.state.Phase() }

// Value returns the entered digits as a string
func (w *Widget) Value() string { return w.state.Value() }

// Geometry returns the current layout
func (w *Widget) Geometry() Geometry { return w.geom }

// Style returns the paints the widget renders with
func (w *Widget) Style() Style { return w.style }

// Focused reports whether the widget currently holds input focus
func (w *Widget) Focused() bool { return w.focused }

// AppendDigit enters d into the next free cell. Filling the last cell fires
// OnComplete. Returns false if the entry was already full.
func (w *Widget) AppendDigit(d int) bool {
	if !w.state.Append(d) {
		return false
	}
	logging.LogTransition("append", w.state.Phase().String(), w.state.Len())
	w.invalidate()

	if w.state.Full() {
		w.complete("fill")
	}
	return true
}

// DeleteLast removes the most recent digit. Returns false if empty.
func (w *Widget) DeleteLast() bool {
	if !w.state.Pop() {
		return false
	}
	logging.LogTransition("delete", w.state.Phase().String(), w.state.Len())
	w.invalidate()
	return true
}

// ForceComplete fires OnComplete if the entry is full. The notification is
// sent even if the filling append already sent one.
func (w *Widget) ForceComplete() bool {
	if !w.state.Full() {
		return false
	}
	w.complete("confirm")
	return true
}

// Clear empties the entry. Owners call this after consuming a PIN;
// the widget never clears itself.
func (w *Widget) Clear() bool {
	if w.state.Len() == 0 {
		return false
	}
	w.state.Reset()
	logging.LogTransition("clear", w.state.Phase().String(), 0)
	w.invalidate()
	return true
}

// HandleKey applies a key event and reports whether it was consumed.
// Only key-down events act; digit, delete and enter keys are consumed even
// when the resulting transition is rejected.
func (w *Widget) HandleKey(ev KeyEvent) bool {
	if ev.Action != ActionDown {
		return false
	}

	if d, ok := ev.Code.Digit(); ok {
		w.AppendDigit(d)
		return true
	}

	switch ev.Code {
	case KeyDelete:
		w.DeleteLast()
		return true
	case KeyEnter:
		w.ForceComplete()
		return true
	default:
		return false
	}
}

// Measure resolves host constraints into the widget's size
func (w *Widget) Measure(width, height Constraint) Size {
	return w.geom.Measure(w.state.Capacity(), width, height)
}

// SizeSettled recomputes geometry for the size the host assigned
func (w *Widget) SizeSettled(width, height int) {
	w.geom.Settle(w.state.Capacity(), width, height)
}

// Render draws the widget onto s
func (w *Widget) Render(s Surface) {
	Render(w.state, w.geom, w.style, s)
}

// TouchDown focuses the widget and asks for a numeric keyboard
func (w *Widget) TouchDown() {
	kc := w.hooks.Keyboard
	if kc == nil {
		w.focused = true
		return
	}
	kc.RequestFocus()
	w.focused = true
	kc.ShowKeyboard(InputModeNumeric)
}

// FocusChanged records a window focus change; losing focus hides the keyboard
func (w *Widget) FocusChanged(hasFocus bool) {
	w.focused = hasFocus
	if !hasFocus && w.hooks.Keyboard != nil {
		w.hooks.Keyboard.HideKeyboard()
	}
}

// InputConnection returns an edit adapter that feeds this widget
func (w *Widget) InputConnection() *InputConnection {
	return NewInputConnection(func(ev KeyEvent) {
		w.HandleKey(ev)
	})
}

func (w *Widget) invalidate() {
	if w.hooks.Invalidator != nil {
		w.hooks.Invalidator.Invalidate()
	}
}

func (w *Widget) complete(source string) {
	logging.LogCompletion(source, w.state.Len())
	if w.hooks.OnComplete != nil {
		w.hooks.OnComplete(w.state.Value())
	}
}
