package pinentry

// InputMode is the kind of keyboard a widget asks the host to show
type InputMode int

const (
	// InputModeNumeric requests a digit keypad
	InputModeNumeric InputMode = iota
	// InputModeText requests a full keyboard
	InputModeText
)

// String returns the mode name
func (m InputMode) String() string {
	if m == InputModeText {
		return "text"
	}
	return "numeric"
}

// KeyboardController is the host's focus and keyboard visibility handle.
// The widget only asks it to act and never owns what it controls.
type KeyboardController interface {
	RequestFocus()
	ShowKeyboard(mode InputMode)
	HideKeyboard()
}

// KeySink receives translated key events
type KeySink func(ev KeyEvent)

// InputConnection adapts soft-keyboard edit operations into key events.
// Committed text is swallowed; digits arrive as key events. A one-character
// backward delete becomes a delete key press.
type InputConnection struct {
	sink KeySink
}

// NewInputConnection creates a connection that dispatches into sink
func NewInputConnection(sink KeySink) *InputConnection {
	return &InputConnection{sink: sink}
}

// Mode is the input mode the connection expects from the keyboard
func (c *InputConnection) Mode() InputMode {
	return InputModeNumeric
}

// CommitText consumes committed text without dispatching anything
func (c *InputConnection) CommitText(text string) bool {
	return true
}

// DeleteSurrounding translates a one-character backward delete into a
// delete key down/up pair. Other spans are not translated.
func (c *InputConnection) DeleteSurrounding(before, after int) bool {
	if before != 1 || after != 0 {
		return false
	}
	for _, ev := range Press(KeyDelete) {
		c.sink(ev)
	}
	return true
}
