package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/pinpad/internal/canvas"
	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/pinentry"
)

const (
	// frameTop is the first screen row of the widget frame (title + blank line)
	frameTop = 2

	// chromeRows is every line of the view that is not the frame
	chromeRows = 11
)

// RemoteKeyMsg carries a key event from the keypad bridge
type RemoteKeyMsg struct {
	Event pinentry.KeyEvent
}

// CompletedMsg is produced each time the widget reports completion
type CompletedMsg struct {
	PIN string
}

// Options configure the terminal host
type Options struct {
	Title           string // Prompt title
	Status          string // Secondary text next to the title (e.g., bridge address)
	ShowKeypad      bool   // Show the on-screen keypad on touch-down
	ClearOnComplete bool   // Empty the widget after each completion
	QuitOnComplete  bool   // Exit the program on the first completion
	Width           int    // Initial terminal width, before the first resize
	Height          int    // Initial terminal height, before the first resize
}

// hostState is shared between the model copies and the widget callbacks
type hostState struct {
	pending     []string
	completions []string
	dirty       bool
	frame       string
	redraws     int
}

// PinModel is the Bubble Tea host for a pinentry.Widget
type PinModel struct {
	widget *pinentry.Widget
	keypad *Keypad
	gauge  EntryGauge
	opts   Options
	keys   pinKeyMap
	help   help.Model
	state  *hostState

	width     int
	height    int
	dotWidth  int
	dotHeight int
	frameCols int
	frameRows int
}

// NewPinModel wraps w. The model installs itself as the widget's completion
// callback, invalidator and keyboard controller.
func NewPinModel(w *pinentry.Widget, opts Options) PinModel {
	if opts.Title == "" {
		opts.Title = "Enter PIN"
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	state := &hostState{dirty: true}
	keypad := NewKeypad(opts.ShowKeypad)

	w.SetOnComplete(func(pin string) {
		state.pending = append(state.pending, pin)
	})
	w.SetInvalidator(pinentry.InvalidatorFunc(func() {
		state.dirty = true
	}))
	w.SetKeyboard(keypad)

	m := PinModel{
		widget: w,
		keypad: keypad,
		gauge:  NewEntryGauge(string(w.Style().Dot.Color), 20),
		opts:   opts,
		keys:   newPinKeyMap(),
		help:   help.New(),
		state:  state,
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Widget returns the hosted widget
func (m PinModel) Widget() *pinentry.Widget { return m.widget }

// Keypad returns the on-screen keypad
func (m PinModel) Keypad() *Keypad { return m.keypad }

// Completions returns every PIN reported so far, oldest first
func (m PinModel) Completions() []string {
	out := make([]string, len(m.state.completions))
	copy(out, m.state.completions)
	return out
}

// Redraws returns how many times the frame has been rasterised
func (m PinModel) Redraws() int { return m.state.redraws }

// FrameSize returns the settled widget size in dots
func (m PinModel) FrameSize() (int, int) { return m.dotWidth, m.dotHeight }

// Init implements tea.Model
func (m PinModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.FocusMsg:
		m.widget.FocusChanged(true)
		return m, nil

	case tea.BlurMsg:
		m.widget.FocusChanged(false)
		return m, nil

	case RemoteKeyMsg:
		m.widget.HandleKey(msg.Event)
		return m, m.drainCompletions()

	case CompletedMsg:
		m.state.completions = append(m.state.completions, msg.PIN)
		if m.opts.QuitOnComplete {
			return m, tea.Quit
		}
		if m.opts.ClearOnComplete {
			m.widget.Clear()
		}
		return m, nil
	}

	return m, nil
}

func (m PinModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Keypad):
		if m.keypad.Visible() {
			m.keypad.HideKeyboard()
		} else {
			m.widget.TouchDown()
		}
		return m, nil
	}

	ev, ok := TranslateKey(msg)
	if !ok {
		logging.LogKeyEvent("terminal", msg.String(), pinentry.ActionDown.String(), false)
		return m, nil
	}

	handled := m.widget.HandleKey(ev)
	logging.LogKeyEvent("terminal", ev.Code.String(), ev.Action.String(), handled)
	return m, m.drainCompletions()
}

func (m PinModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y >= frameTop && msg.Y < frameTop+m.frameRows && msg.X >= 0 && msg.X < m.frameCols {
		m.widget.TouchDown()
		return m, nil
	}

	if code, ok := m.keypad.KeyAt(msg.X, msg.Y-m.keypadTop()); ok {
		for _, ev := range pinentry.Press(code) {
			m.widget.HandleKey(ev)
		}
		logging.LogKeyEvent("keypad", code.String(), "press", true)
		return m, m.drainCompletions()
	}

	return m, nil
}

// keypadTop is the first screen row of the keypad (frame, blank, gauge, blank)
func (m PinModel) keypadTop() int {
	return frameTop + m.frameRows + 3
}

// resize negotiates the widget size for a width x height cell terminal
func (m *PinModel) resize(width, height int) {
	m.width, m.height = width, height

	rows := max(height-chromeRows, 1)
	size := m.widget.Measure(
		pinentry.AtMost(width*canvas.DotsPerCol),
		pinentry.AtMost(rows*canvas.DotsPerRow),
	)
	m.widget.SizeSettled(size.Width, size.Height)

	m.dotWidth, m.dotHeight = size.Width, size.Height
	m.frameCols, m.frameRows = FrameCells(size.Width, size.Height)
	m.gauge.SetWidth(m.frameCols)
	m.help.Width = width
	m.state.dirty = true
}

// drainCompletions turns queued widget completions into CompletedMsg commands
func (m PinModel) drainCompletions() tea.Cmd {
	if len(m.state.pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(m.state.pending))
	for _, pin := range m.state.pending {
		cmds = append(cmds, func() tea.Msg { return CompletedMsg{PIN: pin} })
	}
	m.state.pending = nil

	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// frame returns the rasterised widget, redrawing only after an invalidation
func (m PinModel) frame() string {
	if m.state.dirty {
		m.state.frame = RenderFrame(m.widget, m.dotWidth, m.dotHeight)
		m.state.dirty = false
		m.state.redraws++
	}
	return m.state.frame
}

// View implements tea.Model
func (m PinModel) View() string {
	var b strings.Builder

	title := TitleStyle.Render(m.opts.Title)
	if m.opts.Status != "" {
		title += "  " + StatusStyle.Render(m.opts.Status)
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(m.frame())
	b.WriteString("\n\n")

	b.WriteString(m.gauge.View(m.widget.Len(), m.widget.Capacity()))
	b.WriteString("\n\n")

	if kp := m.keypad.View(); kp != "" {
		b.WriteString(kp)
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
