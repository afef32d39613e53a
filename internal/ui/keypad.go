package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/pinentry"
)

// KeypadKeyWidth is the width in cells of one on-screen key
const KeypadKeyWidth = 5

// keypadLayout is the on-screen key grid, top to bottom
var keypadLayout = [][]pinentry.KeyCode{
	{pinentry.Key1, pinentry.Key2, pinentry.Key3},
	{pinentry.Key4, pinentry.Key5, pinentry.Key6},
	{pinentry.Key7, pinentry.Key8, pinentry.Key9},
	{pinentry.KeyDelete, pinentry.Key0, pinentry.KeyEnter},
}

// Keypad is an on-screen numeric keyboard. It is the widget's
// pinentry.KeyboardController in the terminal host.
type Keypad struct {
	enabled       bool
	visible       bool
	mode          pinentry.InputMode
	focusRequests int
}

// NewKeypad creates a hidden keypad. A disabled keypad records requests
// but never becomes visible.
func NewKeypad(enabled bool) *Keypad {
	return &Keypad{enabled: enabled}
}

// RequestFocus implements pinentry.KeyboardController
func (k *Keypad) RequestFocus() {
	k.focusRequests++
}

// ShowKeyboard implements pinentry.KeyboardController
func (k *Keypad) ShowKeyboard(mode pinentry.InputMode) {
	k.mode = mode
	if !k.enabled {
		return
	}
	k.visible = true
	logging.Debug("Keypad shown", zap.String("mode", mode.String()))
}

// HideKeyboard implements pinentry.KeyboardController
func (k *Keypad) HideKeyboard() {
	if k.visible {
		logging.Debug("Keypad hidden")
	}
	k.visible = false
}

// Visible reports whether the keypad is on screen
func (k *Keypad) Visible() bool { return k.visible }

// Mode returns the last requested input mode
func (k *Keypad) Mode() pinentry.InputMode { return k.mode }

// FocusRequests returns how many times focus was requested
func (k *Keypad) FocusRequests() int { return k.focusRequests }

// Rows returns the keypad height in lines
func (k *Keypad) Rows() int { return len(keypadLayout) }

// KeyAt resolves a position relative to the keypad's top-left corner
func (k *Keypad) KeyAt(x, y int) (pinentry.KeyCode, bool) {
	if !k.visible || x < 0 || y < 0 || y >= len(keypadLayout) {
		return pinentry.KeyUnknown, false
	}
	col := x / KeypadKeyWidth
	if col >= len(keypadLayout[y]) {
		return pinentry.KeyUnknown, false
	}
	return keypadLayout[y][col], true
}

// View renders the keypad, or "" when hidden
func (k *Keypad) View() string {
	if !k.visible {
		return ""
	}
	rows := make([]string, 0, len(keypadLayout))
	for _, row := range keypadLayout {
		var b strings.Builder
		for _, code := range row {
			b.WriteString(renderKey(code))
		}
		rows = append(rows, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderKey(code pinentry.KeyCode) string {
	switch code {
	case pinentry.KeyDelete:
		return KeypadActionKeyStyle.Render("⌫")
	case pinentry.KeyEnter:
		return KeypadActionKeyStyle.Render("⏎")
	default:
		return KeypadKeyStyle.Render(code.String())
	}
}
