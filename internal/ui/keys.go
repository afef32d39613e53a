package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/pinpad/internal/pinentry"
)

// pinKeyMap defines key bindings for the PIN prompt
type pinKeyMap struct {
	Digits  key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Keypad  key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pinKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Delete, k.Confirm, k.Keypad, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k pinKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Delete, k.Confirm},
		{k.Keypad, k.Quit},
	}
}

func newPinKeyMap() pinKeyMap {
	return pinKeyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Keypad: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "keypad"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// TranslateKey maps a terminal key press to a widget key event.
// Terminals only report presses, so every event is a key-down.
func TranslateKey(msg tea.KeyMsg) (pinentry.KeyEvent, bool) {
	var code pinentry.KeyCode

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return pinentry.KeyEvent{}, false
		}
		r := msg.Runes[0]
		if r < '0' || r > '9' {
			return pinentry.KeyEvent{}, false
		}
		code, _ = pinentry.DigitKey(int(r - '0'))
	case tea.KeyBackspace, tea.KeyDelete:
		code = pinentry.KeyDelete
	case tea.KeyEnter:
		code = pinentry.KeyEnter
	default:
		return pinentry.KeyEvent{}, false
	}

	return pinentry.KeyEvent{Code: code, Action: pinentry.ActionDown}, true
}
