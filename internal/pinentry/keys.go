package pinentry

import (
	"fmt"
	"strings"
)

// KeyCode is a host-independent key identifier.
// Hosts translate their own key numbering into these codes.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyDelete
	KeyEnter
)

// digitKeys maps digit key codes to their values
var digitKeys = map[KeyCode]int{
	Key0: 0,
	Key1: 1,
	Key2: 2,
	Key3: 3,
	Key4: 4,
	Key5: 5,
	Key6: 6,
	Key7: 7,
	Key8: 8,
	Key9: 9,
}

// keyNames maps textual key names to codes. Used by the remote bridge and CLI.
var keyNames = map[string]KeyCode{
	"0":         Key0,
	"1":         Key1,
	"2":         Key2,
	"3":         Key3,
	"4":         Key4,
	"5":         Key5,
	"6":         Key6,
	"7":         Key7,
	"8":         Key8,
	"9":         Key9,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"backspace": KeyDelete,
	"enter":     KeyEnter,
	"confirm":   KeyEnter,
}

// Digit returns the digit value of a digit key
func (k KeyCode) Digit() (int, bool) {
	d, ok := digitKeys[k]
	return d, ok
}

// String returns the canonical key name
func (k KeyCode) String() string {
	if d, ok := digitKeys[k]; ok {
		return fmt.Sprintf("%d", d)
	}
	switch k {
	case KeyDelete:
		return "delete"
	case KeyEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// ParseKeyCode resolves a key name ("0"-"9", "delete", "backspace", "enter"...)
func ParseKeyCode(name string) (KeyCode, bool) {
	code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// DigitKey returns the key code for a digit 0-9
func DigitKey(d int) (KeyCode, bool) {
	for code, v := range digitKeys {
		if v == d {
			return code, true
		}
	}
	return KeyUnknown, false
}

// KeyAction is the phase of a key press
type KeyAction int

const (
	ActionUnknown KeyAction = iota
	ActionDown
	ActionUp
)

// String returns "down", "up" or "unknown"
func (a KeyAction) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	default:
		return "unknown"
	}
}

// ParseKeyAction resolves "down" or "up"
func ParseKeyAction(s string) (KeyAction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down":
		return ActionDown, true
	case "up":
		return ActionUp, true
	default:
		return ActionUnknown, false
	}
}

// KeyEvent is one key press phase delivered by the host
type KeyEvent struct {
	Code   KeyCode
	Action KeyAction
}

// Press returns the down/up pair for a full key press
func Press(code KeyCode) []KeyEvent {
	return []KeyEvent{
		{Code: code, Action: ActionDown},
		{Code: code, Action: ActionUp},
	}
}
