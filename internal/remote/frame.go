package remote

import (
	"encoding/json"
	"fmt"

	"github.com/muurk/pinpad/internal/pinentry"
)

// Frame types
const (
	FrameKey               = "key"
	FrameCommit            = "commit"
	FrameDeleteSurrounding = "delete_surrounding"
)

// Frame is one message from a remote keypad
type Frame struct {
	Type   string `json:"type"`
	Code   string `json:"code,omitempty"`
	Action string `json:"action,omitempty"`
	Text   string `json:"text,omitempty"`
	Before int    `json:"before,omitempty"`
	After  int    `json:"after,omitempty"`
}

// Ack is the bridge's reply to a frame
type Ack struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// FrameError describes a frame the bridge could not decode
type FrameError struct {
	Field  string // Offending field ("type", "code", "action", or "" for JSON errors)
	Value  string // Offending value
	Reason string
	Err    error // Underlying error (if any)
}

// Error implements the error interface
func (e *FrameError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid frame: %s", e.Reason)
	}
	return fmt.Sprintf("invalid frame %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the underlying error
func (e *FrameError) Unwrap() error {
	return e.Err
}

// DecodeFrame parses a JSON frame
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, &FrameError{Reason: "malformed JSON", Err: err}
	}
	return f, nil
}

// KeyFrame builds a key frame. ActionUnknown leaves the action empty,
// which the bridge treats as a full press.
func KeyFrame(code pinentry.KeyCode, action pinentry.KeyAction) Frame {
	f := Frame{Type: FrameKey, Code: code.String()}
	if action != pinentry.ActionUnknown {
		f.Action = action.String()
	}
	return f
}

// Events translates the frame into key events
func (f Frame) Events() ([]pinentry.KeyEvent, error) {
	switch f.Type {
	case FrameKey:
		code, ok := pinentry.ParseKeyCode(f.Code)
		if !ok {
			return nil, &FrameError{Field: "code", Value: f.Code, Reason: "unknown key"}
		}
		if f.Action == "" {
			return pinentry.Press(code), nil
		}
		action, ok := pinentry.ParseKeyAction(f.Action)
		if !ok {
			return nil, &FrameError{Field: "action", Value: f.Action, Reason: "expected down or up"}
		}
		return []pinentry.KeyEvent{{Code: code, Action: action}}, nil

	case FrameCommit, FrameDeleteSurrounding:
		var events []pinentry.KeyEvent
		ic := pinentry.NewInputConnection(func(ev pinentry.KeyEvent) {
			events = append(events, ev)
		})
		if f.Type == FrameCommit {
			ic.CommitText(f.Text)
		} else {
			ic.DeleteSurrounding(f.Before, f.After)
		}
		return events, nil

	default:
		return nil, &FrameError{Field: "type", Value: f.Type, Reason: "unknown frame type"}
	}
}

// ParseKeys resolves command-line key arguments. Each argument is either a
// key name ("enter", "delete", "7") or a run of digits ("1234").
func ParseKeys(args []string) ([]pinentry.KeyCode, error) {
	var codes []pinentry.KeyCode
	for _, arg := range args {
		if code, ok := pinentry.ParseKeyCode(arg); ok {
			codes = append(codes, code)
			continue
		}
		if arg == "" {
			return nil, fmt.Errorf("empty key argument")
		}
		for _, r := range arg {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("unknown key %q", arg)
			}
			code, _ := pinentry.DigitKey(int(r - '0'))
			codes = append(codes, code)
		}
	}
	return codes, nil
}
