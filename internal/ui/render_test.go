package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/pinpad/internal/pinentry"
)

func TestRenderFrame(t *testing.T) {
	cfg := pinentry.DefaultConfig()
	cfg.Capacity = 4
	w := pinentry.MustNew(cfg, pinentry.Hooks{})
	size := w.Measure(pinentry.Exact(80), pinentry.AtMost(100))
	w.SizeSettled(size.Width, size.Height)

	empty := RenderFrame(w, size.Width, size.Height)
	lines := strings.Split(empty, "\n")
	if len(lines) != 5 {
		t.Fatalf("frame has %d lines, want 5", len(lines))
	}

	w.AppendDigit(1)
	filled := RenderFrame(w, size.Width, size.Height)
	if filled == empty {
		t.Error("frame should change after a digit is appended")
	}
}

func TestFrameCells(t *testing.T) {
	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{120, 20, 60, 5},
		{121, 21, 61, 6},
		{0, 0, 0, 0},
		{-4, -4, 0, 0},
	}
	for _, tt := range tests {
		cols, rows := FrameCells(tt.w, tt.h)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("FrameCells(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestKeypad_KeyAt(t *testing.T) {
	k := NewKeypad(true)

	if _, ok := k.KeyAt(0, 0); ok {
		t.Error("hidden keypad should not resolve keys")
	}

	k.ShowKeyboard(pinentry.InputModeNumeric)
	tests := []struct {
		x, y int
		want pinentry.KeyCode
		ok   bool
	}{
		{0, 0, pinentry.Key1, true},
		{KeypadKeyWidth*2 + 4, 0, pinentry.Key3, true},
		{KeypadKeyWidth, 3, pinentry.Key0, true},
		{0, 3, pinentry.KeyDelete, true},
		{KeypadKeyWidth * 2, 3, pinentry.KeyEnter, true},
		{KeypadKeyWidth * 3, 0, pinentry.KeyUnknown, false},
		{0, 4, pinentry.KeyUnknown, false},
		{-1, 0, pinentry.KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := k.KeyAt(tt.x, tt.y)
		if ok != tt.ok || got != tt.want {
			t.Errorf("KeyAt(%d, %d) = (%v, %v), want (%v, %v)", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}

	if rows := strings.Count(k.View(), "\n") + 1; rows != k.Rows() {
		t.Errorf("View() has %d rows, want %d", rows, k.Rows())
	}
}

func TestKeypad_ShowHide(t *testing.T) {
	k := NewKeypad(true)
	k.ShowKeyboard(pinentry.InputModeText)
	if !k.Visible() || k.Mode() != pinentry.InputModeText {
		t.Errorf("after ShowKeyboard: visible=%v mode=%v", k.Visible(), k.Mode())
	}
	k.HideKeyboard()
	if k.Visible() || k.View() != "" {
		t.Error("hidden keypad should render nothing")
	}
}

func TestHeader_Render(t *testing.T) {
	h := NewHeader("pin frame", "pinpad render", map[string]string{
		"Filled":   "2",
		"Capacity": "6",
	}).SetWidth(60)

	out := h.Render()
	if !strings.Contains(out, "PIN FRAME") {
		t.Error("header should upper-case the title")
	}
	if !strings.Contains(out, "pinpad render") {
		t.Error("header should include the command")
	}
	if strings.Index(out, "Capacity") > strings.Index(out, "Filled") {
		t.Error("header params should be sorted by key")
	}
}

func TestResult_Render(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("PIN entered", map[string]string{"Length": "6"}),
			want:   []string{"SUCCESS", "PIN entered", "Length:", "6"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Bridge failed", errors.New("address in use"), []string{"Pick another --port"}),
			want:   []string{"FAILED", "address in use", "Troubleshooting:", "Pick another --port"},
		},
		{
			name:   "warning",
			result: NewWarningResult("No keypads found", nil).AddDetail("Timeout", "5s"),
			want:   []string{"WARNING", "No keypads found", "Timeout:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(70).String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render() missing %q", w)
				}
			}
		})
	}
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got := ConfirmOverwrite(strings.NewReader(tt.input), &out, "/tmp/pinpad/config.yaml")
			if got != tt.want {
				t.Errorf("ConfirmOverwrite(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "/tmp/pinpad/config.yaml") {
				t.Error("prompt should name the file")
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)
	p.SetWidth(60)

	p.PrintHeader("Keypads", "pinpad scan", nil)
	p.PrintSuccess("Found 1 keypad", map[string]string{"kitchen": "10.0.0.5:7070"})

	s := out.String()
	if !strings.Contains(s, "KEYPADS") || !strings.Contains(s, "10.0.0.5:7070") {
		t.Errorf("Printer output missing content: %q", s)
	}
	if p.Width() != 60 {
		t.Errorf("Width() = %d, want 60", p.Width())
	}
}
