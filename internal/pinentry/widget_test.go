package pinentry

import (
	"errors"
	"reflect"
	"testing"
)

type completions struct {
	pins []string
}

func (c *completions) record(pin string) {
	c.pins = append(c.pins, pin)
}

type fakeKeyboard struct {
	events []string
}

func (k *fakeKeyboard) RequestFocus() { k.events = append(k.events, "focus") }
func (k *fakeKeyboard) ShowKeyboard(mode InputMode) {
	k.events = append(k.events, "show:"+mode.String())
}
func (k *fakeKeyboard) HideKeyboard() { k.events = append(k.events, "hide") }

func newTestWidget(t *testing.T, capacity int) (*Widget, *completions, *int) {
	t.Helper()
	c := &completions{}
	redraws := 0
	cfg := DefaultConfig()
	cfg.Capacity = capacity
	w, err := New(cfg, Hooks{
		OnComplete:  c.record,
		Invalidator: InvalidatorFunc(func() { redraws++ }),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w, c, &redraws
}

func down(code KeyCode) KeyEvent {
	return KeyEvent{Code: code, Action: ActionDown}
}

func TestNew_InvalidCapacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 0
	if _, err := New(cfg, Hooks{}); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("New() error = %v, want ErrInvalidCapacity", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustNew() should panic on capacity 0")
		}
	}()
	MustNew(cfg, Hooks{})
}

func TestNew_FillsDefaults(t *testing.T) {
	w := MustNew(Config{Capacity: 4}, Hooks{})

	if w.Style().Border.Color != DefaultBorderColor {
		t.Errorf("border color = %q, want default", w.Style().Border.Color)
	}
	if w.Geometry().DefaultCellSize != 20 {
		t.Errorf("DefaultCellSize = %d, want 20", w.Geometry().DefaultCellSize)
	}
}

// Scenario: six appends complete exactly once at the sixth.
func TestWidget_CompletesOnFill(t *testing.T) {
	w, c, _ := newTestWidget(t, 6)

	for i, d := range []int{1, 2, 3, 4, 5} {
		w.AppendDigit(d)
		if len(c.pins) != 0 {
			t.Fatalf("completion fired after %d digits", i+1)
		}
	}
	w.AppendDigit(6)

	if !reflect.DeepEqual(c.pins, []string{"123456"}) {
		t.Errorf("completions = %v, want [123456]", c.pins)
	}
}

// Scenario: delete then append leaves [9 5] with no completion.
func TestWidget_DeleteThenAppend(t *testing.T) {
	w, c, _ := newTestWidget(t, 4)

	w.AppendDigit(9)
	w.AppendDigit(9)
	w.DeleteLast()
	w.AppendDigit(5)

	if got := w.Digits(); !reflect.DeepEqual(got, []int{9, 5}) {
		t.Errorf("Digits() = %v, want [9 5]", got)
	}
	if len(c.pins) != 0 {
		t.Errorf("unexpected completions %v", c.pins)
	}
}

// Scenario: confirm after a delete from full does nothing.
func TestWidget_ConfirmAfterDeleteIsNoop(t *testing.T) {
	w, c, _ := newTestWidget(t, 6)

	for _, d := range []int{1, 2, 3, 4, 5, 6} {
		code, _ := DigitKey(d)
		w.HandleKey(down(code))
	}
	if len(c.pins) != 1 {
		t.Fatalf("completions after fill = %d, want 1", len(c.pins))
	}

	w.HandleKey(down(KeyDelete))
	if !w.HandleKey(down(KeyEnter)) {
		t.Error("enter should be consumed")
	}

	if w.Len() != 5 {
		t.Errorf("Len() = %d, want 5", w.Len())
	}
	if len(c.pins) != 1 {
		t.Errorf("completions = %d, want 1", len(c.pins))
	}
}

func TestWidget_ConfirmWhenFullFiresAgain(t *testing.T) {
	w, c, _ := newTestWidget(t, 3)

	for _, d := range []int{0, 4, 2} {
		w.AppendDigit(d)
	}
	if !w.ForceComplete() {
		t.Fatal("ForceComplete() on a full entry should fire")
	}

	if !reflect.DeepEqual(c.pins, []string{"042", "042"}) {
		t.Errorf("completions = %v, want two notifications of 042", c.pins)
	}
}

func TestWidget_RejectsAppendWhenFull(t *testing.T) {
	w, c, redraws := newTestWidget(t, 2)

	w.AppendDigit(1)
	w.AppendDigit(2)
	before := *redraws

	if w.AppendDigit(3) {
		t.Error("AppendDigit() on full entry should be rejected")
	}
	if !w.HandleKey(down(Key3)) {
		t.Error("digit key on full entry should still be consumed")
	}
	if *redraws != before {
		t.Errorf("rejected appends requested %d redraws", *redraws-before)
	}
	if len(c.pins) != 1 {
		t.Errorf("completions = %d, want 1", len(c.pins))
	}
}

func TestWidget_DeleteFromEmpty(t *testing.T) {
	w, _, redraws := newTestWidget(t, 4)

	if w.DeleteLast() {
		t.Error("DeleteLast() on empty entry should be rejected")
	}
	if !w.HandleKey(down(KeyDelete)) {
		t.Error("delete key should be consumed on empty entry")
	}
	if *redraws != 0 {
		t.Errorf("redraws = %d, want 0", *redraws)
	}
}

func TestWidget_RedrawOnAcceptedTransitions(t *testing.T) {
	w, _, redraws := newTestWidget(t, 4)

	w.AppendDigit(1)
	w.AppendDigit(2)
	w.DeleteLast()
	w.Clear()
	w.Clear()

	if *redraws != 4 {
		t.Errorf("redraws = %d, want 4", *redraws)
	}
	if w.Phase() != PhaseEmpty {
		t.Errorf("Phase() = %v after Clear, want empty", w.Phase())
	}
}

func TestWidget_HandleKey(t *testing.T) {
	tests := []struct {
		name        string
		event       KeyEvent
		wantHandled bool
		wantLen     int
	}{
		{"digit down", KeyEvent{Code: Key7, Action: ActionDown}, true, 1},
		{"digit up ignored", KeyEvent{Code: Key7, Action: ActionUp}, false, 0},
		{"unknown action ignored", KeyEvent{Code: Key7}, false, 0},
		{"delete down", KeyEvent{Code: KeyDelete, Action: ActionDown}, true, 0},
		{"enter down", KeyEvent{Code: KeyEnter, Action: ActionDown}, true, 0},
		{"other key", KeyEvent{Code: KeyUnknown, Action: ActionDown}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, _ := newTestWidget(t, 6)
			if got := w.HandleKey(tt.event); got != tt.wantHandled {
				t.Errorf("HandleKey() = %v, want %v", got, tt.wantHandled)
			}
			if w.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", w.Len(), tt.wantLen)
			}
		})
	}
}

func TestWidget_MeasureThenSettle(t *testing.T) {
	w, _, _ := newTestWidget(t, 6)

	size := w.Measure(Exact(120), AtMost(999))
	w.SizeSettled(size.Width, size.Height)

	if size.Height != 20 {
		t.Errorf("settled height = %d, want 20", size.Height)
	}
	if w.Geometry().CellSize != 20 {
		t.Errorf("CellSize = %d, want 20", w.Geometry().CellSize)
	}
}

func TestWidget_FocusAndKeyboard(t *testing.T) {
	w, _, _ := newTestWidget(t, 4)
	kb := &fakeKeyboard{}
	w.SetKeyboard(kb)

	w.TouchDown()
	if !w.Focused() {
		t.Error("widget should be focused after touch down")
	}

	w.FocusChanged(true)
	w.FocusChanged(false)
	if w.Focused() {
		t.Error("widget should not be focused after focus loss")
	}

	want := []string{"focus", "show:numeric", "hide"}
	if !reflect.DeepEqual(kb.events, want) {
		t.Errorf("keyboard events = %v, want %v", kb.events, want)
	}
}

func TestWidget_TouchDownWithoutKeyboard(t *testing.T) {
	w, _, _ := newTestWidget(t, 4)
	w.TouchDown()
	w.FocusChanged(false)
	if w.Focused() {
		t.Error("widget should not be focused after focus loss")
	}
}

func TestWidget_InputConnection(t *testing.T) {
	w, _, _ := newTestWidget(t, 4)
	w.AppendDigit(3)
	w.AppendDigit(1)

	ic := w.InputConnection()
	if ic.Mode() != InputModeNumeric {
		t.Errorf("Mode() = %v, want numeric", ic.Mode())
	}
	if !ic.CommitText("99") {
		t.Error("CommitText() should report the text as consumed")
	}
	if w.Len() != 2 {
		t.Errorf("CommitText changed the entry: Len() = %d", w.Len())
	}

	if !ic.DeleteSurrounding(1, 0) {
		t.Error("DeleteSurrounding(1, 0) should be translated")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d after translated delete, want 1", w.Len())
	}

	if ic.DeleteSurrounding(2, 0) {
		t.Error("DeleteSurrounding(2, 0) should not be translated")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d after untranslated delete, want 1", w.Len())
	}
}
