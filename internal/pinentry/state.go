package pinentry

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase is the coarse state of an entry
type Phase int

const (
	// PhaseEmpty means no digits have been entered
	PhaseEmpty Phase = iota
	// PhasePartial means at least one cell is still empty
	PhasePartial
	// PhaseFull means every cell holds a digit
	PhaseFull
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePartial:
		return "partial"
	case PhaseFull:
		return "full"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// EntryState is the ordered list of entered digits, capped at capacity.
// The zero value is not usable; create one with NewEntryState.
type EntryState struct {
	digits   []int
	capacity int
}

// NewEntryState creates an empty entry with the given capacity
func NewEntryState(capacity int) (*EntryState, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCapacity, capacity)
	}
	return &EntryState{
		digits:   make([]int, 0, capacity),
		capacity: capacity,
	}, nil
}

// Capacity returns the number of cells
func (s *EntryState) Capacity() int {
	return s.capacity
}

// Len returns the number of entered digits
func (s *EntryState) Len() int {
	return len(s.digits)
}

// Digits returns a copy of the entered digits in entry order
func (s *EntryState) Digits() []int {
	out := make([]int, len(s.digits))
	copy(out, s.digits)
	return out
}

// Phase reports whether the entry is empty, partial or full
func (s *EntryState) Phase() Phase {
	switch {
	case len(s.digits) == 0:
		return PhaseEmpty
	case len(s.digits) >= s.capacity:
		return PhaseFull
	default:
		return PhasePartial
	}
}

// Full reports whether every cell is filled
func (s *EntryState) Full() bool {
	return len(s.digits) >= s.capacity
}

// Append adds a digit if a cell is free. The digit is trusted to be 0-9.
func (s *EntryState) Append(d int) bool {
	if s.Full() {
		return false
	}
	s.digits = append(s.digits, d)
	return true
}

// Pop removes the last digit if there is one
func (s *EntryState) Pop() bool {
	if len(s.digits) == 0 {
		return false
	}
	s.digits = s.digits[:len(s.digits)-1]
	return true
}

// Reset removes every digit
func (s *EntryState) Reset() {
	s.digits = s.digits[:0]
}

// Value concatenates the digits left to right ("1","2","3" -> "123").
// Leading zeros are kept.
func (s *EntryState) Value() string {
	var b strings.Builder
	b.Grow(len(s.digits))
	for _, d := range s.digits {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}
