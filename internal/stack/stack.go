// Package stack implements the two LIFO structures Tubular droplets
// share through the scheduler: the data stack (values, non-destructive
// zero-on-underflow) and the call stack (return coordinate/direction
// frames, empty-is-a-no-op on Return).
package stack

import (
	"github.com/tubular-lang/tubular/internal/coord"
	"github.com/tubular-lang/tubular/internal/value"
)

// Data is the LIFO of Values used by `:`, `;`, `d`, and the binary
// stack operators. Pop/Peek on an empty stack silently return zero —
// there is no observable underflow error.
type Data struct {
	items    []value.Value
	highWater int
}

// NewData returns an empty data stack.
func NewData() *Data {
	return &Data{}
}

// Push appends v to the top of the stack.
func (s *Data) Push(v value.Value) {
	s.items = append(s.items, v)
	if len(s.items) > s.highWater {
		s.highWater = len(s.items)
	}
}

// Pop removes and returns the top value, or zero if the stack is empty.
func (s *Data) Pop() value.Value {
	if len(s.items) == 0 {
		return value.Zero()
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// Peek returns the top value without removing it, or zero if empty.
func (s *Data) Peek() value.Value {
	if len(s.items) == 0 {
		return value.Zero()
	}
	return s.items[len(s.items)-1]
}

// Depth returns the current number of entries.
func (s *Data) Depth() int {
	return len(s.items)
}

// HighWater returns the largest depth ever reached, exposed purely for
// tests; it does not alter semantics.
func (s *Data) HighWater() int {
	return s.highWater
}

// CallFrame is a (return coordinate, return direction) pair pushed by
// the Call operator and popped by Return.
type CallFrame struct {
	Coord coord.Coord
	Dir   coord.Direction
}

// Call is the LIFO of CallFrames used by `C` and `R`.
type Call struct {
	frames []CallFrame
}

// NewCall returns an empty call stack.
func NewCall() *Call {
	return &Call{}
}

// Push appends a return frame.
func (s *Call) Push(frame CallFrame) {
	s.frames = append(s.frames, frame)
}

// Pop removes and returns the top frame. ok is false when the stack is
// empty, in which case Return must destroy the triggering droplet
// without spawning a replacement.
func (s *Call) Pop() (frame CallFrame, ok bool) {
	if len(s.frames) == 0 {
		return CallFrame{}, false
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top, true
}

// Depth returns the current number of frames.
func (s *Call) Depth() int {
	return len(s.frames)
}
