package input

import (
	"fmt"
	"slices"

	"github.com/Faultbox/midgard-input/pkg/math"
)

// ElementState is the level of a button or key carried by a transition event.
type ElementState uint8

const (
	Released ElementState = iota
	Pressed
)

func (s ElementState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// MouseButtonEvent is a mouse button transition.
type MouseButtonEvent struct {
	Button MouseButton
	State  ElementState
}

// KeyEvent is a keyboard key transition. Repeats are never reported.
type KeyEvent struct {
	Key   Key
	State ElementState
}

// CursorEvent is a pointer location. Host space (bottom-left origin) inside
// a Frame, application space inside an EventLog.
type CursorEvent struct {
	Position math.Vec2
}

// MotionEvent is a relative pointer movement. Y grows downward inside a
// Frame and upward inside an EventLog.
type MotionEvent struct {
	Delta math.Vec2
}

// WheelEvent is a raw wheel delta. Sign and magnitude are whatever the host
// reported; Y is the usual scroll axis.
type WheelEvent struct {
	X, Y float32
}

func (e MouseButtonEvent) String() string { return fmt.Sprintf("%s %s", e.Button, e.State) }
func (e KeyEvent) String() string         { return fmt.Sprintf("%s %s", e.Key, e.State) }

// EventLog holds every input event of the current frame in arrival order.
// It is refilled as a whole by Input.Update and never carries events from an
// earlier frame.
type EventLog struct {
	mouseButtons []MouseButtonEvent
	cursor       []CursorEvent
	motion       []MotionEvent
	wheel        []WheelEvent
	keys         []KeyEvent
}

func newEventLog(capacity int) *EventLog {
	return &EventLog{
		mouseButtons: make([]MouseButtonEvent, 0, capacity),
		cursor:       make([]CursorEvent, 0, capacity),
		motion:       make([]MotionEvent, 0, capacity),
		wheel:        make([]WheelEvent, 0, capacity),
		keys:         make([]KeyEvent, 0, capacity),
	}
}

// sync replaces the log contents with the events of f. Cursor positions are
// converted to application space and motion deltas to y-up. Backing arrays
// are reused across frames.
func (l *EventLog) sync(f *Frame) {
	l.mouseButtons = l.mouseButtons[:0]
	l.cursor = l.cursor[:0]
	l.motion = l.motion[:0]
	l.wheel = l.wheel[:0]
	l.keys = l.keys[:0]

	l.mouseButtons = append(l.mouseButtons, f.MouseButtons...)
	for _, ev := range f.Cursor {
		l.cursor = append(l.cursor, CursorEvent{Position: ToAppSpace(ev.Position, f.WindowSize)})
	}
	for _, ev := range f.Motion {
		l.motion = append(l.motion, MotionEvent{Delta: MotionToAppSpace(ev.Delta)})
	}
	l.wheel = append(l.wheel, f.Wheel...)
	l.keys = append(l.keys, f.Keys...)
}

// The accessors below share the log's storage with every logic function of
// the frame: callers must not modify the returned elements. The slices are
// clipped, so appending to them copies instead of overwriting the log.

// MouseButtons returns this frame's mouse button transitions.
func (l *EventLog) MouseButtons() []MouseButtonEvent { return slices.Clip(l.mouseButtons) }

// Cursor returns this frame's pointer locations in application space.
func (l *EventLog) Cursor() []CursorEvent { return slices.Clip(l.cursor) }

// Motion returns this frame's relative pointer movements, y-up.
func (l *EventLog) Motion() []MotionEvent { return slices.Clip(l.motion) }

// Wheel returns this frame's raw wheel deltas. Use these rather than
// MouseState.Wheel when the magnitude matters.
func (l *EventLog) Wheel() []WheelEvent { return slices.Clip(l.wheel) }

// Keys returns this frame's key transitions.
func (l *EventLog) Keys() []KeyEvent { return slices.Clip(l.keys) }

// Len returns the total number of events logged this frame.
func (l *EventLog) Len() int {
	return len(l.mouseButtons) + len(l.cursor) + len(l.motion) + len(l.wheel) + len(l.keys)
}
