package input

import "github.com/Faultbox/midgard-input/pkg/math"

// ButtonSnapshot is the host's view of a button set for one frame.
type ButtonSnapshot[T comparable] struct {
	Pressed      []T
	JustPressed  []T
	JustReleased []T
}

type set[T comparable] map[T]struct{}

func (s set[T]) fill(items []T) {
	clear(s)
	for _, it := range items {
		s[it] = struct{}{}
	}
}

func (s set[T]) has(it T) bool {
	_, ok := s[it]
	return ok
}

func (s set[T]) any(items []T) bool {
	for _, it := range items {
		if s.has(it) {
			return true
		}
	}
	return false
}

// ButtonState is the level and edge state of a family of buttons for the
// current frame. It is rebuilt from the host snapshot every frame and never
// accumulates across frames.
type ButtonState[T comparable] struct {
	pressed      set[T]
	justPressed  set[T]
	justReleased set[T]
}

func newButtonState[T comparable]() ButtonState[T] {
	return ButtonState[T]{
		pressed:      make(set[T]),
		justPressed:  make(set[T]),
		justReleased: make(set[T]),
	}
}

// sync copies the host snapshot verbatim.
func (s *ButtonState[T]) sync(snap ButtonSnapshot[T]) {
	s.pressed.fill(snap.Pressed)
	s.justPressed.fill(snap.JustPressed)
	s.justReleased.fill(snap.JustReleased)
}

// Pressed reports whether b is held down.
func (s *ButtonState[T]) Pressed(b T) bool { return s.pressed.has(b) }

// JustPressed reports whether b went down during the last frame.
func (s *ButtonState[T]) JustPressed(b T) bool { return s.justPressed.has(b) }

// JustReleased reports whether b went up during the last frame.
func (s *ButtonState[T]) JustReleased(b T) bool { return s.justReleased.has(b) }

// PressedAny reports whether any of bs is held down.
func (s *ButtonState[T]) PressedAny(bs ...T) bool { return s.pressed.any(bs) }

// JustPressedAny reports whether any of bs went down during the last frame.
func (s *ButtonState[T]) JustPressedAny(bs ...T) bool { return s.justPressed.any(bs) }

// JustReleasedAny reports whether any of bs went up during the last frame.
func (s *ButtonState[T]) JustReleasedAny(bs ...T) bool { return s.justReleased.any(bs) }

// MouseState is the end state of the mouse after the last frame. Use it for
// "real time" decisions where only the final position and button levels
// matter; use EventLog to process every event of the frame.
type MouseState struct {
	ButtonState[MouseButton]

	location math.Vec2
	hasLoc   bool
	motion   math.Vec2
	wheel    WheelState
}

func newMouseState() *MouseState {
	return &MouseState{ButtonState: newButtonState[MouseButton]()}
}

func (m *MouseState) sync(f *Frame) {
	// Location only moves when the host reports a new one.
	if n := len(f.Cursor); n > 0 {
		m.location = ToAppSpace(f.Cursor[n-1].Position, f.WindowSize)
		m.hasLoc = true
	}

	m.motion = math.Zero
	for _, ev := range f.Motion {
		m.motion = m.motion.Add(MotionToAppSpace(ev.Delta))
	}

	m.wheel = NormalizeWheel(f.Wheel)
	m.ButtonState.sync(f.MouseButtonState)
}

// Location returns the last known pointer position in application space.
// ok is false until the host has reported a position at least once.
func (m *MouseState) Location() (pos math.Vec2, ok bool) {
	return m.location, m.hasLoc
}

// Motion returns the summed relative motion of the last frame, y-up.
func (m *MouseState) Motion() math.Vec2 { return m.motion }

// Wheel returns the last frame's wheel direction per axis.
func (m *MouseState) Wheel() WheelState { return m.wheel }

// KeyboardState is the end state of the keyboard after the last frame.
type KeyboardState struct {
	ButtonState[Key]
}

func newKeyboardState() *KeyboardState {
	return &KeyboardState{ButtonState: newButtonState[Key]()}
}

func (k *KeyboardState) sync(f *Frame) {
	k.ButtonState.sync(f.KeyState)
}
