// Package input turns the host's per-frame input events into the two views
// game logic reads each frame: an ordered log of this frame's events and a
// collapsed current state for mouse and keyboard.
//
// Coordinates handed to game logic are in application space: the origin is
// the window center and y grows upward.
package input

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/pkg/math"
)

// Frame is everything the host backend delivers for one frame. Positions are
// in host space: origin at the bottom-left corner of the window, y up.
// Motion deltas keep the host's y-down convention.
type Frame struct {
	MouseButtons []MouseButtonEvent
	Cursor       []CursorEvent
	Motion       []MotionEvent
	Wheel        []WheelEvent
	Keys         []KeyEvent

	MouseButtonState ButtonSnapshot[MouseButton]
	KeyState         ButtonSnapshot[Key]

	// WindowSize is the window width and height at the end of the frame.
	WindowSize math.Vec2
}

// Config holds input settings.
type Config struct {
	// EventCapacity is the initial capacity of each event log sequence.
	EventCapacity int
	// TraceEvents logs every frame's events at debug level.
	TraceEvents bool
}

// Input owns the event log and the cumulative mouse and keyboard state.
// Update is the only writer; everything else is read-only.
type Input struct {
	cfg      Config
	log      *zap.Logger
	events   *EventLog
	mouse    *MouseState
	keyboard *KeyboardState
	frames   uint64
}

// New creates an input synchronizer. A nil logger disables logging.
func New(cfg Config, log *zap.Logger) *Input {
	if cfg.EventCapacity <= 0 {
		cfg.EventCapacity = 16
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Input{
		cfg:      cfg,
		log:      log,
		events:   newEventLog(cfg.EventCapacity),
		mouse:    newMouseState(),
		keyboard: newKeyboardState(),
	}
}

// Update runs the per-frame sync. It must be called exactly once per frame,
// before any game logic reads the state.
func (i *Input) Update(f *Frame) {
	i.events.sync(f)
	i.mouse.sync(f)
	i.keyboard.sync(f)
	i.frames++

	if i.cfg.TraceEvents && i.events.Len() > 0 {
		loc, _ := i.mouse.Location()
		i.log.Debug("input frame",
			zap.Uint64("frame", i.frames),
			zap.Stringers("mouse_buttons", i.events.MouseButtons()),
			zap.Stringers("keys", i.events.Keys()),
			zap.Int("cursor", len(i.events.Cursor())),
			zap.Int("motion", len(i.events.Motion())),
			zap.Int("wheel", len(i.events.Wheel())),
			zap.Float32("x", loc.X),
			zap.Float32("y", loc.Y),
		)
	}
}

// Frame returns the number of completed updates.
func (i *Input) Frame() uint64 { return i.frames }

// Events returns this frame's event log.
func (i *Input) Events() *EventLog { return i.events }

// Mouse returns the mouse state as of the last update.
func (i *Input) Mouse() *MouseState { return i.mouse }

// Keyboard returns the keyboard state as of the last update.
func (i *Input) Keyboard() *KeyboardState { return i.keyboard }
