package input

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/pkg/math"
)

var sdlMouseButtons = map[uint8]MouseButton{
	sdl.BUTTON_LEFT:   MouseLeft,
	sdl.BUTTON_RIGHT:  MouseRight,
	sdl.BUTTON_MIDDLE: MouseMiddle,
	sdl.BUTTON_X1:     MouseX1,
	sdl.BUTTON_X2:     MouseX2,
}

// Collector is the SDL2 event backend. It gathers one Frame per call to
// Poll and keeps the held/edge bookkeeping for buttons and keys.
type Collector struct {
	log     *zap.Logger
	frame   Frame
	mouse   *Tracker[MouseButton]
	keys    *Tracker[Key]
	quit    bool
	resized bool
}

// NewCollector creates a collector for a window of the given size.
func NewCollector(windowSize math.Vec2, log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Collector{
		log:   log,
		mouse: NewTracker[MouseButton](),
		keys:  NewTracker[Key](),
	}
	c.frame.WindowSize = windowSize
	return c
}

// Begin starts a new frame: event lists are truncated and edges forgotten.
func (c *Collector) Begin() {
	c.frame.MouseButtons = c.frame.MouseButtons[:0]
	c.frame.Cursor = c.frame.Cursor[:0]
	c.frame.Motion = c.frame.Motion[:0]
	c.frame.Wheel = c.frame.Wheel[:0]
	c.frame.Keys = c.frame.Keys[:0]
	c.mouse.Clear()
	c.keys.Clear()
	c.quit = false
	c.resized = false
}

// Poll drains the SDL event queue into a new frame and returns it. The
// returned frame is valid until the next call to Poll or Begin.
// Must be called from the main thread.
func (c *Collector) Poll() *Frame {
	c.Begin()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		c.Feed(event)
	}
	return c.End()
}

// End finalizes the frame being collected. The snapshot slices are reused
// by the next End.
func (c *Collector) End() *Frame {
	c.mouse.SnapshotInto(&c.frame.MouseButtonState)
	c.keys.SnapshotInto(&c.frame.KeyState)
	return &c.frame
}

// Feed translates one SDL event into the current frame.
func (c *Collector) Feed(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		c.quit = true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			c.frame.WindowSize = math.Vec2{X: float32(e.Data1), Y: float32(e.Data2)}
			c.resized = true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			// Key-up events are not delivered while unfocused.
			c.mouse.Reset()
			c.keys.Reset()
		}

	case *sdl.MouseMotionEvent:
		// SDL puts the origin at the top-left; Frame positions are bottom-left.
		c.frame.Cursor = append(c.frame.Cursor, CursorEvent{
			Position: math.Vec2{X: float32(e.X), Y: c.frame.WindowSize.Y - float32(e.Y)},
		})
		c.frame.Motion = append(c.frame.Motion, MotionEvent{
			Delta: math.Vec2{X: float32(e.XRel), Y: float32(e.YRel)},
		})

	case *sdl.MouseButtonEvent:
		b, ok := sdlMouseButtons[e.Button]
		if !ok {
			c.log.Debug("unmapped mouse button", zap.Uint8("button", e.Button))
			return
		}
		s := elementState(e.State)
		c.frame.MouseButtons = append(c.frame.MouseButtons, MouseButtonEvent{Button: b, State: s})
		c.mouse.Apply(b, s)

	case *sdl.MouseWheelEvent:
		ev := WheelEvent{X: float32(e.X), Y: float32(e.Y)}
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			ev.X, ev.Y = -ev.X, -ev.Y
		}
		c.frame.Wheel = append(c.frame.Wheel, ev)

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return
		}
		k, ok := sdlKeys[e.Keysym.Scancode]
		if !ok {
			c.log.Debug("unmapped scancode", zap.Uint32("scancode", uint32(e.Keysym.Scancode)))
			return
		}
		s := elementState(e.State)
		c.frame.Keys = append(c.frame.Keys, KeyEvent{Key: k, State: s})
		c.keys.Apply(k, s)
	}
}

// QuitRequested reports whether the window was closed during the frame.
func (c *Collector) QuitRequested() bool { return c.quit }

// Resized reports whether the window size changed during the frame.
func (c *Collector) Resized() bool { return c.resized }

// WindowSize returns the last known window size.
func (c *Collector) WindowSize() math.Vec2 { return c.frame.WindowSize }

func elementState(s uint8) ElementState {
	if s == sdl.PRESSED {
		return Pressed
	}
	return Released
}
