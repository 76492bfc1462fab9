package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/midgard-input/pkg/math"
)

func collect(c *Collector, events ...sdl.Event) *Frame {
	c.Begin()
	for _, e := range events {
		c.Feed(e)
	}
	return c.End()
}

func TestCollectorMouse(t *testing.T) {
	c := NewCollector(window800x600, zaptest.NewLogger(t))

	f := collect(c,
		&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20, XRel: 3, YRel: 4},
		&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, State: sdl.PRESSED},
		&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 0, Y: -2},
		&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 1, Y: 1, Direction: uint32(sdl.MOUSEWHEEL_FLIPPED)},
	)

	assert.Equal(t, []CursorEvent{{Position: math.Vec2{X: 10, Y: 580}}}, f.Cursor, "flipped to a bottom-left origin")
	assert.Equal(t, []MotionEvent{{Delta: math.Vec2{X: 3, Y: 4}}}, f.Motion)
	assert.Equal(t, []MouseButtonEvent{{Button: MouseLeft, State: Pressed}}, f.MouseButtons)
	assert.Equal(t, []WheelEvent{{X: 0, Y: -2}, {X: -1, Y: -1}}, f.Wheel)
	assert.ElementsMatch(t, []MouseButton{MouseLeft}, f.MouseButtonState.Pressed)
	assert.ElementsMatch(t, []MouseButton{MouseLeft}, f.MouseButtonState.JustPressed)
	assert.Equal(t, window800x600, f.WindowSize)
}

func TestCollectorBeginClearsFrame(t *testing.T) {
	c := NewCollector(window800x600, nil)
	collect(c,
		&sdl.MouseMotionEvent{X: 1, Y: 1},
		&sdl.MouseButtonEvent{Button: sdl.BUTTON_RIGHT, State: sdl.PRESSED},
		&sdl.QuitEvent{Type: sdl.QUIT},
	)
	require.True(t, c.QuitRequested())

	f := collect(c)
	assert.Empty(t, f.Cursor)
	assert.Empty(t, f.Motion)
	assert.Empty(t, f.MouseButtons)
	assert.ElementsMatch(t, []MouseButton{MouseRight}, f.MouseButtonState.Pressed, "held button survives")
	assert.Empty(t, f.MouseButtonState.JustPressed)
	assert.False(t, c.QuitRequested())
}

func TestCollectorKeyboard(t *testing.T) {
	c := NewCollector(window800x600, nil)

	f := collect(c,
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
		&sdl.KeyboardEvent{Type: sdl.KEYUP, State: sdl.RELEASED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
	)

	assert.Equal(t, []KeyEvent{
		{Key: KeyW, State: Pressed},
		{Key: KeySpace, State: Pressed},
		{Key: KeySpace, State: Released},
	}, f.Keys, "repeats are dropped")
	assert.ElementsMatch(t, []Key{KeyW}, f.KeyState.Pressed)
	assert.ElementsMatch(t, []Key{KeyW, KeySpace}, f.KeyState.JustPressed)
	assert.Empty(t, f.KeyState.JustReleased)

	f = collect(c,
		&sdl.KeyboardEvent{Type: sdl.KEYUP, State: sdl.RELEASED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
	)
	assert.Empty(t, f.KeyState.Pressed)
	assert.ElementsMatch(t, []Key{KeyW}, f.KeyState.JustReleased)
}

func TestCollectorWindowEvents(t *testing.T) {
	c := NewCollector(window800x600, nil)

	collect(c, &sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}})

	f := collect(c,
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 1280, Data2: 720},
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_LOST},
	)
	assert.True(t, c.Resized())
	assert.Equal(t, math.Vec2{X: 1280, Y: 720}, f.WindowSize)
	assert.Equal(t, math.Vec2{X: 1280, Y: 720}, c.WindowSize())
	assert.Empty(t, f.KeyState.Pressed, "focus loss releases held keys")
	assert.Empty(t, f.KeyState.JustReleased)
}

func TestCollectorUnmappedInput(t *testing.T) {
	c := NewCollector(window800x600, zaptest.NewLogger(t))
	f := collect(c,
		&sdl.MouseButtonEvent{Button: 9, State: sdl.PRESSED},
		&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Scancode: 250}},
	)
	assert.Empty(t, f.MouseButtons)
	assert.Empty(t, f.Keys)
}

func TestCollectorFeedsInput(t *testing.T) {
	c := NewCollector(window800x600, nil)
	in := New(Config{}, nil)

	in.Update(collect(c,
		&sdl.MouseMotionEvent{X: 800, Y: 300, XRel: 5, YRel: 5},
		&sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: sdl.PRESSED},
		&sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: sdl.RELEASED},
	))
	m := in.Mouse()
	loc, ok := m.Location()
	require.True(t, ok)
	assert.Equal(t, math.Vec2{X: 400, Y: 0}, loc)
	assert.Equal(t, math.Vec2{X: 5, Y: -5}, m.Motion())
	assert.True(t, m.JustPressed(MouseLeft))
	assert.False(t, m.Pressed(MouseLeft))
	assert.False(t, m.JustReleased(MouseLeft))
	assert.Len(t, in.Events().MouseButtons(), 2)

	in.Update(collect(c))
	loc, ok = m.Location()
	require.True(t, ok)
	assert.Equal(t, math.Vec2{X: 400, Y: 0}, loc)
	assert.False(t, m.JustPressed(MouseLeft))
}

func TestCollectorCursorOrientation(t *testing.T) {
	tests := []struct {
		name string
		x, y int32
		want math.Vec2
	}{
		{"top edge", 400, 0, math.Vec2{X: 0, Y: 300}},
		{"bottom edge", 400, 600, math.Vec2{X: 0, Y: -300}},
		{"top-left corner", 0, 0, math.Vec2{X: -400, Y: 300}},
		{"lower-right quadrant", 600, 500, math.Vec2{X: 200, Y: -200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(window800x600, nil)
			in := New(Config{}, nil)
			in.Update(collect(c, &sdl.MouseMotionEvent{X: tt.x, Y: tt.y}))

			loc, ok := in.Mouse().Location()
			require.True(t, ok)
			assert.Equal(t, tt.want, loc)
			assert.Equal(t, []CursorEvent{{Position: tt.want}}, in.Events().Cursor())
		})
	}
}

func TestCollectorLocationAndMotionAgree(t *testing.T) {
	c := NewCollector(window800x600, nil)
	in := New(Config{}, nil)

	in.Update(collect(c, &sdl.MouseMotionEvent{X: 400, Y: 400}))
	before, _ := in.Mouse().Location()

	// Pointer moves 200 points towards the top of the screen.
	in.Update(collect(c, &sdl.MouseMotionEvent{X: 400, Y: 200, XRel: 0, YRel: -200}))
	after, _ := in.Mouse().Location()

	assert.Equal(t, math.Vec2{X: 0, Y: -100}, before)
	assert.Equal(t, math.Vec2{X: 0, Y: 100}, after)
	assert.Equal(t, math.Vec2{X: 0, Y: 200}, in.Mouse().Motion())
	assert.Equal(t, after.Sub(before), in.Mouse().Motion(), "location and motion must move the same way")
}

func TestCollectorWheelDirection(t *testing.T) {
	c := NewCollector(window800x600, nil)
	in := New(Config{}, nil)

	// SDL reports positive Y for scrolling away from the user.
	in.Update(collect(c, &sdl.MouseWheelEvent{Y: 1}, &sdl.MouseWheelEvent{Y: 2}))
	assert.Equal(t, WheelState{Y: 1}, in.Mouse().Wheel())

	in.Update(collect(c, &sdl.MouseWheelEvent{X: 1, Y: 3, Direction: uint32(sdl.MOUSEWHEEL_FLIPPED)}))
	assert.Equal(t, WheelState{X: -1, Y: -1}, in.Mouse().Wheel())
}

func TestCollectorCursorAfterResize(t *testing.T) {
	c := NewCollector(window800x600, nil)
	in := New(Config{}, nil)

	in.Update(collect(c,
		&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 1000, Data2: 1000},
		&sdl.MouseMotionEvent{X: 500, Y: 100},
	))
	loc, ok := in.Mouse().Location()
	require.True(t, ok)
	assert.Equal(t, math.Vec2{X: 0, Y: 400}, loc)
}

func TestCollectorNumpadEnterIsSeparate(t *testing.T) {
	c := NewCollector(window800x600, nil)
	in := New(Config{}, nil)
	kb := in.Keyboard()

	key := func(code sdl.Scancode, state uint8) *sdl.KeyboardEvent {
		return &sdl.KeyboardEvent{State: state, Keysym: sdl.Keysym{Scancode: code}}
	}

	in.Update(collect(c, key(sdl.SCANCODE_RETURN, sdl.PRESSED)))
	require.True(t, kb.Pressed(KeyEnter))

	// Tap keypad Enter while Return stays held.
	in.Update(collect(c,
		key(sdl.SCANCODE_KP_ENTER, sdl.PRESSED),
		key(sdl.SCANCODE_KP_ENTER, sdl.RELEASED),
	))
	assert.True(t, kb.Pressed(KeyEnter), "Return is still held")
	assert.False(t, kb.JustReleased(KeyEnter))
	assert.True(t, kb.JustPressed(KeyNumpadEnter))
	assert.False(t, kb.Pressed(KeyNumpadEnter))

	in.Update(collect(c, key(sdl.SCANCODE_RETURN, sdl.RELEASED)))
	assert.False(t, kb.Pressed(KeyEnter))
	assert.True(t, kb.JustReleased(KeyEnter))
}

func TestCollectorEndReusesSnapshots(t *testing.T) {
	c := NewCollector(window800x600, nil)
	collect(c,
		&sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: sdl.PRESSED},
		&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
	)

	allocs := testing.AllocsPerRun(100, func() {
		c.Begin()
		c.End()
	})
	if allocs != 0 {
		t.Errorf("Collector.End() allocated %v times per frame, want 0", allocs)
	}
	assert.ElementsMatch(t, []MouseButton{MouseLeft}, c.End().MouseButtonState.Pressed)
	assert.ElementsMatch(t, []Key{KeyW}, c.End().KeyState.Pressed)
}
