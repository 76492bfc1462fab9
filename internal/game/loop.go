package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/internal/engine/input"
	"github.com/Faultbox/midgard-input/pkg/math"
)

// Logic is a per-frame game logic function. Logic functions run in the
// order they were added; returning false skips the rest for this frame.
type Logic func(s *State) bool

// State is what logic functions see each frame. The input views are
// read-only and already synced for the current frame.
type State struct {
	Mouse    *input.MouseState
	Keyboard *input.KeyboardState
	Events   *input.EventLog

	// WindowSize is the window width and height. Application space spans
	// -WindowSize/2 to WindowSize/2.
	WindowSize math.Vec2
	Delta      time.Duration
	Elapsed    time.Duration
	Frame      uint64

	exit bool
}

// DeltaSeconds returns Delta in seconds.
func (s *State) DeltaSeconds() float32 {
	return float32(s.Delta.Seconds())
}

// RequestExit stops the loop after the current frame.
func (s *State) RequestExit() {
	s.exit = true
}

// Loop is the platform-independent part of the frame loop: it syncs input
// and then runs logic, in that order, once per frame.
type Loop struct {
	log          *zap.Logger
	input        *input.Input
	logic        []Logic
	state        State
	exitOnEscape bool
}

// NewLoop creates a frame loop around an input synchronizer.
func NewLoop(in *input.Input, exitOnEscape bool, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loop{
		log:          log,
		input:        in,
		exitOnEscape: exitOnEscape,
	}
	l.state.Mouse = in.Mouse()
	l.state.Keyboard = in.Keyboard()
	l.state.Events = in.Events()
	return l
}

// AddLogic appends a logic function.
func (l *Loop) AddLogic(fn Logic) {
	l.logic = append(l.logic, fn)
}

// Step runs one frame. It returns false once the loop should stop.
func (l *Loop) Step(f *input.Frame, dt time.Duration) bool {
	l.input.Update(f)

	l.state.WindowSize = f.WindowSize
	l.state.Delta = dt
	l.state.Elapsed += dt
	l.state.Frame = l.input.Frame()

	if l.exitOnEscape && l.state.Keyboard.JustPressed(input.KeyEscape) {
		l.log.Info("escape pressed, exiting")
		return false
	}

	for i, fn := range l.logic {
		if !fn(&l.state) {
			l.log.Debug("logic chain stopped", zap.Int("index", i), zap.Uint64("frame", l.state.Frame))
			break
		}
	}
	return !l.state.exit
}

// State returns the state handed to logic functions.
func (l *Loop) State() *State {
	return &l.state
}
