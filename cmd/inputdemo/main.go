// Package main is a demo that logs mouse and keyboard state as it changes.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/internal/config"
	"github.com/Faultbox/midgard-input/internal/engine/input"
	"github.com/Faultbox/midgard-input/internal/game"
	"github.com/Faultbox/midgard-input/internal/logger"
	"github.com/Faultbox/midgard-input/pkg/math"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Midgard Input Demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg, logger.Log)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	d := &demo{log: logger.Named("demo")}
	g.AddLogic(d.toggleDebug)
	g.AddLogic(d.mouse)
	g.AddLogic(d.keyboard)

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}

const moveSpeed = 200 // application units per second

type demo struct {
	log    *zap.Logger
	marker math.Vec2
}

// toggleDebug flips between info and debug logging on F1.
func (d *demo) toggleDebug(s *game.State) bool {
	if s.Keyboard.JustPressed(input.KeyF1) {
		if logger.Level() == zap.DebugLevel {
			logger.SetLevel("info")
		} else {
			logger.SetLevel("debug")
		}
		d.log.Info("log level changed", zap.Stringer("level", logger.Level()))
	}
	return true
}

func (d *demo) mouse(s *game.State) bool {
	m := s.Mouse
	for _, b := range []input.MouseButton{input.MouseLeft, input.MouseRight, input.MouseMiddle, input.MouseX1, input.MouseX2} {
		if m.JustPressed(b) {
			d.log.Info("mouse button pressed", zap.Stringer("button", b), zap.Bool("still_held", m.Pressed(b)))
		}
		if m.JustReleased(b) {
			d.log.Info("mouse button released", zap.Stringer("button", b))
		}
	}

	if m.JustPressed(input.MouseLeft) {
		if loc, ok := m.Location(); ok {
			d.marker = loc
			d.log.Info("marker placed", zap.Float32("x", loc.X), zap.Float32("y", loc.Y))
		} else {
			d.log.Info("click before the pointer position is known")
		}
	}

	if w := m.Wheel(); w.Y != 0 || w.X != 0 {
		var total float32
		for _, ev := range s.Events.Wheel() {
			total += ev.Y
		}
		d.log.Info("wheel", zap.Float32("dir_x", w.X), zap.Float32("dir_y", w.Y), zap.Float32("raw_y", total))
	}

	if mv := m.Motion(); mv != math.Zero && m.PressedAny(input.MouseRight, input.MouseMiddle) {
		d.log.Debug("drag", zap.Float32("dx", mv.X), zap.Float32("dy", mv.Y))
	}
	return true
}

func (d *demo) keyboard(s *game.State) bool {
	k := s.Keyboard
	step := moveSpeed * s.DeltaSeconds()

	if k.PressedAny(input.KeyA, input.KeyLeft) {
		d.marker.X -= step
	}
	if k.PressedAny(input.KeyD, input.KeyRight) {
		d.marker.X += step
	}
	if k.PressedAny(input.KeyS, input.KeyDown) {
		d.marker.Y -= step
	}
	if k.PressedAny(input.KeyW, input.KeyUp) {
		d.marker.Y += step
	}

	half := s.WindowSize.Scale(0.5)
	d.marker = d.marker.Clamp(half.Neg(), half)

	if k.JustReleasedAny(input.KeyA, input.KeyD, input.KeyS, input.KeyW,
		input.KeyLeft, input.KeyRight, input.KeyDown, input.KeyUp) {
		d.log.Info("marker moved", zap.Float32("x", d.marker.X), zap.Float32("y", d.marker.Y))
	}

	for _, ev := range s.Events.Keys() {
		d.log.Debug("key", zap.Stringer("event", ev))
	}
	return true
}
