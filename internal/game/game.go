// Package game implements the main loop: it polls SDL, syncs input state
// and runs the registered logic functions once per frame.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/internal/config"
	"github.com/Faultbox/midgard-input/internal/engine/input"
	"github.com/Faultbox/midgard-input/internal/engine/window"
)

// Game owns the window, the SDL event backend and the frame loop.
type Game struct {
	cfg       *config.Config
	log       *zap.Logger
	window    *window.Window
	collector *input.Collector
	loop      *Loop
}

// New opens the window and wires input.
func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	w, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	in := input.New(input.Config{
		EventCapacity: cfg.Input.EventCapacity,
		TraceEvents:   cfg.Input.TraceEvents,
	}, log.Named("input"))

	g := &Game{
		cfg:       cfg,
		log:       log,
		window:    w,
		collector: input.NewCollector(w.Size(), log.Named("sdl")),
		loop:      NewLoop(in, cfg.Game.ExitOnEscape, log),
	}

	log.Info("game initialized successfully")
	return g, nil
}

// AddLogic appends a logic function run once per frame.
func (g *Game) AddLogic(fn Logic) {
	g.loop.AddLogic(fn)
}

// Run runs the frame loop until the window is closed or logic requests exit.
func (g *Game) Run() error {
	var frameBudget time.Duration
	if g.cfg.Game.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.cfg.Game.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	g.log.Info("starting game loop", zap.Duration("frame_budget", frameBudget))

	for {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Collect this frame's host events
		frame := g.collector.Poll()
		if g.collector.QuitRequested() {
			g.log.Info("quit requested")
			return nil
		}
		if g.collector.Resized() {
			g.log.Debug("window resized",
				zap.Float32("width", frame.WindowSize.X),
				zap.Float32("height", frame.WindowSize.Y),
			)
		}

		// 2. Sync input, then run logic
		if !g.loop.Step(frame, dt) {
			return nil
		}

		// 3. Frame limiting
		if frameBudget > 0 {
			if spent := time.Since(now); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// Close releases the window and SDL.
func (g *Game) Close() {
	g.log.Info("closing game")
	if g.window != nil {
		g.window.Close()
	}
}
