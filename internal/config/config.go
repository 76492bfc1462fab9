// Package config handles application configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Game    GameConfig    `yaml:"game"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// InputConfig holds input synchronization settings.
type InputConfig struct {
	EventCapacity int  `yaml:"event_capacity"` // initial capacity of each per-frame event list
	TraceEvents   bool `yaml:"trace_events"`   // log every frame's events at debug level
}

// GameConfig holds frame loop settings.
type GameConfig struct {
	FPSLimit     int  `yaml:"fps_limit"` // 0 = unlimited
	ExitOnEscape bool `yaml:"exit_on_escape"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Midgard Input",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
		},
		Input: InputConfig{
			EventCapacity: 16,
			TraceEvents:   false,
		},
		Game: GameConfig{
			FPSLimit:     60,
			ExitOnEscape: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
