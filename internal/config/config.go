// Package config loads solver and rendering settings from YAML, falling back
// to embedded defaults when no user config exists.
package config

import "time"

// Config is the top-level application configuration.
type Config struct {
	// DB is the path to the puzzle library database.
	DB     string       `yaml:"db"`
	Solve  SolveConfig  `yaml:"solve"`
	Render RenderConfig `yaml:"render"`
}

// SolveConfig tunes the search controller.
type SolveConfig struct {
	// TimeoutSecs bounds one solve; zero means no limit.
	TimeoutSecs int `yaml:"timeout_secs"`
	// FrameBuffer sizes the live-view frame channel.
	FrameBuffer int `yaml:"frame_buffer"`
	// FrameDelayMs paces live rendering between frames.
	FrameDelayMs int `yaml:"frame_delay_ms"`
}

// Timeout returns the solve bound as a duration, zero for no limit.
func (s SolveConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSecs) * time.Second
}

// FrameDelay returns the live-render pacing as a duration.
func (s SolveConfig) FrameDelay() time.Duration {
	return time.Duration(s.FrameDelayMs) * time.Millisecond
}

// RenderConfig controls how boards are drawn.
type RenderConfig struct {
	// Unknown, Sea, and Land are the cell glyphs.
	Unknown string `yaml:"unknown"`
	Sea     string `yaml:"sea"`
	Land    string `yaml:"land"`
	// Color disables styling when false, for dumb terminals and pipes.
	Color bool `yaml:"color"`
}
