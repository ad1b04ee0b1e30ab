package config

import (
	_ "embed"
)

//go:embed defaults/nurikabe.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DB: "~/.nurikabe/puzzles.db",
		Solve: SolveConfig{
			TimeoutSecs:  0,
			FrameBuffer:  256,
			FrameDelayMs: 25,
		},
		Render: RenderConfig{
			Unknown: ".",
			Sea:     "#",
			Land:    "o",
			Color:   true,
		},
	}
}
