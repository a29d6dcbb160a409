package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "SpaceInvaders",
			Width:  1280,
			Height: 720,
		},
		TickRate: 60,
		Sprites: Sprites{
			Dir: ".",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// fillDefaults replaces zero values left by a partial YAML file.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.Sprites.Dir == "" {
		c.Sprites.Dir = d.Sprites.Dir
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
