package app

import (
	"flag"

	"mandelview/internal/fractal"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width         int
	Height        int
	MaxIterations int
	Palette       string
	Seed          int64
	HUD           bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:         640,
		Height:        480,
		MaxIterations: fractal.DefaultMaxIterations,
		Palette:       "rainbow",
		Seed:          42,
		HUD:           true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.MaxIterations, "iterations", c.MaxIterations, "escape-time iteration cap")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette recipe to start with")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random palette generation")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the diagnostics overlay")
}
