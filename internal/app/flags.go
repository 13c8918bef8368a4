package app

import (
	"flag"

	"pan-ca/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	CellSize float64
	TPS      int
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 20, Height: 20, CellSize: 50, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "automaton to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell edge length in world pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "auto-run generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed used when randomizing the board")
}

// Settings converts the flag values into the core presentation settings.
func (c *Config) Settings() core.Settings {
	set := core.DefaultSettings()
	if c.CellSize > 0 {
		set.CellSize = c.CellSize
	}
	if c.TPS > 0 {
		set.TPS = c.TPS
	}
	return set
}
