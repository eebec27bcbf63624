package app

import (
	"flag"
	"fmt"
	"strings"

	"mad-life/pkg/sims/life"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Scale   int
	Speed   int
	Density float64
	Seed    int64
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Scale:   12,
		Speed:   d.SpeedMS,
		Density: 1 - d.Threshold,
		Seed:    d.Seed,
		Pattern: d.Pattern,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Speed, "speed", c.Speed, "milliseconds between generations (50-1000, step 50)")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after random seeding")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns (0 uses the clock)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: "+strings.Join(life.Patterns(), ", "))
}

// Life converts the flags into a session configuration.
func (c *Config) Life() (life.Config, error) {
	if _, ok := life.Lookup(c.Pattern); !ok {
		return life.Config{}, fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	if c.Density < 0 || c.Density > 1 {
		return life.Config{}, fmt.Errorf("density %v outside [0,1]", c.Density)
	}
	return life.Config{
		SpeedMS:   life.ClampSpeed(c.Speed),
		Threshold: 1 - c.Density,
		Seed:      c.Seed,
		Pattern:   c.Pattern,
	}, nil
}
