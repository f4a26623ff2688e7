package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Recipe string
	Scale  int
	Seed   int64
	Width  int
	Height int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Recipe: "island", Scale: 6, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Recipe, "recipe", c.Recipe, "recipe to generate")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed (0 = recipe default)")
	fs.IntVar(&c.Width, "w", c.Width, "map width in tiles (0 = recipe default)")
	fs.IntVar(&c.Height, "h", c.Height, "map height in tiles (0 = recipe default)")
}

// RecipeOptions converts the size overrides into a recipe configuration map.
func (c *Config) RecipeOptions() map[string]string {
	opts := map[string]string{}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	return opts
}
