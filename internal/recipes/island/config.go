package island

import "strconv"

// Config controls the island recipe.
type Config struct {
	Width  int
	Height int

	Seed int64

	Frequency       float64
	Redistribution  float64
	Octaves         int
	UseLibraryNoise bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          120,
		Height:         80,
		Seed:           1337,
		Frequency:      3.0,
		Redistribution: 1.0,
		Octaves:        4,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Frequency = parsed
		}
	}
	if v, ok := cfg["redistribution"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Redistribution = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Octaves = parsed
		}
	}
	if v, ok := cfg["library"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.UseLibraryNoise = parsed
		}
	}
	return c
}
