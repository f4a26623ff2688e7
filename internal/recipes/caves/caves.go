// Package caves generates open caverns by growing stochastic blobs of air
// through solid rock.
package caves

import (
	"image/color"
	"strconv"

	"github.com/knarkzel/procedural-generation/internal/core"
	"github.com/knarkzel/procedural-generation/pkg/grid"
	"github.com/knarkzel/procedural-generation/pkg/procgen"
)

// Tile values used by the caves recipe.
const (
	TileRock = iota
	TileAir
)

// Config controls the caves recipe.
type Config struct {
	Width  int
	Height int

	Seed int64

	BlobCount int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     100,
		Height:    60,
		Seed:      1337,
		BlobCount: 60,
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
	if v, ok := cfg["blobs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BlobCount = parsed
		}
	}
	return c
}

// Map holds the last generated cave system.
type Map struct {
	cfg     Config
	g       *grid.Grid
	display []uint8
}

// New returns a caves map generator configured from the provided options.
func New(cfg Config) *Map {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	return &Map{cfg: cfg, display: make([]uint8, total)}
}

// Name returns the recipe identifier.
func (m *Map) Name() string { return "caves" }

// Size reports the map dimensions.
func (m *Map) Size() core.Size { return core.Size{W: m.cfg.Width, H: m.cfg.Height} }

// Grid exposes the last generated map, nil before the first Generate.
func (m *Map) Grid() *grid.Grid { return m.g }

// Cells exposes the display buffer for rendering.
func (m *Map) Cells() []uint8 { return m.display }

// Generate rebuilds the caves from the seed. Seed 0 falls back to the
// configured default.
func (m *Map) Generate(seed int64) {
	effective := seed
	if effective == 0 {
		effective = m.cfg.Seed
	}

	gen := procgen.New().
		WithSeed(uint32(effective)).
		WithSize(m.cfg.Width, m.cfg.Height).
		SpawnBlobs(TileAir, m.cfg.BlobCount)
	if gen.Err() != nil {
		return
	}

	m.g = gen.Grid()
	for i, v := range m.g.Cells() {
		m.display[i] = uint8(v)
	}
}

var cavesPalette = []color.RGBA{
	{R: 52, G: 46, B: 42, A: 255},
	{R: 12, G: 10, B: 10, A: 255},
}

// Palette exposes the color palette used for rendering the caves.
func (m *Map) Palette() []color.RGBA {
	return cavesPalette
}

func init() {
	core.Register("caves", func(cfg map[string]string) core.Recipe {
		return New(FromMap(cfg))
	})
}
