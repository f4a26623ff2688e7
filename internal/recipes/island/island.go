// Package island generates noise-classified overworld maps: water through
// sand, grass, forest and mountain bands.
package island

import (
	"image/color"

	"github.com/knarkzel/procedural-generation/internal/core"
	"github.com/knarkzel/procedural-generation/pkg/grid"
	"github.com/knarkzel/procedural-generation/pkg/noise"
	"github.com/knarkzel/procedural-generation/pkg/procgen"
)

// Tile values written by the classifier.
const (
	TileDeepWater = iota
	TileWater
	TileSand
	TileGrass
	TileForest
	TileMountain
)

// Map holds the last generated island.
type Map struct {
	cfg     Config
	g       *grid.Grid
	display []uint8
}

// New returns an island map generator configured from the provided options.
func New(cfg Config) *Map {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	return &Map{cfg: cfg, display: make([]uint8, total)}
}

// Name returns the recipe identifier.
func (m *Map) Name() string { return "island" }

// Size reports the map dimensions.
func (m *Map) Size() core.Size { return core.Size{W: m.cfg.Width, H: m.cfg.Height} }

// Grid exposes the last generated map, nil before the first Generate.
func (m *Map) Grid() *grid.Grid { return m.g }

// Cells exposes the display buffer for rendering.
func (m *Map) Cells() []uint8 { return m.display }

// Generate rebuilds the island from the seed. Seed 0 falls back to the
// configured default.
func (m *Map) Generate(seed int64) {
	effective := seed
	if effective == 0 {
		effective = m.cfg.Seed
	}

	gen := procgen.New().
		WithSeed(uint32(effective)).
		WithOptions(noise.Options{
			Frequency:      m.cfg.Frequency,
			Redistribution: m.cfg.Redistribution,
			Octaves:        m.cfg.Octaves,
		}).
		WithSize(m.cfg.Width, m.cfg.Height)
	if m.cfg.UseLibraryNoise {
		gen.WithSampler(noise.NewLibrary(uint32(effective)))
	}
	gen.SpawnPerlin(classify)
	if gen.Err() != nil {
		return
	}

	m.g = gen.Grid()
	for i, v := range m.g.Cells() {
		m.display[i] = uint8(v)
	}
}

func classify(value float64) int {
	switch {
	case value > 0.80:
		return TileMountain
	case value > 0.62:
		return TileForest
	case value > 0.42:
		return TileGrass
	case value > 0.36:
		return TileSand
	case value > 0.22:
		return TileWater
	default:
		return TileDeepWater
	}
}

var islandPalette = []color.RGBA{
	{R: 24, G: 48, B: 110, A: 255},
	{R: 50, G: 100, B: 190, A: 255},
	{R: 214, G: 196, B: 132, A: 255},
	{R: 88, G: 160, B: 72, A: 255},
	{R: 44, G: 110, B: 58, A: 255},
	{R: 170, G: 170, B: 185, A: 255},
}

// Palette exposes the color palette used for rendering the island.
func (m *Map) Palette() []color.RGBA {
	return islandPalette
}

func init() {
	core.Register("island", func(cfg map[string]string) core.Recipe {
		return New(FromMap(cfg))
	})
}
