// Package dungeon generates room-based maps: rectangular chambers stamped
// into solid rock, with optional rubble blobs scattered afterwards.
package dungeon

import (
	"image/color"
	"strconv"

	"github.com/knarkzel/procedural-generation/internal/core"
	"github.com/knarkzel/procedural-generation/pkg/grid"
	"github.com/knarkzel/procedural-generation/pkg/procgen"
)

// Tile values used by the dungeon recipe.
const (
	TileRock = iota
	TileFloor
	TileRubble
)

// Config controls the dungeon recipe.
type Config struct {
	Width  int
	Height int

	Seed int64

	RoomCount   int
	RoomMinSize int
	RoomMaxSize int
	RubbleCount int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      50,
		Seed:        1337,
		RoomCount:   16,
		RoomMinSize: 4,
		RoomMaxSize: 10,
		RubbleCount: 6,
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
	if v, ok := cfg["rooms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RoomCount = parsed
		}
	}
	if v, ok := cfg["room_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.RoomMinSize = parsed
		}
	}
	if v, ok := cfg["room_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.RoomMaxSize = parsed
		}
	}
	if c.RoomMaxSize <= c.RoomMinSize {
		c.RoomMaxSize = c.RoomMinSize + 1
	}
	if v, ok := cfg["rubble"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RubbleCount = parsed
		}
	}
	return c
}

// Map holds the last generated dungeon.
type Map struct {
	cfg     Config
	g       *grid.Grid
	rooms   []procgen.Room
	display []uint8
}

// New returns a dungeon map generator configured from the provided options.
func New(cfg Config) *Map {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	return &Map{cfg: cfg, display: make([]uint8, total)}
}

// Name returns the recipe identifier.
func (m *Map) Name() string { return "dungeon" }

// Size reports the map dimensions.
func (m *Map) Size() core.Size { return core.Size{W: m.cfg.Width, H: m.cfg.Height} }

// Grid exposes the last generated map, nil before the first Generate.
func (m *Map) Grid() *grid.Grid { return m.g }

// Cells exposes the display buffer for rendering.
func (m *Map) Cells() []uint8 { return m.display }

// Rooms returns the chambers accepted by the last Generate.
func (m *Map) Rooms() []procgen.Room { return m.rooms }

// Generate rebuilds the dungeon from the seed. Seed 0 falls back to the
// configured default.
func (m *Map) Generate(seed int64) {
	effective := seed
	if effective == 0 {
		effective = m.cfg.Seed
	}

	size := procgen.NewSize(m.cfg.RoomMinSize, m.cfg.RoomMinSize, m.cfg.RoomMaxSize, m.cfg.RoomMaxSize)
	gen := procgen.New().
		WithSeed(uint32(effective)).
		WithSize(m.cfg.Width, m.cfg.Height).
		SpawnRooms(TileFloor, m.cfg.RoomCount, size).
		SpawnBlobs(TileRubble, m.cfg.RubbleCount)
	if gen.Err() != nil {
		return
	}

	m.g = gen.Grid()
	m.rooms = gen.Rooms()
	for i, v := range m.g.Cells() {
		m.display[i] = uint8(v)
	}
}

var dungeonPalette = []color.RGBA{
	{R: 28, G: 26, B: 32, A: 255},
	{R: 196, G: 184, B: 160, A: 255},
	{R: 110, G: 96, B: 80, A: 255},
}

// Palette exposes the color palette used for rendering the dungeon.
func (m *Map) Palette() []color.RGBA {
	return dungeonPalette
}

func init() {
	core.Register("dungeon", func(cfg map[string]string) core.Recipe {
		return New(FromMap(cfg))
	})
}
