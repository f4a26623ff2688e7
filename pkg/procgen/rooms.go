package procgen

import (
	"fmt"

	"github.com/knarkzel/procedural-generation/pkg/core"
)

// Size bounds room dimensions for SpawnRooms. Sampled widths fall in
// [MinW, MaxW) and heights in [MinH, MaxH); the maxima are exclusive.
type Size struct {
	MinW, MinH int
	MaxW, MaxH int
}

// NewSize constructs room size bounds.
func NewSize(minW, minH, maxW, maxH int) Size {
	return Size{MinW: minW, MinH: minH, MaxW: maxW, MaxH: maxH}
}

func (s Size) validate(width, height int) error {
	if s.MinW < 1 || s.MinH < 1 {
		return fmt.Errorf("procgen: minimum room size %dx%d must be at least 1x1", s.MinW, s.MinH)
	}
	if s.MinW >= s.MaxW || s.MinH >= s.MaxH {
		return fmt.Errorf("procgen: minimum room size %dx%d must be strictly below maximum %dx%d",
			s.MinW, s.MinH, s.MaxW, s.MaxH)
	}
	// Largest sampled size is (MaxW-1, MaxH-1); anything bigger than the
	// grid would shift a candidate to a negative origin.
	if s.MaxW-1 > width || s.MaxH-1 > height {
		return fmt.Errorf("procgen: maximum room size %dx%d does not fit %dx%d grid",
			s.MaxW-1, s.MaxH-1, width, height)
	}
	return nil
}

// Room is an axis-aligned rectangle accepted by SpawnRooms. (X, Y) is the
// top-left corner; (X2, Y2) the exclusive bottom-right bounds.
type Room struct {
	X, Y   int
	X2, Y2 int
	W, H   int
}

func newRoom(x, y, w, h int) Room {
	return Room{X: x, Y: y, X2: x + w, Y2: y + h, W: w, H: h}
}

// Intersects reports whether the two rooms overlap. The comparison is
// inclusive on both bounds, so rooms that merely touch count as overlapping.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X2 && r.X2 >= other.X && r.Y <= other.Y2 && r.Y2 >= other.Y
}

// SpawnRooms stamps up to count non-overlapping rooms into the map.
//
// Placement is best-effort: each attempt samples one candidate position and
// size, and a candidate that would overlap any previously accepted room is
// discarded without retry. Fewer than count rooms may land; compare
// len(Rooms()) against the request when a guaranteed count matters.
//
//	size := procgen.NewSize(4, 4, 10, 10)
//	g := procgen.New().WithSize(30, 20).SpawnRooms(2, 3, size)
func (g *Generator) SpawnRooms(value, count int, size Size) *Generator {
	if g.err != nil {
		return g
	}
	if g.g == nil {
		return g.fail(fmt.Errorf("procgen: SpawnRooms requires WithSize first"))
	}
	if err := size.validate(g.g.W, g.g.H); err != nil {
		return g.fail(err)
	}
	rng := g.rng()
	for i := 0; i < count; i++ {
		g.spawnRoom(value, size, rng)
	}
	return g
}

func (g *Generator) spawnRoom(value int, size Size, rng *core.RNG) {
	gr := g.g
	x := rng.IntN(gr.W)
	y := rng.IntN(gr.H)
	w := rng.RangeN(size.MinW, size.MaxW)
	h := rng.RangeN(size.MinH, size.MaxH)

	// Shift (not shrink) candidates hanging over the edge back inside.
	if x+w > gr.W {
		x = gr.W - w
	}
	if y+h > gr.H {
		y = gr.H - h
	}

	room := newRoom(x, y, w, h)
	for _, other := range g.rooms {
		if room.Intersects(other) {
			return
		}
	}

	cells := gr.Cells()
	for row := 0; row < h; row++ {
		base := (y + row) * gr.W
		for col := 0; col < w; col++ {
			cells[base+x+col] = value
		}
	}
	g.rooms = append(g.rooms, room)
}
