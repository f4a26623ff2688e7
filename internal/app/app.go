//go:build ebiten

package app

import (
	"time"

	"github.com/knarkzel/procedural-generation/internal/core"
	"github.com/knarkzel/procedural-generation/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generation recipe to the ebiten.Game interface. The map is
// static between keypresses; R regenerates with the current seed and S rolls
// a fresh one.
type Game struct {
	recipe  core.Recipe
	painter *render.GridPainter

	scale int
	seed  int64
}

// New constructs a Game for the provided recipe.
func New(recipe core.Recipe, scale int, seed int64) *Game {
	size := recipe.Size()
	return &Game{
		recipe:  recipe,
		painter: render.NewGridPainter(size.W, size.H),
		scale:   scale,
		seed:    seed,
	}
}

// Regenerate rebuilds the map with the provided seed.
func (g *Game) Regenerate(seed int64) {
	g.seed = seed
	g.recipe.Generate(seed)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Regenerate(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Regenerate(time.Now().UnixNano())
	}
	return nil
}

// Draw renders the current map.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.recipe.Cells(), g.recipe.Palette(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.recipe.Size()
	return s.W * g.scale, s.H * g.scale
}
