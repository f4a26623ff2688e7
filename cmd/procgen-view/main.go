//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/knarkzel/procedural-generation/internal/app"
	"github.com/knarkzel/procedural-generation/internal/core"
	_ "github.com/knarkzel/procedural-generation/internal/recipes/caves"
	_ "github.com/knarkzel/procedural-generation/internal/recipes/dungeon"
	_ "github.com/knarkzel/procedural-generation/internal/recipes/island"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Recipes()[cfg.Recipe]
	if !ok {
		log.Fatalf("unknown recipe %q", cfg.Recipe)
	}

	recipe := factory(cfg.RecipeOptions())
	recipe.Generate(cfg.Seed)

	game := app.New(recipe, cfg.Scale, cfg.Seed)
	size := recipe.Size()

	ebiten.SetWindowTitle("procgen — " + recipe.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
