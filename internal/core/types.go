package core

import (
	"image/color"

	"github.com/knarkzel/procedural-generation/pkg/grid"
)

// Size describes the dimensions of a generated map.
type Size struct {
	W int
	H int
}

// Recipe is a canned generation pipeline that rebuilds its map from a seed.
type Recipe interface {
	Name() string
	Size() Size
	Generate(seed int64)
	Grid() *grid.Grid
	Cells() []uint8
	Palette() []color.RGBA
}

// Factory constructs a Recipe using an optional configuration map.
type Factory func(cfg map[string]string) Recipe

var recipes = map[string]Factory{}

// Register adds a recipe factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	recipes[name] = f
}

// Recipes exposes the registry of available recipe factories.
func Recipes() map[string]Factory {
	return recipes
}
