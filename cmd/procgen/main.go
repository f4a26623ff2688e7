// Command procgen generates a tile map headlessly and prints it to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/knarkzel/procedural-generation/internal/core"
	_ "github.com/knarkzel/procedural-generation/internal/recipes/caves"
	_ "github.com/knarkzel/procedural-generation/internal/recipes/dungeon"
	_ "github.com/knarkzel/procedural-generation/internal/recipes/island"
	"github.com/knarkzel/procedural-generation/pkg/procgen"
)

type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	recipeName := flag.String("recipe", "island", "recipe to generate")
	seed := flag.Int64("seed", 0, "generation seed (0 = recipe default)")
	width := flag.Int("w", 0, "map width in tiles (0 = recipe default)")
	height := flag.Int("h", 0, "map height in tiles (0 = recipe default)")
	noColor := flag.Bool("no-color", false, "print plain values without ANSI colors")
	var sets setFlags
	flag.Var(&sets, "set", "recipe option as key=value (repeatable)")
	flag.Parse()

	factory, ok := core.Recipes()[*recipeName]
	if !ok {
		log.Fatalf("unknown recipe %q (available: %s)", *recipeName, availableRecipes())
	}

	cfg := map[string]string{}
	for _, kv := range sets {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			log.Fatalf("malformed -set %q, want key=value", kv)
		}
		cfg[key] = value
	}
	if *width > 0 {
		cfg["w"] = strconv.Itoa(*width)
	}
	if *height > 0 {
		cfg["h"] = strconv.Itoa(*height)
	}

	recipe := factory(cfg)
	recipe.Generate(*seed)
	if recipe.Grid() == nil {
		log.Fatalf("recipe %q produced no map, check its options", *recipeName)
	}
	fmt.Print(procgen.Format(recipe.Grid(), !*noColor))
}

func availableRecipes() string {
	names := make([]string, 0, len(core.Recipes()))
	for name := range core.Recipes() {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
