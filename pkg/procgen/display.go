package procgen

import (
	"fmt"
	"strings"

	"github.com/knarkzel/procedural-generation/pkg/grid"
)

// Seven foreground colors cycled by tile value: blue, red, green, cyan,
// magenta, white, yellow.
var ansiColors = [7]string{
	"\x1b[34m",
	"\x1b[31m",
	"\x1b[32m",
	"\x1b[36m",
	"\x1b[35m",
	"\x1b[37m",
	"\x1b[33m",
}

const ansiReset = "\x1b[0m"

// Format renders the grid as text, one row per line with space-separated tile
// values. With colored set, each value is wrapped in an ANSI color picked by
// value modulo 7.
func Format(gr *grid.Grid, colored bool) string {
	if gr == nil {
		return ""
	}
	var b strings.Builder
	cells := gr.Cells()
	for y := 0; y < gr.H; y++ {
		for x := 0; x < gr.W; x++ {
			v := cells[y*gr.W+x]
			if colored {
				b.WriteString(ansiColors[colorBucket(v)])
				fmt.Fprintf(&b, "%d ", v)
				b.WriteString(ansiReset)
			} else {
				fmt.Fprintf(&b, "%d ", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func colorBucket(v int) int {
	bucket := v % len(ansiColors)
	if bucket < 0 {
		bucket += len(ansiColors)
	}
	return bucket
}

// String renders the map without colors.
func (g *Generator) String() string {
	return Format(g.g, false)
}

// Show prints the map to stdout with colors.
func (g *Generator) Show() {
	fmt.Print(Format(g.g, true))
}
