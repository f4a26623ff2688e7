// Package grid provides the flat tile buffer every generation algorithm
// mutates. Cells hold caller-defined integer tile values; 0 conventionally
// means "empty".
package grid

import "fmt"

// Grid stores a 2D grid of integer tile values in row-major order.
type Grid struct {
	W, H int
	data []int
}

// New allocates a grid with the given dimensions. Both must be positive.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid: invalid size %dx%d, both dimensions must be positive", w, h)
	}
	return &Grid{W: w, H: h, data: make([]int, w*h)}, nil
}

// Resize reallocates the grid to the given dimensions, discarding prior
// contents. All cells are reset to zero.
func (g *Grid) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("grid: invalid size %dx%d, both dimensions must be positive", w, h)
	}
	g.W = w
	g.H = h
	g.data = make([]int, w*h)
	return nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []int { return g.data }

// Len returns the number of cells, always W*H.
func (g *Grid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the tile value at (x, y). Out-of-range coordinates panic
// rather than silently wrapping.
func (g *Grid) Get(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: coordinates (%d,%d) out of range for %dx%d grid", x, y, g.W, g.H))
	}
	return g.data[y*g.W+x]
}

// Set writes the tile value at (x, y). Out-of-range coordinates panic
// rather than silently wrapping.
func (g *Grid) Set(x, y, value int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: coordinates (%d,%d) out of range for %dx%d grid", x, y, g.W, g.H))
	}
	g.data[y*g.W+x] = value
}

// Rows returns the grid as a freshly allocated slice of row slices. This is a
// convenience view; the flat buffer from Cells remains the primary structure.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]int, g.W)
		copy(row, g.data[y*g.W:(y+1)*g.W])
		rows[y] = row
	}
	return rows
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
