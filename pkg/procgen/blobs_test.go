package procgen

import (
	"slices"
	"testing"
)

func TestSpawnBlobsDeterministic(t *testing.T) {
	build := func() *Generator {
		return New().WithSize(30, 20).WithSeed(5).SpawnBlobs(7, 3)
	}
	first := build()
	if err := first.Err(); err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	second := build()
	if !slices.Equal(first.Grid().Cells(), second.Grid().Cells()) {
		t.Fatal("same seed must reproduce identical blobs")
	}
}

func TestBlobConnectivity(t *testing.T) {
	g := New().WithSize(30, 20).WithSeed(11).SpawnBlobs(7, 1)
	if err := g.Err(); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	cells := g.Grid().Cells()
	width := g.Grid().W
	total := len(cells)

	painted := []int{}
	for i, v := range cells {
		if v == 7 {
			painted = append(painted, i)
		}
	}
	if len(painted) == 0 {
		t.Fatal("a blob must paint at least its seed cell")
	}

	// Expansion only ever paints index-adjacent neighbors of painted cells,
	// so the whole blob forms one component under index adjacency.
	reached := map[int]bool{painted[0]: true}
	frontier := []int{painted[0]}
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, next := range []int{cur - 1, cur + 1, cur - width, cur + width} {
			if next < 0 || next >= total || reached[next] || cells[next] != 7 {
				continue
			}
			reached[next] = true
			frontier = append(frontier, next)
		}
	}
	for _, idx := range painted {
		if !reached[idx] {
			t.Fatalf("painted cell %d unreachable from the blob seed", idx)
		}
	}
}

func TestBlobsNeverExpandIntoColumnZero(t *testing.T) {
	g := New().WithSize(16, 16).WithSeed(2).SpawnBlobs(7, 4)
	if err := g.Err(); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	// Expansion rejects column-0 candidates, so only seed cells can land
	// there: at most one per requested blob.
	firstColumn := 0
	for y := 0; y < 16; y++ {
		if g.Get(0, y) == 7 {
			firstColumn++
		}
	}
	if firstColumn > 4 {
		t.Fatalf("%d painted cells in column 0, more than the 4 possible seeds", firstColumn)
	}
}

func TestSpawnBlobsTinyGridTerminates(t *testing.T) {
	g := New().WithSize(1, 1).WithSeed(1).SpawnBlobs(3, 5)
	if err := g.Err(); err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if g.Get(0, 0) != 3 {
		t.Fatal("the only cell must hold the blob value")
	}
}

func TestSpawnBlobsRequiresSize(t *testing.T) {
	if err := New().SpawnBlobs(1, 1).Err(); err == nil {
		t.Fatal("SpawnBlobs without WithSize should fail")
	}
}
