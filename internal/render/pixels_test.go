package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 100, B: 50, A: 255},
	}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	if buf[0] != 10 || buf[1] != 20 || buf[2] != 30 || buf[3] != 255 {
		t.Fatalf("cell 0 pixel = %v, want palette entry 0", buf[0:4])
	}
	if buf[4] != 200 || buf[5] != 100 || buf[6] != 50 || buf[7] != 255 {
		t.Fatalf("cell 1 pixel = %v, want palette entry 1", buf[4:8])
	}
	// Values past the palette clamp to the last entry.
	if buf[8] != 200 || buf[9] != 100 || buf[10] != 50 || buf[11] != 255 {
		t.Fatalf("cell 2 pixel = %v, want clamped palette entry", buf[8:12])
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{3, 1}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}

	fillPaletteRGBA(buf, cells, nil)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want transparent black", i, b)
		}
	}
}
