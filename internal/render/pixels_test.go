package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 7}, palette)

	want := []byte{
		1, 2, 3, 255,
		10, 20, 30, 255,
		10, 20, 30, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillPaletteRGBA(buf, []uint8{1, 2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want cleared", i, b)
		}
	}
}

func TestBinaryPalette(t *testing.T) {
	p := BinaryPalette(color.White, color.Black)
	if p[0] != (color.RGBA{A: 255}) || p[1] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("palette = %v", p)
	}
}
