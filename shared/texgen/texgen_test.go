package texgen

import (
	"image/color"
	"testing"
)

func TestCheckerboardAlternates(t *testing.T) {
	r := Recipe{Pattern: PatternCheckerboard, Base: Brown, Alt: DarkBrown, Cell: 16}
	img := r.Generate(LowResSize, nil)
	if got := img.RGBAAt(0, 0); got != Brown {
		t.Errorf("(0,0) = %v, want %v", got, Brown)
	}
	if got := img.RGBAAt(16, 0); got != DarkBrown {
		t.Errorf("(16,0) = %v, want %v", got, DarkBrown)
	}
	if got := img.RGBAAt(16, 16); got != Brown {
		t.Errorf("(16,16) = %v, want %v", got, Brown)
	}
}

func TestPixelatedCellsAreUniform(t *testing.T) {
	r := Recipe{Pattern: PatternPixelated, Base: Brown, Cell: 8}
	img := r.Generate(LowResSize, nil)
	ref := img.RGBAAt(8, 8)
	for y := 8; y < 16; y++ {
		for x := 8; x < 16; x++ {
			if img.RGBAAt(x, y) != ref {
				t.Fatalf("célula não uniforme em (%d,%d)", x, y)
			}
		}
	}
}

func TestGradientEndpoints(t *testing.T) {
	r := Recipe{Pattern: PatternGradient, Base: Black, Alt: White, Horizontal: true}
	img := r.Generate(64, nil)
	if got := img.RGBAAt(0, 10); got != Black {
		t.Errorf("início do gradiente = %v", got)
	}
	last := img.RGBAAt(63, 10)
	if last.R < 240 {
		t.Errorf("fim do gradiente escuro demais: %v", last)
	}
}

func TestSizeAndScaled(t *testing.T) {
	r := Recipe{Pattern: PatternNoise, Base: Brown, NoiseScale: 0.3}
	if b := r.Generate(HighResSize, nil).Bounds(); b.Dx() != HighResSize || b.Dy() != HighResSize {
		t.Errorf("tamanho = %v", b)
	}
	if s := (Recipe{Cell: 8}).Scaled(2); s.Cell != 16 {
		t.Errorf("Scaled = %d, want 16", s.Cell)
	}
}

func TestBrightnessSaturates(t *testing.T) {
	got := Brightness(color.RGBA{200, 100, 0, 255}, 2)
	if got != (color.RGBA{255, 200, 0, 255}) {
		t.Errorf("Brightness = %v", got)
	}
}
