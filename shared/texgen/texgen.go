// Package texgen gera as texturas procedurais dos props como imagens Go.
// A conversão para textura de GPU fica a cargo do renderizador.
package texgen

import (
	"image"
	"image/color"
	"math/rand"
)

// Pattern identifica o algoritmo de geração.
type Pattern int

const (
	PatternFlat Pattern = iota
	PatternPixelated
	PatternCheckerboard
	PatternGradient
	PatternNoise
)

// Tamanhos padrão das duas versões de cada textura.
const (
	LowResSize  = 64
	HighResSize = 256
)

// Recipe descreve como gerar uma textura.
type Recipe struct {
	Pattern    Pattern
	Base       color.RGBA
	Alt        color.RGBA // Segunda cor (xadrez e gradiente)
	Cell       int        // Tamanho do "pixel" ou da casa do xadrez
	Horizontal bool       // Direção do gradiente
	NoiseScale float32    // Intensidade do escurecimento no ruído
}

// Generate cria uma imagem size x size. rng controla a variação aleatória
// (pixelado e ruído); nil usa uma semente fixa para resultados estáveis.
func (r Recipe) Generate(size int, rng *rand.Rand) *image.RGBA {
	if size <= 0 {
		size = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := r.Cell
	if cell <= 0 {
		cell = 1
	}

	switch r.Pattern {
	case PatternPixelated:
		for y := 0; y < size; y += cell {
			for x := 0; x < size; x += cell {
				c := Brightness(r.Base, float32(80+rng.Intn(41))/100)
				fillCell(img, x, y, cell, c)
			}
		}
	case PatternCheckerboard:
		for y := 0; y < size; y += cell {
			for x := 0; x < size; x += cell {
				c := r.Base
				if (x/cell+y/cell)%2 != 0 {
					c = r.Alt
				}
				fillCell(img, x, y, cell, c)
			}
		}
	case PatternGradient:
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				f := float32(y) / float32(size)
				if r.Horizontal {
					f = float32(x) / float32(size)
				}
				img.SetRGBA(x, y, LerpColor(r.Base, r.Alt, f))
			}
		}
	case PatternNoise:
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dark := rng.Float32() * r.NoiseScale
				img.SetRGBA(x, y, Brightness(r.Base, 1-dark))
			}
		}
	default:
		fillCell(img, 0, 0, size, r.Base)
	}
	return img
}

// Scaled devolve a receita com a célula multiplicada (versão de alta resolução).
func (r Recipe) Scaled(factor int) Recipe {
	if factor > 0 {
		r.Cell *= factor
	}
	return r
}

func fillCell(img *image.RGBA, x0, y0, cell int, c color.RGBA) {
	b := img.Bounds()
	for y := y0; y < y0+cell && y < b.Max.Y; y++ {
		for x := x0; x < x0+cell && x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
