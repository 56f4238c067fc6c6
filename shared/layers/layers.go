// Package layers descreve o plano de renderização em camadas: tamanhos dos
// alvos, retângulos de origem (invertidos em Y, convenção dos render targets)
// e a sequência de composição para a tela. Não depende de raylib.
package layers

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSize  = errors.New("tamanho de tela inválido")
	ErrInvalidScale = errors.New("escala da camada de props fora de (0, 1]")
)

// Mode seleciona qual camada de props é composta sobre a arquitetura.
type Mode int

const (
	ModeLowRes  Mode = iota // Camada secundária (resolução reduzida, ampliada)
	ModeHighRes             // Camada de comparação em resolução cheia
)

// Toggle alterna entre os dois modos.
func (m Mode) Toggle() Mode {
	if m == ModeHighRes {
		return ModeLowRes
	}
	return ModeHighRes
}

func (m Mode) String() string {
	if m == ModeHighRes {
		return "ALTA RESOLUÇÃO"
	}
	return "BAIXA RESOLUÇÃO"
}

// Target identifica um dos três alvos de renderização.
type Target int

const (
	Primary   Target = iota // Arquitetura, resolução da tela, fundo opaco
	Secondary               // Props, resolução escalada, fundo transparente
	HighRes                 // Props, resolução da tela, fundo transparente
)

func (t Target) String() string {
	switch t {
	case Secondary:
		return "secundário"
	case HighRes:
		return "alta resolução"
	default:
		return "primário"
	}
}

// Rect é um retângulo em pixels. Height negativo indica inversão vertical.
type Rect struct {
	X, Y, Width, Height float32
}

// Blit é uma cópia de um alvo para a tela.
type Blit struct {
	Target     Target
	Source     Rect
	Dest       Rect
	AlphaBlend bool
	DepthTest  bool
	DepthWrite bool
}

// ScaledSize retorna round(w*s) x round(h*s), nunca menor que 1x1.
func ScaledSize(w, h int, s float32) (int, int) {
	sw := int(math.Round(float64(float32(w) * s)))
	sh := int(math.Round(float64(float32(h) * s)))
	return max(sw, 1), max(sh, 1)
}

// Layout guarda as dimensões dos alvos para uma dada tela e escala.
type Layout struct {
	ScreenW, ScreenH int
	Scale            float32
	PropW, PropH     int // Tamanho do alvo secundário
}

// NewLayout valida e calcula as dimensões dos alvos.
func NewLayout(screenW, screenH int, scale float32) (Layout, error) {
	if screenW <= 0 || screenH <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, screenW, screenH)
	}
	if !(scale > 0 && scale <= 1) {
		return Layout{}, fmt.Errorf("%w: %.3f", ErrInvalidScale, scale)
	}
	pw, ph := ScaledSize(screenW, screenH, scale)
	return Layout{ScreenW: screenW, ScreenH: screenH, Scale: scale, PropW: pw, PropH: ph}, nil
}

// Size retorna as dimensões de um alvo.
func (l Layout) Size(t Target) (int, int) {
	if t == Secondary {
		return l.PropW, l.PropH
	}
	return l.ScreenW, l.ScreenH
}

// PixelRatio retorna a fração de pixels do alvo secundário em relação à tela.
func (l Layout) PixelRatio() float32 {
	return float32(l.PropW*l.PropH) / float32(l.ScreenW*l.ScreenH)
}

func (l Layout) source(t Target) Rect {
	w, h := l.Size(t)
	return Rect{Width: float32(w), Height: -float32(h)}
}

func (l Layout) PrimarySource() Rect   { return l.source(Primary) }
func (l Layout) SecondarySource() Rect { return l.source(Secondary) }
func (l Layout) HighResSource() Rect   { return l.source(HighRes) }

// Destination é sempre a tela inteira.
func (l Layout) Destination() Rect {
	return Rect{Width: float32(l.ScreenW), Height: float32(l.ScreenH)}
}

// Composite retorna a sequência de cópias para a tela: primeiro a arquitetura
// (opaca, 1:1), depois a camada de props escolhida pelo modo, com alpha,
// teste de profundidade ligado e escrita de profundidade desligada.
func (l Layout) Composite(mode Mode) []Blit {
	props := Secondary
	if mode == ModeHighRes {
		props = HighRes
	}
	return []Blit{
		{Target: Primary, Source: l.PrimarySource(), Dest: l.Destination(), DepthWrite: true},
		{Target: props, Source: l.source(props), Dest: l.Destination(), AlphaBlend: true, DepthTest: true},
	}
}
