package world

import (
	"image/color"

	"DungeonVision/shared/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Wall identifica uma das quatro paredes de uma sala.
type Wall int

const (
	North Wall = iota // -Z
	East              // +X
	South             // +Z
	West              // -X
	wallCount
)

var wallNames = [wallCount]string{"north", "east", "south", "west"}

func (w Wall) String() string {
	if w < 0 || w >= wallCount {
		return "invalid"
	}
	return wallNames[w]
}

// ParseWall converte o nome da parede.
func ParseWall(name string) (Wall, bool) {
	for i, n := range wallNames {
		if n == name {
			return Wall(i), true
		}
	}
	return 0, false
}

// Walls lista as paredes na ordem norte, leste, sul, oeste.
func Walls() [4]Wall {
	return [4]Wall{North, East, South, West}
}

// Doorway descreve uma abertura em uma parede.
// Offset é relativo ao centro da sala ao longo do eixo tangente da parede
// (X para norte/sul, Z para leste/oeste). Width 0 significa parede sólida.
type Doorway struct {
	Offset float32 `yaml:"offset"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Open indica se a parede tem abertura.
func (d Doorway) Open() bool {
	return d.Width > 0
}

// Prop é uma instância estática posicionada em uma sala.
// Apenas Visible muda depois da criação (escrito pelo culler).
type Prop struct {
	Kind     PropKind
	Position mgl32.Vec3
	Rotation float32 // Radianos em torno de Y
	Scale    mgl32.Vec3
	Visible  bool
}

// Room é um espaço retangular com quatro paredes e seus props.
type Room struct {
	Position mgl32.Vec3 // Centro do volume
	Size     mgl32.Vec3 // Largura (X), altura (Y), comprimento (Z)
	Doorways [4]Doorway // Norte, Leste, Sul, Oeste

	WallColor    color.RGBA
	FloorColor   color.RGBA
	CeilingColor color.RGBA

	Props []Prop // Capacidade fixa, definida na criação
}

// Bounds retorna a extensão interna da sala.
func (r *Room) Bounds() geom.AABB {
	return geom.FromCenter(r.Position, r.Size)
}

// ContainsXZ testa se a posição está dentro da pegada da sala (bordas inclusas, Y ignorado).
func (r *Room) ContainsXZ(p mgl32.Vec3) bool {
	hx, hz := r.Size.X()/2, r.Size.Z()/2
	return p.X() >= r.Position.X()-hx && p.X() <= r.Position.X()+hx &&
		p.Z() >= r.Position.Z()-hz && p.Z() <= r.Position.Z()+hz
}

// FloorY retorna a altura do piso.
func (r *Room) FloorY() float32 {
	return r.Position.Y() - r.Size.Y()/2
}

// CeilingY retorna a altura do teto.
func (r *Room) CeilingY() float32 {
	return r.Position.Y() + r.Size.Y()/2
}

// DoorwayInterval retorna o intervalo [start, end] da abertura no eixo tangente da parede.
func (r *Room) DoorwayInterval(w Wall) (float32, float32, bool) {
	d := r.Doorways[w]
	if !d.Open() {
		return 0, 0, false
	}
	center := r.Position.X()
	if w == East || w == West {
		center = r.Position.Z()
	}
	start := center + d.Offset
	return start, start + d.Width, true
}

// WallSegments retorna as caixas sólidas de uma parede com espessura t.
// As caixas ficam do lado de fora da sala, sem invadir o interior.
// Parede com abertura vira até três segmentos: batente esquerdo, batente direito e verga.
func (r *Room) WallSegments(w Wall, t float32) []geom.AABB {
	b := r.Bounds()
	floor, ceil := b.Min.Y(), b.Max.Y()

	// Extensão ao longo da tangente (inclui os cantos) e faixa normal fora da sala
	var lo, hi, nLo, nHi float32
	switch w {
	case North:
		lo, hi, nLo, nHi = b.Min.X()-t, b.Max.X()+t, b.Min.Z()-t, b.Min.Z()
	case South:
		lo, hi, nLo, nHi = b.Min.X()-t, b.Max.X()+t, b.Max.Z(), b.Max.Z()+t
	case East:
		lo, hi, nLo, nHi = b.Min.Z(), b.Max.Z(), b.Max.X(), b.Max.X()+t
	case West:
		lo, hi, nLo, nHi = b.Min.Z(), b.Max.Z(), b.Min.X()-t, b.Min.X()
	default:
		return nil
	}

	box := func(a, c, y0, y1 float32) geom.AABB {
		if w == North || w == South {
			return geom.NewAABB(mgl32.Vec3{a, y0, nLo}, mgl32.Vec3{c, y1, nHi})
		}
		return geom.NewAABB(mgl32.Vec3{nLo, y0, a}, mgl32.Vec3{nHi, y1, c})
	}

	start, end, open := r.DoorwayInterval(w)
	if !open {
		return []geom.AABB{box(lo, hi, floor, ceil)}
	}

	segs := make([]geom.AABB, 0, 3)
	if start > lo {
		segs = append(segs, box(lo, start, floor, ceil))
	}
	if end < hi {
		segs = append(segs, box(end, hi, floor, ceil))
	}
	top := floor + r.Doorways[w].Height
	if a, c := maxf(start, lo), minf(end, hi); r.Doorways[w].Height > 0 && top < ceil && a < c {
		segs = append(segs, box(a, c, top, ceil))
	}

	out := segs[:0]
	for _, s := range segs {
		if !s.Empty() {
			out = append(out, s)
		}
	}
	return out
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
