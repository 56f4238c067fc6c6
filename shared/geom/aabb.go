// Package geom contém as primitivas geométricas usadas pelo culling e pela colisão.
package geom

import "github.com/go-gl/mathgl/mgl32"

// AABB representa uma caixa alinhada aos eixos (segmento de parede ou pegada de prop).
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB monta uma caixa a partir de dois cantos quaisquer, normalizando min/max.
func NewAABB(a, b mgl32.Vec3) AABB {
	var box AABB
	for i := 0; i < 3; i++ {
		if a[i] <= b[i] {
			box.Min[i], box.Max[i] = a[i], b[i]
		} else {
			box.Min[i], box.Max[i] = b[i], a[i]
		}
	}
	return box
}

// FromCenter monta uma caixa a partir do centro e das dimensões totais.
func FromCenter(center, size mgl32.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Contains verifica se o ponto está dentro da caixa (bordas inclusas).
func (b AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Overlaps verifica se duas caixas se sobrepõem com volume positivo.
// Caixas que apenas encostam na face não contam.
func (b AABB) Overlaps(o AABB) bool {
	return b.Max.X() > o.Min.X() && b.Min.X() < o.Max.X() &&
		b.Max.Y() > o.Min.Y() && b.Min.Y() < o.Max.Y() &&
		b.Max.Z() > o.Min.Z() && b.Min.Z() < o.Max.Z()
}

// Center retorna o centro da caixa.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size retorna as dimensões da caixa.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Empty indica se a caixa tem alguma dimensão não positiva.
func (b AABB) Empty() bool {
	s := b.Size()
	return s.X() <= 0 || s.Y() <= 0 || s.Z() <= 0
}

// Expand retorna a caixa aumentada de m em todas as direções.
func (b AABB) Expand(m float32) AABB {
	d := mgl32.Vec3{m, m, m}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}
