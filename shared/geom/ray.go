package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray representa um raio no espaço 3D (Origem e Direção normalizada).
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// epsilon abaixo do qual um vetor é tratado como nulo.
const epsilon = 1e-6

// RayFromTo monta o raio de from até to e devolve a distância entre os pontos.
// Retorna ok=false quando os pontos coincidem (não há direção para normalizar).
func RayFromTo(from, to mgl32.Vec3) (Ray, float32, bool) {
	dir := to.Sub(from)
	dist := dir.Len()
	if dist < epsilon {
		return Ray{Origin: from}, 0, false
	}
	return Ray{Origin: from, Direction: dir.Mul(1 / dist)}, dist, true
}

// At retorna o ponto do raio na distância t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectRay testa o raio contra a caixa pelo método de slabs.
// Retorna a distância até a entrada; se a origem estiver dentro da caixa,
// retorna a distância até a saída (mesma semântica do GetRayCollisionBox da Raylib).
// Interseções atrás da origem não contam.
func (b AABB) IntersectRay(r Ray) (float32, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if mgl32.Abs(d) < epsilon {
			// Raio paralelo ao slab: só segue se a origem estiver dentro dele
			if o < b.Min[i] || o > b.Max[i] {
				return 0, false
			}
			continue
		}

		inv := 1 / d
		t1 := (b.Min[i] - o) * inv
		t2 := (b.Max[i] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false // caixa inteira atrás da origem
	}
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}
