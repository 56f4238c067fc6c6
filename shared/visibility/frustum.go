package visibility

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose é o estado da câmera lido pelo culler e pelo renderizador.
type Pose struct {
	Position     mgl32.Vec3
	Target       mgl32.Vec3
	Up           mgl32.Vec3
	FovY         float32 // Graus (perspectiva) ou altura visível (ortográfica)
	Orthographic bool
}

// ViewSpace transforma um ponto do mundo para o espaço da câmera
// (olhando para -Z, Y para cima).
func (p Pose) ViewSpace(world mgl32.Vec3) mgl32.Vec3 {
	up := p.Up
	if up.Len() == 0 {
		up = mgl32.Vec3{0, 1, 0}
	}
	view := mgl32.LookAtV(p.Position, p.Target, up)
	return view.Mul4x1(world.Vec4(1)).Vec3()
}

// InFrustum testa se o ponto cai dentro do cone de visão, com folga linear
// margin somada às meias-extensões. Pontos atrás da câmera (z >= 0) sempre falham.
func InFrustum(p Pose, aspect, margin float32, world mgl32.Vec3) bool {
	if p.Target.Sub(p.Position).Len() == 0 {
		return false // Câmera sem direção definida
	}
	v := p.ViewSpace(world)
	depth := -v.Z()
	if depth <= 0 {
		return false
	}
	if aspect <= 0 {
		aspect = 1
	}

	var halfH float32
	if p.Orthographic {
		halfH = p.FovY / 2
	} else {
		halfH = depth * float32(math.Tan(float64(mgl32.DegToRad(p.FovY)/2)))
	}
	halfW := halfH * aspect

	return mgl32.Abs(v.X()) <= halfW+margin && mgl32.Abs(v.Y()) <= halfH+margin
}

// InFrustum usa a folga configurada no culler.
func (c *Culler) InFrustum(p Pose, aspect float32, world mgl32.Vec3) bool {
	return InFrustum(p, aspect, c.cfg.FrustumMargin, world)
}
