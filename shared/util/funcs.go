package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// DistSq retorna a distância quadrada entre dois vetores 3D.
func DistSq(v1, v2 mgl32.Vec3) float32 {
	d := v1.Sub(v2)
	return d.Dot(d)
}

// DistXZ retorna a distância no plano horizontal (ignora Y).
func DistXZ(v1, v2 mgl32.Vec3) float32 {
	dx := v1.X() - v2.X()
	dz := v1.Z() - v2.Z()
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

// Clamp limita value ao intervalo [min, max].
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
