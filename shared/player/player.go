// Package player mantém a cinemática em primeira pessoa: olhar por yaw/pitch,
// direção desejada no plano XZ e movimento condicionado à colisão.
package player

import (
	"math"

	"DungeonVision/shared/util"
	"DungeonVision/shared/visibility"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	EyeHeight     = 1.8
	MaxPitch      = 1.5
	DefaultSpeed  = 5.0
	DefaultRadius = 0.5
	DefaultFovY   = 60.0
	MouseSens     = 0.003
)

// Input é o estado de entrada amostrado em um frame.
type Input struct {
	Forward, Back, Left, Right bool
	MouseDX, MouseDY           float32
}

// BlockedFunc decide se uma posição candidata está bloqueada.
type BlockedFunc func(pos mgl32.Vec3, radius float32) bool

// Player é o estado do jogador. Position fica na altura dos olhos.
type Player struct {
	Position    mgl32.Vec3
	Yaw         float32 // Radianos, 0 olha para -Z
	Pitch       float32
	Speed       float32
	Sensitivity float32 // Radianos por pixel de mouse
	Radius      float32
	FovY        float32
}

// New cria um jogador nos pés (x, z), com os olhos em EyeHeight.
func New(x, z float32) *Player {
	return &Player{
		Position:    mgl32.Vec3{x, EyeHeight, z},
		Speed:       DefaultSpeed,
		Sensitivity: MouseSens,
		Radius:      DefaultRadius,
		FovY:        DefaultFovY,
	}
}

// Look aplica o delta do mouse. O pitch é limitado a ±MaxPitch.
func (p *Player) Look(dx, dy float32) {
	p.Yaw -= dx * p.Sensitivity
	p.Pitch = util.Clamp(p.Pitch-dy*p.Sensitivity, -MaxPitch, MaxPitch)
}

// Forward retorna o vetor de visão unitário.
func (p *Player) Forward() mgl32.Vec3 {
	cp := float32(math.Cos(float64(p.Pitch)))
	return mgl32.Vec3{
		-float32(math.Sin(float64(p.Yaw))) * cp,
		float32(math.Sin(float64(p.Pitch))),
		-float32(math.Cos(float64(p.Yaw))) * cp,
	}
}

// WishDir retorna a direção de movimento normalizada no plano XZ.
// Sem tecla pressionada (ou teclas opostas) retorna o vetor zero.
func (p *Player) WishDir(in Input) mgl32.Vec3 {
	sin, cos := float32(math.Sin(float64(p.Yaw))), float32(math.Cos(float64(p.Yaw)))
	fwd := mgl32.Vec3{-sin, 0, -cos}
	right := mgl32.Vec3{cos, 0, -sin}

	var dir mgl32.Vec3
	if in.Forward {
		dir = dir.Add(fwd)
	}
	if in.Back {
		dir = dir.Sub(fwd)
	}
	if in.Right {
		dir = dir.Add(right)
	}
	if in.Left {
		dir = dir.Sub(right)
	}
	if dir.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return dir.Normalize()
}

// TryMove tenta deslocar o jogador. Retorna false se não houve movimento
// (direção nula ou posição bloqueada).
func (p *Player) TryMove(in Input, dt float32, blocked BlockedFunc) bool {
	dir := p.WishDir(in)
	if dir == (mgl32.Vec3{}) || dt <= 0 {
		return false
	}
	next := p.Position.Add(dir.Mul(p.Speed * dt))
	if blocked != nil && blocked(next, p.Radius) {
		return false
	}
	p.Position = next
	return true
}

// Update aplica olhar e movimento de um frame.
func (p *Player) Update(in Input, dt float32, blocked BlockedFunc) bool {
	p.Look(in.MouseDX, in.MouseDY)
	return p.TryMove(in, dt, blocked)
}

// Pose retorna a pose de câmera correspondente.
func (p *Player) Pose() visibility.Pose {
	return visibility.Pose{
		Position: p.Position,
		Target:   p.Position.Add(p.Forward()),
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     p.FovY,
	}
}
