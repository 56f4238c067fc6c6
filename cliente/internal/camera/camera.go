package camera

import (
	"DungeonVision/shared/player"
	"DungeonVision/shared/visibility"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller é a câmera em primeira pessoa: lê teclado e mouse do raylib,
// delega a cinemática ao player e expõe a câmera resultante.
type Controller struct {
	Player *player.Player

	// MouseLook desliga o olhar pelo mouse (ex.: cursor liberado).
	MouseLook bool

	rlCam rl.Camera3D
}

// New cria o controlador com o jogador nos pés (x, z).
func New(x, z, fovY, speed, sensitivity, radius float32) *Controller {
	p := player.New(x, z)
	p.FovY = fovY
	p.Speed = speed
	p.Sensitivity = sensitivity
	p.Radius = radius

	c := &Controller{
		Player:    p,
		MouseLook: true,
		rlCam: rl.Camera3D{
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       fovY,
			Projection: rl.CameraPerspective,
		},
	}
	c.sync()
	return c
}

// ReadInput amostra o teclado e o mouse deste frame.
func (c *Controller) ReadInput() player.Input {
	in := player.Input{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
	}
	if c.MouseLook {
		d := rl.GetMouseDelta()
		in.MouseDX, in.MouseDY = d.X, d.Y
	}
	return in
}

// Update processa a entrada e move o jogador se a posição não estiver bloqueada.
// Retorna true se o jogador se deslocou.
func (c *Controller) Update(dt float32, blocked player.BlockedFunc) bool {
	moved := c.Player.Update(c.ReadInput(), dt, blocked)
	c.sync()
	return moved
}

// sync copia a pose do jogador para a câmera do raylib.
func (c *Controller) sync() {
	pose := c.Player.Pose()
	c.rlCam.Position = toRL(pose.Position)
	c.rlCam.Target = toRL(pose.Target)
	c.rlCam.Fovy = pose.FovY
}

// RLCamera retorna a câmera no formato do raylib.
func (c *Controller) RLCamera() rl.Camera3D {
	return c.rlCam
}

// Pose retorna a pose usada pelo culler.
func (c *Controller) Pose() visibility.Pose {
	return c.Player.Pose()
}

// Position retorna a posição dos olhos.
func (c *Controller) Position() mgl32.Vec3 {
	return c.Player.Position
}

func toRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
