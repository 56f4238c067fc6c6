package app

import (
	"log"
	"time"

	"DungeonVision/shared/layers"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// updatePlayer move o jogador, condicionado ao resolvedor de colisão.
func (a *App) updatePlayer(dt float32) {
	a.Cam.Update(dt, func(pos mgl32.Vec3, radius float32) bool {
		hit := a.Collision.Check(a.World, pos, radius)
		a.lastHit = hit
		return hit.Blocked()
	})
}

// updateVisibility reavalia a linha de visão se a câmera andou o suficiente.
func (a *App) updateVisibility() {
	a.Culler.Update(a.LOS, a.Cam.Position(), a.Props)
}

// updateAutoToggle alterna o modo periodicamente (demonstração lado a lado).
func (a *App) updateAutoToggle(dt float32) {
	if !a.autoToggle {
		return
	}
	a.toggleTime += dt
	if a.toggleTime >= a.Config.AutoToggleSeconds {
		a.toggleTime = 0
		a.setMode(a.Mode.Toggle())
	}
}

func (a *App) setMode(m layers.Mode) {
	if m == a.Mode {
		return
	}
	a.Mode = m
	log.Printf("[App] Camada de props: %s", m)
}

// handleResize recria os alvos quando a janela muda de tamanho.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	layout, err := layers.NewLayout(rl.GetScreenWidth(), rl.GetScreenHeight(), a.Config.PropRenderScale)
	if err != nil {
		log.Printf("[App] Redimensionamento ignorado: %v", err)
		return
	}
	a.renderer.Resize(layout)
}

// recordFrame envia o custo do frame anterior ao gravador de estatísticas.
func (a *App) recordFrame(dt float32) {
	defer func() { a.lastMode = a.Mode }()
	if a.frameCount < 2 {
		return
	}
	a.frameMS[a.lastMode].Push(dt * 1000)

	if a.recorder == nil {
		return
	}
	frame := time.Duration(float64(dt) * float64(time.Second))
	if err := a.recorder.Record(a.lastMode.String(), frame, a.LOS.Visible, a.LOS.Rendered, a.LOS.Total); err != nil {
		log.Printf("[App] Gravação de estatísticas desativada: %v", err)
		a.recorder.Close()
		a.recorder = nil
	}
}
