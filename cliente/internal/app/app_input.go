package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput processa as teclas de alternância.
func (a *App) updateInput() {
	// H: alterna a camada de props composta (desliga a alternância automática)
	if rl.IsKeyPressed(rl.KeyH) {
		a.autoToggle = false
		a.setMode(a.Mode.Toggle())
	}

	// I: painel de informações
	if rl.IsKeyPressed(rl.KeyI) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// F1: caixas dos oclusores, raios e marcadores
	if rl.IsKeyPressed(rl.KeyF1) {
		a.Config.ShowDebugBoxes = !a.Config.ShowDebugBoxes
	}

	// F3: log detalhado das reavaliações de linha de visão
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Culler.Verbose = !a.Culler.Verbose
		log.Printf("[App] Log de LOS: %v", a.Culler.Verbose)
	}

	// R: força reavaliação da linha de visão no próximo frame
	if rl.IsKeyPressed(rl.KeyR) {
		a.LOS.Invalidate()
	}

	// Tab: libera/captura o mouse
	if rl.IsKeyPressed(rl.KeyTab) {
		a.Cam.MouseLook = !a.Cam.MouseLook
		if a.Cam.MouseLook {
			rl.DisableCursor()
		} else {
			rl.EnableCursor()
		}
	}

	// Toggle Fullscreen (F11)
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
}
