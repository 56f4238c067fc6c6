package app

import (
	"fmt"

	"DungeonVision/shared/layers"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw executa os passes na ordem fixa: arquitetura, props em baixa
// resolução, props em alta resolução (opcional) e composição na tela.
func (a *App) draw() {
	cam := a.Cam.RLCamera()
	pose := a.Cam.Pose()

	// 1. Arquitetura
	a.renderer.BeginPrimary()
	rl.BeginMode3D(cam)
	a.renderer.DrawWorld(a.World)
	if a.Config.ShowDebugBoxes {
		a.renderer.DrawDebug(a.Props, a.Culler, a.Cam.Position())
	}
	rl.EndMode3D()
	a.renderer.EndPrimary()

	// 2. Props em resolução reduzida
	a.renderer.BeginSecondary()
	rl.BeginMode3D(cam)
	rendered := a.renderer.DrawProps(a.Props, cam, pose, a.Culler, false)
	rl.EndMode3D()
	a.renderer.EndSecondary()

	// 3. Props em resolução cheia (comparação)
	if a.Mode == layers.ModeHighRes || a.Config.ForceHighRes {
		a.renderer.BeginHighRes()
		rl.BeginMode3D(cam)
		hi := a.renderer.DrawProps(a.Props, cam, pose, a.Culler, true)
		rl.EndMode3D()
		a.renderer.EndHighRes()
		if a.Mode == layers.ModeHighRes {
			rendered = hi
		}
	}
	a.LOS.SetRendered(rendered)

	// 4. Composição
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	a.renderer.Composite(a.Mode)
	a.drawHUD()
	rl.EndDrawing()
}

// drawHUD desenha a linha de status e, se ativo, o painel de informações.
func (a *App) drawHUD() {
	rl.DrawFPS(10, 10)
	rl.DrawText(fmt.Sprintf("Modo: %s  [H] alternar", a.Mode), 10, 34, 18, rl.RayWhite)

	if a.Config.ShowDebugInfo {
		a.drawInfoPanel()
	}

	// Título no canto inferior direito
	title := "DungeonVision v0.1.0"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}

func (a *App) drawInfoPanel() {
	l := a.renderer.Layout

	width := int32(330)
	height := int32(250)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	rl.DrawText("RENDERIZAÇÃO", x+10, y+10, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Tela: %dx%d", l.ScreenW, l.ScreenH), x+10, y+25, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Props: %dx%d (%.0f%% da escala, %.1f%% dos pixels)",
		l.PropW, l.PropH, l.Scale*100, l.PixelRatio()*100), x+10, y+45, 14, rl.LightGray)
	modeColor := rl.SkyBlue
	if a.Mode == layers.ModeHighRes {
		modeColor = rl.Gold
	}
	rl.DrawText(fmt.Sprintf("Camada: %s", a.Mode), x+10, y+65, 14, modeColor)
	low, high := a.frameMS[layers.ModeLowRes], a.frameMS[layers.ModeHighRes]
	rl.DrawText(fmt.Sprintf("Frame: baixa %.2f ms | alta %.2f ms", low.Mean(), high.Mean()), x+10, y+83, 14, rl.LightGray)

	rl.DrawLine(x+10, y+106, x+width-10, y+106, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("LINHA DE VISÃO", x+10, y+113, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Visíveis: %d/%d | Desenhados: %d", a.LOS.Visible, a.LOS.Total, a.LOS.Rendered),
		x+10, y+128, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Reavaliações: %d | Oclusores: %d", a.LOS.Evaluations, len(a.Culler.Occluders())),
		x+10, y+146, 14, rl.LightGray)

	rl.DrawLine(x+10, y+168, x+width-10, y+168, rl.NewColor(100, 100, 100, 100))

	pos := a.Cam.Position()
	rl.DrawText(fmt.Sprintf("Posição: (%.1f, %.1f, %.1f)", pos.X(), pos.Y(), pos.Z()), x+10, y+176, 14, rl.White)
	rl.DrawText(fmt.Sprintf("Colisão: %s", a.lastHit.Reason), x+10, y+194, 14, rl.LightGray)

	rl.DrawText("WASD/Mouse | I: Info | F1: Debug | Tab: Mouse", x+10, y+225, 12, rl.SkyBlue)
}
