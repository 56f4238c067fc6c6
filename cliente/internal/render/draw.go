package render

import (
	"image/color"

	"DungeonVision/shared/geom"
	"DungeonVision/shared/visibility"
	"DungeonVision/shared/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

var yAxis = rl.Vector3{X: 0, Y: 1, Z: 0}

// DrawWorld desenha a arquitetura de todas as salas. Chamar dentro de BeginMode3D.
func (r *Renderer) DrawWorld(w *world.World) {
	rooms := w.Rooms()
	for i := range rooms {
		r.DrawRoom(&rooms[i])
	}
}

// DrawRoom desenha piso, teto e paredes de uma sala. As paredes usam a mesma
// segmentação (batentes e verga) que o registro de oclusores.
func (r *Renderer) DrawRoom(room *world.Room) {
	t := r.Opts.WallThickness
	b := room.Bounds()

	floor := geom.NewAABB(
		mgl32.Vec3{b.Min.X() - t, b.Min.Y() - t, b.Min.Z() - t},
		mgl32.Vec3{b.Max.X() + t, b.Min.Y(), b.Max.Z() + t})
	ceiling := geom.NewAABB(
		mgl32.Vec3{b.Min.X() - t, b.Max.Y(), b.Min.Z() - t},
		mgl32.Vec3{b.Max.X() + t, b.Max.Y() + t, b.Max.Z() + t})

	r.drawSurface(tokenFloor, floor, room.FloorColor)
	r.drawSurface(tokenCeiling, ceiling, room.CeilingColor)

	for _, wall := range world.Walls() {
		for _, seg := range room.WallSegments(wall, t) {
			r.drawSurface(tokenWall, seg, room.WallColor)
		}
	}
}

func (r *Renderer) drawSurface(token string, box geom.AABB, col color.RGBA) {
	s, ok := r.surfaces[token]
	if !ok {
		rl.DrawCube(toRL(box.Center()), box.Size().X(), box.Size().Y(), box.Size().Z(), col)
		return
	}
	tint := col
	if s.Textured {
		tint = rl.White
	}
	rl.DrawModelEx(s.Model, toRL(box.Center()), yAxis, 0, toRL(box.Size()), tint)
}

// DrawProps desenha os props visíveis (linha de visão) e dentro do frustum.
// hiRes escolhe as texturas de alta resolução. Retorna quantos foram desenhados.
// Chamar dentro de BeginMode3D.
func (r *Renderer) DrawProps(ps *world.PropSet, cam rl.Camera3D, pose visibility.Pose, culler *visibility.Culler, hiRes bool) int {
	r.bindPropTextures(hiRes)
	aspect := float32(r.Layout.ScreenW) / float32(r.Layout.ScreenH)

	rendered := 0
	var billboards []int

	for i := 0; i < ps.Len(); i++ {
		p := ps.Prop(i)
		if !p.Visible || !culler.InFrustum(pose, aspect, p.Position) {
			continue
		}
		rendered++
		if p.Kind.Info().Style == world.StyleBillboard {
			billboards = append(billboards, i)
			continue
		}
		r.drawModelProp(p)
	}

	if len(billboards) > 0 {
		rl.BeginShaderMode(r.BillboardShader)
		for _, i := range billboards {
			r.drawBillboardProp(ps.Prop(i), cam, hiRes)
		}
		rl.EndShaderMode()
	}

	r.Rendered = rendered
	return rendered
}

func (r *Renderer) drawModelProp(p *world.Prop) {
	pa := &r.props[p.Kind]
	pos := p.Position
	pos[1] += pa.OffsetY * p.Scale.Y()
	rl.DrawModelEx(pa.Model, toRL(pos), yAxis, mgl32.RadToDeg(p.Rotation), toRL(p.Scale), rl.White)
}

func (r *Renderer) drawBillboardProp(p *world.Prop, cam rl.Camera3D, hiRes bool) {
	pa := &r.props[p.Kind]
	info := p.Kind.Info()
	size := rl.Vector2{X: info.Size.X() * p.Scale.X(), Y: info.Size.Y() * p.Scale.Y()}

	tex := pa.Low
	if hiRes {
		tex = pa.High
	}
	if tex.ID == 0 {
		rl.DrawCube(toRL(p.Position), size.X, size.Y, 0.05, pa.Color)
		return
	}
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	rl.DrawBillboardRec(cam, tex, src, toRL(p.Position), size, rl.White)
}

// DrawDebug desenha as caixas dos oclusores, os raios câmera-prop
// (verde = visível, vermelho = ocluído) e marcadores por categoria.
func (r *Renderer) DrawDebug(ps *world.PropSet, culler *visibility.Culler, eye mgl32.Vec3) {
	for _, box := range culler.Occluders() {
		rl.DrawBoundingBox(rl.BoundingBox{Min: toRL(box.Min), Max: toRL(box.Max)}, rl.Yellow)
	}

	from := toRL(eye.Sub(mgl32.Vec3{0, 0.3, 0}))
	for i := 0; i < ps.Len(); i++ {
		p := ps.Prop(i)
		col := rl.Red
		if p.Visible {
			col = rl.Green
		}
		rl.DrawLine3D(from, toRL(p.Position), col)

		info := p.Kind.Info()
		marker := p.Position.Add(mgl32.Vec3{0, info.Size.Y()/2 + 0.2, 0})
		rl.DrawCube(toRL(marker), 0.15, 0.15, 0.15, info.Marker)
	}
}

func toRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
