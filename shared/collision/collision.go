// Package collision valida posições candidatas do jogador contra as paredes
// das salas (respeitando as aberturas) e contra a pegada circular dos props.
package collision

import (
	"DungeonVision/shared/util"
	"DungeonVision/shared/world"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMargin é a folga somada ao raio do jogador no teste das paredes.
const DefaultMargin = 0.1

// Reason indica o que bloqueou a posição.
type Reason int

const (
	None Reason = iota
	Wall
	Prop
)

func (r Reason) String() string {
	switch r {
	case Wall:
		return "parede"
	case Prop:
		return "prop"
	default:
		return "livre"
	}
}

// Hit descreve o resultado de uma verificação.
type Hit struct {
	Reason Reason
	Room   int        // Sala onde ocorreu o bloqueio (-1 se livre)
	Wall   world.Wall // Parede atingida (quando Reason == Wall)
	Prop   int        // Índice do prop na sala (quando Reason == Prop)
}

// Blocked indica se houve bloqueio.
func (h Hit) Blocked() bool { return h.Reason != None }

// Resolver testa posições candidatas contra o mundo.
type Resolver struct {
	Margin float32
}

// NewResolver cria um resolvedor; margin negativa usa o padrão.
func NewResolver(margin float32) Resolver {
	if margin < 0 {
		margin = DefaultMargin
	}
	return Resolver{Margin: margin}
}

// Blocked retorna true se a posição (com raio radius) colide com algo.
func (r Resolver) Blocked(w *world.World, pos mgl32.Vec3, radius float32) bool {
	return r.Check(w, pos, radius).Blocked()
}

// Check faz a verificação completa e diz o motivo do bloqueio.
// Posições fora de todas as salas não são validadas (retornam livre).
func (r Resolver) Check(w *world.World, pos mgl32.Vec3, radius float32) Hit {
	reach := radius + r.Margin
	rooms := w.Rooms()

	for i := range rooms {
		room := &rooms[i]
		if !room.ContainsXZ(pos) {
			continue
		}

		for _, wall := range world.Walls() {
			if !nearWall(room, wall, pos, reach) {
				continue
			}
			if !inDoorway(room, wall, pos) {
				return Hit{Reason: Wall, Room: i, Wall: wall, Prop: -1}
			}
		}

		for j := range room.Props {
			p := &room.Props[j]
			info := p.Kind.Info()
			if !info.Solid {
				continue
			}
			if util.DistXZ(pos, p.Position) < radius+info.Radius {
				return Hit{Reason: Prop, Room: i, Prop: j}
			}
		}
	}
	return Hit{Reason: None, Room: -1, Prop: -1}
}

// nearWall testa se pos está a menos de reach do plano da parede.
func nearWall(room *world.Room, wall world.Wall, pos mgl32.Vec3, reach float32) bool {
	b := room.Bounds()
	switch wall {
	case world.North:
		return pos.Z() <= b.Min.Z()+reach
	case world.South:
		return pos.Z() >= b.Max.Z()-reach
	case world.East:
		return pos.X() >= b.Max.X()-reach
	case world.West:
		return pos.X() <= b.Min.X()+reach
	}
	return false
}

// inDoorway testa se a projeção de pos na tangente da parede cai no vão da porta.
func inDoorway(room *world.Room, wall world.Wall, pos mgl32.Vec3) bool {
	start, end, open := room.DoorwayInterval(wall)
	if !open {
		return false
	}
	t := pos.X()
	if wall == world.East || wall == world.West {
		t = pos.Z()
	}
	return t >= start && t <= end
}
