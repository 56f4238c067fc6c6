// Package world descreve o nível: salas, aberturas, props e o registro de oclusores.
package world

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Limites padrão da arena.
const (
	DefaultMaxRooms      = 10
	DefaultMaxProps      = 100
	DefaultWallThickness = 0.1
)

// World é a arena de salas. Salas e props são pré-alocados e nunca passam da capacidade.
type World struct {
	rooms    []Room
	maxRooms int
	maxProps int

	WallThickness float32

	registry *Registry // Oclusores, construído sob demanda
}

// NewWorld cria uma arena vazia com as capacidades informadas.
func NewWorld(maxRooms, maxProps int) *World {
	if maxRooms <= 0 {
		maxRooms = DefaultMaxRooms
	}
	if maxProps <= 0 {
		maxProps = DefaultMaxProps
	}
	return &World{
		rooms:         make([]Room, 0, maxRooms),
		maxRooms:      maxRooms,
		maxProps:      maxProps,
		WallThickness: DefaultWallThickness,
	}
}

// RoomCount retorna o número de salas criadas.
func (w *World) RoomCount() int { return len(w.rooms) }

// MaxRooms retorna a capacidade de salas.
func (w *World) MaxRooms() int { return w.maxRooms }

// MaxProps retorna a capacidade de props por sala.
func (w *World) MaxProps() int { return w.maxProps }

// Room retorna a sala pelo índice (nil se inválido).
func (w *World) Room(i int) *Room {
	if i < 0 || i >= len(w.rooms) {
		return nil
	}
	return &w.rooms[i]
}

// Rooms retorna as salas. O slice pertence ao World; apenas props.Visible deve ser alterado.
func (w *World) Rooms() []Room { return w.rooms }

// AddRoom cria uma sala. Retorna false (sem alterar nada) se a capacidade estiver esgotada
// ou se o tamanho for inválido.
func (w *World) AddRoom(position, size mgl32.Vec3, wall, floor, ceiling color.RGBA) (int, bool) {
	if len(w.rooms) >= w.maxRooms {
		return -1, false
	}
	if size.X() <= 0 || size.Y() <= 0 || size.Z() <= 0 {
		return -1, false
	}
	w.rooms = append(w.rooms, Room{
		Position:     position,
		Size:         size,
		WallColor:    wall,
		FloorColor:   floor,
		CeilingColor: ceiling,
		Props:        make([]Prop, 0, w.maxProps),
	})
	w.registry = nil
	return len(w.rooms) - 1, true
}

// SetDoorway define a abertura de uma parede.
func (w *World) SetDoorway(room int, wall Wall, d Doorway) bool {
	r := w.Room(room)
	if r == nil || wall < 0 || wall >= wallCount || d.Width < 0 {
		return false
	}
	r.Doorways[wall] = d
	w.registry = nil
	return true
}

// AddProp posiciona um prop na sala. Rejeita silenciosamente índice inválido,
// tipo desconhecido ou sala cheia.
func (w *World) AddProp(room int, p Prop) bool {
	r := w.Room(room)
	if r == nil || !p.Kind.Valid() {
		return false
	}
	if len(r.Props) >= w.maxProps {
		return false
	}
	if p.Scale == (mgl32.Vec3{}) {
		p.Scale = mgl32.Vec3{1, 1, 1}
	}
	p.Visible = true
	r.Props = append(r.Props, p)
	return true
}

// PropCount retorna o total de props em todas as salas.
func (w *World) PropCount() int {
	n := 0
	for i := range w.rooms {
		n += len(w.rooms[i].Props)
	}
	return n
}
