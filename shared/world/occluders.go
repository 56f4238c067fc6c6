package world

import (
	"log"

	"DungeonVision/shared/geom"
)

// Occluders retorna o registro de oclusores do nível, construindo-o na primeira chamada.
func (w *World) Occluders() *Registry {
	if w.registry == nil {
		w.registry = buildRegistry(w.rooms, w.WallThickness)
		log.Printf("[World] Registro de oclusores: %d caixas para %d salas", w.registry.Len(), len(w.rooms))
	}
	return w.registry
}

// Registry é a lista imutável de caixas que bloqueiam a linha de visão.
type Registry struct {
	boxes []geom.AABB
}

// NewRegistry cria um registro a partir de caixas avulsas.
func NewRegistry(boxes []geom.AABB) *Registry {
	cp := make([]geom.AABB, len(boxes))
	copy(cp, boxes)
	return &Registry{boxes: cp}
}

func buildRegistry(rooms []Room, thickness float32) *Registry {
	reg := &Registry{boxes: make([]geom.AABB, 0, len(rooms)*4)}
	for i := range rooms {
		for _, wall := range Walls() {
			reg.boxes = append(reg.boxes, rooms[i].WallSegments(wall, thickness)...)
		}
	}
	return reg
}

// Boxes retorna as caixas. Não modifique o slice retornado.
func (r *Registry) Boxes() []geom.AABB { return r.boxes }

// Len retorna o número de caixas.
func (r *Registry) Len() int { return len(r.boxes) }
