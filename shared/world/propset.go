package world

import "github.com/go-gl/mathgl/mgl32"

// PropSet é uma visão plana sobre os props de todas as salas.
// O índice i percorre as salas na ordem de criação.
type PropSet struct {
	refs []propRef
	w    *World
}

type propRef struct {
	room, prop int
}

// PropSet monta a visão plana. Deve ser refeita se props forem adicionados.
func (w *World) PropSet() *PropSet {
	ps := &PropSet{w: w, refs: make([]propRef, 0, w.PropCount())}
	for r := range w.rooms {
		for p := range w.rooms[r].Props {
			ps.refs = append(ps.refs, propRef{room: r, prop: p})
		}
	}
	return ps
}

// Len retorna o número de props.
func (ps *PropSet) Len() int { return len(ps.refs) }

// Prop retorna o prop i.
func (ps *PropSet) Prop(i int) *Prop {
	ref := ps.refs[i]
	return &ps.w.rooms[ref.room].Props[ref.prop]
}

// Position retorna a posição do prop i.
func (ps *PropSet) Position(i int) mgl32.Vec3 { return ps.Prop(i).Position }

// SetVisible grava a flag de visibilidade do prop i.
func (ps *PropSet) SetVisible(i int, v bool) { ps.Prop(i).Visible = v }

// Visible lê a flag de visibilidade do prop i.
func (ps *PropSet) Visible(i int) bool { return ps.Prop(i).Visible }
