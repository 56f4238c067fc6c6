// Package visibility decide quais props são desenhados: linha de visão contra
// as paredes (com atualização limitada pelo movimento da câmera), corte por
// distância e teste de frustum no momento do desenho.
package visibility

import (
	"log"

	"DungeonVision/shared/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Valores padrão.
const (
	DefaultMinCameraMove = 0.5 // Distância mínima antes de recalcular a LOS
	DefaultMaxDistance   = 9.0 // Props além disso nunca são visíveis
	DefaultFrustumMargin = 1.0 // Folga linear nas bordas do cone de visão
)

// Config agrupa os parâmetros do culler.
type Config struct {
	MinCameraMove float32
	MaxDistance   float32
	FrustumMargin float32
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() Config {
	return Config{
		MinCameraMove: DefaultMinCameraMove,
		MaxDistance:   DefaultMaxDistance,
		FrustumMargin: DefaultFrustumMargin,
	}
}

// Props é o conjunto de props avaliado pelo culler.
type Props interface {
	Len() int
	Position(i int) mgl32.Vec3
	SetVisible(i int, visible bool)
}

// State é o cache de visibilidade de um conjunto de props.
type State struct {
	LastCamera  mgl32.Vec3 // Posição da câmera na última avaliação
	Dirty       bool       // Força a próxima avaliação
	Total       int        // Props avaliados
	Visible     int        // Props com LOS livre
	Rendered    int        // Props que passaram também pelo frustum no último desenho
	Evaluations int        // Quantas vezes a LOS foi recalculada
}

// NewState cria um estado que será avaliado na primeira chamada.
func NewState() *State {
	return &State{Dirty: true}
}

// Invalidate força a reavaliação na próxima chamada de Update.
func (s *State) Invalidate() {
	s.Dirty = true
}

// SetRendered registra quantos props foram efetivamente desenhados.
func (s *State) SetRendered(n int) {
	s.Rendered = n
}

// Culler avalia a linha de visão contra um conjunto fixo de oclusores.
type Culler struct {
	cfg       Config
	occluders []geom.AABB

	Verbose bool // Loga cada reavaliação
}

// New cria um culler. O slice de oclusores não é copiado e não deve mudar.
func New(cfg Config, occluders []geom.AABB) *Culler {
	return &Culler{cfg: cfg, occluders: occluders}
}

// Config retorna a configuração em uso.
func (c *Culler) Config() Config { return c.cfg }

// Occluders retorna as caixas consideradas.
func (c *Culler) Occluders() []geom.AABB { return c.occluders }

// ShouldUpdate indica se a câmera andou o suficiente (ou se o estado está sujo).
func (c *Culler) ShouldUpdate(st *State, cam mgl32.Vec3) bool {
	if st.Dirty {
		return true
	}
	return cam.Sub(st.LastCamera).Len() >= c.cfg.MinCameraMove
}

// Update recalcula a visibilidade de todos os props se o throttle permitir.
// Retorna true se houve reavaliação. Sem reavaliação, flags e contadores ficam intactos.
func (c *Culler) Update(st *State, cam mgl32.Vec3, props Props) bool {
	if !c.ShouldUpdate(st, cam) {
		return false
	}

	moved := cam.Sub(st.LastCamera).Len()
	st.LastCamera = cam
	st.Dirty = false
	st.Evaluations++

	n := props.Len()
	visible := 0
	for i := 0; i < n; i++ {
		v := c.Visible(cam, props.Position(i))
		props.SetVisible(i, v)
		if v {
			visible++
		}
	}
	st.Total = n
	st.Visible = visible

	if c.Verbose {
		log.Printf("[LOS] Atualização: câmera moveu %.2f unidades, %d/%d props visíveis", moved, visible, n)
	}
	return true
}

// Visible aplica o corte por distância e a linha de visão para um único prop.
func (c *Culler) Visible(cam, prop mgl32.Vec3) bool {
	ray, dist, ok := geom.RayFromTo(cam, prop)
	if !ok {
		// Prop coincide com a câmera: visível e não ocluído
		return true
	}
	if dist > c.cfg.MaxDistance {
		return false
	}
	return c.clear(ray, dist)
}

// LineOfSight testa apenas a oclusão entre dois pontos, sem corte por distância.
func (c *Culler) LineOfSight(from, to mgl32.Vec3) bool {
	ray, dist, ok := geom.RayFromTo(from, to)
	if !ok {
		return true
	}
	return c.clear(ray, dist)
}

// clear retorna false se alguma caixa for atingida antes de dist.
// Empate exato (hit == dist) não conta como oclusão.
func (c *Culler) clear(ray geom.Ray, dist float32) bool {
	for _, box := range c.occluders {
		if hit, ok := box.IntersectRay(ray); ok && hit < dist {
			return false
		}
	}
	return true
}
