package world

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"DungeonVision/shared/texgen"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Layout é a descrição declarativa de um nível (carregável de YAML).
type Layout struct {
	Name  string       `yaml:"name"`
	Rooms []RoomLayout `yaml:"rooms"`
}

// RoomLayout descreve uma sala do layout.
type RoomLayout struct {
	Position [3]float32         `yaml:"position"`
	Size     [3]float32         `yaml:"size"`
	Wall     string             `yaml:"wall_color"`
	Floor    string             `yaml:"floor_color"`
	Ceiling  string             `yaml:"ceiling_color"`
	Doorways map[string]Doorway `yaml:"doorways"` // chave: north/east/south/west
	Props    []PropLayout       `yaml:"props"`
}

// PropLayout descreve um prop do layout.
type PropLayout struct {
	Kind     string     `yaml:"kind"`
	Position [3]float32 `yaml:"position"`
	Rotation float32    `yaml:"rotation_deg"`
	Scale    [3]float32 `yaml:"scale"`
}

// doorway padrão do nível de teste: 2 de largura, 2.5 de altura, centrada.
var stdDoor = Doorway{Offset: -1, Width: 2, Height: 2.5}

// DefaultLayout reproduz o nível de teste: três salas ligadas por portas e mobiliadas,
// com tufos de grama (billboards) na sala principal.
func DefaultLayout() Layout {
	return Layout{
		Name: "teste",
		Rooms: []RoomLayout{
			{
				Position: [3]float32{0, 1.5, 0}, Size: [3]float32{10, 3, 10},
				Wall: "lightgray", Floor: "darkgray", Ceiling: "white",
				Doorways: map[string]Doorway{"north": stdDoor},
				Props: []PropLayout{
					{Kind: "table", Position: [3]float32{0, 0.4, 0}},
					{Kind: "chair", Position: [3]float32{0, 0.4, 1.5}},
					{Kind: "chair", Position: [3]float32{0, 0.4, -1.5}, Rotation: 180},
					{Kind: "lamp", Position: [3]float32{3, 0.75, 3}},
					{Kind: "bookshelf", Position: [3]float32{-4, 1, -4}},
					{Kind: "grass", Position: [3]float32{-2, 0.5, -2}},
					{Kind: "grass", Position: [3]float32{2, 0.5, -2}},
					{Kind: "grass", Position: [3]float32{-2, 0.5, 2}},
					{Kind: "grass", Position: [3]float32{2, 0.5, 2}},
				},
			},
			{
				Position: [3]float32{0, 1.5, -15}, Size: [3]float32{12, 3, 10},
				Wall: "beige", Floor: "darkbrown", Ceiling: "white",
				Doorways: map[string]Doorway{"south": stdDoor, "east": stdDoor},
				Props: []PropLayout{
					{Kind: "bed", Position: [3]float32{-4, 0.25, -15}, Rotation: 90},
					{Kind: "chest", Position: [3]float32{-4, 0.3, -17}},
					{Kind: "lamp", Position: [3]float32{-2, 0.75, -17}},
				},
			},
			{
				Position: [3]float32{15, 1.5, -15}, Size: [3]float32{8, 3, 8},
				Wall: "skyblue", Floor: "darkblue", Ceiling: "white",
				Doorways: map[string]Doorway{"west": stdDoor},
				Props: []PropLayout{
					{Kind: "bookshelf", Position: [3]float32{13, 1, -13}, Rotation: 45},
					{Kind: "bookshelf", Position: [3]float32{13, 1, -17}, Rotation: -45},
					{Kind: "table", Position: [3]float32{16, 0.4, -15}},
					{Kind: "chair", Position: [3]float32{17.5, 0.4, -15}, Rotation: 90},
				},
			},
		},
	}
}

// LoadLayout lê um layout YAML do disco.
func LoadLayout(path string) (Layout, error) {
	var l Layout
	raw, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("falha ao ler layout %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return l, fmt.Errorf("falha ao parsear layout %s: %w", path, err)
	}
	if len(l.Rooms) == 0 {
		return l, fmt.Errorf("layout %s sem salas", path)
	}
	return l, nil
}

// Build constrói o World a partir do layout. Entradas inválidas ou acima da
// capacidade são ignoradas (com log), nunca interrompem a geração.
func Build(l Layout, maxRooms, maxProps int) *World {
	w := NewWorld(maxRooms, maxProps)
	for i, rd := range l.Rooms {
		idx, ok := w.AddRoom(vec(rd.Position), vec(rd.Size),
			colorOr(rd.Wall, texgen.LightGray), colorOr(rd.Floor, texgen.DarkGray), colorOr(rd.Ceiling, texgen.White))
		if !ok {
			log.Printf("[World] Sala %d ignorada (capacidade %d ou tamanho inválido)", i, w.MaxRooms())
			continue
		}
		for name, d := range rd.Doorways {
			wall, ok := ParseWall(name)
			if !ok || !w.SetDoorway(idx, wall, d) {
				log.Printf("[World] Abertura inválida na sala %d: %q", i, name)
			}
		}
		for _, pl := range rd.Props {
			kind, ok := ParseKind(pl.Kind)
			if !ok {
				log.Printf("[World] Tipo de prop desconhecido na sala %d: %q", i, pl.Kind)
				continue
			}
			w.AddProp(idx, Prop{
				Kind:     kind,
				Position: vec(pl.Position),
				Rotation: mgl32.DegToRad(pl.Rotation),
				Scale:    vec(pl.Scale),
			})
		}
	}
	log.Printf("[World] Nível %q gerado: %d salas, %d props", l.Name, w.RoomCount(), w.PropCount())
	return w
}

func vec(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}

func colorOr(name string, fallback color.RGBA) color.RGBA {
	if c, ok := texgen.ColorByName(name); ok {
		return c
	}
	return fallback
}
