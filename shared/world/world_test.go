package world

import (
	"os"
	"path/filepath"
	"testing"

	"DungeonVision/shared/texgen"

	"github.com/go-gl/mathgl/mgl32"
)

func TestKindInfo(t *testing.T) {
	tests := []struct {
		kind   PropKind
		radius float32
		style  DrawStyle
	}{
		{KindChair, 0.5, StyleModel},
		{KindTable, 1.0, StyleModel},
		{KindLamp, 0.5, StyleModel},
		{KindBookshelf, 0.7, StyleModel},
		{KindBed, 1.2, StyleModel},
		{KindChest, 0.6, StyleModel},
		{KindGrass, 0, StyleBillboard},
	}
	for _, tt := range tests {
		info := tt.kind.Info()
		if info.Radius != tt.radius || info.Style != tt.style {
			t.Errorf("%s: radius=%v style=%v", info.Name, info.Radius, info.Style)
		}
		back, ok := ParseKind(info.Name)
		if !ok || back != tt.kind {
			t.Errorf("ParseKind(%q) = %v, %v", info.Name, back, ok)
		}
	}
	if KindGrass.Info().Solid {
		t.Errorf("grama não deveria ser sólida")
	}
	if got := KindTable.Token(); got != "PROP:TABLE" {
		t.Errorf("Token = %q", got)
	}
	if got := KindChair.Info().HiResTexture().Cell; got != 16 {
		t.Errorf("célula alta resolução = %d, want 16", got)
	}
}

func TestRoomCapacityRejectsSilently(t *testing.T) {
	w := NewWorld(2, 3)
	for i := 0; i < 2; i++ {
		if _, ok := w.AddRoom(mgl32.Vec3{float32(i) * 20, 1.5, 0}, mgl32.Vec3{10, 3, 10}, texgen.Gray, texgen.Gray, texgen.Gray); !ok {
			t.Fatalf("sala %d deveria ser aceita", i)
		}
	}
	if idx, ok := w.AddRoom(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, texgen.Gray, texgen.Gray, texgen.Gray); ok || idx != -1 {
		t.Errorf("terceira sala deveria ser rejeitada")
	}
	if w.RoomCount() != 2 {
		t.Errorf("RoomCount = %d", w.RoomCount())
	}

	for i := 0; i < 5; i++ {
		w.AddProp(0, Prop{Kind: KindChair, Position: mgl32.Vec3{float32(i), 0.4, 0}})
	}
	if n := len(w.Room(0).Props); n != 3 {
		t.Errorf("props na sala = %d, want 3", n)
	}
	if cap(w.Room(0).Props) != 3 {
		t.Errorf("capacidade alterada: %d", cap(w.Room(0).Props))
	}
	if w.AddProp(7, Prop{Kind: KindChair}) {
		t.Errorf("sala inexistente deveria rejeitar")
	}
	if w.AddProp(1, Prop{Kind: PropKind(200)}) {
		t.Errorf("tipo inválido deveria rejeitar")
	}
	if w.PropCount() != 3 {
		t.Errorf("PropCount = %d", w.PropCount())
	}
}

func TestAddPropDefaults(t *testing.T) {
	w := NewWorld(1, 1)
	w.AddRoom(mgl32.Vec3{0, 1.5, 0}, mgl32.Vec3{10, 3, 10}, texgen.Gray, texgen.Gray, texgen.Gray)
	w.AddProp(0, Prop{Kind: KindLamp})
	p := w.Room(0).Props[0]
	if p.Scale != (mgl32.Vec3{1, 1, 1}) || !p.Visible {
		t.Errorf("defaults não aplicados: %+v", p)
	}
}

func TestWallSegmentsSolidAndDoorway(t *testing.T) {
	w := NewWorld(1, 1)
	w.AddRoom(mgl32.Vec3{0, 1.5, 0}, mgl32.Vec3{10, 3, 10}, texgen.Gray, texgen.Gray, texgen.Gray)
	r := w.Room(0)

	solid := r.WallSegments(East, 0.1)
	if len(solid) != 1 {
		t.Fatalf("parede sólida deveria ter 1 segmento, tem %d", len(solid))
	}

	w.SetDoorway(0, North, Doorway{Offset: -1, Width: 2, Height: 2.5})
	segs := r.WallSegments(North, 0.1)
	if len(segs) != 3 {
		t.Fatalf("parede com porta deveria ter 3 segmentos, tem %d", len(segs))
	}

	// O vão da porta não pode estar coberto por nenhum segmento
	gap := mgl32.Vec3{0, 1, -5.05}
	for _, s := range segs {
		if s.Contains(gap) {
			t.Errorf("segmento %+v cobre o vão", s)
		}
	}
	// Acima da altura da porta existe a verga
	lintel := mgl32.Vec3{0, 2.8, -5.05}
	covered := false
	for _, s := range segs {
		covered = covered || s.Contains(lintel)
	}
	if !covered {
		t.Errorf("verga ausente acima da porta")
	}
}

func TestWallBoxesStayOutsideInterior(t *testing.T) {
	w := Build(DefaultLayout(), DefaultMaxRooms, DefaultMaxProps)
	boxes := w.Occluders().Boxes()
	if len(boxes) == 0 {
		t.Fatalf("registro vazio")
	}
	for i := 0; i < w.RoomCount(); i++ {
		interior := w.Room(i).Bounds()
		for _, b := range boxes {
			if interior.Overlaps(b) {
				t.Errorf("sala %d: caixa %+v invade o interior", i, b)
			}
		}
	}
}

func TestDefaultLayoutBuild(t *testing.T) {
	w := Build(DefaultLayout(), DefaultMaxRooms, DefaultMaxProps)
	if w.RoomCount() != 3 {
		t.Fatalf("RoomCount = %d", w.RoomCount())
	}
	if w.PropCount() != 16 {
		t.Errorf("PropCount = %d, want 16", w.PropCount())
	}
	if !w.Room(0).Doorways[North].Open() || w.Room(0).Doorways[South].Open() {
		t.Errorf("aberturas da sala principal erradas: %+v", w.Room(0).Doorways)
	}

	ps := w.PropSet()
	if ps.Len() != w.PropCount() {
		t.Fatalf("PropSet.Len = %d", ps.Len())
	}
	ps.SetVisible(ps.Len()-1, false)
	last := w.Room(2).Props[len(w.Room(2).Props)-1]
	if last.Visible {
		t.Errorf("SetVisible não alterou o prop subjacente")
	}
}

func TestLoadLayoutYAML(t *testing.T) {
	src := `
name: corredor
rooms:
  - position: [0, 1.5, 0]
    size: [4, 3, 12]
    wall_color: beige
    doorways:
      south: {offset: -1, width: 2, height: 2.5}
    props:
      - kind: chest
        position: [1, 0.3, 4]
      - kind: dragon
        position: [0, 0, 0]
`
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	w := Build(l, 0, 0)
	if w.RoomCount() != 1 || w.PropCount() != 1 {
		t.Fatalf("salas=%d props=%d", w.RoomCount(), w.PropCount())
	}
	if w.Room(0).WallColor != texgen.Beige {
		t.Errorf("cor da parede = %v", w.Room(0).WallColor)
	}
	if d := w.Room(0).Doorways[South]; d.Width != 2 || d.Height != 2.5 {
		t.Errorf("porta sul = %+v", d)
	}

	if _, err := LoadLayout(filepath.Join(t.TempDir(), "nada.yaml")); err == nil {
		t.Errorf("arquivo inexistente deveria falhar")
	}
}
