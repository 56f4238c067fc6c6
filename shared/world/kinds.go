package world

import (
	"image/color"
	"strings"

	"DungeonVision/shared/texgen"

	"github.com/go-gl/mathgl/mgl32"
)

// PropKind identifica a categoria semântica de um prop.
type PropKind uint8

const (
	KindChair PropKind = iota
	KindTable
	KindLamp
	KindBookshelf
	KindBed
	KindChest
	KindGrass
	kindCount
)

// DrawStyle define como o prop é desenhado.
type DrawStyle uint8

const (
	StyleModel     DrawStyle = iota // Malha 3D (cubo ou cilindro)
	StyleBillboard                  // Sprite sempre voltado para a câmera
)

// Shape define a malha gerada para props volumétricos.
type Shape uint8

const (
	ShapeCube Shape = iota
	ShapeCylinder
	ShapeQuad
)

// KindInfo reúne tudo que varia entre categorias de prop.
// Cada variante carrega seus próprios dados de desenho e colisão.
type KindInfo struct {
	Name      string
	Style     DrawStyle
	Shape     Shape
	Size      mgl32.Vec3 // Cubo: largura/altura/profundidade. Cilindro: raio/altura/-. Billboard: largura/altura/-
	Radius    float32    // Raio de colisão no plano horizontal
	Solid     bool
	Color     color.RGBA // Cor base (fallback sem textura)
	Marker    color.RGBA // Marcador de debug
	Texture   texgen.Recipe
	HiResCell int // Fator da célula na versão de alta resolução
}

var kindTable = [kindCount]KindInfo{
	KindChair: {
		Name: "chair", Style: StyleModel, Shape: ShapeCube,
		Size: mgl32.Vec3{0.5, 0.8, 0.5}, Radius: 0.5, Solid: true,
		Color: texgen.Brown, Marker: texgen.Orange,
		Texture:   texgen.Recipe{Pattern: texgen.PatternPixelated, Base: texgen.Brown, Cell: 8},
		HiResCell: 2,
	},
	KindTable: {
		Name: "table", Style: StyleModel, Shape: ShapeCube,
		Size: mgl32.Vec3{1.2, 0.8, 0.8}, Radius: 1.0, Solid: true,
		Color: texgen.Brown, Marker: texgen.Red,
		Texture:   texgen.Recipe{Pattern: texgen.PatternCheckerboard, Base: texgen.Brown, Alt: texgen.Brightness(texgen.Brown, 0.7), Cell: 16},
		HiResCell: 2,
	},
	KindLamp: {
		Name: "lamp", Style: StyleModel, Shape: ShapeCylinder,
		Size: mgl32.Vec3{0.2, 1.5, 0}, Radius: 0.5, Solid: true,
		Color: texgen.Gold, Marker: texgen.Gold,
		Texture: texgen.Recipe{Pattern: texgen.PatternGradient, Base: texgen.Gold, Alt: texgen.White},
	},
	KindBookshelf: {
		Name: "bookshelf", Style: StyleModel, Shape: ShapeCube,
		Size: mgl32.Vec3{1.0, 2.0, 0.4}, Radius: 0.7, Solid: true,
		Color: texgen.DarkBrown, Marker: texgen.Purple,
		Texture:   texgen.Recipe{Pattern: texgen.PatternPixelated, Base: texgen.DarkBrown, Cell: 4},
		HiResCell: 2,
	},
	KindBed: {
		Name: "bed", Style: StyleModel, Shape: ShapeCube,
		Size: mgl32.Vec3{1.8, 0.5, 0.9}, Radius: 1.2, Solid: true,
		Color: texgen.DarkBlue, Marker: texgen.Blue,
		Texture: texgen.Recipe{Pattern: texgen.PatternGradient, Base: texgen.DarkBlue, Alt: texgen.Blue, Horizontal: true},
	},
	KindChest: {
		Name: "chest", Style: StyleModel, Shape: ShapeCube,
		Size: mgl32.Vec3{0.8, 0.6, 0.5}, Radius: 0.6, Solid: true,
		Color: texgen.Brown, Marker: texgen.SkyBlue,
		Texture: texgen.Recipe{Pattern: texgen.PatternNoise, Base: texgen.Brown, NoiseScale: 0.3},
	},
	KindGrass: {
		Name: "grass", Style: StyleBillboard, Shape: ShapeQuad,
		Size: mgl32.Vec3{1, 1, 0}, Radius: 0, Solid: false,
		Color: texgen.Green, Marker: texgen.Green,
		Texture: texgen.Recipe{Pattern: texgen.PatternGradient, Base: texgen.DarkGreen, Alt: texgen.Green},
	},
}

// Info retorna os dados da variante. Tipos desconhecidos caem em KindChair.
func (k PropKind) Info() KindInfo {
	if k >= kindCount {
		return kindTable[KindChair]
	}
	return kindTable[k]
}

func (k PropKind) String() string {
	return k.Info().Name
}

// Valid indica se o tipo é conhecido.
func (k PropKind) Valid() bool {
	return k < kindCount
}

// Token retorna o token usado no manifesto de assets (ex.: "PROP:CHAIR").
func (k PropKind) Token() string {
	return "PROP:" + strings.ToUpper(k.Info().Name)
}

// HiResTexture retorna a receita da textura de alta resolução.
func (i KindInfo) HiResTexture() texgen.Recipe {
	return i.Texture.Scaled(i.HiResCell)
}

// Kinds lista todas as variantes conhecidas, na ordem do enum.
func Kinds() []PropKind {
	out := make([]PropKind, 0, kindCount)
	for k := PropKind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind converte um nome ("table", "Grass") para o tipo correspondente.
func ParseKind(name string) (PropKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := PropKind(0); k < kindCount; k++ {
		if kindTable[k].Name == name {
			return k, true
		}
	}
	return 0, false
}
