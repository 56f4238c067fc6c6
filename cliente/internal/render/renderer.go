package render

import (
	"image/color"
	"log"
	"unsafe"

	"DungeonVision/cliente/internal/assets"
	"DungeonVision/shared/layers"
	"DungeonVision/shared/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options reúne o que o renderer precisa da configuração.
type Options struct {
	Background      color.RGBA
	PrimaryFilter   string // "point" ou "bilinear"
	SecondaryFilter string
	WallThickness   float32
}

// Renderer possui os três alvos de renderização e os recursos de GPU
// das superfícies e dos props.
type Renderer struct {
	Layout layers.Layout
	Opts   Options

	primary   rl.RenderTexture2D // Arquitetura, resolução da tela
	secondary rl.RenderTexture2D // Props, resolução escalada
	highRes   rl.RenderTexture2D // Props, resolução da tela (comparação)

	PropShader      rl.Shader
	BillboardShader rl.Shader

	// Gerenciador de Assets (JSON config)
	AssetMgr *assets.Manager

	surfaces map[string]*surfaceAsset // Chave: token (SURFACE:WALL, ...)
	props    []propAsset              // Indexado por world.PropKind

	// Contadores do último frame
	Rendered int
}

// NewRenderer cria os alvos e carrega os assets. Exige janela inicializada.
func NewRenderer(layout layers.Layout, mgr *assets.Manager, opts Options) *Renderer {
	if opts.WallThickness <= 0 {
		opts.WallThickness = world.DefaultWallThickness
	}
	r := &Renderer{
		Layout:   layout,
		Opts:     opts,
		AssetMgr: mgr,
		surfaces: make(map[string]*surfaceAsset),
	}

	r.createTargets()

	r.PropShader = rl.LoadShaderFromMemory(propVertexShader, propFragmentShader)
	r.BillboardShader = rl.LoadShaderFromMemory(billboardVertexShader, billboardFragmentShader)

	// Registrar localizações de uniforms padrão para que Raylib preencha automaticamente
	locs := unsafe.Slice(r.PropShader.Locs, 32)
	locs[6] = rl.GetShaderLocation(r.PropShader, "mvp")         // SHADER_LOC_MATRIX_MVP
	locs[9] = rl.GetShaderLocation(r.PropShader, "matModel")    // SHADER_LOC_MATRIX_MODEL
	locs[12] = rl.GetShaderLocation(r.PropShader, "colDiffuse") // SHADER_LOC_COLOR_DIFFUSE
	locs[15] = rl.GetShaderLocation(r.PropShader, "texture0")   // SHADER_LOC_MAP_DIFFUSE

	r.loadSurfaces()
	r.loadProps()

	log.Printf("[Renderer] Inicializado: tela %dx%d, props %dx%d (%.0f%% dos pixels)",
		layout.ScreenW, layout.ScreenH, layout.PropW, layout.PropH, layout.PixelRatio()*100)
	return r
}

func (r *Renderer) createTargets() {
	r.primary = rl.LoadRenderTexture(int32(r.Layout.ScreenW), int32(r.Layout.ScreenH))
	r.secondary = rl.LoadRenderTexture(int32(r.Layout.PropW), int32(r.Layout.PropH))
	r.highRes = rl.LoadRenderTexture(int32(r.Layout.ScreenW), int32(r.Layout.ScreenH))

	rl.SetTextureFilter(r.primary.Texture, filterMode(r.Opts.PrimaryFilter))
	rl.SetTextureFilter(r.secondary.Texture, filterMode(r.Opts.SecondaryFilter))
	rl.SetTextureFilter(r.highRes.Texture, rl.FilterBilinear)
}

func (r *Renderer) unloadTargets() {
	rl.UnloadRenderTexture(r.primary)
	rl.UnloadRenderTexture(r.secondary)
	rl.UnloadRenderTexture(r.highRes)
}

// Resize recria os alvos para um novo layout (janela redimensionada).
func (r *Renderer) Resize(layout layers.Layout) {
	if layout == r.Layout {
		return
	}
	r.unloadTargets()
	r.Layout = layout
	r.createTargets()
	log.Printf("[Renderer] Alvos recriados: tela %dx%d, props %dx%d",
		layout.ScreenW, layout.ScreenH, layout.PropW, layout.PropH)
}

func filterMode(name string) rl.TextureFilterMode {
	if name == "point" {
		return rl.FilterPoint
	}
	return rl.FilterBilinear
}

// --- Passes ---

// BeginPrimary inicia o passe da arquitetura (fundo opaco).
func (r *Renderer) BeginPrimary() {
	rl.BeginTextureMode(r.primary)
	rl.ClearBackground(r.Opts.Background)
}

func (r *Renderer) EndPrimary() { rl.EndTextureMode() }

// BeginSecondary inicia o passe dos props em resolução reduzida (fundo transparente).
func (r *Renderer) BeginSecondary() {
	rl.BeginTextureMode(r.secondary)
	rl.ClearBackground(rl.Blank)
}

func (r *Renderer) EndSecondary() { rl.EndTextureMode() }

// BeginHighRes inicia o passe de comparação em resolução cheia (fundo transparente).
func (r *Renderer) BeginHighRes() {
	rl.BeginTextureMode(r.highRes)
	rl.ClearBackground(rl.Blank)
}

func (r *Renderer) EndHighRes() { rl.EndTextureMode() }

// --- Composição ---

func (r *Renderer) target(t layers.Target) rl.RenderTexture2D {
	switch t {
	case layers.Secondary:
		return r.secondary
	case layers.HighRes:
		return r.highRes
	default:
		return r.primary
	}
}

// Composite desenha as camadas na tela, na ordem do plano de composição.
// Deve ser chamado entre BeginDrawing/EndDrawing.
func (r *Renderer) Composite(mode layers.Mode) {
	for _, b := range r.Layout.Composite(mode) {
		// Estados de profundidade só valem para o lote desenhado depois deles
		rl.DrawRenderBatchActive()
		if b.DepthTest {
			rl.EnableDepthTest()
		} else {
			rl.DisableDepthTest()
		}
		if b.DepthWrite {
			rl.EnableDepthMask()
		} else {
			rl.DisableDepthMask()
		}
		if b.AlphaBlend {
			rl.BeginBlendMode(rl.BlendAlpha)
		}

		rl.DrawTexturePro(r.target(b.Target).Texture, toRect(b.Source), toRect(b.Dest), rl.Vector2{}, 0, rl.White)

		if b.AlphaBlend {
			rl.EndBlendMode()
		}
	}
	rl.DrawRenderBatchActive()
	rl.EnableDepthMask()
	rl.DisableDepthTest()
}

func toRect(r layers.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Unload libera todos os recursos de GPU.
func (r *Renderer) Unload() {
	r.unloadTargets()
	r.unloadAssets()
	rl.UnloadShader(r.PropShader)
	rl.UnloadShader(r.BillboardShader)
	log.Println("[Renderer] Recursos liberados")
}
