package render

import (
	"image"
	"image/color"
	"log"
	"unsafe"

	"DungeonVision/shared/texgen"
	"DungeonVision/shared/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	tokenWall    = "SURFACE:WALL"
	tokenFloor   = "SURFACE:FLOOR"
	tokenCeiling = "SURFACE:CEILING"
)

// surfaceAsset é um cubo unitário escalado para cada segmento de parede, piso ou teto.
type surfaceAsset struct {
	Model    rl.Model
	Texture  rl.Texture2D
	Textured bool
}

// propAsset guarda a malha e as duas texturas de uma categoria de prop.
type propAsset struct {
	Model    rl.Model
	HasModel bool
	OffsetY  float32 // Correção da origem da malha (cilindro nasce na base)
	Low      rl.Texture2D
	High     rl.Texture2D
	Color    color.RGBA
}

func (r *Renderer) loadSurfaces() {
	for _, token := range []string{tokenWall, tokenFloor, tokenCeiling} {
		s := &surfaceAsset{Model: rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))}
		if path := r.texturePath(token, false); path != "" {
			if tex, ok := r.loadSingleTexture(path, filterMode(r.Opts.PrimaryFilter)); ok {
				s.Texture = tex
				s.Textured = true
				r.setDiffuse(&s.Model, tex)
			}
		}
		r.surfaces[token] = s
	}
}

func (r *Renderer) loadProps() {
	kinds := world.Kinds()
	r.props = make([]propAsset, len(kinds))

	for _, kind := range kinds {
		info := kind.Info()
		token := kind.Token()
		pa := &r.props[kind]
		pa.Color = info.Color

		// Texturas: arquivo do manifesto ou procedural
		pa.Low = r.propTexture(token, false, info.Texture, texgen.LowResSize, rl.FilterPoint)
		pa.High = r.propTexture(token, true, info.HiResTexture(), texgen.HighResSize, rl.FilterBilinear)

		if info.Style != world.StyleModel {
			continue
		}

		if path := r.modelPath(token); path != "" {
			pa.Model, pa.HasModel = r.loadSingleModel(path)
		}
		if !pa.HasModel {
			pa.Model, pa.OffsetY = generatedMesh(info)
			pa.HasModel = true
		}
		if pa.Model.MaterialCount > 0 {
			materials := unsafe.Slice(pa.Model.Materials, pa.Model.MaterialCount)
			materials[0].Shader = r.PropShader
		}
	}
	log.Printf("[Renderer] %d categorias de prop carregadas", len(r.props))
}

// generatedMesh cria a malha padrão da categoria a partir das dimensões do KindInfo.
func generatedMesh(info world.KindInfo) (rl.Model, float32) {
	size := info.Size
	if info.Shape == world.ShapeCylinder {
		return rl.LoadModelFromMesh(rl.GenMeshCylinder(size.X(), size.Y(), 16)), -size.Y() / 2
	}
	return rl.LoadModelFromMesh(rl.GenMeshCube(size.X(), size.Y(), size.Z())), 0
}

func (r *Renderer) texturePath(token string, hiRes bool) string {
	if r.AssetMgr == nil {
		return ""
	}
	return r.AssetMgr.Texture(token, hiRes)
}

func (r *Renderer) modelPath(token string) string {
	if r.AssetMgr == nil {
		return ""
	}
	return r.AssetMgr.Model(token)
}

// propTexture carrega a textura do manifesto; sem arquivo (ou se falhar) gera pela receita.
func (r *Renderer) propTexture(token string, hiRes bool, recipe texgen.Recipe, size int, filter rl.TextureFilterMode) rl.Texture2D {
	if path := r.texturePath(token, hiRes); path != "" {
		if tex, ok := r.loadSingleTexture(path, filter); ok {
			return tex
		}
	}
	tex := textureFromImage(recipe.Generate(size, nil))
	if tex.ID != 0 {
		rl.SetTextureFilter(tex, filter)
	} else {
		log.Printf("[Renderer] FALHA ao gerar textura procedural de %s", token)
	}
	return tex
}

// textureFromImage envia uma imagem Go para a GPU.
func textureFromImage(img image.Image) rl.Texture2D {
	rimg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	return tex
}

func (r *Renderer) loadSingleTexture(path string, filter rl.TextureFilterMode) (rl.Texture2D, bool) {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		log.Printf("[Renderer] FALHA ao carregar textura: %s (usando cor chapada)", path)
		return tex, false
	}
	rl.SetTextureFilter(tex, filter)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	log.Printf("[Renderer] Textura carregada: %s", path)
	return tex, true
}

func (r *Renderer) loadSingleModel(path string) (rl.Model, bool) {
	model := rl.LoadModel(path)
	if model.MeshCount > 0 {
		log.Printf("[Renderer] Modelo carregado: %s", path)
		return model, true
	}
	log.Printf("[Renderer] FALHA ao carregar modelo: %s (usando malha gerada)", path)
	return model, false
}

// setDiffuse aplica a textura ao primeiro material do modelo.
func (r *Renderer) setDiffuse(model *rl.Model, tex rl.Texture2D) {
	if model.MaterialCount == 0 {
		return
	}
	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, tex)
}

// bindPropTextures troca a textura difusa de cada malha de prop para a
// resolução do passe corrente. Textura inválida vira cor chapada.
func (r *Renderer) bindPropTextures(hiRes bool) {
	for i := range r.props {
		pa := &r.props[i]
		if !pa.HasModel || pa.Model.MaterialCount == 0 {
			continue
		}
		tex := pa.Low
		if hiRes {
			tex = pa.High
		}
		materials := unsafe.Slice(pa.Model.Materials, pa.Model.MaterialCount)
		if tex.ID != 0 {
			rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, tex)
			materials[0].Maps.Color = rl.White
		} else {
			materials[0].Maps.Color = pa.Color
		}
	}
}

func (r *Renderer) unloadAssets() {
	for _, s := range r.surfaces {
		rl.UnloadModel(s.Model)
		if s.Textured {
			rl.UnloadTexture(s.Texture)
		}
	}
	for i := range r.props {
		pa := &r.props[i]
		if pa.HasModel {
			rl.UnloadModel(pa.Model)
		}
		if pa.Low.ID != 0 {
			rl.UnloadTexture(pa.Low)
		}
		if pa.High.ID != 0 {
			rl.UnloadTexture(pa.High)
		}
	}
}
