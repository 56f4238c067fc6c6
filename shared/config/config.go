package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Config armazena as configurações do DungeonVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Renderização
	FOV             float32 `json:"fov"`
	PropRenderScale float32 `json:"prop_render_scale"` // Escala do alvo secundário, (0, 1]
	FrustumMargin   float32 `json:"frustum_margin"`
	PrimaryFilter   string  `json:"primary_filter"`   // "point" ou "bilinear"
	SecondaryFilter string  `json:"secondary_filter"` // "point" ou "bilinear"
	ForceHighRes    bool    `json:"force_high_res_pass"`

	// Linha de visão
	LOSMinCameraMove   float32 `json:"los_min_camera_move"`
	LOSMaxPropDistance float32 `json:"los_max_prop_distance"`
	LOSVerbose         bool    `json:"los_verbose"`

	// Mundo
	MaxRooms   int    `json:"max_rooms"`
	MaxProps   int    `json:"max_props"`
	LayoutPath string `json:"layout_path"` // Vazio usa o nível embutido
	AssetsPath string `json:"assets_path"`

	// Jogador
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	PlayerRadius      float32 `json:"player_radius"`
	CollisionMargin   float32 `json:"collision_margin"`

	// Debug
	ShowDebugInfo     bool    `json:"show_debug_info"`
	ShowDebugBoxes    bool    `json:"show_debug_boxes"`
	ShowHighRes       bool    `json:"show_high_res"`
	AutoToggleSeconds float32 `json:"auto_toggle_seconds"` // 0 desliga
	StatsPath         string  `json:"stats_path"`          // Vazio desliga
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "DungeonVision",
		Fullscreen:   false,
		TargetFPS:    60,

		FOV:             60.0,
		PropRenderScale: 0.25,
		FrustumMargin:   1.0,
		PrimaryFilter:   "bilinear",
		SecondaryFilter: "point",

		LOSMinCameraMove:   0.5,
		LOSMaxPropDistance: 9.0,

		MaxRooms:   10,
		MaxProps:   100,
		AssetsPath: filepath.Join("assets", "config", "assets.json"),

		CameraSpeed:       5.0,
		CameraSensitivity: 0.003,
		PlayerRadius:      0.5,
		CollisionMargin:   0.1,

		ShowDebugInfo:     true,
		ShowDebugBoxes:    false,
		ShowHighRes:       false,
		AutoToggleSeconds: 3.0,
	}
}

// Validate corrige valores fora de faixa, voltando ao padrão de cada campo.
// Retorna os nomes dos campos corrigidos.
func (c *Config) Validate() []string {
	def := DefaultConfig()
	var fixed []string

	fix := func(bad bool, name string, apply func()) {
		if bad {
			apply()
			fixed = append(fixed, name)
		}
	}

	fix(c.WindowWidth <= 0, "window_width", func() { c.WindowWidth = def.WindowWidth })
	fix(c.WindowHeight <= 0, "window_height", func() { c.WindowHeight = def.WindowHeight })
	fix(c.TargetFPS <= 0, "target_fps", func() { c.TargetFPS = def.TargetFPS })
	fix(c.FOV <= 0 || c.FOV >= 180, "fov", func() { c.FOV = def.FOV })
	fix(!(c.PropRenderScale > 0 && c.PropRenderScale <= 1), "prop_render_scale", func() { c.PropRenderScale = def.PropRenderScale })
	fix(c.FrustumMargin < 0, "frustum_margin", func() { c.FrustumMargin = def.FrustumMargin })
	fix(!validFilter(c.PrimaryFilter), "primary_filter", func() { c.PrimaryFilter = def.PrimaryFilter })
	fix(!validFilter(c.SecondaryFilter), "secondary_filter", func() { c.SecondaryFilter = def.SecondaryFilter })
	fix(c.LOSMinCameraMove < 0, "los_min_camera_move", func() { c.LOSMinCameraMove = def.LOSMinCameraMove })
	fix(c.LOSMaxPropDistance <= 0, "los_max_prop_distance", func() { c.LOSMaxPropDistance = def.LOSMaxPropDistance })
	fix(c.MaxRooms <= 0, "max_rooms", func() { c.MaxRooms = def.MaxRooms })
	fix(c.MaxProps <= 0, "max_props", func() { c.MaxProps = def.MaxProps })
	fix(c.CameraSpeed <= 0, "camera_speed", func() { c.CameraSpeed = def.CameraSpeed })
	fix(c.CameraSensitivity <= 0, "camera_sensitivity", func() { c.CameraSensitivity = def.CameraSensitivity })
	fix(c.PlayerRadius <= 0, "player_radius", func() { c.PlayerRadius = def.PlayerRadius })
	fix(c.CollisionMargin < 0, "collision_margin", func() { c.CollisionMargin = def.CollisionMargin })
	fix(c.AutoToggleSeconds < 0, "auto_toggle_seconds", func() { c.AutoToggleSeconds = 0 })

	for _, name := range fixed {
		log.Printf("[Config] Valor inválido em %s, usando padrão", name)
	}
	return fixed
}

func validFilter(f string) bool {
	return f == "point" || f == "bilinear"
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do arquivo ao lado do executável.
func Load() *Config {
	return LoadFrom(configPath())
}

// LoadFrom carrega as configurações de um arquivo JSON.
// Se o arquivo não existir ou for inválido, retorna as configurações padrão.
func LoadFrom(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("[Config] Erro ao ler %s: %v. Usando padrão.", path, err)
		return DefaultConfig()
	}

	cfg.Validate()
	return cfg
}

// Save salva as configurações ao lado do executável.
func (c *Config) Save() error {
	return c.SaveTo(configPath())
}

// SaveTo salva as configurações em um arquivo JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
