package app

import (
	"fmt"
	"log"

	"DungeonVision/cliente/internal/assets"
	"DungeonVision/cliente/internal/camera"
	"DungeonVision/cliente/internal/render"
	"DungeonVision/shared/collision"
	"DungeonVision/shared/config"
	"DungeonVision/shared/layers"
	"DungeonVision/shared/stats"
	"DungeonVision/shared/texgen"
	"DungeonVision/shared/visibility"
	"DungeonVision/shared/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App é a aplicação principal do DungeonVision. Todo o estado da execução
// vive aqui e só é tocado pela thread do loop.
type App struct {
	Config *config.Config

	// Mundo e visibilidade
	World     *world.World
	Props     *world.PropSet
	Culler    *visibility.Culler
	LOS       *visibility.State
	Collision collision.Resolver

	// Controlador de Câmera (primeira pessoa)
	Cam *camera.Controller

	// Camada de props composta na tela
	Mode       layers.Mode
	autoToggle bool
	toggleTime float32

	renderer *render.Renderer
	assetMgr *assets.Manager
	recorder *stats.Recorder
	frameMS  [2]*stats.Window // Custo recente por modo, para o painel

	// Informações de debug
	frameCount int
	lastHit    collision.Hit
	lastMode   layers.Mode
}

// frameWindow é quantos frames entram na média exibida no painel.
const frameWindow = 128

// New cria a aplicação e gera o nível. Não abre janela.
func New(cfg *config.Config) *App {
	w := world.Build(loadLayout(cfg.LayoutPath), cfg.MaxRooms, cfg.MaxProps)

	culler := visibility.New(visibility.Config{
		MinCameraMove: cfg.LOSMinCameraMove,
		MaxDistance:   cfg.LOSMaxPropDistance,
		FrustumMargin: cfg.FrustumMargin,
	}, w.Occluders().Boxes())
	culler.Verbose = cfg.LOSVerbose

	mode := layers.ModeLowRes
	if cfg.ShowHighRes {
		mode = layers.ModeHighRes
	}

	a := &App{
		Config:     cfg,
		World:      w,
		Props:      w.PropSet(),
		Culler:     culler,
		LOS:        visibility.NewState(),
		Collision:  collision.NewResolver(cfg.CollisionMargin),
		Mode:       mode,
		lastMode:   mode,
		autoToggle: cfg.AutoToggleSeconds > 0,
		lastHit:    collision.Hit{Room: -1, Prop: -1},
	}
	for i := range a.frameMS {
		a.frameMS[i] = stats.NewWindow(frameWindow)
	}

	x, z := spawnPoint(w)
	a.Cam = camera.New(x, z, cfg.FOV, cfg.CameraSpeed, cfg.CameraSensitivity, cfg.PlayerRadius)
	return a
}

// loadLayout lê o layout configurado; sem caminho ou com erro usa o nível embutido.
func loadLayout(path string) world.Layout {
	if path == "" {
		return world.DefaultLayout()
	}
	l, err := world.LoadLayout(path)
	if err != nil {
		log.Printf("[App] %v. Usando nível embutido.", err)
		return world.DefaultLayout()
	}
	return l
}

// spawnPoint coloca o jogador na primeira sala, deslocado para o lado sul.
func spawnPoint(w *world.World) (float32, float32) {
	room := w.Room(0)
	if room == nil {
		return 0, 0
	}
	return room.Position.X(), room.Position.Z() + room.Size.Z()*0.35
}

// Run abre a janela e executa o loop principal até o fechamento.
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal
	defer rl.CloseWindow()

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)
	rl.DisableCursor()

	layout, err := layers.NewLayout(rl.GetScreenWidth(), rl.GetScreenHeight(), a.Config.PropRenderScale)
	if err != nil {
		return fmt.Errorf("falha ao montar camadas: %w", err)
	}

	mgr, err := assets.NewManager(a.Config.AssetsPath)
	if err != nil {
		log.Printf("[App] AVISO: %v. Usando manifesto embutido.", err)
		mgr = assets.FromManifest(assets.DefaultManifest(), "embutido")
	}
	a.assetMgr = mgr

	a.renderer = render.NewRenderer(layout, mgr, render.Options{
		Background:      texgen.Black,
		PrimaryFilter:   a.Config.PrimaryFilter,
		SecondaryFilter: a.Config.SecondaryFilter,
		WallThickness:   a.World.WallThickness,
	})

	if a.Config.StatsPath != "" {
		rec, err := stats.Open(a.Config.StatsPath)
		if err != nil {
			log.Printf("[App] Estatísticas desativadas: %v", err)
		} else {
			a.recorder = rec
		}
	}

	log.Println("[DungeonVision] Janela inicializada com sucesso")
	log.Printf("[DungeonVision] Resolução: %dx%d, %d salas, %d props",
		layout.ScreenW, layout.ScreenH, a.World.RoomCount(), a.Props.Len())

	// Loop principal
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	return nil
}

// update atualiza a lógica a cada frame: entrada, movimento e linha de visão.
func (a *App) update() {
	a.frameCount++
	dt := rl.GetFrameTime()

	a.recordFrame(dt)
	a.handleResize()
	a.updateInput()
	a.updateAutoToggle(dt)
	a.updatePlayer(dt)
	a.updateVisibility()
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.recorder != nil {
		if err := a.recorder.Close(); err != nil {
			log.Printf("[App] Erro ao fechar estatísticas: %v", err)
		}
	}
	if a.renderer != nil {
		a.renderer.Unload()
	}

	if err := a.Config.Save(); err != nil {
		log.Printf("[DungeonVision] Erro ao salvar configurações: %v", err)
	}
}
