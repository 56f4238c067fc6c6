package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"DungeonVision/cliente/internal/app"
	"DungeonVision/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar caixas de oclusão e raios de visão")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	scale := flag.Float64("scale", 0, "Escala da camada de props, (0, 1]")
	layout := flag.String("layout", "", "Arquivo YAML do nível (padrão: nível embutido)")
	statsPath := flag.String("stats", "", "Banco SQLite para gravar o custo por frame")
	highRes := flag.Bool("hires", false, "Iniciar compondo a camada de alta resolução")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_dv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- INICIANDO DUNGEON VISION ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║        DungeonVision v0.1.0          ║")
	log.Println("║  Salas 3D com props em baixa resolução║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugBoxes = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *scale > 0 {
		cfg.PropRenderScale = float32(*scale)
	}
	if *layout != "" {
		cfg.LayoutPath = *layout
	}
	if *statsPath != "" {
		cfg.StatsPath = *statsPath
	}
	if *highRes {
		cfg.ShowHighRes = true
	}
	cfg.Validate()

	// Criar e rodar a aplicação
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("[DungeonVision] %v", err)
	}
}
