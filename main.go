package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/penny-rain/internal/config"
	"github.com/iburimskiy/penny-rain/internal/game"
	"github.com/iburimskiy/penny-rain/internal/sound"
)

func main() {
	log.SetPrefix("[penny-rain] ")
	log.SetFlags(log.Ltime)

	cfg := config.Default()
	config.LoadEnv(cfg)
	config.BindFlags(flag.CommandLine, cfg)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Printf("config: %v", err)
		os.Exit(2)
	}

	backend := sound.OpenBackend(cfg.Sound)
	if sb, ok := backend.(*sound.SpeakerBackend); ok {
		defer sb.Close()
	}
	gen := sound.NewGenerator(backend, cfg.Sound.Enabled)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSec)

	log.Print("press M to toggle sound effects, click anywhere for a penny burst")

	g := game.NewGame(cfg, gen)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
