package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile: %v", err)
		}
		defer stop()
	}

	settings, err := loadSettings(*settingsPathFlag)
	if err != nil {
		log.Fatalf("Settings: %v", err)
	}

	game, err := newGame(settings)
	if err != nil {
		log.Fatalf("Startup: %v", err)
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle("Kotoha Live Captions")
	if *fullscreenFlag {
		ebiten.SetFullscreen(true)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Run: %v", err)
	}
}
