//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"colorlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.List {
		if err := cfg.ListSaves(os.Stdout); err != nil {
			log.Fatalf("colorlife: %v", err)
		}
		return
	}

	world, canvas, store, err := cfg.Setup()
	if err != nil {
		log.Fatalf("colorlife: %v", err)
	}

	game := app.New(world, canvas, store, cfg.Speed, cfg.HUD, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("colorlife — " + canvas.Tess.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
