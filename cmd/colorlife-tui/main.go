package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"colorlife/internal/app"
	"colorlife/internal/sims/colorlife"
	"colorlife/internal/snapshot"
	"colorlife/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write reseed events to this file")
	flag.Parse()

	if cfg.List {
		if err := cfg.ListSaves(os.Stdout); err != nil {
			log.Fatalf("colorlife-tui: %v", err)
		}
		return
	}
	cfg.SkipMissingSaveDir()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("colorlife-tui: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("colorlife-tui: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("colorlife-tui: %v", err)
	}

	cols, rows := screen.Size()
	w, h := tui.BoardSize(cols, rows)
	if cfg.Width <= 0 {
		cfg.Width = w
	}
	if cfg.Height <= 0 {
		cfg.Height = h
	}
	// The terminal always draws squares; -load still applies the saved set.
	world, _, store, err := cfg.Setup()
	if err != nil {
		screen.Fini()
		log.Fatalf("colorlife-tui: %v", err)
	}

	view := tui.New(screen, world, cfg.Fade(), cfg.Speed, cfg.Seed)
	if store != nil {
		view.Gallery = snapshot.NewGallery(store)
	}
	if *logPath != "" {
		view.Reseeded = func(res colorlife.TickResult) {
			log.Printf("stalled after %d steps, reseed #%d", res.Steps, world.Stats().Reseeds)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = view.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
