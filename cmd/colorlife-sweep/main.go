package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"colorlife/internal/sims/colorlife"
)

func main() {
	ticks := flag.Int("ticks", 2000, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios run concurrently")
	width := flag.Int("w", 96, "board width")
	height := flag.Int("h", 64, "board height")
	seed := flag.Int64("seed", colorlife.DefaultConfig().Seed, "seed shared by every scenario")
	steps := flag.Int("steps", 1, "generations per tick")
	densities := flag.String("densities", "0.1,0.2,0.3,0.4,0.5", "comma separated seed densities")
	mutates := flag.String("mutate-max", "0,30,90,180", "comma separated upper mutation bounds")
	colour := flag.Bool("color", true, "colourise the report")
	flag.Parse()

	ds, err := parseList(*densities)
	if err != nil {
		log.Fatalf("densities: %v", err)
	}
	ms, err := parseList(*mutates)
	if err != nil {
		log.Fatalf("mutate-max: %v", err)
	}

	base := colorlife.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed
	base.Params.StepsPerTick = *steps

	scenarios := grid(ds, ms)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d ticks)\n", len(scenarios), *workers, *ticks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep(ctx, base, scenarios, *ticks, *workers)
	if err != nil {
		log.Fatal(err)
	}
	report(os.Stdout, results, *colour)
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}
