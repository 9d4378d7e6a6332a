package app

import (
	"errors"
	"testing"
	"time"

	"colorlife/internal/core"
	"colorlife/internal/render"
	"colorlife/internal/sims/colorlife"
	"colorlife/internal/snapshot"
)

func runningGame(t *testing.T) (*colorlife.World, *render.Canvas, *core.FixedStep) {
	t.Helper()
	cfg := colorlife.DefaultConfig()
	cfg.Width, cfg.Height = 20, 14
	world, err := colorlife.NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		world.Step()
	}
	canvas := render.NewCanvas(nil, render.DefaultFade(), 8, 0)
	return world, canvas, core.NewFixedStep(30 * time.Millisecond)
}

func TestRestoreSetFromGallery(t *testing.T) {
	store, err := snapshot.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	p := colorlife.DefaultConfig().Params
	p.MutateMin, p.MutateMax = 5, 75
	fade := render.Fade{Steps: 12, MinLightness: 4, MaxLightness: 30}
	if _, err := store.Save(snapshot.Capture(p, fade, "hexagons", 3, 500*time.Millisecond), nil); err != nil {
		t.Fatal(err)
	}

	world, canvas, timer := runningGame(t)
	set, err := snapshot.NewGallery(store).Next()
	if err != nil {
		t.Fatal(err)
	}
	if err := restoreSet(set, world, canvas, timer, 42); err != nil {
		t.Fatal(err)
	}
	if got := world.Params(); got.MutateMin != 5 || got.MutateMax != 75 {
		t.Fatalf("params not restored: %+v", got)
	}
	if canvas.Fade != fade || canvas.Tess.Name() != "hexagons" {
		t.Fatalf("render settings not restored: %+v %s", canvas.Fade, canvas.Tess.Name())
	}
	if canvas.Scale != 8 {
		t.Fatalf("scale must stay fixed, got %v", canvas.Scale)
	}
	if timer.Interval() != 300*time.Millisecond {
		t.Fatalf("expected interval clamped to 300ms, got %v", timer.Interval())
	}
	if world.Stats().Total != 0 {
		t.Fatal("expected the world to be reseeded")
	}
}

func TestRestoreSetRejectsUnknownTessellation(t *testing.T) {
	world, canvas, timer := runningGame(t)
	before := world.Params()
	set := snapshot.Capture(colorlife.DefaultConfig().Params, render.DefaultFade(), "octagons", 8, time.Second)
	set.MutateMax = 90
	if err := restoreSet(set, world, canvas, timer, 1); !errors.Is(err, render.ErrUnknownTessellation) {
		t.Fatalf("expected unknown tessellation, got %v", err)
	}
	if world.Params() != before || canvas.Tess.Name() != "squares" || timer.Interval() != 30*time.Millisecond {
		t.Fatal("a rejected set must not change the game")
	}
}
