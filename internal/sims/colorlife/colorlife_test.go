package colorlife

import (
	"errors"
	"math"
	"slices"
	"testing"

	"colorlife/internal/core"
)

func countAlive(b *Board) int {
	n := 0
	for _, c := range b.Cells() {
		if c.Life {
			n++
		}
	}
	return n
}

func TestNewWithConfigRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
		want error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -4 }, ErrInvalidDimensions},
		{"density above one", func(c *Config) { c.Params.SeedDensity = 1.5 }, ErrInvalidDensity},
		{"negative density", func(c *Config) { c.Params.SeedDensity = -0.1 }, ErrInvalidDensity},
		{"nan density", func(c *Config) { c.Params.SeedDensity = math.NaN() }, ErrInvalidDensity},
		{"infinite mutation", func(c *Config) { c.Params.MutateMax = math.Inf(1) }, ErrInvalidMutation},
		{"zero steps", func(c *Config) { c.Params.StepsPerTick = 0 }, ErrInvalidStepsPerTick},
		{"zero threshold", func(c *Config) { c.Params.StallThreshold = 0 }, ErrInvalidStallThreshold},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.edit(&cfg)
		world, err := NewWithConfig(cfg)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if world != nil {
			t.Fatalf("%s: expected no world on error", tc.name)
		}
	}
}

func TestNewWithConfigAcceptsInvertedMutation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MutateMin = 90
	cfg.Params.MutateMax = 10
	if _, err := NewWithConfig(cfg); err != nil {
		t.Fatalf("min > max must be accepted, got %v", err)
	}
}

func TestReseedPopulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.Params.SeedDensity = 0.3

	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	board := world.Board()
	alive := countAlive(board)
	upper := int(float64(cfg.Width*cfg.Height) * cfg.Params.SeedDensity)
	if alive > upper {
		t.Fatalf("alive %d exceeds sample count %d", alive, upper)
	}
	// Sampling with replacement leaves about n*(1-e^-d) distinct cells.
	expected := float64(cfg.Width*cfg.Height) * (1 - math.Exp(-cfg.Params.SeedDensity))
	if math.Abs(float64(alive)-expected) > 0.08*expected {
		t.Fatalf("alive %d too far from expected %.0f", alive, expected)
	}
	if got := world.Stats().Alive; got != alive {
		t.Fatalf("stats alive %d, counted %d", got, alive)
	}
	for i, c := range board.Cells() {
		switch {
		case c.Life && c.Drop != 0:
			t.Fatalf("seeded cell %d has drop %d", i, c.Drop)
		case !c.Life && c.Drop != DropUnset:
			t.Fatalf("unseeded cell %d has drop %d", i, c.Drop)
		}
		if c.Hue < 0 || c.Hue >= 360 {
			t.Fatalf("cell %d hue %v outside [0, 360)", i, c.Hue)
		}
	}
	cells := world.Cells()
	for i, c := range board.Cells() {
		if (cells[i] == 1) != c.Life {
			t.Fatalf("display cell %d out of sync", i)
		}
	}
}

func TestTickDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99

	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 40; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(a.Board().Cells(), b.Board().Cells()) {
		t.Fatal("identical configs diverged")
	}

	a.Reset(777)
	seeded := append([]Cell(nil), a.Board().Cells()...)
	a.Reset(777)
	if !slices.Equal(seeded, a.Board().Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	a.Reset(0)
	b.Reset(0)
	if !slices.Equal(a.Board().Cells(), b.Board().Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if slices.Equal(seeded, a.Board().Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestTickKeepsAliveCountAndInvariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 32
	cfg.Params.StepsPerTick = 3
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		res := world.Tick(world.Params())
		if !res.Reseeded && res.Steps != 3 {
			t.Fatalf("tick %d ran %d steps, expected 3", i, res.Steps)
		}
		board := world.Board()
		if got, want := world.Stats().Alive, countAlive(board); got != want {
			t.Fatalf("tick %d: stats alive %d, counted %d", i, got, want)
		}
		for j, c := range board.Cells() {
			if c.Life && c.Drop != 0 {
				t.Fatalf("tick %d cell %d alive with drop %d", i, j, c.Drop)
			}
		}
	}
	if world.Stats().Total == 0 {
		t.Fatal("expected generations to be counted")
	}
}

func TestStallTriggersReseed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.Params.SeedDensity = 0

	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < DefaultStallThreshold; i++ {
		if res := world.Tick(world.Params()); res.Reseeded {
			t.Fatalf("reseeded early on tick %d", i)
		}
	}
	if world.Stall().Count != DefaultStallThreshold-1 {
		t.Fatalf("expected stall count %d, got %d", DefaultStallThreshold-1, world.Stall().Count)
	}

	res := world.Tick(world.Params())
	if !res.Reseeded {
		t.Fatal("expected a reseed once the barren board stalled")
	}
	if world.Stall() != (StallState{}) {
		t.Fatalf("stall state not reset: %+v", world.Stall())
	}
	if world.Phase() != PhaseRunning {
		t.Fatalf("expected running phase after reseed, got %s", world.Phase())
	}
	st := world.Stats()
	if st.Reseeds != 1 || st.Generation != 0 || st.Total != DefaultStallThreshold {
		t.Fatalf("unexpected stats after reseed: %+v", st)
	}
	for i, c := range world.Board().Cells() {
		if c.Drop != DropUnset {
			t.Fatalf("cell %d should be fresh after reseed, got drop %d", i, c.Drop)
		}
	}
}

func TestStallAbortsRemainingSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 8
	cfg.Height = 8
	cfg.Params.SeedDensity = 0
	cfg.Params.StepsPerTick = 20

	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	res := world.Tick(world.Params())
	if !res.Reseeded {
		t.Fatal("expected reseed within one long tick")
	}
	if res.Steps != DefaultStallThreshold {
		t.Fatalf("expected tick to stop after %d steps, ran %d", DefaultStallThreshold, res.Steps)
	}
}

func TestTickReseedsWithTickDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	cfg.Params.SeedDensity = 0
	cfg.Params.StepsPerTick = DefaultStallThreshold

	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	p := world.Params()
	p.SeedDensity = 0.5
	if res := world.Tick(p); !res.Reseeded {
		t.Fatal("expected reseed")
	}
	if countAlive(world.Board()) == 0 {
		t.Fatal("reseed should use the density of the tick snapshot")
	}
}

func TestPhaseTransitions(t *testing.T) {
	legal := [][2]Phase{
		{PhaseRunning, PhaseStalled},
		{PhaseStalled, PhaseReseeding},
		{PhaseReseeding, PhaseRunning},
	}
	for _, tr := range legal {
		if !CanTransition(tr[0], tr[1]) {
			t.Fatalf("expected %s -> %s to be legal", tr[0], tr[1])
		}
	}
	illegal := [][2]Phase{
		{PhaseRunning, PhaseReseeding},
		{PhaseStalled, PhaseRunning},
		{PhaseReseeding, PhaseStalled},
		{PhaseRunning, PhaseRunning},
	}
	for _, tr := range illegal {
		if CanTransition(tr[0], tr[1]) {
			t.Fatalf("expected %s -> %s to be rejected", tr[0], tr[1])
		}
	}
}

func TestSetParameters(t *testing.T) {
	world := New(8, 8)

	if !world.SetFloatParameter("seed_density", 1.7) {
		t.Fatal("expected seed density to be adjustable")
	}
	if got := world.Params().SeedDensity; got != 1 {
		t.Fatalf("expected density to clamp to 1, got %v", got)
	}
	if !world.SetFloatParameter("mutate_max", 45) || world.Params().MutateMax != 45 {
		t.Fatalf("mutate max not applied: %+v", world.Params())
	}
	if !world.SetIntParameter("steps_per_tick", 0) || world.Params().StepsPerTick != 1 {
		t.Fatalf("steps per tick should clamp to 1: %+v", world.Params())
	}
	if world.SetIntParameter("seed_density", 1) {
		t.Fatal("float parameter must not accept an int setter")
	}
	if world.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if world.SetFloatParameter("mutate_min", math.NaN()) {
		t.Fatal("NaN must be rejected")
	}

	snap := world.Parameters()
	param, ok := snap.Lookup("mutate_max")
	if !ok || param.Value != "45" {
		t.Fatalf("snapshot out of date: %+v", param)
	}

	if err := world.SetParams(Params{SeedDensity: 2, StepsPerTick: 1, StallThreshold: 1}); !errors.Is(err, ErrInvalidDensity) {
		t.Fatalf("expected density error, got %v", err)
	}
}

func TestRegistryConstructsFromMap(t *testing.T) {
	sim, err := core.NewSim("colorlife", map[string]string{"w": "12", "h": "10", "seed_density": "0.5"})
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Size(); got != (core.Size{W: 12, H: 10}) {
		t.Fatalf("unexpected size %+v", got)
	}
	world, ok := sim.(*World)
	if !ok {
		t.Fatalf("unexpected sim type %T", sim)
	}
	if world.Params().SeedDensity != 0.5 {
		t.Fatalf("density not applied: %+v", world.Params())
	}
}
