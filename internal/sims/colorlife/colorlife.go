package colorlife

import (
	"fmt"

	"colorlife/internal/core"
)

// Phase is the controller's position in the reseed cycle.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseStalled
	PhaseReseeding
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseStalled:
		return "stalled"
	case PhaseReseeding:
		return "reseeding"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// next lists the only legal successor of each phase.
var next = map[Phase]Phase{
	PhaseRunning:   PhaseStalled,
	PhaseStalled:   PhaseReseeding,
	PhaseReseeding: PhaseRunning,
}

// CanTransition reports whether the controller may move from one phase to
// another.
func CanTransition(from, to Phase) bool {
	n, ok := next[from]
	return ok && n == to
}

// Stats accumulates counters across ticks for display and reporting.
type Stats struct {
	// Generation counts steps since the last reseed.
	Generation int
	// Total counts steps since Reset.
	Total   int
	Reseeds int
	Alive   int
	Last    Summary
}

// TickResult describes one call to Tick.
type TickResult struct {
	Steps    int
	Reseeded bool
	Last     Summary
}

// World owns the double-buffered boards, the stall detector and the
// parameter snapshot of a colorlife run.
type World struct {
	cfg    Config
	params Params

	w, h int

	cur *Board
	nxt *Board

	stall StallState
	phase Phase
	stats Stats

	display []uint8

	rng *core.RNG
}

// New returns a colorlife simulation with the provided dimensions using
// defaults. It panics on non-positive dimensions.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	world, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return world
}

// NewWithConfig validates cfg and returns a seeded world.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		params:  cfg.Params,
		w:       cfg.Width,
		h:       cfg.Height,
		display: make([]uint8, cfg.Width*cfg.Height),
		rng:     core.NewRNG(cfg.Seed),
	}
	w.cur = core.NewGrid[Cell](w.w, w.h)
	w.nxt = core.NewGrid[Cell](w.w, w.h)
	w.reseed(w.params.SeedDensity)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "colorlife" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Board exposes the current generation. Callers must treat it as read-only;
// it is overwritten two ticks later.
func (w *World) Board() *Board { return w.cur }

// Cells returns a liveness map of the current generation (1 alive, 0
// dead). The slice is reused by the next call.
func (w *World) Cells() []uint8 {
	for i, c := range w.cur.Cells() {
		if c.Life {
			w.display[i] = 1
		} else {
			w.display[i] = 0
		}
	}
	return w.display
}

// Params returns the snapshot the next tick will use.
func (w *World) Params() Params { return w.params }

// SetParams replaces the snapshot used by subsequent ticks.
func (w *World) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.params = p
	return nil
}

// Stall exposes the detector state.
func (w *World) Stall() StallState { return w.stall }

// Phase reports where the controller is in the reseed cycle.
func (w *World) Phase() Phase { return w.phase }

// Stats returns the accumulated counters.
func (w *World) Stats() Stats { return w.stats }

// Reset reseeds the world deterministically. A zero seed reuses the
// configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.stats = Stats{}
	w.phase = PhaseRunning
	w.reseed(w.params.SeedDensity)
}

// Step runs one tick with the current parameter snapshot.
func (w *World) Step() { w.Tick(w.params) }

// Tick advances up to p.StepsPerTick generations. When the detector
// reports a stall the remaining steps are abandoned and the board is
// reseeded before Tick returns.
func (w *World) Tick(p Params) TickResult {
	var res TickResult
	steps := p.StepsPerTick
	if steps < 1 {
		steps = 1
	}
	threshold := p.StallThreshold
	if threshold < 1 {
		threshold = DefaultStallThreshold
	}
	for i := 0; i < steps; i++ {
		sum := Step(w.cur, w.nxt, p, w.rng)
		w.cur, w.nxt = w.nxt, w.cur
		res.Steps++
		res.Last = sum
		w.stats.Generation++
		w.stats.Total++
		w.stats.Alive += sum.Born - sum.Died
		w.stats.Last = sum
		if w.stall.Observe(sum, threshold) {
			w.enter(PhaseStalled)
			break
		}
	}
	if w.phase == PhaseStalled {
		w.enter(PhaseReseeding)
		w.reseed(p.SeedDensity)
		w.stats.Reseeds++
		w.enter(PhaseRunning)
		res.Reseeded = true
	}
	return res
}

func (w *World) enter(to Phase) {
	if !CanTransition(w.phase, to) {
		panic(fmt.Sprintf("colorlife: illegal phase change %s -> %s", w.phase, to))
	}
	w.phase = to
}

// reseed clears both boards, samples live cells at density and forgets the
// stall history.
func (w *World) reseed(density float64) {
	clearBoard(w.cur, w.rng)
	clearBoard(w.nxt, w.rng)
	w.stats.Alive = seedBoard(w.cur, density, w.rng)
	w.stats.Generation = 0
	w.stats.Last = Summary{}
	w.stall.Reset()
}

func init() {
	core.Register("colorlife", func(cfg map[string]string) (core.Sim, error) {
		world, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return world, nil
	})
}
