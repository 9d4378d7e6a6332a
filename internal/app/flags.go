package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"colorlife/internal/core"
	"colorlife/internal/render"
	"colorlife/internal/sims/colorlife"
	"colorlife/internal/snapshot"
)

// ErrNotColorlife is returned when -sim names a simulation the frontends
// cannot draw.
var ErrNotColorlife = errors.New("sim has no colour frontend")

// Config represents the command-line parameters for the frontends.
type Config struct {
	// Sim names the registered simulation to run.
	Sim string

	// Width and Height size the board in cells. When zero they are derived
	// from View so the chosen tessellation fills a square view.
	Width  int
	Height int
	View   int

	Scale  float64
	Margin int
	TPS    int
	Seed   int64
	Speed  time.Duration

	SeedDensity    float64
	MutateMin      float64
	MutateMax      float64
	StepsPerTick   int
	StallThreshold int

	DropoffSteps int
	DropoffMin   float64
	DropoffMax   float64
	Tessellation string

	SaveDir string
	Load    string
	List    bool
	HUD     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := colorlife.DefaultConfig()
	fade := render.DefaultFade()
	return &Config{
		Sim:            "colorlife",
		View:           800,
		Scale:          10,
		TPS:            60,
		Seed:           def.Seed,
		Speed:          30 * time.Millisecond,
		SeedDensity:    def.Params.SeedDensity,
		MutateMin:      def.Params.MutateMin,
		MutateMax:      def.Params.MutateMax,
		StepsPerTick:   def.Params.StepsPerTick,
		StallThreshold: def.Params.StallThreshold,
		DropoffSteps:   fade.Steps,
		DropoffMin:     fade.MinLightness,
		DropoffMax:     fade.MaxLightness,
		Tessellation:   render.DefaultTessellation,
		SaveDir:        "saves",
		HUD:            260,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run: "+strings.Join(core.SimNames(), ", "))
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells (0 derives it from -view)")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells (0 derives it from -view)")
	fs.IntVar(&c.View, "view", c.View, "view height in pixels used to size the board")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.Margin, "margin", c.Margin, "border around the board in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.DurationVar(&c.Speed, "speed", c.Speed, "interval between ticks")
	fs.Float64Var(&c.SeedDensity, "seed-density", c.SeedDensity, "fraction of cells sampled alive on reseed")
	fs.Float64Var(&c.MutateMin, "mutate-min", c.MutateMin, "lower mutation bound in degrees")
	fs.Float64Var(&c.MutateMax, "mutate-max", c.MutateMax, "upper mutation bound in degrees")
	fs.IntVar(&c.StepsPerTick, "steps", c.StepsPerTick, "generations per tick")
	fs.IntVar(&c.StallThreshold, "stall", c.StallThreshold, "unchanged generations before a reseed")
	fs.IntVar(&c.DropoffSteps, "dropoff-steps", c.DropoffSteps, "generations for dead cells to fade")
	fs.Float64Var(&c.DropoffMin, "dropoff-min", c.DropoffMin, "lightness of fully faded cells")
	fs.Float64Var(&c.DropoffMax, "dropoff-max", c.DropoffMax, "lightness of freshly dead cells")
	fs.StringVar(&c.Tessellation, "tess", c.Tessellation, "cell geometry: squares, triangles, triangles-flip, triangles-symmetric, circles, hexagons")
	fs.StringVar(&c.SaveDir, "saves", c.SaveDir, "directory for saved parameter sets")
	fs.StringVar(&c.Load, "load", c.Load, "id of a saved parameter set to start from")
	fs.BoolVar(&c.List, "list", c.List, "print the saved parameter sets and exit")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
}

// Apply overrides the config with a saved parameter set.
func (c *Config) Apply(set snapshot.Set) error {
	p, fade, err := set.Apply(colorlife.Params{
		SeedDensity:    c.SeedDensity,
		MutateMin:      c.MutateMin,
		MutateMax:      c.MutateMax,
		StepsPerTick:   c.StepsPerTick,
		StallThreshold: c.StallThreshold,
	})
	if err != nil {
		return err
	}
	c.SeedDensity = p.SeedDensity
	c.MutateMin = p.MutateMin
	c.MutateMax = p.MutateMax
	c.StepsPerTick = p.StepsPerTick
	c.DropoffSteps = fade.Steps
	c.DropoffMin = fade.MinLightness
	c.DropoffMax = fade.MaxLightness
	if set.Scale > 0 {
		c.Scale = set.Scale
	}
	if set.SpeedMS > 0 {
		c.Speed = set.Speed()
	}
	if set.Tessellation != "" {
		c.Tessellation = set.Tessellation
	}
	return nil
}

// Tess resolves the configured tessellation.
func (c *Config) Tess() (render.Tessellation, error) {
	return render.Lookup(c.Tessellation)
}

// Dimensions returns the board size, deriving missing dimensions from the
// view height and tessellation pitch.
func (c *Config) Dimensions(tess render.Tessellation) (int, int) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = tess.Columns(float64(c.View), c.Scale)
	}
	if h <= 0 {
		h = render.Rows(float64(c.View), c.Scale)
	}
	return w, h
}

// World returns the validated engine configuration.
func (c *Config) World(tess render.Tessellation) (colorlife.Config, error) {
	w, h := c.Dimensions(tess)
	cfg := colorlife.Config{
		Width:  w,
		Height: h,
		Seed:   c.Seed,
		Params: colorlife.Params{
			SeedDensity:    c.SeedDensity,
			MutateMin:      c.MutateMin,
			MutateMax:      c.MutateMax,
			StepsPerTick:   c.StepsPerTick,
			StallThreshold: c.StallThreshold,
		},
	}
	if err := cfg.Validate(); err != nil {
		return colorlife.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Fade returns the render fade settings.
func (c *Config) Fade() render.Fade {
	return render.Fade{Steps: c.DropoffSteps, MinLightness: c.DropoffMin, MaxLightness: c.DropoffMax}
}

// Canvas returns the render geometry for tess.
func (c *Config) Canvas(tess render.Tessellation) *render.Canvas {
	return render.NewCanvas(tess, c.Fade(), c.Scale, c.Margin)
}

// Setup resolves the tessellation, applies a saved set when -load is
// given and builds the world. The store is nil when SaveDir is empty.
func (c *Config) Setup() (*colorlife.World, *render.Canvas, *snapshot.Store, error) {
	var store *snapshot.Store
	if c.SaveDir != "" {
		var err error
		if store, err = snapshot.Open(c.SaveDir); err != nil {
			return nil, nil, nil, err
		}
	}
	if c.Load != "" {
		if store == nil {
			return nil, nil, nil, fmt.Errorf("load %s: no save directory", c.Load)
		}
		set, err := store.Load(c.Load)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := c.Apply(set); err != nil {
			return nil, nil, nil, err
		}
	}
	tess, err := c.Tess()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := c.World(tess)
	if err != nil {
		return nil, nil, nil, err
	}
	sim, err := core.NewSim(c.Sim, cfg.Map())
	if err != nil {
		return nil, nil, nil, err
	}
	world, ok := sim.(*colorlife.World)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrNotColorlife, c.Sim)
	}
	return world, c.Canvas(tess), store, nil
}

// SkipMissingSaveDir clears SaveDir when the directory does not exist and
// nothing is being loaded, so a frontend that never saves does not
// create it.
func (c *Config) SkipMissingSaveDir() {
	if c.Load != "" || c.SaveDir == "" {
		return
	}
	if _, err := os.Stat(c.SaveDir); err != nil {
		c.SaveDir = ""
	}
}

// ListSaves prints one line per saved parameter set in SaveDir. A missing
// directory lists nothing.
func (c *Config) ListSaves(w io.Writer) error {
	if c.SaveDir == "" {
		return fmt.Errorf("list: no save directory")
	}
	if _, err := os.Stat(c.SaveDir); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(w, "no saves in %s\n", c.SaveDir)
		return nil
	}
	store, err := snapshot.Open(c.SaveDir)
	if err != nil {
		return err
	}
	sets, err := store.List()
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		fmt.Fprintf(w, "no saves in %s\n", c.SaveDir)
		return nil
	}
	for _, s := range sets {
		fmt.Fprintf(w, "%-14s %s  %-19s density=%.2f mutate=%g..%g steps=%d speed=%dms\n",
			s.ID, s.Saved.Format(time.DateTime), s.Tessellation,
			s.SeedDensity, s.MutateMin, s.MutateMax, s.StepsPerTick, s.SpeedMS)
	}
	return nil
}
