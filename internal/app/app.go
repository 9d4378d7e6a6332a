//go:build ebiten

package app

import (
	"errors"
	"image"
	"log"
	"math"
	"strconv"
	"time"

	"colorlife/internal/core"
	"colorlife/internal/render"
	"colorlife/internal/sims/colorlife"
	"colorlife/internal/snapshot"
	"colorlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a colorlife world to the ebiten.Game interface.
type Game struct {
	world   *colorlife.World
	painter *render.GridPainter
	canvas  *render.Canvas
	fade    *render.Fade
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep
	store   *snapshot.Store
	gallery *snapshot.Gallery

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world. store may be nil, in which
// case saving is disabled.
func New(world *colorlife.World, canvas *render.Canvas, store *snapshot.Store, speed time.Duration, hudWidth int, seed int64) *Game {
	size := world.Size()
	g := &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		canvas:  canvas,
		fade:    &canvas.Fade,
		timer:   core.NewFixedStep(speed),
		store:   store,
		seed:    seed,
	}
	if store != nil {
		g.gallery = snapshot.NewGallery(store)
	}
	g.overlay = ui.NewOverlay(world, canvas)
	g.hud = ui.NewHUD("Colorlife", hudWidth, world, g.fade, g)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.canvas.Tess = render.Next(g.canvas.Tess)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.loadNext()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		b := g.boardBounds()
		if mx < b.Dx() && my < b.Dy() {
			g.Reset(time.Now().UnixNano())
		}
	}

	g.overlay.Update()
	g.hud.Update(g.boardBounds().Dx())

	if g.tickOnce || (!g.paused && g.timer.ShouldStep(time.Now())) {
		res := g.world.Tick(g.world.Params())
		if res.Reseeded {
			st := g.world.Stats()
			log.Printf("stalled after %d steps, reseed #%d", res.Steps, st.Reseeds)
		}
		g.tickOnce = false
	}
	return nil
}

func (g *Game) save() {
	if g.store == nil {
		log.Printf("save skipped: no save directory")
		return
	}
	img := g.canvas.Render(g.world.Board())
	set := snapshot.Capture(g.world.Params(), *g.fade, g.canvas.Tess.Name(), g.canvas.Scale, g.timer.Interval())
	saved, err := g.store.Save(set, img)
	if err != nil {
		log.Printf("save failed: %v", err)
		return
	}
	log.Printf("saved %s to %s", saved.ID, g.store.Dir())
}

// loadNext restores the next saved set, cycling through the store.
func (g *Game) loadNext() {
	if g.gallery == nil {
		log.Printf("load skipped: no save directory")
		return
	}
	set, err := g.gallery.Next()
	if err != nil {
		log.Printf("load failed: %v", err)
		return
	}
	if err := restoreSet(set, g.world, g.canvas, g.timer, g.seed); err != nil {
		log.Printf("load %s failed: %v", set.ID, err)
		return
	}
	img, err := g.store.Image(set.ID)
	if err != nil && !errors.Is(err, snapshot.ErrNotFound) {
		log.Printf("load %s image: %v", set.ID, err)
	}
	g.overlay.ShowSave(set.ID, img)
	g.tickOnce = false
	log.Printf("loaded %s saved %s", set.ID, set.Saved.Format(time.DateTime))
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.painter.Draw(screen, g.world.Board(), g.canvas)
	b := g.boardBounds()
	g.overlay.Draw(screen, b.Dx())
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, b.Dx(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.boardBounds()
	h := b.Dy()
	if m := g.hud.MinHeight(); g.hud.Width() > 0 && m > h {
		h = m
	}
	return b.Dx() + g.hud.Width(), h
}

func (g *Game) boardBounds() image.Rectangle {
	size := g.world.Size()
	return g.canvas.Bounds(size.W, size.H)
}

// Parameters exposes the tick interval to the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	ms := int(math.Round(float64(g.timer.Interval()) / float64(time.Millisecond)))
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Playback",
		Params: []core.Parameter{
			{Key: "speed_ms", Label: "Speed (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(ms)},
			{Key: "tessellation", Label: "Tessellation", Value: g.canvas.Tess.Name()},
		},
	}}}
}

// ParameterControls lists the playback controls.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{speedControl}
}

// SetIntParameter updates the tick interval.
func (g *Game) SetIntParameter(key string, value int) bool {
	if key != speedControl.Key {
		return false
	}
	g.timer.SetInterval(time.Duration(speedControl.ClampInt(value)) * time.Millisecond)
	return true
}
