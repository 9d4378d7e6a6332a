// Package tui renders a colorlife world in a terminal with tcell.
//
// Each terminal cell shows two board rows using an upper half block: the
// foreground paints the upper row and the background the lower one.
package tui

import (
	"context"
	"fmt"
	"time"

	"colorlife/internal/core"
	"colorlife/internal/render"
	"colorlife/internal/sims/colorlife"
	"colorlife/internal/snapshot"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// BoardSize returns the board dimensions that fill a cols*rows terminal,
// keeping the last row for the status line.
func BoardSize(cols, rows int) (int, int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 2 {
		rows = 2
	}
	return cols, (rows - 1) * 2
}

// View drives a world inside a tcell screen.
type View struct {
	screen tcell.Screen
	world  *colorlife.World
	fade   render.Fade
	timer  *core.FixedStep

	seed     int64
	paused   bool
	tickOnce bool
	note     string
	// Reseeded is called after a tick that reseeded the board.
	Reseeded func(colorlife.TickResult)
	// Gallery, when set, lets 'l' cycle through saved parameter sets.
	Gallery *snapshot.Gallery
}

// New returns a view drawing world onto screen. The screen must already be
// initialised.
func New(screen tcell.Screen, world *colorlife.World, fade render.Fade, interval time.Duration, seed int64) *View {
	return &View{
		screen: screen,
		world:  world,
		fade:   fade,
		timer:  core.NewFixedStep(interval),
		seed:   seed,
	}
}

// Paused reports whether automatic ticking is suspended.
func (v *View) Paused() bool { return v.paused }

// Run polls events and advances the world until ctx is cancelled or the
// user quits.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		// PollEvent returns nil once the screen is finalised.
		for ev := v.screen.PollEvent(); ev != nil; ev = v.screen.PollEvent() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	frame := time.NewTicker(16 * time.Millisecond)
	defer frame.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
		case now := <-frame.C:
			v.Advance(now)
			v.Draw()
		}
	}
}

// Advance ticks the world if the step timer is due or a single step was
// requested.
func (v *View) Advance(now time.Time) bool {
	if !v.tickOnce && (v.paused || !v.timer.ShouldStep(now)) {
		return false
	}
	v.tickOnce = false
	res := v.world.Tick(v.world.Params())
	if res.Reseeded && v.Reseeded != nil {
		v.Reseeded(res)
	}
	return true
}

// HandleEvent applies one input event and reports whether the view should
// keep running.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *View) handleRune(r rune) bool {
	p := v.world.Params()
	switch r {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.tickOnce = true
	case 'r':
		v.world.Reset(v.seed)
	case 's':
		v.seed = time.Now().UnixNano()
		v.world.Reset(v.seed)
	case '+', '=':
		v.world.SetFloatParameter("seed_density", p.SeedDensity+0.01)
	case '-':
		v.world.SetFloatParameter("seed_density", p.SeedDensity-0.01)
	case ']':
		v.world.SetFloatParameter("mutate_max", p.MutateMax+5)
	case '[':
		v.world.SetFloatParameter("mutate_max", p.MutateMax-5)
	case '.':
		v.world.SetIntParameter("steps_per_tick", p.StepsPerTick+1)
	case ',':
		v.world.SetIntParameter("steps_per_tick", p.StepsPerTick-1)
	case 'l':
		v.loadNext()
	}
	return true
}

// loadNext restores the next saved set. The terminal always draws squares,
// so the saved tessellation and scale are ignored.
func (v *View) loadNext() {
	if v.Gallery == nil {
		v.note = "no saves"
		return
	}
	set, err := v.Gallery.Next()
	if err != nil {
		v.note = err.Error()
		return
	}
	if err := set.Restore(v.world, &v.fade, v.seed); err != nil {
		v.note = err.Error()
		return
	}
	if set.SpeedMS > 0 {
		v.timer.SetInterval(set.Speed())
	}
	v.note = "loaded " + set.ID
}

// Draw paints the board and status line and shows the frame.
func (v *View) Draw() {
	cols, rows := v.screen.Size()
	board := v.world.Board()
	v.screen.Clear()
	for ty := 0; ty < rows-1; ty++ {
		y := ty * 2
		if y >= board.H {
			break
		}
		for x := 0; x < cols && x < board.W; x++ {
			upper := v.fade.CellColor(board.At(x, y))
			lower := render.Background
			if y+1 < board.H {
				lower = v.fade.CellColor(board.At(x, y+1))
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			v.screen.SetContent(x, ty, halfBlock, nil, style)
		}
	}
	v.drawStatus(cols, rows-1)
	v.screen.Show()
}

func (v *View) drawStatus(cols, y int) {
	st := v.world.Stats()
	p := v.world.Params()
	state := v.world.Phase().String()
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" gen %d  alive %d  reseeds %d  stall %d/%d  density %.2f  mutate %.0f..%.0f  steps %d  [%s]",
		st.Generation, st.Alive, st.Reseeds, v.world.Stall().Count, p.StallThreshold,
		p.SeedDensity, p.MutateMin, p.MutateMax, p.StepsPerTick, state)
	if v.note != "" {
		line += "  " + v.note
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
