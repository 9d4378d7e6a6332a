package app

import (
	"time"

	"colorlife/internal/core"
	"colorlife/internal/render"
	"colorlife/internal/sims/colorlife"
	"colorlife/internal/snapshot"
)

var speedControl = core.ParameterControl{
	Key: "speed_ms", Label: "Speed (ms)", Type: core.ParamTypeInt,
	Step: 10, Min: 30, Max: 300, HasMin: true, HasMax: true,
}

// restoreSet loads a saved set into a running game and reseeds the world.
// Board size and scale are left alone since the window is already sized
// for them.
func restoreSet(set snapshot.Set, world *colorlife.World, canvas *render.Canvas, timer *core.FixedStep, seed int64) error {
	tess := canvas.Tess
	if set.Tessellation != "" {
		var err error
		if tess, err = render.Lookup(set.Tessellation); err != nil {
			return err
		}
	}
	if err := set.Restore(world, &canvas.Fade, seed); err != nil {
		return err
	}
	canvas.Tess = tess
	if set.SpeedMS > 0 {
		timer.SetInterval(time.Duration(speedControl.ClampInt(set.SpeedMS)) * time.Millisecond)
	}
	return nil
}
