package render

import (
	"image/color"
	"math"
	"strconv"

	"colorlife/internal/core"
	"colorlife/internal/sims/colorlife"

	"github.com/lucasb-eyer/go-colorful"
)

// Background is painted for cells that have never been alive.
var Background = color.RGBA{A: 255}

// aliveLightness is the HSL lightness (percent) of live cells.
const aliveLightness = 50

// Fade maps a dead cell's drop counter to an HSL lightness. Lightness
// values are percentages.
type Fade struct {
	// Steps is the number of generations a dead cell takes to fade from
	// MaxLightness to MinLightness. Zero paints every dead cell black.
	Steps        int
	MinLightness float64
	MaxLightness float64
}

// DefaultFade returns the standard fade configuration.
func DefaultFade() Fade {
	return Fade{Steps: 20, MinLightness: 10, MaxLightness: 20}
}

// Lightness returns the lightness percentage for a dead cell with the
// given drop counter.
func (f Fade) Lightness(drop int) float64 {
	if f.Steps == 0 {
		return 0
	}
	steps := float64(f.Steps)
	d := math.Min(steps, float64(drop))
	return (1-d/steps)*(f.MaxLightness-f.MinLightness) + f.MinLightness
}

// CellColor returns the display colour of c.
func (f Fade) CellColor(c colorlife.Cell) color.RGBA {
	switch {
	case c.Drop == colorlife.DropUnset:
		return Background
	case c.Life:
		return hsl(c.Hue, aliveLightness)
	default:
		return hsl(c.Hue, f.Lightness(c.Drop))
	}
}

func hsl(hue, lightness float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, 1, lightness/100).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var fadeControls = []core.ParameterControl{
	{Key: "dropoff_steps", Label: "Dropoff steps", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 200, HasMin: true, HasMax: true},
	{Key: "dropoff_min", Label: "Dropoff min", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 50, HasMin: true, HasMax: true},
	{Key: "dropoff_max", Label: "Dropoff max", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 50, HasMin: true, HasMax: true},
}

// Parameters exposes the fade settings to the HUD.
func (f *Fade) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Fade",
		Params: []core.Parameter{
			{Key: "dropoff_steps", Label: "Dropoff steps", Type: core.ParamTypeInt, Value: strconv.Itoa(f.Steps)},
			{Key: "dropoff_min", Label: "Dropoff min", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(f.MinLightness, 'f', -1, 64)},
			{Key: "dropoff_max", Label: "Dropoff max", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(f.MaxLightness, 'f', -1, 64)},
		},
	}}}
}

// ParameterControls lists the adjustable fade settings.
func (f *Fade) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), fadeControls...)
}

// SetIntParameter updates the dropoff step count.
func (f *Fade) SetIntParameter(key string, value int) bool {
	ctrl, ok := core.ControlFor(fadeControls, key)
	if !ok || key != "dropoff_steps" {
		return false
	}
	f.Steps = ctrl.ClampInt(value)
	return true
}

// SetFloatParameter updates one of the lightness bounds.
func (f *Fade) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := core.ControlFor(fadeControls, key)
	if !ok || math.IsNaN(value) {
		return false
	}
	switch key {
	case "dropoff_min":
		f.MinLightness = ctrl.Clamp(value)
	case "dropoff_max":
		f.MaxLightness = ctrl.Clamp(value)
	default:
		return false
	}
	return true
}
