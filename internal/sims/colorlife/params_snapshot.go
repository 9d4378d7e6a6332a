package colorlife

import (
	"strconv"

	"colorlife/internal/core"
)

var controls = []core.ParameterControl{
	{Key: "seed_density", Label: "Seed density", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "mutate_min", Label: "Mutate min", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 360, HasMin: true, HasMax: true},
	{Key: "mutate_max", Label: "Mutate max", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 360, HasMin: true, HasMax: true},
	{Key: "steps_per_tick", Label: "Steps per tick", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 20, HasMin: true, HasMax: true},
	{Key: "stall_threshold", Label: "Stall threshold", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
}

// Parameters reports the live parameter snapshot grouped for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.params
	st := w.stats
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.w),
				intParam("h", "Height", w.h),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("seed_density", "Seed density", p.SeedDensity),
			},
		},
		{
			Name: "Genetics",
			Params: []core.Parameter{
				floatParam("mutate_min", "Mutate min", p.MutateMin),
				floatParam("mutate_max", "Mutate max", p.MutateMax),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam("steps_per_tick", "Steps per tick", p.StepsPerTick),
				intParam("stall_threshold", "Stall threshold", p.StallThreshold),
			},
		},
		{
			Name:    "Status",
			Summary: w.phase.String(),
			Params: []core.Parameter{
				intParam("generation", "Generation", st.Generation),
				intParam("alive", "Alive", st.Alive),
				intParam("reseeds", "Reseeds", st.Reseeds),
				intParam("stall_count", "Stall count", w.stall.Count),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

// SetIntParameter updates an integer parameter, clamping to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := core.ControlFor(controls, key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = ctrl.ClampInt(value)
	switch key {
	case "steps_per_tick":
		w.params.StepsPerTick = value
	case "stall_threshold":
		w.params.StallThreshold = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter, clamping to its
// bounds. The seed density takes effect on the next reseed.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := core.ControlFor(controls, key)
	if !ok || ctrl.Type != core.ParamTypeFloat || !finite(value) {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "seed_density":
		w.params.SeedDensity = value
	case "mutate_min":
		w.params.MutateMin = value
	case "mutate_max":
		w.params.MutateMax = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
