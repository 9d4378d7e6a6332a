package ui

import (
	"image"
	"math"
	"strconv"

	"colorlife/internal/core"
)

// controlState tracks one adjustable parameter and the source that owns it.
type controlState struct {
	control core.ParameterControl
	source  core.ParameterProvider
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// infoLine is a read-only parameter shown below the controls.
type infoLine struct {
	label string
	value string
}

// panel holds the parameter state shared by the ebiten HUD and tests.
type panel struct {
	sources  []core.ParameterProvider
	controls []controlState
	info     []infoLine
}

func newPanel(sources ...core.ParameterProvider) *panel {
	p := &panel{}
	for _, src := range sources {
		if src == nil {
			continue
		}
		p.sources = append(p.sources, src)
		provider, ok := src.(core.ParameterControlsProvider)
		if !ok {
			continue
		}
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl, source: src, value: "--"})
		}
	}
	return p
}

// refresh re-reads every source and updates control values and info lines.
func (p *panel) refresh() {
	params := map[string]core.Parameter{}
	snaps := make([]core.ParameterSnapshot, len(p.sources))
	for i, src := range p.sources {
		snaps[i] = src.Parameters()
		for _, group := range snaps[i].Groups {
			for _, param := range group.Params {
				params[param.Key] = param
			}
		}
	}
	controlled := make(map[string]bool, len(p.controls))
	for i := range p.controls {
		state := &p.controls[i]
		controlled[state.control.Key] = true
		state.refresh(params)
	}
	p.info = p.info[:0]
	for _, snap := range snaps {
		for _, group := range snap.Groups {
			for _, param := range group.Params {
				if !controlled[param.Key] {
					p.info = append(p.info, infoLine{label: param.Label, value: param.Value})
				}
			}
		}
	}
}

func (s *controlState) refresh(params map[string]core.Parameter) {
	param, ok := params[s.control.Key]
	if !ok {
		s.clear()
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			s.clear()
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			s.clear()
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	default:
		s.clear()
	}
}

func (s *controlState) clear() {
	s.hasValue = false
	s.value = "--"
}

// target returns the value one step away in direction, or false when the
// control is already at its bound.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	ctrl := s.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		step := int(math.Round(ctrl.Step))
		if step <= 0 {
			step = 1
		}
		target := ctrl.ClampInt(s.intValue + direction*step)
		return float64(target), target != s.intValue
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		target := ctrl.Clamp(s.floatValue + float64(direction)*step)
		return target, math.Abs(target-s.floatValue) >= 1e-9
	default:
		return 0, false
	}
}

// adjust steps the control and pushes the new value to its source.
func (s *controlState) adjust(direction int) bool {
	target, ok := s.target(direction)
	if !ok {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		setter, ok := s.source.(core.IntParameterSetter)
		if !ok || !setter.SetIntParameter(s.control.Key, int(target)) {
			return false
		}
		s.intValue = int(target)
		s.floatValue = target
		s.value = strconv.Itoa(s.intValue)
	case core.ParamTypeFloat:
		setter, ok := s.source.(core.FloatParameterSetter)
		if !ok || !setter.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
	}
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
