package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"squarevolution/internal/core"
)

// ParameterProvider is the state source shown by the HUD.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controls binds the adjustable parameters of a provider to their setters.
type controls struct {
	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControls(src any) controls {
	var c controls
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		c.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		c.floatSetter = setter
	}
	return c
}

// refresh copies current values out of the snapshot.
func (c *controls) refresh(snap core.ParameterSnapshot) {
	for i := range c.states {
		state := &c.states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// target returns the value one step in direction and whether it differs
// from the current one after clamping.
func (c *controls) target(state *controlState, direction int) (float64, bool) {
	if !state.hasValue || direction == 0 {
		return 0, false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return 0, false
		}
		step := max(int(math.Round(state.control.Step)), 1)
		target := math.Round(state.control.Clamp(float64(state.intValue + direction*step)))
		return target, int(target) != state.intValue
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return 0, false
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.control.Clamp(state.floatValue + float64(direction)*step)
		return target, math.Abs(target-state.floatValue) >= 1e-9
	}
	return 0, false
}

// adjust moves a control one step and reports whether the setter accepted it.
func (c *controls) adjust(state *controlState, direction int) bool {
	target, ok := c.target(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if !c.intSetter.SetIntParameter(state.control.Key, int(target)) {
			return false
		}
		state.intValue = int(target)
		state.floatValue = target
		state.value = strconv.Itoa(int(target))
	case core.ParamTypeFloat:
		if !c.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
	return true
}

// layout places the -/+ buttons of each control row in a panel of width w.
func (c *controls) layout(w, top int) {
	for i := range c.states {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(w-panelPadding-buttonSize, buttonY, w-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		c.states[i].top = rowTop
		c.states[i].minusRect = minusRect
		c.states[i].plusRect = plusRect
	}
}

// click handles a press at panel-local (x, y).
func (c *controls) click(x, y int) bool {
	for i := range c.states {
		state := &c.states[i]
		if pointInRect(x, y, state.minusRect) {
			return c.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return c.adjust(state, 1)
		}
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

// StatusLines renders a snapshot as "Label: value" lines, one heading per
// group.
func StatusLines(snap core.ParameterSnapshot) []string {
	var out []string
	for _, g := range snap.Groups {
		out = append(out, g.Name)
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return out
}

const (
	panelWidth     = 240
	panelPadding   = 12
	lineHeight     = 36
	textLine       = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
)
