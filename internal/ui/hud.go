//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"squarevolution/internal/core"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 230}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonIdle  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the status and settings panel over the right edge of the view.
type HUD struct {
	src      ParameterProvider
	controls controls
	snapshot core.ParameterSnapshot

	panel   *ebiten.Image
	pixel   *ebiten.Image
	offsetX int
	height  int
}

// NewHUD constructs a HUD reading from src. If src also implements the
// control and setter interfaces its settings get -/+ buttons.
func NewHUD(src ParameterProvider) *HUD {
	h := &HUD{src: src, controls: newControls(src)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Contains reports whether the window pixel (x, y) lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil {
		return false
	}
	return x >= h.offsetX && y >= 0 && y < h.height
}

// Update refreshes the snapshot, lays the panel out against the window
// width and handles button presses. It reports whether a press landed on the
// panel.
func (h *HUD) Update(screenWidth int) bool {
	if h == nil {
		return false
	}
	h.snapshot = h.src.Parameters()
	h.controls.refresh(h.snapshot)

	h.offsetX = max(screenWidth-panelWidth, 0)
	lines := StatusLines(h.snapshot)
	controlsTop := h.statusTop() + len(lines)*textLine + panelPadding
	h.controls.layout(panelWidth, controlsTop)
	h.height = controlsTop + len(h.controls.states)*lineHeight + panelPadding

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return false
	}
	h.controls.click(mx-h.offsetX, my)
	return true
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != h.height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(panelWidth, h.height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, "Squarevolution", face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i, line := range StatusLines(h.snapshot) {
		text.Draw(h.panel, line, face, panelPadding, h.statusTop()+i*textLine, mutedColor)
	}
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) statusTop() int {
	return panelPadding + headerBaseline + textLine
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls.states {
		state := &h.controls.states[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusEnabled := h.controls.target(state, -1)
		_, plusEnabled := h.controls.target(state, 1)
		h.drawButton(state.minusRect.Min.X, state.minusRect.Min.Y, "-", minusEnabled)
		h.drawButton(state.plusRect.Min.X, state.plusRect.Min.Y, "+", plusEnabled)
	}
}

func (h *HUD) drawButton(x, y int, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = buttonIdle, mutedColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(buttonSize, buttonSize)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	tx := x + (buttonSize-bounds.Dx())/2
	ty := y + (buttonSize-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, tx, ty, fg)
}
