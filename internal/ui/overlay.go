//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"squarevolution/internal/render"
	"squarevolution/pkg/camera"
	"squarevolution/pkg/life"
)

var (
	chunkColor  = color.RGBA{R: 80, G: 160, B: 255, A: 200}
	cursorColor = color.RGBA{R: 255, G: 210, B: 80, A: 255}
)

// Overlay outlines the active chunks and labels the cell under the cursor.
type Overlay struct{}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw paints the overlay for g as seen through cam.
func (o *Overlay) Draw(screen *ebiten.Image, cam *camera.Camera, g *life.Grid, cursor life.Coord) {
	if o == nil {
		return
	}
	for _, b := range render.ChunkFrames(cam, g) {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, chunkColor, false)
	}
	label := fmt.Sprintf("%v %v", cursor, life.ChunkOf(cursor))
	h := screen.Bounds().Dy()
	text.Draw(screen, label, basicfont.Face7x13, 8, h-8, cursorColor)
}
