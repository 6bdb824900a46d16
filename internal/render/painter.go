//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"squarevolution/internal/core"
	"squarevolution/pkg/camera"
	"squarevolution/pkg/life"
)

// Painter uploads the rasterised grid into a window-sized image.
type Painter struct {
	raster *core.ByteGrid
	img    *ebiten.Image
	buf    []byte
	pixel  *ebiten.Image
}

// NewPainter allocates a painter; buffers are sized on the first Draw.
func NewPainter() *Painter {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Painter{raster: core.NewByteGrid(1, 1), pixel: pixel}
}

// Draw renders the cells of g visible through cam onto dst.
func (p *Painter) Draw(dst *ebiten.Image, cam *camera.Camera, g *life.Grid) {
	Rasterize(p.raster, cam, g)
	w, h := p.raster.W, p.raster.H
	if p.img == nil || p.img.Bounds().Dx() != w || p.img.Bounds().Dy() != h {
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(w, h)
		p.buf = make([]byte, 4*w*h)
	}
	fillPaletteRGBA(p.buf, p.raster.Cells(), Palette(cam.Zoom()))
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, nil)
}

// DrawCursor tints the cell under the pointer. The unit square is placed in
// lattice space and mapped to the window by the camera projection.
func (p *Painter) DrawCursor(dst *ebiten.Image, cam *camera.Camera, c life.Coord) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.X), float64(c.Y))
	op.GeoM.Concat(GeoM(cam.Projection()))
	op.ColorScale.ScaleAlpha(0.25)
	dst.DrawImage(p.pixel, op)
}

// GeoM converts a camera transform into an ebiten matrix.
func GeoM(t camera.Transform) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(t.Scale.X, t.Scale.Y)
	m.Translate(t.Translate.X, t.Translate.Y)
	return m
}
