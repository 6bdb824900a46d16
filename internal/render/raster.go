package render

import (
	"math"

	"squarevolution/internal/core"
	"squarevolution/pkg/camera"
	"squarevolution/pkg/life"
)

const (
	// gridZoom is the zoom above which every visible cell gets its own tile.
	gridZoom = 0.5

	cellInset = 0.05
	cellSpan  = 0.9
)

// GridMode reports whether dead cells are drawn as tiles at this zoom.
func GridMode(zoom float64) bool { return zoom > gridZoom }

// Rasterize draws the part of g visible through cam into dst, one palette
// index per pixel. dst is resized to the camera window.
func Rasterize(dst *core.ByteGrid, cam *camera.Camera, g *life.Grid) {
	win := cam.Window()
	w, h := int(win.X), int(win.Y)
	if dst.W != w || dst.H != h {
		dst.Resize(w, h)
	} else {
		dst.Clear()
	}

	visible := cam.Visible()
	if GridMode(cam.Zoom()) {
		for y := visible.Min.Y; ; y++ {
			for x := visible.Min.X; ; x++ {
				fillCell(dst, cam, life.C(x, y), IndexDead)
				if x == visible.Max.X {
					break
				}
			}
			if y == visible.Max.Y {
				break
			}
		}
	}
	g.Each(visible, func(c life.Coord, _ life.Cell) bool {
		fillCell(dst, cam, c, IndexAlive)
		return true
	})
}

// fillCell paints the inset tile of c. Tiles never shrink below one pixel so
// live cells stay visible at any zoom.
func fillCell(dst *core.ByteGrid, cam *camera.Camera, c life.Coord, v uint8) {
	x, y, size := cam.CellRect(c)
	x0 := int(math.Round(x + cellInset*size))
	y0 := int(math.Round(y + cellInset*size))
	x1 := max(int(math.Round(x+(cellInset+cellSpan)*size)), x0+1)
	y1 := max(int(math.Round(y+(cellInset+cellSpan)*size)), y0+1)
	dst.Fill(x0, y0, x1, y1, v)
}
