package render

import (
	"squarevolution/pkg/camera"
	"squarevolution/pkg/life"
)

// Box is an axis-aligned rectangle in window pixels.
type Box struct {
	X, Y, W, H float64
}

// CellBox returns the window rectangle covered by the cells in r.
func CellBox(cam *camera.Camera, r life.Rect) Box {
	x, y, size := cam.CellRect(life.C(r.Min.X, r.Max.Y))
	return Box{X: x, Y: y, W: float64(r.Width()) * size, H: float64(r.Height()) * size}
}

// ChunkFrames returns the outlines of the active chunks of g that intersect
// the view, in the grid's chunk order.
func ChunkFrames(cam *camera.Camera, g *life.Grid) []Box {
	visible := cam.Visible()
	var out []Box
	for _, k := range g.ActiveChunks() {
		if _, ok := k.Rect().Intersect(visible); !ok {
			continue
		}
		out = append(out, CellBox(cam, k.Rect()))
	}
	return out
}
