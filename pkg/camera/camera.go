package camera

import (
	"math"

	"squarevolution/pkg/life"
)

const (
	// DefaultCellSize is the edge of one cell in pixels at zoom 1.
	DefaultCellSize = 32.0

	// Zoom is clamped to [ZoomMinimum, ZoomMaximum]; each wheel notch scales
	// it by 1 ± ZoomSensitivity.
	ZoomMinimum     = 0.01
	ZoomMaximum     = 100.0
	ZoomSensitivity = 0.1
)

// Camera maps window pixels to lattice coordinates. Screen y grows downwards
// while lattice y grows upwards, so the transform flips the vertical axis.
type Camera struct {
	position Vec2
	zoom     float64
	window   Vec2
	cellSize float64

	// pan holds the lattice point grabbed by an in-progress drag.
	pan *Vec2
}

// New returns a camera centred on the origin for a window of the given size.
func New(width, height int) *Camera {
	return &Camera{
		zoom:     1,
		window:   V(float64(width), float64(height)),
		cellSize: DefaultCellSize,
	}
}

// Resize sets the window dimensions. Degenerate sizes are accepted as is.
func (c *Camera) Resize(width, height int) {
	c.window = V(float64(width), float64(height))
}

// SetCellSize changes the pixel size of a cell at zoom 1. Non-positive
// values restore DefaultCellSize.
func (c *Camera) SetCellSize(px float64) {
	if px <= 0 || math.IsNaN(px) || math.IsInf(px, 0) {
		px = DefaultCellSize
	}
	c.cellSize = px
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// Position returns the lattice-space translation offset.
func (c *Camera) Position() Vec2 { return c.position }

// Window returns the window size in pixels.
func (c *Camera) Window() Vec2 { return c.window }

// CellSize returns the pixel size of a cell at zoom 1.
func (c *Camera) CellSize() float64 { return c.cellSize }

// Panning reports whether a pan gesture is in progress.
func (c *Camera) Panning() bool { return c.pan != nil }

// UpdateZoom scales the zoom by one sensitivity step in the direction of
// dir's sign. A zero (or NaN) dir leaves the zoom unchanged.
func (c *Camera) UpdateZoom(dir float64) {
	r := 1 + ZoomSensitivity*sign(dir)
	c.zoom = clamp(c.zoom*r, ZoomMinimum, ZoomMaximum)
}

// UpdateZoomPoint zooms while keeping the lattice point under pixel p fixed.
func (c *Camera) UpdateZoomPoint(dir float64, p Vec2) {
	before := c.GridSpace().Apply(p)
	c.UpdateZoom(dir)
	after := c.GridSpace().Apply(p)
	c.position = c.position.Add(after.Sub(before))
}

// BeginPan grabs the lattice point under pixel (x, y).
func (c *Camera) BeginPan(x, y int) {
	anchor := c.GridSpace().Apply(V(float64(x), float64(y)))
	c.pan = &anchor
}

// UpdatePan drags the view so the grabbed point follows pixel (x, y).
// It does nothing when no pan is in progress.
func (c *Camera) UpdatePan(x, y int) {
	if c.pan == nil {
		return
	}
	end := c.GridSpace().Apply(V(float64(x), float64(y)))
	c.position = c.position.Add(end.Sub(*c.pan))
}

// EndPan releases the grabbed point.
func (c *Camera) EndPan() {
	c.pan = nil
}

// GridSpace returns the transform from window pixels to lattice space.
func (c *Camera) GridSpace() Transform {
	scale := V(1, -1).Scale(1 / (c.cellSize * c.zoom))
	return Transform{
		Scale:     scale,
		Translate: c.position.Neg().Sub(scale.Mul(c.window).Scale(0.5)),
	}
}

// ScreenSpace returns the transform from lattice space to window pixels.
func (c *Camera) ScreenSpace() Transform {
	return c.GridSpace().Invert()
}

// Projection is the lattice-to-pixel transform used to place geometry.
func (c *Camera) Projection() Transform {
	return c.ScreenSpace()
}

// Coord returns the cell under pixel (x, y).
func (c *Camera) Coord(x, y int) life.Coord {
	return c.CoordAt(V(float64(x), float64(y)))
}

// CoordAt returns the cell under a sub-pixel window position.
func (c *Camera) CoordAt(p Vec2) life.Coord {
	g := c.GridSpace().Apply(p).Floor()
	return life.Coord{X: saturate(g.X), Y: saturate(g.Y)}
}

// Visible returns the closed range of cells covering the window, from the
// bottom-left pixel corner to the top-right one.
func (c *Camera) Visible() life.Rect {
	w, h := int(c.window.X), int(c.window.Y)
	return life.R(c.Coord(0, h), c.Coord(w, 0))
}

// CellRect returns the top-left pixel position and the pixel size of a cell.
func (c *Camera) CellRect(coord life.Coord) (x, y, size float64) {
	screen := c.ScreenSpace()
	// The top-left corner of a cell is its lattice (x, y+1) corner.
	tl := screen.Apply(V(float64(coord.X), float64(coord.Y)+1))
	return tl.X, tl.Y, c.cellSize * c.zoom
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// saturate converts a floored lattice value to int32, pinning values beyond
// the lattice to its edge.
func saturate(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= math.MinInt32:
		return math.MinInt32
	case v >= math.MaxInt32:
		return math.MaxInt32
	}
	return int32(v)
}
