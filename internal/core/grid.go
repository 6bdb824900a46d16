package core

// ByteGrid stores a 2D raster of byte-sized values in row-major order. The
// renderer uses it as a screen-sized palette index buffer.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y), or 0 outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Resize changes the dimensions, reusing the backing slice when it is large
// enough. The contents are cleared.
func (g *ByteGrid) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g.W, g.H = w, h
	if cap(g.data) < w*h {
		g.data = make([]uint8, w*h)
		return
	}
	g.data = g.data[:w*h]
	g.Clear()
}

// Fill sets every value in the half-open rectangle [x0,x1) x [y0,y1) to v,
// clipped to the grid.
func (g *ByteGrid) Fill(x0, y0, x1, y1 int, v uint8) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, g.W), min(y1, g.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		row := g.data[g.Index(x0, y):g.Index(x1, y)]
		for i := range row {
			row[i] = v
		}
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
