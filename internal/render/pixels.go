package render

import "image/color"

// Palette indexes written by Rasterize.
const (
	IndexBackground uint8 = iota
	IndexDead
	IndexAlive
)

var (
	aliveColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	deadColor  = color.RGBA{A: 255}
)

// Palette returns the colours for the three raster indexes at the given
// zoom. With the lattice visible the gaps between cells are a dim grey that
// brightens with zoom up to 10%; zoomed out they are black.
func Palette(zoom float64) []color.RGBA {
	bg := color.RGBA{A: 255}
	if GridMode(zoom) {
		v := uint8(min(0.1*zoom, 0.1)*255 + 0.5)
		bg = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return []color.RGBA{bg, deadColor, aliveColor}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
