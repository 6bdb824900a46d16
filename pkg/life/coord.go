package life

import (
	"fmt"
	"math"
)

// Coord identifies one lattice cell. Coordinates are ordered row-major:
// by Y first, then by X.
type Coord struct {
	X int32
	Y int32
}

// C is a shorthand constructor for Coord.
func C(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

// Compare returns -1, 0 or +1 depending on whether c sorts before, equal to
// or after o.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	}
	return 0
}

// Less reports whether c sorts before o.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbours appends the 8-neighbourhood of c to buf and returns it.
// Neighbours that fall outside the int32 lattice are omitted, so cells on
// the extreme edge simply have fewer neighbours instead of wrapping.
func (c Coord) Neighbours(buf []Coord) []Coord {
	for dy := int64(-1); dy <= 1; dy++ {
		y := int64(c.Y) + dy
		if y < math.MinInt32 || y > math.MaxInt32 {
			continue
		}
		for dx := int64(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x := int64(c.X) + dx
			if x < math.MinInt32 || x > math.MaxInt32 {
				continue
			}
			buf = append(buf, Coord{X: int32(x), Y: int32(y)})
		}
	}
	return buf
}

// Rect is a closed rectangle on the lattice: both Min and Max are inside.
type Rect struct {
	Min Coord
	Max Coord
}

// R builds a Rect from two corners in any order.
func R(a, b Coord) Rect {
	return Rect{
		Min: Coord{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Coord{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the number of columns in r.
func (r Rect) Width() int64 {
	if r.Empty() {
		return 0
	}
	return int64(r.Max.X) - int64(r.Min.X) + 1
}

// Height returns the number of rows in r.
func (r Rect) Height() int64 {
	if r.Empty() {
		return 0
	}
	return int64(r.Max.Y) - int64(r.Min.Y) + 1
}

// Area returns the number of cells covered by r.
func (r Rect) Area() int64 {
	return r.Width() * r.Height()
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		Min: Coord{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: Coord{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}

// Intersect returns the overlap of r and o and whether it is non-empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	out := Rect{
		Min: Coord{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		Max: Coord{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	}
	return out, !out.Empty()
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v..%v]", r.Min, r.Max)
}
