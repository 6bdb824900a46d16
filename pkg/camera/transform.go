package camera

import "math"

// Vec2 is a point or offset in pixel or lattice space.
type Vec2 struct {
	X float64
	Y float64
}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Floor rounds both components towards negative infinity.
func (v Vec2) Floor() Vec2 { return Vec2{math.Floor(v.X), math.Floor(v.Y)} }

// Transform is an axis-aligned affine map: p' = Scale*p + Translate.
// A negative Scale component flips that axis.
type Transform struct {
	Scale     Vec2
	Translate Vec2
}

// Apply maps p through t.
func (t Transform) Apply(p Vec2) Vec2 {
	return p.Mul(t.Scale).Add(t.Translate)
}

// Invert returns the transform undoing t. Both scale components must be
// non-zero.
func (t Transform) Invert() Transform {
	inv := Vec2{1 / t.Scale.X, 1 / t.Scale.Y}
	return Transform{
		Scale:     inv,
		Translate: t.Translate.Mul(inv).Neg(),
	}
}
