package core

import (
	"slices"

	"squarevolution/pkg/life"
)

// Pattern seeds a grid around an origin cell. Seed only sets cells alive, so
// a pattern placed onto an empty grid is reproduced exactly.
type Pattern interface {
	Name() string
	Description() string
	Seed(g *life.Grid, origin life.Coord, rng *RNG)
}

// Factory constructs a Pattern using an optional configuration map.
type Factory func(cfg map[string]string) Pattern

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}

// PatternNames returns the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Cells is a Pattern made of a fixed list of offsets from the origin.
type Cells struct {
	ID      string
	Summary string
	Offsets []life.Coord
}

// Name returns the pattern identifier.
func (p Cells) Name() string { return p.ID }

// Description returns a one-line summary.
func (p Cells) Description() string { return p.Summary }

// Seed sets every offset alive relative to origin.
func (p Cells) Seed(g *life.Grid, origin life.Coord, _ *RNG) {
	for _, o := range p.Offsets {
		g.Set(life.Coord{X: origin.X + o.X, Y: origin.Y + o.Y}, true)
	}
}

// ParseRows turns rows of '#' (alive) and any other rune (dead) into offsets.
// The first row is the top of the pattern, so it gets the highest y.
func ParseRows(rows ...string) []life.Coord {
	var out []life.Coord
	top := int32(len(rows) - 1)
	for i, row := range rows {
		x := int32(0)
		for _, r := range row {
			if r == '#' {
				out = append(out, life.Coord{X: x, Y: top - int32(i)})
			}
			x++
		}
	}
	return out
}
