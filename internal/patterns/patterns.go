package patterns

import (
	"squarevolution/internal/core"
	"squarevolution/pkg/life"
)

var shapes = []core.Cells{
	{ID: "empty", Summary: "no cells"},
	shape("block", "2x2 still life",
		"##",
		"##",
	),
	shape("blinker", "period 2 oscillator",
		"###",
	),
	shape("glider", "smallest spaceship, moves one cell diagonally every 4 generations",
		".#.",
		"..#",
		"###",
	),
	shape("lwss", "lightweight spaceship",
		".#..#",
		"#....",
		"#...#",
		"####.",
	),
	shape("rpentomino", "methuselah that stabilises after 1103 generations",
		".##",
		"##.",
		".#.",
	),
	shape("diehard", "vanishes after 130 generations",
		"......#.",
		"##......",
		".#...###",
	),
	shape("acorn", "methuselah that takes 5206 generations to stabilise",
		".#.....",
		"...#...",
		"##..###",
	),
	shape("gosper", "Gosper glider gun, one glider every 30 generations",
		"........................#...........",
		"......................#.#...........",
		"............##......##............##",
		"...........#...#....##............##",
		"##........#.....#...##..............",
		"##........#...#.##....#.#...........",
		"..........#.....#.......#...........",
		"...........#...#....................",
		"............##......................",
	),
}

// shape builds a fixed pattern centred on the origin.
func shape(id, summary string, rows ...string) core.Cells {
	offsets := core.ParseRows(rows...)
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	dx, dy := int32(width/2), int32(len(rows)/2)
	for i := range offsets {
		offsets[i].X -= dx
		offsets[i].Y -= dy
	}
	return core.Cells{ID: id, Summary: summary, Offsets: offsets}
}

// Lookup returns the fixed pattern with the given name.
func Lookup(name string) (core.Cells, bool) {
	for _, s := range shapes {
		if s.ID == name {
			return s, true
		}
	}
	return core.Cells{}, false
}

// Place seeds the named pattern at origin. Unknown names report false and
// leave g untouched.
func Place(g *life.Grid, name string, cfg map[string]string, origin life.Coord, seed int64) bool {
	factory, ok := core.Patterns()[name]
	if !ok {
		return false
	}
	factory(cfg).Seed(g, origin, core.NewRNG(seed))
	return true
}

func init() {
	for _, s := range shapes {
		s := s
		core.Register(s.ID, func(map[string]string) core.Pattern { return s })
	}
}
