package life

import (
	"math"

	"github.com/google/btree"
)

// Cell is the payload stored for a live cell. It carries nothing yet; a dead
// cell is simply absent from the population.
type Cell struct{}

const treeDegree = 32

type entry struct {
	at   Coord
	cell Cell
}

func entryLess(a, b entry) bool { return a.at.Less(b.at) }

// Grid is an unbounded Game of Life lattice. Only live cells are stored,
// ordered row-major, alongside a coarse set of active chunks that gates
// point queries.
type Grid struct {
	cells      *btree.BTreeG[entry]
	chunks     chunkSet
	free       *btree.FreeListG[entry]
	generation uint64

	scratch []Coord
}

// New returns an empty grid.
func New() *Grid {
	free := btree.NewFreeListG[entry](btree.DefaultFreeListSize)
	return &Grid{
		cells:   btree.NewWithFreeListG(treeDegree, entryLess, free),
		chunks:  chunkSet{},
		free:    free,
		scratch: make([]Coord, 0, 8),
	}
}

// Cycle toggles the cell at c. The chunk holding c is marked active even when
// the toggle leaves it empty.
func (g *Grid) Cycle(c Coord) {
	if _, ok := g.cells.Delete(entry{at: c}); !ok {
		g.cells.ReplaceOrInsert(entry{at: c})
	}
	g.chunks.mark(c)
}

// Set makes the cell at c alive or dead.
func (g *Grid) Set(c Coord, alive bool) {
	if alive {
		if !g.cells.Has(entry{at: c}) {
			g.cells.ReplaceOrInsert(entry{at: c})
		}
	} else {
		g.cells.Delete(entry{at: c})
	}
	g.chunks.mark(c)
}

// Get reports whether the cell at c is alive. Cells outside the active
// chunks are reported dead without consulting the population.
func (g *Grid) Get(c Coord) bool {
	if !g.chunks.has(c) {
		return false
	}
	return g.cells.Has(entry{at: c})
}

// Each calls fn for every live cell inside r in ascending row-major order,
// stopping early when fn returns false. Rows are skip-scanned so cells left
// or right of r are never visited one by one.
func (g *Grid) Each(r Rect, fn func(Coord, Cell) bool) {
	if r.Empty() {
		return
	}
	from := r.Min
	for {
		var (
			next   Coord
			resume bool
			done   bool
		)
		g.cells.AscendGreaterOrEqual(entry{at: from}, func(e entry) bool {
			c := e.at
			switch {
			case c.Y > r.Max.Y:
				done = true
			case c.X < r.Min.X:
				next, resume = Coord{X: r.Min.X, Y: c.Y}, true
			case c.X > r.Max.X:
				if c.Y == math.MaxInt32 {
					done = true
				} else {
					next, resume = Coord{X: r.Min.X, Y: c.Y + 1}, true
				}
			default:
				if !fn(c, e.cell) {
					done = true
				}
			}
			return !done && !resume
		})
		if done || !resume {
			return
		}
		from = next
	}
}

// Alive returns the live cells inside r in ascending row-major order.
func (g *Grid) Alive(r Rect) []Coord {
	var out []Coord
	g.Each(r, func(c Coord, _ Cell) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Cells returns every live cell in ascending row-major order.
func (g *Grid) Cells() []Coord {
	out := make([]Coord, 0, g.cells.Len())
	g.cells.Ascend(func(e entry) bool {
		out = append(out, e.at)
		return true
	})
	return out
}

// Step advances the grid by one generation.
//
// Every neighbour of a live cell is a candidate. Isolated live cells are not
// candidates, which is fine: with no live neighbours they die anyway.
func (g *Grid) Step() {
	counts := make(map[Coord]uint8, g.cells.Len()*3)
	g.cells.Ascend(func(e entry) bool {
		g.scratch = e.at.Neighbours(g.scratch[:0])
		for _, n := range g.scratch {
			counts[n]++
		}
		return true
	})

	next := btree.NewWithFreeListG(treeDegree, entryLess, g.free)
	chunks := make(chunkSet, len(g.chunks))
	for c, n := range counts {
		prev, alive := g.cells.Get(entry{at: c})
		if !Survives(alive, int(n)) {
			continue
		}
		next.ReplaceOrInsert(entry{at: c, cell: prev.cell})
		chunks.mark(c)
	}

	g.cells.Clear(true)
	g.cells = next
	g.chunks = chunks
	g.generation++
}

// Multistep applies Step exactly n times.
func (g *Grid) Multistep(n uint64) {
	for i := uint64(0); i < n; i++ {
		g.Step()
	}
}

// Clear removes every cell and forgets all chunks and the generation count.
func (g *Grid) Clear() {
	g.cells.Clear(true)
	clear(g.chunks)
	g.generation = 0
}

// Len returns the number of live cells.
func (g *Grid) Len() int { return g.cells.Len() }

// Generation returns how many steps have been applied since creation or the
// last Clear.
func (g *Grid) Generation() uint64 { return g.generation }

// Bounds returns the bounding box of the live population. The second result
// is false when the grid is empty.
func (g *Grid) Bounds() (Rect, bool) {
	first, ok := g.cells.Min()
	if !ok {
		return Rect{}, false
	}
	last, _ := g.cells.Max()
	r := Rect{Min: first.at, Max: last.at}
	r.Min.X, r.Max.X = first.at.X, first.at.X
	g.cells.Ascend(func(e entry) bool {
		r.Min.X = min(r.Min.X, e.at.X)
		r.Max.X = max(r.Max.X, e.at.X)
		return true
	})
	return r, true
}

// ActiveChunks returns the active chunks in row-major order.
func (g *Grid) ActiveChunks() []ChunkKey {
	return g.chunks.sorted()
}

// ChunkActive reports whether k is in the active chunk set.
func (g *Grid) ChunkActive(k ChunkKey) bool {
	_, ok := g.chunks[k]
	return ok
}

// ChunkCount returns the size of the active chunk set.
func (g *Grid) ChunkCount() int { return len(g.chunks) }
