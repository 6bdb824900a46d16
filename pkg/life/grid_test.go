package life

import (
	"math"
	"slices"
	"testing"
)

func gridOf(cells ...Coord) *Grid {
	g := New()
	for _, c := range cells {
		g.Set(c, true)
	}
	return g
}

func sortedCopy(cells []Coord) []Coord {
	out := slices.Clone(cells)
	slices.SortFunc(out, Coord.Compare)
	return out
}

func expectCells(t *testing.T, g *Grid, want ...Coord) {
	t.Helper()
	got := g.Cells()
	want = sortedCopy(want)
	if !slices.Equal(got, want) {
		t.Fatalf("cells = %v, expected %v", got, want)
	}
}

func TestSurvives(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Survives(true, n); got != wantAlive {
			t.Errorf("live cell with %d neighbours: survives=%v, expected %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Survives(false, n); got != wantBorn {
			t.Errorf("dead cell with %d neighbours: born=%v, expected %v", n, got, wantBorn)
		}
	}
}

func TestStepNeighbourCounts(t *testing.T) {
	centre := C(0, 0)
	cases := []struct {
		name       string
		neighbours []Coord
		alive      bool
	}{
		{"isolated", nil, false},
		{"one", []Coord{C(1, 0)}, false},
		{"two", []Coord{C(1, 0), C(-1, 0)}, true},
		{"three", []Coord{C(1, 0), C(-1, 0), C(0, 1)}, true},
		{"four", []Coord{C(1, 0), C(-1, 0), C(0, 1), C(0, -1)}, false},
	}
	for _, tc := range cases {
		g := gridOf(append([]Coord{centre}, tc.neighbours...)...)
		g.Step()
		if got := g.Get(centre); got != tc.alive {
			t.Fatalf("%s: centre alive=%v, expected %v", tc.name, got, tc.alive)
		}
	}
}

func TestBirthNeedsExactlyThree(t *testing.T) {
	g := gridOf(C(-1, 1), C(0, 1), C(1, 1))
	g.Step()
	if !g.Get(C(0, 0)) {
		t.Fatal("dead cell with three live neighbours was not born")
	}

	g = gridOf(C(-1, 1), C(1, 1))
	g.Step()
	if g.Get(C(0, 0)) {
		t.Fatal("dead cell with two live neighbours was born")
	}
}

func TestBlockStillLife(t *testing.T) {
	block := []Coord{C(0, 0), C(1, 0), C(0, 1), C(1, 1)}
	g := gridOf(block...)
	for i := 0; i < 4; i++ {
		g.Step()
		expectCells(t, g, block...)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := []Coord{C(0, 0), C(1, 0), C(2, 0)}
	vertical := []Coord{C(1, -1), C(1, 0), C(1, 1)}

	g := gridOf(horizontal...)
	g.Step()
	expectCells(t, g, vertical...)
	g.Step()
	expectCells(t, g, horizontal...)
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", g.Generation())
	}
}

func TestCycleIsSelfInverse(t *testing.T) {
	g := gridOf(C(3, 3))
	for _, c := range []Coord{C(3, 3), C(-7, 12)} {
		before := g.Get(c)
		g.Cycle(c)
		if g.Get(c) == before {
			t.Fatalf("cycle did not toggle %v", c)
		}
		g.Cycle(c)
		if g.Get(c) != before {
			t.Fatalf("double cycle changed %v from %v", c, before)
		}
	}
}

func TestCycleMarksChunkEvenWhenEmptied(t *testing.T) {
	g := New()
	c := C(1000, -1000)
	g.Cycle(c)
	g.Cycle(c)
	if g.Len() != 0 {
		t.Fatalf("population = %d, expected 0", g.Len())
	}
	if !g.ChunkActive(ChunkOf(c)) {
		t.Fatal("toggled chunk should stay active until the next step")
	}
	g.Step()
	if g.ChunkCount() != 0 {
		t.Fatalf("active chunks after step = %d, expected 0", g.ChunkCount())
	}
}

func TestMultistepMatchesStep(t *testing.T) {
	glider := []Coord{C(1, 2), C(2, 1), C(0, 0), C(1, 0), C(2, 0)}
	for n := uint64(0); n <= 12; n++ {
		a := gridOf(glider...)
		b := gridOf(glider...)
		a.Multistep(n)
		for i := uint64(0); i < n; i++ {
			b.Step()
		}
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("multistep(%d) = %v, sequential = %v", n, a.Cells(), b.Cells())
		}
		if a.Generation() != n {
			t.Fatalf("generation after multistep(%d) = %d", n, a.Generation())
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	glider := []Coord{C(1, 2), C(2, 1), C(0, 0), C(1, 0), C(2, 0)}
	g := gridOf(glider...)
	g.Multistep(4)

	moved := make([]Coord, len(glider))
	for i, c := range glider {
		moved[i] = C(c.X+1, c.Y-1)
	}
	expectCells(t, g, moved...)
}

func TestEachRange(t *testing.T) {
	g := gridOf(C(0, 0), C(5, 5))

	got := g.Alive(R(C(0, 0), C(3, 3)))
	if !slices.Equal(got, []Coord{C(0, 0)}) {
		t.Fatalf("range [(0,0),(3,3)] = %v", got)
	}

	got = g.Alive(R(C(0, 0), C(5, 5)))
	if !slices.Equal(got, []Coord{C(0, 0), C(5, 5)}) {
		t.Fatalf("range [(0,0),(5,5)] = %v", got)
	}
}

func TestEachIsRectangular(t *testing.T) {
	g := gridOf(C(-5, 1), C(1, 1), C(10, 1), C(2, 2), C(-1, 3), C(3, 3), C(4, 3), C(0, 9))

	got := g.Alive(R(C(0, 0), C(3, 3)))
	want := []Coord{C(1, 1), C(2, 2), C(3, 3)}
	if !slices.Equal(got, want) {
		t.Fatalf("rect query = %v, expected %v", got, want)
	}

	// Restartable: a second pass sees the same cells.
	if again := g.Alive(R(C(0, 0), C(3, 3))); !slices.Equal(again, want) {
		t.Fatalf("second rect query = %v, expected %v", again, want)
	}
}

func TestEachStopsEarly(t *testing.T) {
	g := gridOf(C(0, 0), C(1, 0), C(2, 0), C(0, 1))
	var seen []Coord
	g.Each(R(C(-10, -10), C(10, 10)), func(c Coord, _ Cell) bool {
		seen = append(seen, c)
		return len(seen) < 2
	})
	if !slices.Equal(seen, []Coord{C(0, 0), C(1, 0)}) {
		t.Fatalf("visited %v, expected the first two cells", seen)
	}
}

func TestEachEmptyRect(t *testing.T) {
	g := gridOf(C(0, 0))
	called := false
	g.Each(Rect{Min: C(1, 1), Max: C(0, 0)}, func(Coord, Cell) bool {
		called = true
		return true
	})
	if called {
		t.Fatal("empty rect should not visit any cell")
	}
}

func TestChunkGateAfterStep(t *testing.T) {
	g := gridOf(C(126, 0), C(127, 0), C(128, 0), C(-300, -300))
	g.Step()

	pop := g.Cells()
	want := map[ChunkKey]bool{}
	for _, c := range pop {
		want[ChunkOf(c)] = true
	}
	chunks := g.ActiveChunks()
	if len(chunks) != len(want) {
		t.Fatalf("active chunks = %v, expected the chunks of %v", chunks, pop)
	}
	for _, k := range chunks {
		if !want[k] {
			t.Fatalf("chunk %v active without live cells", k)
		}
	}

	// The isolated cell died, so its chunk is gone and reads dead.
	if g.ChunkActive(ChunkOf(C(-300, -300))) {
		t.Fatal("chunk of a dead isolated cell is still active")
	}
	for y := int32(-2); y <= 2; y++ {
		for x := int32(120); x <= 135; x++ {
			c := C(x, y)
			alive := slices.Contains(pop, c)
			if g.Get(c) != alive {
				t.Fatalf("Get(%v) = %v, population says %v", c, g.Get(c), alive)
			}
			if g.Get(c) && !g.ChunkActive(ChunkOf(c)) {
				t.Fatalf("%v reported alive outside active chunks", c)
			}
		}
	}
}

func TestChunkOfFloors(t *testing.T) {
	cases := []struct {
		in   Coord
		want ChunkKey
	}{
		{C(0, 0), ChunkKey{0, 0}},
		{C(127, 127), ChunkKey{0, 0}},
		{C(128, 0), ChunkKey{1, 0}},
		{C(-1, -1), ChunkKey{-1, -1}},
		{C(-128, -129), ChunkKey{-1, -2}},
		{C(math.MaxInt32, math.MinInt32), ChunkKey{math.MaxInt32 >> 7, math.MinInt32 >> 7}},
	}
	for _, tc := range cases {
		if got := ChunkOf(tc.in); got != tc.want {
			t.Errorf("ChunkOf(%v) = %v, expected %v", tc.in, got, tc.want)
		}
		if !tc.want.Rect().Contains(tc.in) {
			t.Errorf("%v.Rect() does not contain %v", tc.want, tc.in)
		}
	}
}

func TestEdgeOfLatticeDoesNotWrap(t *testing.T) {
	const edge = math.MaxInt32
	g := gridOf(C(edge, -1), C(edge, 0), C(edge, 1))
	g.Step()
	expectCells(t, g, C(edge-1, 0), C(edge, 0))
	if g.Get(C(math.MinInt32, 0)) {
		t.Fatal("cell wrapped around to the opposite edge")
	}
}

func TestBoundsAndClear(t *testing.T) {
	g := New()
	if _, ok := g.Bounds(); ok {
		t.Fatal("empty grid should have no bounds")
	}
	g.Set(C(4, -2), true)
	g.Set(C(-3, 7), true)
	g.Set(C(9, 1), true)
	r, ok := g.Bounds()
	if !ok || r != R(C(-3, -2), C(9, 7)) {
		t.Fatalf("bounds = %v, %v", r, ok)
	}

	g.Step()
	g.Clear()
	if g.Len() != 0 || g.ChunkCount() != 0 || g.Generation() != 0 {
		t.Fatalf("clear left len=%d chunks=%d generation=%d", g.Len(), g.ChunkCount(), g.Generation())
	}
}

func TestSetIsIdempotent(t *testing.T) {
	g := New()
	g.Set(C(1, 1), true)
	g.Set(C(1, 1), true)
	if g.Len() != 1 {
		t.Fatalf("population = %d, expected 1", g.Len())
	}
	g.Set(C(1, 1), false)
	g.Set(C(1, 1), false)
	if g.Len() != 0 {
		t.Fatalf("population = %d, expected 0", g.Len())
	}
}
