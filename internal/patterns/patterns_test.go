package patterns

import (
	"slices"
	"testing"

	"squarevolution/internal/core"
	"squarevolution/pkg/life"
)

func seeded(t *testing.T, name string) *life.Grid {
	t.Helper()
	g := life.New()
	if !Place(g, name, nil, life.C(0, 0), 1) {
		t.Fatalf("pattern %q is not registered", name)
	}
	return g
}

func TestRegistryHasBuiltins(t *testing.T) {
	names := core.PatternNames()
	for _, want := range []string{"empty", "block", "blinker", "glider", "lwss", "rpentomino", "diehard", "acorn", "gosper", "soup"} {
		if !slices.Contains(names, want) {
			t.Fatalf("pattern %q missing from %v", want, names)
		}
	}
	if Place(life.New(), "no-such-pattern", nil, life.C(0, 0), 1) {
		t.Fatal("unknown pattern reported as placed")
	}
}

func TestBlinkerIsCentred(t *testing.T) {
	g := seeded(t, "blinker")
	want := []life.Coord{life.C(-1, 0), life.C(0, 0), life.C(1, 0)}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("blinker = %v, expected %v", g.Cells(), want)
	}
}

func TestDiehardVanishes(t *testing.T) {
	g := seeded(t, "diehard")
	g.Multistep(129)
	if g.Len() == 0 {
		t.Fatal("diehard died before generation 130")
	}
	g.Step()
	if g.Len() != 0 {
		t.Fatalf("diehard has %d cells at generation 130", g.Len())
	}
}

func TestGosperGunEmitsGliders(t *testing.T) {
	g := seeded(t, "gosper")
	if g.Len() != 36 {
		t.Fatalf("gun has %d cells, expected 36", g.Len())
	}
	g.Multistep(30)
	if g.Len() != 41 {
		t.Fatalf("after one period the gun has %d cells, expected 41", g.Len())
	}
	g.Multistep(30)
	if g.Len() != 46 {
		t.Fatalf("after two periods the gun has %d cells, expected 46", g.Len())
	}
}

func TestLWSSTranslates(t *testing.T) {
	g := seeded(t, "lwss")
	start := g.Cells()
	g.Multistep(4)
	for i := range start {
		start[i].X -= 2
	}
	if !slices.Equal(g.Cells(), start) {
		t.Fatalf("lwss after 4 generations = %v, expected %v", g.Cells(), start)
	}
}

func TestSoupIsDeterministic(t *testing.T) {
	cfg := map[string]string{"size": "32", "density": "0.5"}
	a, b := life.New(), life.New()
	Place(a, "soup", cfg, life.C(0, 0), 42)
	Place(b, "soup", cfg, life.C(0, 0), 42)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different soups")
	}
	if a.Len() == 0 || a.Len() == 32*32 {
		t.Fatalf("soup of density 0.5 has %d cells", a.Len())
	}
	bounds, _ := a.Bounds()
	if !life.R(life.C(-16, -16), life.C(15, 15)).Contains(bounds.Min) || !life.R(life.C(-16, -16), life.C(15, 15)).Contains(bounds.Max) {
		t.Fatalf("soup bounds %v escape the 32x32 square", bounds)
	}

	c := life.New()
	Place(c, "soup", cfg, life.C(0, 0), 43)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical soups")
	}
}

func TestSoupFromMap(t *testing.T) {
	c := SoupFromMap(map[string]string{"size": "10", "density": "0.9"})
	if c.Size != 10 || c.Density != 0.9 {
		t.Fatalf("parsed %+v", c)
	}
	c = SoupFromMap(map[string]string{"size": "-1", "density": "7"})
	if c != DefaultSoupConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
}
