package core

import "testing"

func TestByteGridFillClips(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Fill(-2, 1, 2, 10, 7)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			want := uint8(0)
			if x < 2 && y >= 1 {
				want = 7
			}
			if got := g.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
	if g.At(-1, 0) != 0 || g.At(4, 0) != 0 {
		t.Fatal("out-of-range reads should be zero")
	}
}

func TestByteGridResizeClears(t *testing.T) {
	g := NewByteGrid(8, 8)
	g.Fill(0, 0, 8, 8, 1)
	g.Resize(2, 2)
	if len(g.Cells()) != 4 {
		t.Fatalf("len = %d after resize", len(g.Cells()))
	}
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after resize", i, v)
		}
	}
}
