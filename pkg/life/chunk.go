package life

import (
	"fmt"
	"slices"
)

const (
	// ChunkSize is the edge length of a chunk in cells.
	ChunkSize = 1 << chunkShift

	chunkShift = 7
)

// ChunkKey identifies a ChunkSize x ChunkSize square of the lattice.
type ChunkKey struct {
	X int32
	Y int32
}

// ChunkOf returns the chunk containing c. Arithmetic shift floors negative
// coordinates, so (-1,-1) lands in chunk (-1,-1) and not (0,0).
func ChunkOf(c Coord) ChunkKey {
	return ChunkKey{X: c.X >> chunkShift, Y: c.Y >> chunkShift}
}

// Rect returns the cells covered by the chunk.
func (k ChunkKey) Rect() Rect {
	origin := Coord{X: k.X << chunkShift, Y: k.Y << chunkShift}
	return Rect{
		Min: origin,
		Max: Coord{X: origin.X + ChunkSize - 1, Y: origin.Y + ChunkSize - 1},
	}
}

func (k ChunkKey) String() string {
	return fmt.Sprintf("chunk(%d,%d)", k.X, k.Y)
}

// chunkSet is the coarse visibility index: every chunk that holds a live
// cell, plus chunks touched by edits since the last step.
type chunkSet map[ChunkKey]struct{}

func (s chunkSet) mark(c Coord) {
	s[ChunkOf(c)] = struct{}{}
}

func (s chunkSet) has(c Coord) bool {
	_, ok := s[ChunkOf(c)]
	return ok
}

func (s chunkSet) sorted() []ChunkKey {
	keys := make([]ChunkKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b ChunkKey) int {
		return Coord(a).Compare(Coord(b))
	})
	return keys
}
