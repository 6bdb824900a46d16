package life

/*
Survives applies Conway's rule (B3/S23) to one cell.

A live cell stays alive with 2 or 3 live neighbours; a dead cell is born
with exactly 3. Every other combination is dead in the next generation.
*/
func Survives(alive bool, neighbours int) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
