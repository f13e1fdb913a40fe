package model

import "iter"

// Coord addresses a single cell by row and column index.
type Coord struct {
	Row int
	Col int
}

// All returns a lazy, restartable sequence over every cell in row-major
// order, yielding (coordinate, cell) pairs. Each range over the
// returned sequence re-reads the grid's current state.
func (g *Grid) All() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for row := range g.height {
			for col := range g.width {
				if !yield(Coord{Row: row, Col: col}, g.cells[row][col]) {
					return
				}
			}
		}
	}
}
