package model

// Cell is a single automaton unit. State is private; the grid's
// mutators and the evolution step are the only writers.
type Cell struct {
	alive bool
	age   int
}

// Alive reports whether the cell is currently alive.
func (c Cell) Alive() bool { return c.alive }

// Age returns the number of consecutive generations the cell has been
// alive: 0 for a dead cell, 1 for a newborn, incrementing each
// generation it survives.
func (c Cell) Age() int { return c.age }
