package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/conwaylab/golife/rules"
)

// Boundary selects how neighbor counting treats the grid edge.
type Boundary int

const (
	// Bounded treats cells outside the grid as permanently dead.
	Bounded Boundary = iota
	// Toroidal wraps neighbor lookups around the opposite edge.
	Toroidal
)

// ConfigurationStrategy assigns an initial cell-state configuration to a grid.
// Implementations live in the strategy package.
type ConfigurationStrategy interface {
	Apply(g *Grid) error
	Name() string
}

// Grid is the game board: a fixed width x height array of cells, a
// generation counter and a list of change subscribers. It is not safe
// for concurrent use; callers that share a grid across goroutines must
// add their own locking around every exported method.
type Grid struct {
	width      int
	height     int
	cells      [][]Cell
	generation int
	boundary   Boundary

	subscribers []Subscriber
	notifying   bool
}

// NewGrid creates a bounded grid with the specified dimensions.
func NewGrid(width, height int) (*Grid, error) {
	return NewGridWithBoundary(width, height, Bounded)
}

// NewGridWithBoundary creates a grid with an explicit edge policy.
// All cells start dead at generation 0.
func NewGridWithBoundary(width, height int, boundary Boundary) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"[NewGridWithBoundary] non-positive dimensions %dx%d", width, height)
	}
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:    width,
		height:   height,
		cells:    cells,
		boundary: boundary,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Generation returns the current generation number.
func (g *Grid) Generation() int { return g.generation }

// Boundary returns the grid's edge policy.
func (g *Grid) Boundary() Boundary { return g.boundary }

// CellAt returns the cell at (row, col).
func (g *Grid) CellAt(row, col int) (Cell, error) {
	if !g.inBounds(row, col) {
		return Cell{}, errors.Wrapf(ErrOutOfRange,
			"[CellAt] (%d,%d) outside %dx%d grid", row, col, g.width, g.height)
	}
	return g.cells[row][col], nil
}

// Alive reports whether the cell at (row, col) is alive. Coordinates
// outside the grid read as dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col].alive
}

// Population returns the total number of living cells.
func (g *Grid) Population() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col].alive {
				count++
			}
		}
	}
	return
}

// SetCell assigns an explicit state to a single cell without firing a
// notification. Setting a cell alive marks it newborn (age 1); setting
// it dead resets age to 0. Configuration strategies build on this.
func (g *Grid) SetCell(row, col int, alive bool) error {
	if g.notifying {
		return errors.Wrap(ErrReentrantMutation, "[SetCell] called from subscriber")
	}
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange,
			"[SetCell] (%d,%d) outside %dx%d grid", row, col, g.width, g.height)
	}
	c := &g.cells[row][col]
	c.alive = alive
	if alive {
		c.age = 1
	} else {
		c.age = 0
	}
	return nil
}

// ToggleCell flips a cell between alive and dead, resetting its age
// accordingly, and notifies subscribers once.
func (g *Grid) ToggleCell(row, col int) error {
	if g.notifying {
		return errors.Wrap(ErrReentrantMutation, "[ToggleCell] called from subscriber")
	}
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange,
			"[ToggleCell] (%d,%d) outside %dx%d grid", row, col, g.width, g.height)
	}
	c := &g.cells[row][col]
	c.alive = !c.alive
	if c.alive {
		c.age = 1
	} else {
		c.age = 0
	}
	g.notify()
	return nil
}

// Clear sets every cell dead with age 0, resets the generation counter
// to 0 and notifies subscribers once.
func (g *Grid) Clear() error {
	if g.notifying {
		return errors.Wrap(ErrReentrantMutation, "[Clear] called from subscriber")
	}
	for row := range g.height {
		for col := range g.width {
			g.cells[row][col] = Cell{}
		}
	}
	g.generation = 0
	g.notify()
	return nil
}

// ApplyConfiguration delegates the initial cell-state assignment to the
// strategy and notifies subscribers once on success. The generation
// counter is preserved; strategy failures propagate without firing a
// notification.
func (g *Grid) ApplyConfiguration(s ConfigurationStrategy) error {
	if g.notifying {
		return errors.Wrap(ErrReentrantMutation, "[ApplyConfiguration] called from subscriber")
	}
	if s == nil {
		return errors.Wrap(ErrInvalidParameter, "[ApplyConfiguration] nil strategy")
	}
	if err := s.Apply(g); err != nil {
		return errors.Wrapf(err, "[ApplyConfiguration] strategy %q failed", s.Name())
	}
	g.notify()
	return nil
}

// Evolve computes the next generation from the current one using the
// classic Conway rules. Neighbor counts are read from the current
// generation only; the new states land in a scratch buffer and are
// committed in a second pass, so traversal order cannot affect the
// result. Increments the generation by 1, updates cell ages and
// notifies subscribers once after the full grid is updated.
func (g *Grid) Evolve() error {
	if g.notifying {
		return errors.Wrap(ErrReentrantMutation, "[Evolve] called from subscriber")
	}
	next := scratch.Get(g.width, g.height)
	defer scratch.Put(next)

	for row := range g.height {
		for col := range g.width {
			next[row][col] = rules.ApplyConwayRules(g.neighborCount(row, col), g.cells[row][col].alive)
		}
	}

	g.commit(next)
	g.notify()
	return nil
}

// commit applies a computed next-state buffer to the grid, updating
// each cell's age per its transition, and advances the generation.
func (g *Grid) commit(next [][]bool) {
	for row := range g.height {
		for col := range g.width {
			c := &g.cells[row][col]
			switch {
			case next[row][col] && c.alive:
				c.age++ // survivor
			case next[row][col]:
				c.alive, c.age = true, 1 // birth
			default:
				c.alive, c.age = false, 0
			}
		}
	}
	g.generation++
}

// neighborCount counts living cells among the 8 neighbors of (row, col),
// honoring the grid's boundary policy.
func (g *Grid) neighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.boundary == Toroidal {
				r = (r + g.height) % g.height
				c = (c + g.width) % g.width
			} else if r < 0 || r >= g.height || c < 0 || c >= g.width {
				continue
			}
			if g.cells[r][c].alive {
				count++
			}
		}
	}
	return count
}

// Fingerprint returns an MD5 digest of the alive bitmap, used for
// cycle and stagnation detection.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col].alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}
