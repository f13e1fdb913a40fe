// Package strategy provides the interchangeable seeding algorithms a
// grid accepts through ApplyConfiguration: empty, random, hard-coded
// patterns and coherent-noise blobs.
package strategy

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"

	"github.com/conwaylab/golife/model"
)

// DefaultAliveProbability is the Random strategy's default density.
const DefaultAliveProbability = 0.25

// Empty sets every cell dead.
type Empty struct{}

// Name returns the strategy identifier.
func (Empty) Name() string { return "empty" }

// Apply clears the entire grid.
func (Empty) Apply(g *model.Grid) error {
	for row := range g.Height() {
		for col := range g.Width() {
			if err := g.SetCell(row, col, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// Random sets each cell alive independently with probability P.
type Random struct {
	// P is the alive probability in [0,1].
	P float64
	// Seed makes the assignment reproducible; 0 leaves the source
	// time-seeded.
	Seed int64
}

// NewRandom returns a Random strategy with the default density.
func NewRandom() Random {
	return Random{P: DefaultAliveProbability}
}

// Name returns the strategy identifier.
func (r Random) Name() string { return "random" }

// Apply clears the grid, then marks each cell alive with probability P.
// Newly alive cells start at age 1.
func (r Random) Apply(g *model.Grid) error {
	if r.P < 0 || r.P > 1 {
		return errors.Wrapf(model.ErrInvalidParameter,
			"[Random.Apply] alive probability %v outside [0,1]", r.P)
	}
	if err := (Empty{}).Apply(g); err != nil {
		return err
	}
	rng := r.rng()
	for row := range g.Height() {
		for col := range g.Width() {
			if rng.Float64() < r.P {
				if err := g.SetCell(row, col, true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r Random) rng() *rand.Rand {
	if r.Seed != 0 {
		return rand.New(rand.NewSource(r.Seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}

// Noise seeds the grid from OpenSimplex noise, producing organic
// clustered blobs instead of uniform static. Cells whose noise sample
// exceeds Threshold come up alive.
type Noise struct {
	// Threshold in [-1,1]; lower values mean denser boards.
	Threshold float64
	// Frequency scales coordinates into noise space; must be positive.
	// Smaller values produce larger blobs.
	Frequency float64
	// Seed selects the noise field.
	Seed int64
}

// Name returns the strategy identifier.
func (n Noise) Name() string { return "noise" }

// Apply clears the grid, then raises cells above the noise threshold.
func (n Noise) Apply(g *model.Grid) error {
	if n.Threshold < -1 || n.Threshold > 1 {
		return errors.Wrapf(model.ErrInvalidParameter,
			"[Noise.Apply] threshold %v outside [-1,1]", n.Threshold)
	}
	if n.Frequency <= 0 {
		return errors.Wrapf(model.ErrInvalidParameter,
			"[Noise.Apply] non-positive frequency %v", n.Frequency)
	}
	if err := (Empty{}).Apply(g); err != nil {
		return err
	}
	field := opensimplex.New(n.Seed)
	for row := range g.Height() {
		for col := range g.Width() {
			sample := field.Eval2(float64(col)*n.Frequency, float64(row)*n.Frequency)
			if sample > n.Threshold {
				if err := g.SetCell(row, col, true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
