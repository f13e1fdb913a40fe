package utils

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/conwaylab/golife/model"
)

// CensusRecord is one population sample, taken at each grid change
// notification.
type CensusRecord struct {
	Generation int `csv:"generation"`
	Population int `csv:"population"`
	Births     int `csv:"births"`
	Deaths     int `csv:"deaths"`
}

// CensusSummary aggregates a run's population history.
type CensusSummary struct {
	Samples    int
	Current    int
	Min        int
	Max        int
	Mean       float64
	Median     float64
	P90        float64
	Generation int
}

// Census subscribes to a grid and records the population after every
// mutation, tracking births and deaths against the previous sample.
type Census struct {
	history []CensusRecord
	prev    map[model.Coord]bool
}

// NewCensus returns an empty census ready to subscribe.
func NewCensus() *Census {
	return &Census{prev: make(map[model.Coord]bool)}
}

// GridChanged records a sample; the grid calls this once per mutation.
func (c *Census) GridChanged(g *model.Grid) {
	rec := CensusRecord{Generation: g.Generation()}
	seen := make(map[model.Coord]bool, len(c.prev))
	for coord, cell := range g.All() {
		if !cell.Alive() {
			continue
		}
		rec.Population++
		seen[coord] = true
		if !c.prev[coord] {
			rec.Births++
		}
	}
	for coord := range c.prev {
		if !seen[coord] {
			rec.Deaths++
		}
	}
	c.prev = seen
	c.history = append(c.history, rec)
}

// Reset discards the recorded history.
func (c *Census) Reset() {
	c.history = nil
	c.prev = make(map[model.Coord]bool)
}

// Latest returns the most recent sample, if any.
func (c *Census) Latest() (CensusRecord, bool) {
	if len(c.history) == 0 {
		return CensusRecord{}, false
	}
	return c.history[len(c.history)-1], true
}

// History returns a copy of all recorded samples.
func (c *Census) History() []CensusRecord {
	out := make([]CensusRecord, len(c.history))
	copy(out, c.history)
	return out
}

// Summary computes aggregate population statistics over the recorded
// history.
func (c *Census) Summary() CensusSummary {
	if len(c.history) == 0 {
		return CensusSummary{}
	}

	populations := make([]float64, len(c.history))
	summary := CensusSummary{
		Samples: len(c.history),
		Min:     c.history[0].Population,
	}
	for i, rec := range c.history {
		populations[i] = float64(rec.Population)
		summary.Min = min(summary.Min, rec.Population)
		summary.Max = max(summary.Max, rec.Population)
	}
	latest := c.history[len(c.history)-1]
	summary.Current = latest.Population
	summary.Generation = latest.Generation

	summary.Mean = stat.Mean(populations, nil)
	sort.Float64s(populations)
	summary.Median = stat.Quantile(0.5, stat.Empirical, populations, nil)
	summary.P90 = stat.Quantile(0.9, stat.Empirical, populations, nil)
	return summary
}
