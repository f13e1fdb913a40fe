package main

import (
	"github.com/pkg/errors"

	"github.com/conwaylab/golife/model"
	"github.com/conwaylab/golife/strategy"
	"github.com/conwaylab/golife/utils"
)

// buildStrategy maps the configured strategy name to a seeding
// implementation.
func buildStrategy(config utils.Config) (model.ConfigurationStrategy, error) {
	switch config.Strategy {
	case "empty":
		return strategy.Empty{}, nil
	case "random":
		return strategy.Random{P: config.RandomDensity, Seed: config.Seed}, nil
	case "noise":
		return strategy.Noise{
			Threshold: config.NoiseThreshold,
			Frequency: config.NoiseFrequency,
			Seed:      config.Seed,
		}, nil
	case "glider":
		return strategy.Glider(), nil
	case "glider-gun":
		return strategy.GliderGun(), nil
	case "blinker":
		return strategy.Blinker().At(config.Height/2, config.Width/2-1), nil
	case "block":
		return strategy.Block().At(config.Height/2, config.Width/2), nil
	}
	return nil, errors.Wrapf(model.ErrInvalidParameter,
		"[buildStrategy] unknown strategy: %+v", config.Strategy)
}

// initializeGame builds the grid, subscribes the census and seeds the
// board from either a saved snapshot or the configured strategy.
func initializeGame(config utils.Config) (*model.Grid, *utils.Census, error) {
	census := utils.NewCensus()

	if config.SnapshotIn != "" {
		snap, err := model.ReadSnapshot(config.SnapshotIn)
		if err != nil {
			return nil, nil, err
		}
		grid, err := model.FromSnapshotWithBoundary(snap, config.Boundary())
		if err != nil {
			return nil, nil, err
		}
		grid.Subscribe(census)
		return grid, census, nil
	}

	grid, err := model.NewGridWithBoundary(config.Width, config.Height, config.Boundary())
	if err != nil {
		return nil, nil, err
	}
	grid.Subscribe(census)

	seed, err := buildStrategy(config)
	if err != nil {
		return nil, nil, err
	}
	if err = grid.ApplyConfiguration(seed); err != nil {
		return nil, nil, err
	}
	return grid, census, nil
}

// step advances the grid one generation using the configured sweep.
func step(grid *model.Grid, config utils.Config) error {
	if config.UseParallel {
		return grid.EvolveParallel()
	}
	return grid.Evolve()
}

// printSummary logs the run's population statistics.
func printSummary(census *utils.Census) {
	summary := census.Summary()
	if summary.Samples == 0 {
		Logf("No census samples recorded")
		return
	}
	Logf("Final: generation %d | population %d", summary.Generation, summary.Current)
	Logf("Population: min %d | max %d | mean %.1f | median %.1f | p90 %.1f",
		summary.Min, summary.Max, summary.Mean, summary.Median, summary.P90)
}
