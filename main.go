package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/conwaylab/golife/model"
	"github.com/conwaylab/golife/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON or YAML config file")
	flag.Parse()

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		Logf("Using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		Logf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	grid, census, err := initializeGame(config)
	if err != nil {
		Logf("Failed to initialize: %v", err)
		os.Exit(1)
	}

	if config.Interactive {
		err = runAnimated(grid, config)
	} else {
		err = runBatch(grid, config)
	}
	if err != nil {
		Logf("Run failed: %v", err)
		os.Exit(1)
	}

	printSummary(census)

	if config.CSVPath != "" {
		if err = utils.ExportCensusCSV(config.CSVPath, census.History()); err != nil {
			Logf("CSV export failed: %v", err)
			os.Exit(1)
		}
		Logf("Census written to %s", config.CSVPath)
	}
	if config.SnapshotOut != "" {
		if err = grid.Snapshot().WriteFile(config.SnapshotOut); err != nil {
			Logf("Snapshot write failed: %v", err)
			os.Exit(1)
		}
		Logf("Snapshot written to %s", config.SnapshotOut)
	}
}

// runBatch evolves the grid up to MaxGenerations with a progress bar,
// stopping early on extinction or sustained stagnation.
func runBatch(grid *model.Grid, config utils.Config) error {
	bar := pb.StartNew(config.MaxGenerations)
	defer bar.Finish()

	detector := utils.NewStagnationDetector(0)
	stagnantCount := 0

	for range config.MaxGenerations {
		if err := step(grid, config); err != nil {
			return err
		}
		bar.Increment()

		detector.Observe(grid.Fingerprint())
		if grid.Population() == 0 {
			Logf("Extinct at generation %d", grid.Generation())
			return nil
		}
		if detector.Stagnant() {
			stagnantCount++
			if stagnantCount >= config.StagnationThreshold {
				Logf("Stagnant at generation %d", grid.Generation())
				return nil
			}
		} else {
			stagnantCount = 0
		}
	}
	return nil
}

// runAnimated attaches the terminal renderer and evolves the grid on a
// frame timer until extinction, MaxGenerations or Ctrl+C.
func runAnimated(grid *model.Grid, config utils.Config) error {
	renderer := &model.TerminalRenderer{}
	grid.Subscribe(renderer)
	defer grid.Unsubscribe(renderer)

	// Paint the seeded board before the first evolution.
	renderer.GridChanged(grid)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	for gen := 0; config.MaxGenerations == 0 || gen < config.MaxGenerations; gen++ {
		select {
		case <-sigChan:
			Logf("Shutting down gracefully at generation %d", grid.Generation())
			return nil
		case <-ticker.C:
			if err := step(grid, config); err != nil {
				return err
			}
			if grid.Population() == 0 {
				Logf("Extinct at generation %d", grid.Generation())
				return nil
			}
		}
	}
	return nil
}
