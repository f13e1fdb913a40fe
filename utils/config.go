package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/conwaylab/golife/model"
)

// Config holds the configuration for a simulation run.
type Config struct {
	Width          int           `json:"width" yaml:"width"`
	Height         int           `json:"height" yaml:"height"`
	Toroidal       bool          `json:"toroidal" yaml:"toroidal"`
	FrameRate      time.Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations int           `json:"max_generations" yaml:"max_generations"`
	UseParallel    bool          `json:"use_parallel" yaml:"use_parallel"`
	Interactive    bool          `json:"interactive" yaml:"interactive"`

	// Strategy selects the seeding algorithm: empty, random, noise,
	// glider, glider-gun, blinker or block.
	Strategy       string  `json:"strategy" yaml:"strategy"`
	RandomDensity  float64 `json:"random_density" yaml:"random_density"`
	NoiseThreshold float64 `json:"noise_threshold" yaml:"noise_threshold"`
	NoiseFrequency float64 `json:"noise_frequency" yaml:"noise_frequency"`
	Seed           int64   `json:"seed" yaml:"seed"`

	StagnationThreshold int `json:"stagnation_threshold" yaml:"stagnation_threshold"`

	// CSVPath, when set, receives the per-generation census records.
	CSVPath string `json:"csv_path" yaml:"csv_path"`
	// SnapshotIn, when set, seeds the grid from a saved snapshot
	// instead of the configured strategy.
	SnapshotIn string `json:"snapshot_in" yaml:"snapshot_in"`
	// SnapshotOut, when set, receives the final grid state.
	SnapshotOut string `json:"snapshot_out" yaml:"snapshot_out"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		UseParallel:         true,
		Strategy:            "random",
		RandomDensity:       0.25,
		NoiseThreshold:      0.3,
		NoiseFrequency:      0.1,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, selected by
// extension, on top of the defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	return config, nil
}

// Validate checks the configuration for values the engine would reject.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(model.ErrInvalidParameter,
			"[Config.Validate] non-positive dimensions %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(model.ErrInvalidParameter,
			"[Config.Validate] random density %v outside [0,1]", c.RandomDensity)
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(model.ErrInvalidParameter,
			"[Config.Validate] non-positive frame rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(model.ErrInvalidParameter,
			"[Config.Validate] negative max generations %d", c.MaxGenerations)
	}
	return nil
}

// Boundary returns the grid edge policy the config selects.
func (c Config) Boundary() model.Boundary {
	if c.Toroidal {
		return model.Toroidal
	}
	return model.Bounded
}
