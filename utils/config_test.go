package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/conwaylab/golife/model"
)

func writeTempConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json",
		`{"width": 80, "height": 50, "strategy": "glider-gun", "toroidal": true}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 80 || config.Height != 50 {
		t.Fatalf("dimensions = %dx%d, want 80x50", config.Width, config.Height)
	}
	if config.Strategy != "glider-gun" {
		t.Fatalf("strategy = %q, want glider-gun", config.Strategy)
	}
	if config.Boundary() != model.Toroidal {
		t.Fatal("toroidal flag did not select the toroidal boundary")
	}
	// Untouched fields keep their defaults.
	if config.MaxGenerations != DefaultConfig().MaxGenerations {
		t.Fatalf("max generations = %d, want default %d", config.MaxGenerations, DefaultConfig().MaxGenerations)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "width: 25\nheight: 15\nstrategy: noise\nseed: 7\n")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 25 || config.Height != 15 {
		t.Fatalf("dimensions = %dx%d, want 25x15", config.Width, config.Height)
	}
	if config.Strategy != "noise" || config.Seed != 7 {
		t.Fatalf("strategy/seed = %q/%d, want noise/7", config.Strategy, config.Seed)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"density above 1", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); !errors.Is(err, model.ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Width <= 0 || config.Height <= 0 {
		t.Fatal("default dimensions must be positive")
	}
	if config.FrameRate < time.Millisecond {
		t.Fatalf("frame rate = %v, implausibly fast", config.FrameRate)
	}
	if config.RandomDensity < 0 || config.RandomDensity > 1 {
		t.Fatalf("random density = %v, outside [0,1]", config.RandomDensity)
	}
}
