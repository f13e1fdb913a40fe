package strategy

import (
	"errors"
	"testing"

	"github.com/conwaylab/golife/model"
)

func mustGrid(t *testing.T, width, height int) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	return g
}

func TestEmptyClearsEveryCell(t *testing.T) {
	g := mustGrid(t, 6, 6)
	if err := g.SetCell(2, 2, true); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if err := g.ApplyConfiguration(Empty{}); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d, want 0", g.Population())
	}
}

func TestRandomExtremes(t *testing.T) {
	t.Run("p=0 yields an all-dead grid", func(t *testing.T) {
		g := mustGrid(t, 10, 10)
		if err := g.ApplyConfiguration(Random{P: 0}); err != nil {
			t.Fatalf("ApplyConfiguration: %v", err)
		}
		if g.Population() != 0 {
			t.Fatalf("population = %d, want 0", g.Population())
		}
	})

	t.Run("p=1 yields an all-alive grid of newborns", func(t *testing.T) {
		g := mustGrid(t, 10, 10)
		if err := g.ApplyConfiguration(Random{P: 1}); err != nil {
			t.Fatalf("ApplyConfiguration: %v", err)
		}
		if g.Population() != 100 {
			t.Fatalf("population = %d, want 100", g.Population())
		}
		for coord, cell := range g.All() {
			if cell.Age() != 1 {
				t.Fatalf("cell (%d,%d) age = %d, want 1", coord.Row, coord.Col, cell.Age())
			}
		}
	})
}

func TestRandomRejectsBadProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1, 2} {
		g := mustGrid(t, 4, 4)
		if err := g.ApplyConfiguration(Random{P: p}); !errors.Is(err, model.ErrInvalidParameter) {
			t.Fatalf("p=%v err = %v, want ErrInvalidParameter", p, err)
		}
	}
}

func TestRandomIsDeterministicUnderSeed(t *testing.T) {
	a := mustGrid(t, 20, 20)
	b := mustGrid(t, 20, 20)
	seed := Random{P: 0.4, Seed: 42}
	if err := a.ApplyConfiguration(seed); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	if err := b.ApplyConfiguration(seed); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("same seed produced different boards")
	}
}

func TestApplyConfigurationPreservesGeneration(t *testing.T) {
	g := mustGrid(t, 8, 8)
	if err := g.ApplyConfiguration(Glider().At(1, 1)); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	for range 3 {
		if err := g.Evolve(); err != nil {
			t.Fatalf("Evolve: %v", err)
		}
	}
	if err := g.ApplyConfiguration(Random{P: 0.5, Seed: 7}); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	if g.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", g.Generation())
	}
}

func TestGliderGunFitsAndCounts(t *testing.T) {
	g := mustGrid(t, 40, 20)
	if err := g.ApplyConfiguration(GliderGun()); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	// The gun is 36 cells; every one newborn.
	if g.Population() != 36 {
		t.Fatalf("population = %d, want 36", g.Population())
	}
}

func TestFixedPatternOutOfRangeLeavesGridUntouched(t *testing.T) {
	g := mustGrid(t, 10, 10)
	if err := g.SetCell(5, 5, true); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	before := g.Fingerprint()

	tests := []struct {
		name    string
		pattern FixedPattern
	}{
		{"gun too wide", GliderGun()},
		{"negative origin", Blinker().At(-1, 0)},
		{"origin past edge", Block().At(9, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.ApplyConfiguration(tt.pattern)
			if !errors.Is(err, model.ErrOutOfRange) {
				t.Fatalf("err = %v, want ErrOutOfRange", err)
			}
			if g.Fingerprint() != before {
				t.Fatal("failed placement modified the grid")
			}
		})
	}
}

func TestFixedPatternRejectsEmptyOffsets(t *testing.T) {
	g := mustGrid(t, 5, 5)
	err := g.ApplyConfiguration(NewFixedPattern("nothing", nil))
	if !errors.Is(err, model.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestBlinkerPatternOscillates(t *testing.T) {
	g := mustGrid(t, 5, 5)
	if err := g.ApplyConfiguration(Blinker().At(2, 1)); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	before := g.Fingerprint()
	for range 2 {
		if err := g.Evolve(); err != nil {
			t.Fatalf("Evolve: %v", err)
		}
	}
	if g.Fingerprint() != before {
		t.Fatal("blinker did not return to its original configuration after 2 generations")
	}
}

func TestNoiseValidation(t *testing.T) {
	tests := []struct {
		name  string
		noise Noise
	}{
		{"threshold below -1", Noise{Threshold: -1.5, Frequency: 0.1}},
		{"threshold above 1", Noise{Threshold: 1.5, Frequency: 0.1}},
		{"zero frequency", Noise{Threshold: 0, Frequency: 0}},
		{"negative frequency", Noise{Threshold: 0, Frequency: -0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 5, 5)
			if err := g.ApplyConfiguration(tt.noise); !errors.Is(err, model.ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestNoiseIsDeterministicUnderSeed(t *testing.T) {
	a := mustGrid(t, 24, 24)
	b := mustGrid(t, 24, 24)
	seed := Noise{Threshold: 0.2, Frequency: 0.15, Seed: 99}
	if err := a.ApplyConfiguration(seed); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	if err := b.ApplyConfiguration(seed); err != nil {
		t.Fatalf("ApplyConfiguration: %v", err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("same seed produced different boards")
	}
	if a.Population() != b.Population() {
		t.Fatalf("populations differ: %d vs %d", a.Population(), b.Population())
	}
}
