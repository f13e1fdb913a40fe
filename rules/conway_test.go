package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely cell dies", 1, true, false},
		{"cell with 2 survives", 2, true, true},
		{"cell with 3 survives", 3, true, true},
		{"overcrowded cell dies", 4, true, false},
		{"dead cell with 3 is born", 3, false, true},
		{"dead cell with 2 stays dead", 2, false, false},
		{"dead cell with 8 stays dead", 8, false, false},
		{"isolated dead cell stays dead", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
