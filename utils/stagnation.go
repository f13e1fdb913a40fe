package utils

// defaultWindow keeps enough fingerprints to catch still lifes and
// short-period oscillators.
const defaultWindow = 5

// StagnationDetector watches a rolling window of grid fingerprints and
// reports when the board is stuck in a static state or a short cycle.
type StagnationDetector struct {
	window  int
	history []string
}

// NewStagnationDetector creates a detector with the given window size;
// non-positive sizes fall back to the default.
func NewStagnationDetector(window int) *StagnationDetector {
	if window <= 0 {
		window = defaultWindow
	}
	return &StagnationDetector{window: window}
}

// Observe records a fingerprint and trims the window.
func (d *StagnationDetector) Observe(fingerprint string) {
	d.history = append(d.history, fingerprint)
	if len(d.history) > d.window {
		d.history = d.history[1:]
	}
}

// Stagnant reports whether the most recent fingerprint matches any of
// the three states before it, covering still lifes and period-2/3
// oscillators.
func (d *StagnationDetector) Stagnant() bool {
	if len(d.history) < 2 {
		return false
	}
	current := d.history[len(d.history)-1]
	for lookback := 2; lookback <= 4; lookback++ {
		idx := len(d.history) - lookback
		if idx < 0 {
			break
		}
		if d.history[idx] == current {
			return true
		}
	}
	return false
}

// Reset clears the recorded history.
func (d *StagnationDetector) Reset() {
	d.history = nil
}
