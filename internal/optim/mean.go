package optim

// runningMean is a streaming arithmetic mean: mean <- (n*mean + v)/(n+1).
// The Batch optimiser keeps one per weight to average gradients across an
// epoch without materialising them.
type runningMean struct {
	value float64
	n     int
}

// Add folds v into the mean.
func (m *runningMean) Add(v float64) {
	if m.n > 0 {
		m.value = (float64(m.n)*m.value + v) / float64(m.n+1)
	} else {
		m.value = v
	}
	m.n++
}

// Mean returns the current mean, zero when empty.
func (m *runningMean) Mean() float64 { return m.value }

// Count returns the number of folded values.
func (m *runningMean) Count() int { return m.n }

// Reset empties the accumulator.
func (m *runningMean) Reset() { *m = runningMean{} }
