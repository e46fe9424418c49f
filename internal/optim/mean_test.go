package optim

import "testing"

func TestRunningMean(t *testing.T) {
	var m runningMean

	if m.Mean() != 0 || m.Count() != 0 {
		t.Fatalf("empty mean: got (%v, %d), want (0, 0)", m.Mean(), m.Count())
	}

	m.Add(2.0)
	m.Add(4.0)
	m.Add(9.0)
	if m.Mean() != 5.0 {
		t.Errorf("mean of 2,4,9: got %v, want 5", m.Mean())
	}
	if m.Count() != 3 {
		t.Errorf("count: got %d, want 3", m.Count())
	}

	m.Reset()
	if m.Mean() != 0 || m.Count() != 0 {
		t.Errorf("after reset: got (%v, %d), want (0, 0)", m.Mean(), m.Count())
	}

	m.Add(-1.5)
	if m.Mean() != -1.5 {
		t.Errorf("mean after reset: got %v, want -1.5", m.Mean())
	}
}
