package viewer

import (
	gomath "math"
	"testing"
)

func TestFrameStatsFirstTick(t *testing.T) {
	s := NewFrameStats()
	s.Tick(0.5)

	if s.DeltaTime != 0.5 {
		t.Errorf("expected delta 0.5, got %f", s.DeltaTime)
	}
	if s.Current() != 2 {
		t.Errorf("expected fps 2, got %f", s.Current())
	}
	if s.Min != 2 || s.Max != 2 || s.Average != 2 {
		t.Errorf("expected min/max/avg 2, got %f/%f/%f", s.Min, s.Max, s.Average)
	}
}

func TestFrameStatsZeroDeltaSkipsSample(t *testing.T) {
	s := NewFrameStats()
	s.Tick(0.1)
	s.Tick(0.1)

	if s.DeltaTime != 0 {
		t.Errorf("expected delta 0, got %f", s.DeltaTime)
	}
	if got := len(s.Samples()); got != 1 {
		t.Errorf("expected 1 sample, got %d", got)
	}
	if gomath.IsInf(s.Max, 0) || gomath.IsNaN(s.Average) {
		t.Errorf("stats corrupted by zero delta: max %f avg %f", s.Max, s.Average)
	}
	if s.Frames != 2 {
		t.Errorf("expected 2 frames, got %d", s.Frames)
	}
}

func TestFrameStatsMinMaxMonotone(t *testing.T) {
	s := NewFrameStats()
	deltas := []float64{0.016, 0.033, 0.008, 0.020, 0.050, 0.016, 0.004, 0.1, 0.016, 0.010, 0.020, 0.025}

	now := 0.0
	prevMin, prevMax := gomath.Inf(1), 0.0
	for i, d := range deltas {
		now += d
		s.Tick(now)
		if s.Min > prevMin {
			t.Errorf("frame %d: min increased from %f to %f", i, prevMin, s.Min)
		}
		if s.Max < prevMax {
			t.Errorf("frame %d: max decreased from %f to %f", i, prevMax, s.Max)
		}
		prevMin, prevMax = s.Min, s.Max
	}

	if gomath.Abs(s.Max-250) > 1e-6 {
		t.Errorf("expected max 250, got %f", s.Max)
	}
	if gomath.Abs(s.Min-10) > 1e-6 {
		t.Errorf("expected min 10, got %f", s.Min)
	}
}

func TestFrameStatsAverageBeforeWindowFills(t *testing.T) {
	s := NewFrameStats()
	s.Tick(0.5)  // 2 fps
	s.Tick(0.75) // 4 fps

	if s.Average != 3 {
		t.Errorf("expected average over written samples 3, got %f", s.Average)
	}
}

func TestFrameStatsAverageUsesWindow(t *testing.T) {
	s := NewFrameStats()
	now := 0.0

	// one slow frame, then a full window of 0.25s frames pushes it out
	now += 1
	s.Tick(now)
	for i := 0; i < FPSWindow; i++ {
		now += 0.25
		s.Tick(now)
	}

	if s.Average != 4 {
		t.Errorf("expected average 4, got %f", s.Average)
	}
	if s.Min != 1 {
		t.Errorf("expected min to remember 1, got %f", s.Min)
	}
	if got := len(s.Samples()); got != FPSWindow {
		t.Errorf("expected %d samples, got %d", FPSWindow, got)
	}
}
