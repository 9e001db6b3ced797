package viewer

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/ring"
)

// FPSWindow is the number of recent frames averaged.
const FPSWindow = 10

// FrameStats tracks frame timing. Min and Max cover every sample since
// creation; Average covers the last FPSWindow samples.
type FrameStats struct {
	LastTime    float64
	CurrentTime float64
	DeltaTime   float64
	Frames      uint64

	Min     float64
	Max     float64
	Average float64

	samples *ring.Ring[float64]
}

// NewFrameStats returns stats with Min seeded high and Max seeded low.
func NewFrameStats() *FrameStats {
	return &FrameStats{
		Min:     gomath.Inf(1),
		Max:     0,
		samples: ring.New(FPSWindow, 0.0),
	}
}

// Tick records a frame that started at now (seconds). A zero or negative
// delta produces no FPS sample.
func (s *FrameStats) Tick(now float64) {
	s.CurrentTime = now
	s.DeltaTime = now - s.LastTime
	s.LastTime = now
	s.Frames++

	if s.DeltaTime <= 0 {
		s.DeltaTime = 0
		return
	}

	fps := 1 / s.DeltaTime
	s.samples.Push(fps)
	s.Min = min(s.Min, fps)
	s.Max = max(s.Max, fps)

	var sum float64
	recent := s.samples.Recent()
	for _, v := range recent {
		sum += v
	}
	s.Average = sum / float64(len(recent))
}

// Current returns the most recent FPS sample, or 0 before the first one.
func (s *FrameStats) Current() float64 {
	if s.samples.Len() == 0 {
		return 0
	}
	return s.samples.At(s.samples.Cursor() - 1)
}

// Samples returns the FPS samples in the window, oldest first.
func (s *FrameStats) Samples() []float64 {
	return s.samples.Recent()
}
