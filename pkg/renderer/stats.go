package renderer

import "sync/atomic"

// Stats accumulates running, concurrency-safe counters across a
// render's streaming workers, adapted from the teacher's two-pass
// RenderStats/PixelStats pair (which assembled a stats snapshot after
// a batch finished) into atomic counters safe to bump from any worker
// mid-stream.
type Stats struct {
	pixelsEmitted atomic.Uint64
	pixelsDropped atomic.Uint64
	samplesTaken  atomic.Uint64
	samplesSaved  atomic.Uint64 // samples never drawn due to early convergence exit
}

// Snapshot is an immutable point-in-time read of Stats.
type Snapshot struct {
	PixelsEmitted uint64
	PixelsDropped uint64
	SamplesTaken  uint64
	SamplesSaved  uint64
}

func (s *Stats) recordPixel() {
	s.pixelsEmitted.Add(1)
}

func (s *Stats) recordDroppedPixel() {
	s.pixelsDropped.Add(1)
}

func (s *Stats) recordSamples(taken, saved uint64) {
	s.samplesTaken.Add(taken)
	s.samplesSaved.Add(saved)
}

// Snapshot reads the current counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		PixelsEmitted: s.pixelsEmitted.Load(),
		PixelsDropped: s.pixelsDropped.Load(),
		SamplesTaken:  s.samplesTaken.Load(),
		SamplesSaved:  s.samplesSaved.Load(),
	}
}
