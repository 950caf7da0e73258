package frame

import (
	"slices"
	"sync"
	"time"

	"github.com/oomph-ac/skitter/game"
	"github.com/oomph-ac/skitter/utils"
)

// StatsHistory is the number of per-second samples a Stats keeps.
const StatsHistory = 60

// Stats counts frames per wall-clock second and keeps a rolling history of the counts.
type Stats struct {
	mu      sync.Mutex
	history *utils.CircularQueue[float64]
	window  time.Time
	frames  int
	panics  int
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{history: utils.NewCircularQueue[float64](StatsHistory, nil)}
}

// Frame records a frame at now. Every full second that has passed since the current window
// opened is closed and pushed to the history, empty seconds as 0.
func (s *Stats) Frame(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.window.IsZero() {
		s.window = now
	}
	for now.Sub(s.window) >= time.Second {
		_ = s.history.Append(float64(s.frames))
		s.frames = 0
		s.window = s.window.Add(time.Second)
	}
	s.frames++
}

// Panic records a frame that panicked.
func (s *Stats) Panic() {
	s.mu.Lock()
	s.panics++
	s.mu.Unlock()
}

// Snapshot is a copy of the statistics at one point in time.
type Snapshot struct {
	// FPS is the frame count of the last completed second.
	FPS     float64
	Mean    float64
	StdDev  float64
	Min     float64
	Samples int
	Panics  int
}

// Snapshot summarises the history.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	samples := slices.Collect(s.history.Iter())
	fps, _ := s.history.Last()
	return Snapshot{
		FPS:     fps,
		Mean:    game.Mean(samples),
		StdDev:  game.StandardDeviation(samples),
		Min:     game.Min(samples),
		Samples: len(samples),
		Panics:  s.panics,
	}
}

// History returns the per-second frame counts from oldest to newest.
func (s *Stats) History() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(s.history.Iter())
}
