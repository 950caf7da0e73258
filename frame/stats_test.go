package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsCountsFramesPerSecond(t *testing.T) {
	s := NewStats()
	t0 := time.Unix(1000, 0)
	// 50 frames per second for three seconds, then one frame to close the last window.
	for k := 0; k <= 150; k++ {
		s.Frame(t0.Add(time.Duration(k) * 20 * time.Millisecond))
	}
	assert.Equal(t, []float64{50, 50, 50}, s.History())

	snap := s.Snapshot()
	assert.Equal(t, 50.0, snap.FPS)
	assert.Equal(t, 50.0, snap.Mean)
	assert.Zero(t, snap.StdDev)
	assert.Equal(t, 3, snap.Samples)
}

func TestStatsRecordsEmptySeconds(t *testing.T) {
	s := NewStats()
	t0 := time.Unix(1000, 0)
	s.Frame(t0)
	s.Frame(t0.Add(3500 * time.Millisecond))
	assert.Equal(t, []float64{1, 0, 0}, s.History())
	assert.Equal(t, 0.0, s.Snapshot().Min)
}

func TestStatsHistoryIsBounded(t *testing.T) {
	s := NewStats()
	t0 := time.Unix(1000, 0)
	for sec := 0; sec <= StatsHistory+10; sec++ {
		s.Frame(t0.Add(time.Duration(sec) * time.Second))
	}
	assert.Len(t, s.History(), StatsHistory)
}
