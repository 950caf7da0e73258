// Package frame drives a per-frame callback from a wall-clock ticker.
package frame

import (
	"context"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/skitter/oerror"
	"github.com/sirupsen/logrus"
)

// MaxDelta caps the delta handed to a step, so a stalled process does not make the creature
// jump.
const MaxDelta = 0.1

// StepFunc advances a simulation by delta seconds.
type StepFunc func(delta float64)

// Loop calls a StepFunc once per tick with the clamped wall-clock delta since the previous
// frame.
type Loop struct {
	log      *logrus.Logger
	interval time.Duration
	step     StepFunc
	stats    *Stats

	mu      sync.Mutex
	last    time.Time
	resync  bool
	paused  bool
	elapsed float64
	frames  uint64
}

// NewLoop returns a loop ticking fps times per second.
func NewLoop(fps int, step StepFunc, log *logrus.Logger) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		log:      log,
		interval: time.Second / time.Duration(fps),
		step:     step,
		stats:    NewStats(),
		resync:   true,
	}
}

// Stats returns the loop's frame statistics.
func (l *Loop) Stats() *Stats {
	return l.stats
}

// Run ticks until ctx is cancelled. It returns nil on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.log.Infof("frame loop started (interval=%v)", l.interval)
	defer l.log.Info("frame loop stopped")
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			l.Advance(now)
		}
	}
}

// Advance runs one frame at now and returns the delta handed to the step. The first frame,
// and the first frame after Resume, only re-synchronise the clock and return 0 without
// stepping. Paused loops do not step.
func (l *Loop) Advance(now time.Time) float64 {
	l.mu.Lock()
	if l.paused {
		l.mu.Unlock()
		return 0
	}
	if l.resync {
		l.resync = false
		l.last = now
		l.mu.Unlock()
		return 0
	}
	delta := now.Sub(l.last).Seconds()
	l.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > MaxDelta {
		delta = MaxDelta
	}
	l.elapsed += delta
	l.frames++
	frame := l.frames
	l.mu.Unlock()

	l.stats.Frame(now)
	l.runStep(frame, delta)
	return delta
}

// runStep calls the step, reporting a panic instead of propagating it.
func (l *Loop) runStep(frame uint64, delta float64) {
	defer func() {
		if v := recover(); v != nil {
			err := oerror.New("frame %d panicked: %v", frame, v)
			l.log.Errorf("%v", err)
			l.stats.Panic()

			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("component", "frame")
				scope.SetExtra("frame", frame)
				scope.SetExtra("delta", delta)
			})
			hub.Recover(err)
			hub.Flush(time.Second * 5)
		}
	}()
	l.step(delta)
}

// Pause stops stepping and accumulating elapsed time.
func (l *Loop) Pause() {
	l.mu.Lock()
	l.paused = true
	l.mu.Unlock()
}

// Resume restarts a paused loop. The time spent paused is not replayed.
func (l *Loop) Resume() {
	l.mu.Lock()
	if l.paused {
		l.paused = false
		l.resync = true
	}
	l.mu.Unlock()
}

// Paused returns true while the loop is paused.
func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// Elapsed returns the simulated seconds handed to the step so far.
func (l *Loop) Elapsed() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.elapsed
}

// Frames returns the number of frames stepped so far.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}
