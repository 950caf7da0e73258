package spider

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DebugMode selects a family of per-frame trace messages.
type DebugMode int

const (
	DebugModeBody DebugMode = iota
	DebugModeGait
	DebugModeStep
	DebugModeGaze
	debugModeCount
)

var debugModeNames = [debugModeCount]string{"body", "gait", "step", "gaze"}

// String ...
func (m DebugMode) String() string {
	if m < 0 || m >= debugModeCount {
		return fmt.Sprintf("DebugMode(%d)", int(m))
	}
	return debugModeNames[m]
}

// ParseDebugMode returns the debug mode with the given name.
func ParseDebugMode(name string) (DebugMode, error) {
	for i, n := range debugModeNames {
		if strings.EqualFold(n, name) {
			return DebugMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown debug mode %q", name)
}

const (
	// DebugInterval is the minimum spacing of two messages of the same mode once the burst is spent.
	DebugInterval = 100 * time.Millisecond
	// DebugBurst is the number of messages of one mode that may be logged back to back.
	DebugBurst = 16
)

// Debugger logs trace messages for the enabled debug modes. Each mode is throttled on its own
// so a 60 fps trace cannot flood the log.
type Debugger struct {
	log      *logrus.Logger
	enabled  [debugModeCount]bool
	limiters [debugModeCount]*rate.Limiter
}

// NewDebugger returns a debugger writing to log with the given modes enabled.
func NewDebugger(log *logrus.Logger, modes ...DebugMode) *Debugger {
	d := &Debugger{log: log}
	for i := range d.limiters {
		d.limiters[i] = rate.NewLimiter(rate.Every(DebugInterval), DebugBurst)
	}
	for _, m := range modes {
		d.Enable(m)
	}
	return d
}

// Enable turns a debug mode on.
func (d *Debugger) Enable(mode DebugMode) {
	if mode >= 0 && mode < debugModeCount {
		d.enabled[mode] = true
	}
}

// Disable turns a debug mode off.
func (d *Debugger) Disable(mode DebugMode) {
	if mode >= 0 && mode < debugModeCount {
		d.enabled[mode] = false
	}
}

// Toggle flips a debug mode.
func (d *Debugger) Toggle(mode DebugMode) {
	if mode >= 0 && mode < debugModeCount {
		d.enabled[mode] = !d.enabled[mode]
	}
}

// Enabled returns true if the mode is on.
func (d *Debugger) Enabled(mode DebugMode) bool {
	return mode >= 0 && mode < debugModeCount && d.enabled[mode]
}

// Notify logs the formatted message if the mode is enabled, cond holds and the mode's
// limiter allows it.
func (d *Debugger) Notify(mode DebugMode, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) || !d.limiters[mode].Allow() {
		return
	}
	d.log.WithField("mode", mode.String()).Debugf(format, args...)
}
