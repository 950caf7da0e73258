package spider

import (
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

const frameDelta = 1.0 / 60

// flat is level ground at height 0.
var flat = GroundFunc(func(x, z float64) float64 { return 0 })

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestController returns a controller spawned at (0, 1.5, 0) on flat ground.
func newTestController(t *testing.T, cfg PhysicsConfig) *Controller {
	t.Helper()
	opts := DefaultOptions()
	opts.Log = quietLogger()
	opts.Spawn = mgl64.Vec3{0, cfg.BodyHeight, 0}
	opts.Ground = flat
	return NewController(cfg, opts)
}

// run steps the controller for the given simulated duration and returns the last output.
func run(c *Controller, seconds float64, in Input) (out Output) {
	for t := 0.0; t < seconds; t += frameDelta {
		out = c.Update(frameDelta, in)
	}
	return out
}
