package spider

import (
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/assert"
	"github.com/sirupsen/logrus"
)

// DefaultSpawn is where the body is placed when no spawn point is configured.
var DefaultSpawn = mgl64.Vec3{0, 10, 0}

// Input is what the outside world tells the controller each frame.
type Input struct {
	// Target is the point the body walks toward; only X and Z are used.
	Target mgl64.Vec3
	// Pointer is the point the head glances around while idle.
	Pointer mgl64.Vec3
	// Ground is the terrain under the creature. A nil Ground walks on DefaultGround.
	Ground Ground
}

// Options configures a Controller at construction.
type Options struct {
	Log *logrus.Logger
	// Seed seeds the step-height and idle-gaze randomness.
	Seed uint64
	// Spawn is the initial body position.
	Spawn mgl64.Vec3
	// Ground is used to plant the feet at spawn.
	Ground Ground
	// DebugModes are the trace modes enabled on the controller's debugger.
	DebugModes []DebugMode
	// OnMoveStateChange is called on every transition between moving and stationary.
	OnMoveStateChange func(moving bool)
}

// DefaultOptions returns options that spawn at DefaultSpawn on DefaultGround.
func DefaultOptions() Options {
	return Options{
		Log:    logrus.StandardLogger(),
		Seed:   1,
		Spawn:  DefaultSpawn,
		Ground: DefaultGround,
	}
}

// Controller runs the locomotion of one creature. Update must be called from a single
// goroutine; SetConfig may be called from any goroutine.
type Controller struct {
	log *logrus.Logger
	dbg *Debugger

	cfg     PhysicsConfig
	pending atomic.Pointer[PhysicsConfig]

	rng   *rand.Rand
	state *State

	onMoveStateChange func(bool)
}

// NewController creates a controller with the given physics. It panics if cfg is invalid.
func NewController(cfg PhysicsConfig, opts Options) *Controller {
	err := cfg.Validate()
	assert.IsTrue(err == nil, "invalid physics config: %v", err)

	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	c := &Controller{
		log:               opts.Log,
		dbg:               NewDebugger(opts.Log, opts.DebugModes...),
		cfg:               cfg,
		rng:               rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		state:             newState(opts.Spawn, cfg, groundOrDefault(opts.Ground)),
		onMoveStateChange: opts.OnMoveStateChange,
	}
	return c
}

// State returns the live simulation state. It must only be read between calls to Update on
// the goroutine that calls Update.
func (c *Controller) State() *State {
	return c.state
}

// Debugger returns the controller's debugger.
func (c *Controller) Debugger() *Debugger {
	return c.dbg
}

// Config returns the physics config applied at the start of the last Update. A config passed
// to SetConfig is not visible here until the next Update. Like State, it must only be called
// from the goroutine calling Update.
func (c *Controller) Config() PhysicsConfig {
	return c.cfg
}

// SetConfig replaces the physics config as a whole. The new config is applied at the start of
// the next frame. An invalid config is rejected and the current one is kept.
func (c *Controller) SetConfig(cfg PhysicsConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.pending.Store(&cfg)
	return nil
}

// Update advances the simulation by delta seconds. Negative or non-finite deltas are treated
// as zero.
func (c *Controller) Update(delta float64, in Input) Output {
	if delta < 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}
	if next := c.pending.Swap(nil); next != nil {
		if next.reshapesLegs(c.cfg) {
			c.state.relayout(*next)
		}
		c.cfg = *next
		c.log.Debugf("physics config applied: %+v", c.cfg)
	}

	s, cfg, ground := c.state, &c.cfg, groundOrDefault(in.Ground)
	s.Time += delta

	loc := integrate(s, cfg, in.Target, delta)
	if loc.moving != s.Moving {
		s.Moving = loc.moving
		if c.onMoveStateChange != nil {
			c.onMoveStateChange(loc.moving)
		}
	}
	settleHeight(s, cfg, delta)
	normal := orient(s, cfg, delta)
	c.dbg.Notify(DebugModeBody, true, "pos=%v vel=%v moving=%v dist=%.3f", s.Position, s.Velocity, loc.moving, loc.distance)

	c.schedule(s, cfg, ground, loc)
	c.animate(s, cfg, delta)
	look := c.gaze(s, in, ground, loc, delta)

	return output(s, cfg, normal, look)
}
