package spider

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateOrdering(t *testing.T) {
	cands := []candidate{
		{index: 0, dist: 1},
		{index: 1, dist: 3},
		{index: 2, dist: 0.5, critical: true},
		{index: 3, dist: 3},
		{index: 4, dist: 2, critical: true},
	}
	slices.SortStableFunc(cands, compareCandidates)

	order := make([]int, len(cands))
	for i, c := range cands {
		order[i] = c.index
	}
	assert.Equal(t, []int{4, 2, 1, 3, 0}, order)
}

// displaceFeet moves every foot of a freshly spawned controller relative to its home. inward
// feet move toward the shoulder so they stay reachable; outward feet move away from it.
func displaceFeet(c *Controller, dist func(i int) float64, inward bool) {
	s := c.State()
	for i := range s.Legs {
		home := s.BodyToWorld(s.Configs[i].RestOffset)
		home[1] = 0
		shoulder := s.BodyToWorld(s.Configs[i].OriginOffset)
		dir := shoulder.Sub(home).Normalize()
		if !inward {
			dir = dir.Mul(-1)
		}
		s.Legs[i].Foot = home.Add(dir.Mul(dist(i)))
	}
}

func liftedLegs(s *State) (lifted []int) {
	for i := range s.Legs {
		if s.Legs[i].Stepping() {
			lifted = append(lifted, i)
		}
	}
	return lifted
}

func TestScheduleRespectsStepCapAndNeighbours(t *testing.T) {
	c := newTestController(t, DefaultPhysicsConfig())
	// Every leg is distressed but reachable; leg 0 is the most distressed, leg 7 the least.
	displaceFeet(c, func(i int) float64 { return 1.6 + 0.01*float64(LegCount-i) }, true)

	cfg := c.Config()
	c.schedule(c.State(), &cfg, flat, locomotion{})

	for i := range c.State().Legs {
		require.False(t, c.State().Legs[i].Critical(), "leg %d", i)
	}
	lifted := liftedLegs(c.State())
	assert.Equal(t, []int{0, 2, 5}, lifted)
	assert.LessOrEqual(t, len(lifted), cfg.MaxActiveSteps)
	for _, i := range lifted {
		for _, n := range Neighbours(i) {
			assert.False(t, c.State().Legs[n].Stepping(), "leg %d lifted next to leg %d", i, n)
		}
	}
}

func TestScheduleStepCapHoldsAcrossFrames(t *testing.T) {
	cfg := DefaultPhysicsConfig()
	cfg.MaxActiveSteps = 1
	c := newTestController(t, cfg)
	displaceFeet(c, func(i int) float64 { return 1.6 + 0.01*float64(LegCount-i) }, true)

	c.schedule(c.State(), &cfg, flat, locomotion{})
	assert.Equal(t, []int{0}, liftedLegs(c.State()))

	// The next frame must not add a step while leg 0 is still in the air.
	c.schedule(c.State(), &cfg, flat, locomotion{})
	assert.Equal(t, []int{0}, liftedLegs(c.State()))
}

func TestScheduleIgnoresCalmLegs(t *testing.T) {
	c := newTestController(t, DefaultPhysicsConfig())
	displaceFeet(c, func(int) float64 { return 0.5 }, true)

	cfg := c.Config()
	c.schedule(c.State(), &cfg, flat, locomotion{})
	assert.Empty(t, liftedLegs(c.State()))
}

func TestFrontLegsUseScaledThreshold(t *testing.T) {
	c := newTestController(t, DefaultPhysicsConfig())
	cfg := c.Config()
	// Legs 0 and 2 sit between the front threshold (1.35) and the regular one (1.5).
	displaceFeet(c, func(i int) float64 {
		switch i {
		case 0:
			return 1.4
		case 2:
			return 1.45
		}
		return 0.5
	}, true)

	c.schedule(c.State(), &cfg, flat, locomotion{})
	assert.Equal(t, []int{0}, liftedLegs(c.State()))
}

func TestCriticalLegsOverrideCapAndNeighbours(t *testing.T) {
	cfg := DefaultPhysicsConfig()
	cfg.MaxActiveSteps = 1
	c := newTestController(t, cfg)
	displaceFeet(c, func(int) float64 { return 3 }, false)

	c.schedule(c.State(), &cfg, flat, locomotion{})
	s := c.State()
	assert.Len(t, liftedLegs(s), LegCount)
	for i := range s.Legs {
		st, ok := s.Legs[i].Stride()
		require.True(t, ok)
		assert.True(t, st.Critical, "leg %d", i)
	}
}

func TestCriticalScenarioAfterTeleport(t *testing.T) {
	c := newTestController(t, DefaultPhysicsConfig())
	s := c.State()
	s.Position = mgl64.Vec3{12, s.Position.Y(), 0}

	out := c.Update(frameDelta, Input{Target: s.Position})
	assert.Equal(t, LegCount, out.ActiveSteps)
	for i, leg := range out.Legs {
		assert.True(t, leg.Critical, "leg %d", i)
		assert.True(t, leg.Lifted, "leg %d", i)
	}
}

func TestStepTargetLeadsVelocity(t *testing.T) {
	c := newTestController(t, DefaultPhysicsConfig())
	cfg := c.Config()
	s := c.State()
	s.Velocity = mgl64.Vec3{10, 0, 0}
	displaceFeet(c, func(int) float64 { return 3 }, false)

	raised := GroundFunc(func(x, z float64) float64 { return 2 })
	c.schedule(s, &cfg, raised, locomotion{moving: true, distance: 50, desiredSpeed: cfg.Speed})

	for i := range s.Legs {
		st, ok := s.Legs[i].Stride()
		require.True(t, ok)
		home := s.Legs[i].Home
		// Home leads by velocity * 0.1, the stride by the velocity clamped to the max stride.
		assert.InDelta(t, s.BodyToWorld(s.Configs[i].RestOffset).X()+1, home.X(), 1e-9)
		assert.InDelta(t, home.X()+3.5, st.Target.X(), 1e-9)
		assert.InDelta(t, home.Z(), st.Target.Z(), 1e-9)
		assert.Equal(t, 2.0, st.Target.Y())
		assert.Equal(t, 2.0, home.Y())
		assert.GreaterOrEqual(t, st.Height, cfg.StepHeight*0.9)
		assert.LessOrEqual(t, st.Height, cfg.StepHeight*1.1)
		assert.Equal(t, s.Legs[i].Foot, st.Start)
	}
}

func TestHomeDoesNotLeadWhenSlow(t *testing.T) {
	c := newTestController(t, DefaultPhysicsConfig())
	cfg := c.Config()
	s := c.State()
	s.Velocity = mgl64.Vec3{10, 0, 0}

	c.schedule(s, &cfg, flat, locomotion{moving: true, distance: 0.05, desiredSpeed: 0.05})
	for i := range s.Legs {
		assert.InDelta(t, s.BodyToWorld(s.Configs[i].RestOffset).X(), s.Legs[i].Home.X(), 1e-9)
	}
}
