package spider

import (
	"cmp"
	"slices"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/game"
	"github.com/oomph-ac/skitter/utils"
)

// compareCandidates orders critical legs first, then the legs furthest from home, then by index.
func compareCandidates(a, b candidate) int {
	if a.critical != b.critical {
		if a.critical {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.dist, a.dist); c != 0 {
		return c
	}
	return cmp.Compare(a.index, b.index)
}

// score refreshes every leg's home position and fills the candidate arena.
func (c *Controller) score(s *State, ground Ground, loc locomotion) {
	lead := mgl64.Vec3{}
	if loc.desiredSpeed > game.HomeLeadMinSpeed {
		lead = s.Velocity.Mul(game.HomeLeadTime)
	}
	for i := range s.Legs {
		leg, conf := &s.Legs[i], &s.Configs[i]

		home := s.BodyToWorld(conf.RestOffset).Add(lead)
		home[1] = ground.Height(home.X(), home.Z())
		leg.Home = home

		shoulder := s.BodyToWorld(conf.OriginOffset)
		leg.critical = leg.Foot.Sub(shoulder).Len() > conf.MaxReach*game.CriticalReachFactor
		leg.lifted = false

		s.candidates[i] = candidate{
			index:    i,
			dist:     leg.Foot.Sub(home).Len(),
			critical: leg.critical,
		}
	}
}

// neighboursGrounded returns true if none of the legs adjacent to index are in the air.
func neighboursGrounded(s *State, index int) bool {
	for _, n := range Neighbours(index) {
		if s.Legs[n].Stepping() {
			return false
		}
	}
	return true
}

// schedule decides which grounded legs lift this frame. A distressed leg lifts when its
// neighbours are planted and the active step budget allows it; a critical leg always lifts.
func (c *Controller) schedule(s *State, cfg *PhysicsConfig, ground Ground, loc locomotion) {
	c.score(s, ground, loc)
	slices.SortStableFunc(s.candidates[:], compareCandidates)

	active := s.ActiveSteps()
	for _, cand := range s.candidates {
		leg := &s.Legs[cand.index]
		if leg.Stepping() {
			continue
		}

		threshold := cfg.GaitThreshold
		if IsFrontLeg(cand.index) {
			threshold *= cfg.FrontLegGaitThresholdMult
		}
		if !cand.critical && cand.dist <= threshold {
			continue
		}
		if !cand.critical && (active >= cfg.MaxActiveSteps || !neighboursGrounded(s, cand.index)) {
			continue
		}

		stride := game.ClampLength(s.Velocity.Mul(cfg.StepDuration*cfg.GaitRecovery), game.MaxStride)
		target := leg.Home.Add(stride)
		target[1] = ground.Height(target.X(), target.Z())

		jitter := 1 - game.StepHeightJitter + c.rng.Float64()*2*game.StepHeightJitter
		s.startStride(cand.index, Stride{
			Start:    leg.Foot,
			Target:   target,
			Height:   cfg.StepHeight * jitter,
			Critical: cand.critical,
		})
		active++

		if c.dbg.Enabled(DebugModeGait) {
			data := orderedmap.NewOrderedMap[string, any]()
			data.Set("leg", cand.index)
			data.Set("dist", game.Round64(cand.dist, 3))
			data.Set("critical", cand.critical)
			data.Set("active", active)
			c.dbg.Notify(DebugModeGait, true, "lift %s", utils.OrderedMapToString(*data))
		}
	}
}
