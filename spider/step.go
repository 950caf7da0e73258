package spider

import (
	"math"

	"github.com/oomph-ac/skitter/game"
)

// animate advances every stride. Landed legs are planted on their target; legs in flight
// follow an eased path between start and target raised by a sine arc.
func (c *Controller) animate(s *State, cfg *PhysicsConfig, delta float64) {
	for i := range s.Legs {
		leg := &s.Legs[i]
		if !leg.Stepping() {
			continue
		}

		duration := cfg.StepDuration
		if IsFrontLeg(i) {
			duration *= cfg.FrontLegStepDurationMult
		}
		st := &leg.stride
		st.Progress += delta / duration

		if st.Progress >= 1 {
			c.dbg.Notify(DebugModeStep, true, "land leg=%d at %v", i, st.Target)
			leg.land()
			continue
		}
		t := st.Progress
		foot := game.LerpVec3(st.Start, st.Target, game.EaseInOutCubic(t))
		foot[1] += math.Sin(t*math.Pi) * st.Height
		leg.Foot = foot
	}
}
