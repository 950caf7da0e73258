package spider

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/game"
)

// HeadMount is the body-local position of the head pivot.
var HeadMount = mgl64.Vec3{0, 0.1, 1.2}

// gaze picks what the head looks at and turns it there. It returns the world look point.
func (c *Controller) gaze(s *State, in Input, ground Ground, loc locomotion, delta float64) mgl64.Vec3 {
	if loc.moving {
		if loc.distance < game.GazeProximity {
			forward := s.Orientation.Rotate(game.WorldForward)
			ahead := s.Position.Add(forward.Mul(game.GazeLookAhead))
			blend := game.Clamp01(1 - loc.distance/game.GazeProximity)
			s.GazeTarget = game.LerpVec3(in.Target, ahead, game.EaseInOutCubic(blend))
		} else {
			s.GazeTarget = in.Target
		}
	} else if s.Time > s.NextGazeTime {
		noise := mgl64.Vec3{
			(c.rng.Float64()*2 - 1) * game.GazeIdleJitter,
			0,
			(c.rng.Float64()*2 - 1) * game.GazeIdleJitter,
		}
		s.GazeTarget = in.Pointer.Add(noise)
		s.NextGazeTime = s.Time + game.GazeIdleMinInterval + c.rng.Float64()*game.GazeIdleIntervalRange
		c.dbg.Notify(DebugModeGaze, true, "idle glance at %v, next at %.2fs", s.GazeTarget, s.NextGazeTime)
	}

	look := s.GazeTarget
	look[1] = ground.Height(look.X(), look.Z()) + game.GazeHeightOffset

	world := game.LookRotation(look.Sub(s.BodyToWorld(HeadMount)), game.WorldUp)
	local := s.Orientation.Inverse().Mul(world).Normalize()

	rate := game.GazeIdleRate
	if loc.moving {
		rate = game.GazeTrackRate
	}
	s.HeadOrientation = game.Slerp(s.HeadOrientation, local, rate*delta)
	return look
}
