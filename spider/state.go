package spider

import (
	"github.com/go-gl/mathgl/mgl64"
)

// State is the single aggregate the controller mutates every frame. It is owned by one
// Controller and must only be read from the goroutine calling Controller.Update.
type State struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat

	Legs    [LegCount]Leg
	Configs [LegCount]LegConfig

	// Time is the simulated time in seconds since the controller was created.
	Time float64

	GazeTarget      mgl64.Vec3
	NextGazeTime    float64
	HeadOrientation mgl64.Quat

	Moving bool

	candidates [LegCount]candidate
}

// candidate is a leg's gait score for the current frame.
type candidate struct {
	index    int
	dist     float64
	critical bool
}

// newState places the body at spawn with every foot planted under its rest position.
func newState(spawn mgl64.Vec3, cfg PhysicsConfig, ground Ground) *State {
	s := &State{
		Position:        spawn,
		Orientation:     mgl64.QuatIdent(),
		HeadOrientation: mgl64.QuatIdent(),
	}
	for i := range s.Legs {
		s.Configs[i] = newLegConfig(i, cfg)
		rest := s.BodyToWorld(s.Configs[i].RestOffset)
		s.Legs[i].Foot = mgl64.Vec3{rest.X(), ground.Height(rest.X(), rest.Z()), rest.Z()}
		s.Legs[i].Home = s.Legs[i].Foot
	}
	return s
}

// relayout recomputes every rest offset after the leg shape of the config changed.
func (s *State) relayout(cfg PhysicsConfig) {
	for i := range s.Configs {
		s.Configs[i].RestOffset = restOffset(i, cfg)
	}
}

// BodyToWorld transforms a body-local point into world space.
func (s *State) BodyToWorld(local mgl64.Vec3) mgl64.Vec3 {
	return s.Position.Add(s.Orientation.Rotate(local))
}

// ActiveSteps returns the number of legs currently in the air.
func (s *State) ActiveSteps() (n int) {
	for i := range s.Legs {
		if s.Legs[i].Stepping() {
			n++
		}
	}
	return n
}

// startStride lifts the leg at index into the given stride.
func (s *State) startStride(index int, st Stride) {
	s.Legs[index].stride = st
	s.Legs[index].stepping = true
	s.Legs[index].lifted = true
}
