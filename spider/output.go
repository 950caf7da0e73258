package spider

import "github.com/go-gl/mathgl/mgl64"

// LegOutput is the externally visible state of one leg after a frame.
type LegOutput struct {
	Foot     mgl64.Vec3
	Home     mgl64.Vec3
	Shoulder mgl64.Vec3
	L1, L2   float64

	Stepping bool
	// Lifted is true only on the frame the leg started its current step.
	Lifted   bool
	Critical bool
	// Progress is the normalized step time, or 0 while grounded.
	Progress float64
}

// Output is everything a presentation layer needs to draw the creature after a frame.
type Output struct {
	Time        float64
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat
	// Normal is the ground normal the body was aligned to this frame.
	Normal mgl64.Vec3
	Moving bool

	Legs        [LegCount]LegOutput
	ActiveSteps int

	// HeadPosition is the world position of the head pivot; HeadOrientation is relative to the body.
	HeadPosition    mgl64.Vec3
	HeadOrientation mgl64.Quat
	// Gaze is the world point the head is turning toward.
	Gaze mgl64.Vec3

	AbdomenScale float64
}

// output snapshots the state into an Output value.
func output(s *State, cfg *PhysicsConfig, normal, gaze mgl64.Vec3) Output {
	out := Output{
		Time:            s.Time,
		Position:        s.Position,
		Velocity:        s.Velocity,
		Orientation:     s.Orientation,
		Normal:          normal,
		Moving:          s.Moving,
		HeadPosition:    s.BodyToWorld(HeadMount),
		HeadOrientation: s.HeadOrientation,
		Gaze:            gaze,
		AbdomenScale:    cfg.AbdomenScale,
	}
	for i := range s.Legs {
		leg, conf := &s.Legs[i], &s.Configs[i]
		lo := LegOutput{
			Foot:     leg.Foot,
			Home:     leg.Home,
			Shoulder: s.BodyToWorld(conf.OriginOffset),
			L1:       conf.L1,
			L2:       conf.L2,
			Stepping: leg.Stepping(),
			Lifted:   leg.lifted,
			Critical: leg.critical,
		}
		if st, ok := leg.Stride(); ok {
			lo.Progress = st.Progress
			out.ActiveSteps++
		}
		out.Legs[i] = lo
	}
	return out
}
