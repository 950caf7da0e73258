package spider

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/game"
)

// locomotion is what the body integrator learned this frame; later phases read it.
type locomotion struct {
	moving       bool
	distance     float64
	desiredSpeed float64
}

// integrate moves the body horizontally toward target with inertia and arrival easing.
func integrate(s *State, cfg *PhysicsConfig, target mgl64.Vec3, delta float64) locomotion {
	flat := mgl64.Vec3{target.X() - s.Position.X(), 0, target.Z() - s.Position.Z()}
	dist := flat.Len()
	loc := locomotion{moving: dist > game.ArrivalRadius, distance: dist}

	if loc.moving {
		loc.desiredSpeed = math.Min(cfg.Speed, dist*game.ArrivalDeceleration)
		want := flat.Mul(loc.desiredSpeed / dist)
		s.Velocity = game.LerpVec3(s.Velocity, want, game.Clamp01(game.Acceleration*delta))
	} else {
		s.Velocity = game.LerpVec3(s.Velocity, mgl64.Vec3{}, game.Clamp01(game.Friction*delta))
	}
	s.Position = s.Position.Add(s.Velocity.Mul(delta))
	return loc
}

// settleHeight eases the body toward the average planted height of the feet plus the body
// height, with a slow breathing bob on top.
func settleHeight(s *State, cfg *PhysicsConfig, delta float64) {
	var sum float64
	for i := range s.Legs {
		sum += s.Legs[i].Target().Y()
	}
	breath := math.Sin(s.Time*game.BreathingRate) * game.BreathingAmp
	want := sum/LegCount + cfg.BodyHeight + breath
	s.Position[1] = game.Lerp(s.Position.Y(), want, game.Clamp01(game.HeightSmoothing*delta))
}

// groundNormal estimates the slope under the body from the diagonals between the outer feet.
// ok is false when the feet are too degenerate to define a plane.
func groundNormal(s *State) (normal mgl64.Vec3, ok bool) {
	a, okA := game.SafeNormalize(s.Legs[4].Foot.Sub(s.Legs[3].Foot))
	b, okB := game.SafeNormalize(s.Legs[0].Foot.Sub(s.Legs[7].Foot))
	if !okA || !okB {
		return mgl64.Vec3{}, false
	}
	if normal, ok = game.SafeNormalize(a.Cross(b)); !ok {
		return mgl64.Vec3{}, false
	}
	if normal.Y() < 0 {
		normal = normal.Mul(-1)
	}
	return normal, true
}

// orient tilts the body onto the ground normal and turns it toward its velocity.
func orient(s *State, cfg *PhysicsConfig, delta float64) mgl64.Vec3 {
	up := s.Orientation.Rotate(game.WorldUp)
	normal, ok := groundNormal(s)
	if !ok {
		normal = up
	}
	align := mgl64.QuatBetweenVectors(up, normal)
	s.Orientation = align.Mul(s.Orientation).Normalize()

	if s.Velocity.LenSqr() <= game.HeadingMinSpeedSqr {
		return normal
	}
	dir := s.Velocity.Normalize()
	forward, ok := game.SafeNormalize(dir.Sub(normal.Mul(dir.Dot(normal))))
	if !ok {
		return normal
	}
	right := normal.Cross(forward).Normalize()
	heading := game.QuatFromBasis(right, normal, forward)
	s.Orientation = game.Slerp(s.Orientation, heading, cfg.TurnSpeed*delta)
	return normal
}
