// Package ik solves two-segment limbs: given a shoulder, a foot target and the segment lengths,
// it places the elbow so that both segments keep their length.
package ik

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/game"
)

// ReachEpsilon keeps the solved reach strictly inside the open interval (|l1-l2|, l1+l2).
const ReachEpsilon = 0.01

// Solve returns the elbow position for a limb mounted at origin reaching for target with an
// upper segment of length l1 and a lower segment of length l2. The limb bends in the plane
// spanned by the reach direction and hintUp; hintForward is used instead when hintUp is
// parallel to the reach. The reach is clamped to [|l1-l2|+0.01, l1+l2-0.01], so unreachable
// targets produce an elbow for the nearest reachable distance along the same direction.
//
// The boolean is false when no bend plane could be built. The returned elbow is then a
// straight limb along the reach direction, which is still finite.
func Solve(origin, target mgl64.Vec3, l1, l2 float64, hintUp, hintForward mgl64.Vec3) (mgl64.Vec3, bool) {
	forward, ok := game.SafeNormalize(target.Sub(origin))
	if !ok {
		if forward, ok = game.SafeNormalize(hintForward); !ok {
			forward = game.WorldForward
		}
		return origin.Add(forward.Mul(l1)), false
	}
	dist := target.Sub(origin).Len()
	dist = game.ClampFloat(dist, math.Abs(l1-l2)+ReachEpsilon, l1+l2-ReachEpsilon)

	cosAngle := game.ClampFloat((l1*l1+dist*dist-l2*l2)/(2*l1*dist), -1, 1)
	angle := math.Acos(cosAngle)

	right, ok := game.SafeNormalize(forward.Cross(hintUp))
	if !ok {
		if right, ok = game.SafeNormalize(forward.Cross(hintForward)); !ok {
			return origin.Add(forward.Mul(l1)), false
		}
	}
	up := right.Cross(forward).Normalize()

	joint := forward.Mul(math.Cos(angle)).Add(up.Mul(math.Sin(angle)))
	return origin.Add(joint.Mul(l1)), true
}
