package spider

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/game"
)

// LegCount is the number of legs every controller drives.
const LegCount = game.LegCount

var (
	// mountZ and mountX are the body-local shoulder mounts per row, front to back.
	mountZ = [game.LegsPerSide]float64{1.8, 0.6, -0.6, -1.8}
	mountX = [game.LegsPerSide]float64{0.8, 1.2, 1.2, 0.8}
)

// IsFrontLeg reports whether the leg at index is one of the shorter front "feelers".
func IsFrontLeg(index int) bool {
	return index%game.LegsPerSide == 0
}

// Neighbours returns the legs that must be grounded before the leg at index may lift
// without being critical: the next leg, the previous leg and the opposite leg.
func Neighbours(index int) [3]int {
	return [3]int{
		(index + 1) % LegCount,
		(index + LegCount - 1) % LegCount,
		(index + game.LegsPerSide) % LegCount,
	}
}

// LegConfig is the static geometry of one leg, in body-local space.
type LegConfig struct {
	ID int
	// OriginOffset is the shoulder mount on the body.
	OriginOffset mgl64.Vec3
	// RestOffset is where the foot wants to rest relative to the body.
	RestOffset mgl64.Vec3
	L1, L2     float64
	MaxReach   float64
}

// newLegConfig lays out the leg at index for the given physics config.
func newLegConfig(index int, cfg PhysicsConfig) LegConfig {
	side := 1.0
	if index >= game.LegsPerSide {
		side = -1
	}
	row := index % game.LegsPerSide
	front := IsFrontLeg(index)

	scale := 1.0
	if front {
		scale = game.FrontLegScale
	}
	l1, l2 := game.LegL1*scale, game.LegL2*scale

	x, z := mountX[row]*side, mountZ[row]
	return LegConfig{
		ID:           index,
		OriginOffset: mgl64.Vec3{x, 0, z},
		RestOffset:   restOffset(index, cfg),
		L1:           l1,
		L2:           l2,
		MaxReach:     l1 + l2,
	}
}

// restOffset computes the body-local rest position of the leg at index.
func restOffset(index int, cfg PhysicsConfig) mgl64.Vec3 {
	side := 1.0
	if index >= game.LegsPerSide {
		side = -1
	}
	row := index % game.LegsPerSide

	restScale := 1.0
	if IsFrontLeg(index) {
		restScale = game.FrontLegRestScale
	}
	rx := mountX[row] * side * game.RestSpreadX * restScale
	rz := mountZ[row] * game.RestSpreadZ * restScale
	if IsFrontLeg(index) {
		rz += cfg.FrontLegReach
		rx *= cfg.FrontLegSpread
	}
	return mgl64.Vec3{rx, -cfg.BodyHeight, rz}
}

// Stride is an in-flight step of a single leg.
type Stride struct {
	Start  mgl64.Vec3
	Target mgl64.Vec3
	// Progress is the normalized time of the step in [0, 1).
	Progress float64
	// Height is the apex height of this step, jittered around the configured step height.
	Height float64
	// Critical is true if the step was forced by the leg being overextended.
	Critical bool
}

// Leg is the runtime state of one leg. A leg is either grounded, or stepping with exactly one
// stride held by value, so copying a Leg copies its step.
type Leg struct {
	// Foot is the current world position of the foot.
	Foot mgl64.Vec3
	// Home is where the foot would ideally be this frame.
	Home mgl64.Vec3

	stride   Stride
	stepping bool
	critical bool
	lifted   bool
}

// Stepping returns true if the leg is in the air.
func (l *Leg) Stepping() bool {
	return l.stepping
}

// Stride returns the leg's current step and true, or false if the leg is grounded.
func (l *Leg) Stride() (Stride, bool) {
	if !l.stepping {
		return Stride{}, false
	}
	return l.stride, true
}

// Target returns where the leg will be planted: the stride target while stepping, otherwise
// the current foot position.
func (l *Leg) Target() mgl64.Vec3 {
	if l.stepping {
		return l.stride.Target
	}
	return l.Foot
}

// Critical returns true if the foot was beyond its safe reach the last time the gait was scored.
func (l *Leg) Critical() bool {
	return l.critical
}

// land plants the foot on the stride target and returns the leg to the grounded phase.
func (l *Leg) land() {
	l.Foot = l.stride.Target
	l.stride = Stride{}
	l.stepping = false
}
