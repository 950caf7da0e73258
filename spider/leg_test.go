package spider

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLegLayout(t *testing.T) {
	cfg := DefaultPhysicsConfig()

	front := newLegConfig(0, cfg)
	assert.Equal(t, mgl64.Vec3{0.8, 0, 1.8}, front.OriginOffset)
	assert.InDelta(t, 1.5*0.92, front.L1, 1e-9)
	assert.InDelta(t, 2.6*0.92, front.L2, 1e-9)
	assert.InDelta(t, front.L1+front.L2, front.MaxReach, 1e-9)
	assert.InDelta(t, 0.8*2.8*0.8*cfg.FrontLegSpread, front.RestOffset.X(), 1e-9)
	assert.InDelta(t, 1.8*1.5*0.8+cfg.FrontLegReach, front.RestOffset.Z(), 1e-9)
	assert.InDelta(t, -cfg.BodyHeight, front.RestOffset.Y(), 1e-9)

	middle := newLegConfig(1, cfg)
	assert.Equal(t, 1.5, middle.L1)
	assert.Equal(t, 2.6, middle.L2)
	assert.InDelta(t, 3.36, middle.RestOffset.X(), 1e-9)
	assert.InDelta(t, 0.9, middle.RestOffset.Z(), 1e-9)

	mirrored := newLegConfig(5, cfg)
	assert.InDelta(t, -middle.OriginOffset.X(), mirrored.OriginOffset.X(), 1e-9)
	assert.InDelta(t, -middle.RestOffset.X(), mirrored.RestOffset.X(), 1e-9)
	assert.Equal(t, middle.RestOffset.Z(), mirrored.RestOffset.Z())
}

func TestFrontLegs(t *testing.T) {
	for i := 0; i < LegCount; i++ {
		assert.Equal(t, i == 0 || i == 4, IsFrontLeg(i), "leg %d", i)
	}
}

func TestNeighbours(t *testing.T) {
	assert.Equal(t, [3]int{1, 7, 4}, Neighbours(0))
	assert.Equal(t, [3]int{6, 4, 1}, Neighbours(5))
	assert.Equal(t, [3]int{0, 6, 3}, Neighbours(7))
}

func TestLegTargetFollowsPhase(t *testing.T) {
	s := newState(mgl64.Vec3{}, DefaultPhysicsConfig(), flat)
	leg := &s.Legs[2]
	assert.False(t, leg.Stepping())
	assert.Equal(t, leg.Foot, leg.Target())
	_, ok := leg.Stride()
	assert.False(t, ok)

	target := mgl64.Vec3{5, 1, 5}
	s.startStride(2, Stride{Start: leg.Foot, Target: target, Height: 1})
	assert.True(t, leg.Stepping())
	assert.Equal(t, target, leg.Target())
	st, ok := leg.Stride()
	assert.True(t, ok)
	assert.Equal(t, 0.0, st.Progress)

	leg.land()
	assert.False(t, leg.Stepping())
	assert.Equal(t, target, leg.Foot)
}

func TestSpawnPlantsFeetOnGround(t *testing.T) {
	ground := GroundFunc(func(x, z float64) float64 { return x + 2*z })
	s := newState(DefaultSpawn, DefaultPhysicsConfig(), ground)
	for i, leg := range s.Legs {
		rest := s.Configs[i].RestOffset
		assert.Equal(t, rest.X(), leg.Foot.X())
		assert.Equal(t, rest.Z(), leg.Foot.Z())
		assert.Equal(t, ground.Height(rest.X(), rest.Z()), leg.Foot.Y())
	}
	assert.Equal(t, DefaultSpawn, s.Position)
}

func TestSpawnOffsetMovesFeet(t *testing.T) {
	spawn := mgl64.Vec3{30, 10, -12}
	s := newState(spawn, DefaultPhysicsConfig(), flat)
	for i, leg := range s.Legs {
		rest := s.Configs[i].RestOffset
		assert.InDelta(t, spawn.X()+rest.X(), leg.Foot.X(), 1e-9)
		assert.InDelta(t, spawn.Z()+rest.Z(), leg.Foot.Z(), 1e-9)
		assert.Zero(t, leg.Foot.Y())
	}
}
