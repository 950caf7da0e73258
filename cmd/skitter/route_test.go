package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/settings"
	"github.com/stretchr/testify/assert"
)

func TestRouteLoops(t *testing.T) {
	spawn := mgl64.Vec3{0, 10, 0}
	r := newRoute([]settings.Point{{X: 5, Y: 3, Z: 1}, {X: -5, Z: 2}}, true, spawn)

	assert.Equal(t, mgl64.Vec3{5, 0, 1}, r.Target())
	assert.Equal(t, spawn, r.Pointer())

	assert.True(t, r.Advance())
	assert.Equal(t, mgl64.Vec3{-5, 0, 2}, r.Target())
	assert.Equal(t, mgl64.Vec3{5, 0, 1}, r.Pointer())

	assert.True(t, r.Advance())
	assert.Equal(t, mgl64.Vec3{5, 0, 1}, r.Target())
	assert.Equal(t, mgl64.Vec3{-5, 0, 2}, r.Pointer())
}

func TestRouteStopsAtEnd(t *testing.T) {
	r := newRoute([]settings.Point{{X: 1}, {X: 2}}, false, mgl64.Vec3{})
	assert.True(t, r.Advance())
	assert.False(t, r.Advance())
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, r.Target())
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, r.Pointer())
}

func TestEmptyRouteHoldsSpawn(t *testing.T) {
	r := newRoute(nil, true, mgl64.Vec3{3, 10, 4})
	assert.Equal(t, mgl64.Vec3{3, 0, 4}, r.Target())
	assert.True(t, r.Advance())
	assert.Equal(t, mgl64.Vec3{3, 0, 4}, r.Target())
}
