package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/settings"
)

// route walks the creature through a list of waypoints. It is only touched from the frame
// loop goroutine.
type route struct {
	points  []mgl64.Vec3
	index   int
	loop    bool
	pointer mgl64.Vec3
}

func newRoute(points []settings.Point, loop bool, spawn mgl64.Vec3) *route {
	r := &route{loop: loop, pointer: spawn}
	for _, p := range points {
		r.points = append(r.points, mgl64.Vec3{p.X, 0, p.Z})
	}
	if len(r.points) == 0 {
		r.points = []mgl64.Vec3{{spawn.X(), 0, spawn.Z()}}
	}
	return r
}

// Target returns the waypoint currently walked toward.
func (r *route) Target() mgl64.Vec3 {
	return r.points[r.index]
}

// Pointer returns the point the idle gaze wanders around: the last waypoint reached.
func (r *route) Pointer() mgl64.Vec3 {
	return r.pointer
}

// Advance moves on to the next waypoint after an arrival. It returns false once a non-looping
// route is finished.
func (r *route) Advance() bool {
	r.pointer = r.points[r.index]
	switch {
	case r.index+1 < len(r.points):
		r.index++
	case r.loop:
		r.index = 0
	default:
		return false
	}
	return true
}
