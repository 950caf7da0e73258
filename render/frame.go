// Package render turns controller output into compact float32 frames for a presentation layer.
package render

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/skitter/game"
	"github.com/oomph-ac/skitter/ik"
	"github.com/oomph-ac/skitter/spider"
)

const (
	// Precision is the number of decimals positions are rounded to.
	Precision = 4
	// BoundsPadding grows the footprint box around the body and feet.
	BoundsPadding = 0.5
)

// Leg is one leg of a frame, fully solved.
type Leg struct {
	Shoulder mgl32.Vec3 `json:"shoulder"`
	Elbow    mgl32.Vec3 `json:"elbow"`
	Foot     mgl32.Vec3 `json:"foot"`
	Stepping bool       `json:"stepping,omitempty"`
	Progress float32    `json:"progress,omitempty"`
}

// Frame is a float32 snapshot of the creature. Quaternions are stored as [x, y, z, w].
type Frame struct {
	Seq          uint64     `json:"seq"`
	Time         float32    `json:"time"`
	Position     mgl32.Vec3 `json:"position"`
	Velocity     mgl32.Vec3 `json:"velocity"`
	Orientation  [4]float32 `json:"orientation"`
	Moving       bool       `json:"moving"`
	AbdomenScale float32    `json:"abdomen_scale"`

	HeadPosition mgl32.Vec3 `json:"head_position"`
	Head         [4]float32 `json:"head"`
	Gaze         mgl32.Vec3 `json:"gaze"`

	Legs [spider.LegCount]Leg `json:"legs"`

	Min mgl32.Vec3 `json:"min"`
	Max mgl32.Vec3 `json:"max"`
}

// Bounds returns the footprint box of the frame.
func (f Frame) Bounds() cube.BBox {
	return cube.Box(f.Min[0], f.Min[1], f.Min[2], f.Max[0], f.Max[1], f.Max[2])
}

// Build solves every leg of out and packs the result into a Frame.
func Build(seq uint64, out spider.Output) Frame {
	up := out.Orientation.Rotate(game.WorldUp)
	forward := out.Orientation.Rotate(game.WorldForward)

	f := Frame{
		Seq:          seq,
		Time:         float32(out.Time),
		Position:     vec(out.Position),
		Velocity:     vec(out.Velocity),
		Orientation:  quat(out.Orientation),
		Moving:       out.Moving,
		AbdomenScale: float32(out.AbdomenScale),
		HeadPosition: vec(out.HeadPosition),
		Head:         quat(out.HeadOrientation),
		Gaze:         vec(out.Gaze),
	}

	points := make([]mgl32.Vec3, 0, spider.LegCount+1)
	points = append(points, f.Position)
	for i, leg := range out.Legs {
		elbow, _ := ik.Solve(leg.Shoulder, leg.Foot, leg.L1, leg.L2, up, forward)
		f.Legs[i] = Leg{
			Shoulder: vec(leg.Shoulder),
			Elbow:    vec(elbow),
			Foot:     vec(leg.Foot),
			Stepping: leg.Stepping,
			Progress: game.Round32(float32(leg.Progress), Precision),
		}
		points = append(points, f.Legs[i].Foot, f.Legs[i].Elbow)
	}

	min, max := game.MinVec3(points), game.MaxVec3(points)
	bb := cube.Box(min[0], min[1], min[2], max[0], max[1], max[2]).Grow(BoundsPadding)
	f.Min, f.Max = bb.Min(), bb.Max()
	return f
}

func vec(v mgl64.Vec3) mgl32.Vec3 {
	return game.RoundVec32(game.Vec64To32(v), Precision)
}

func quat(q mgl64.Quat) [4]float32 {
	return [4]float32{
		game.Round32(float32(q.V[0]), Precision),
		game.Round32(float32(q.V[1]), Precision),
		game.Round32(float32(q.V[2]), Precision),
		game.Round32(float32(q.W), Precision),
	}
}
