package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	json "github.com/json-iterator/go"
	"github.com/oomph-ac/skitter/spider"
	"github.com/oomph-ac/skitter/terrain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walk(t *testing.T, frames int) spider.Output {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	opts := spider.DefaultOptions()
	opts.Log = log
	opts.Ground = terrain.Ice
	c := spider.NewController(spider.DefaultPhysicsConfig(), opts)

	var out spider.Output
	for i := 0; i < frames; i++ {
		out = c.Update(1.0/60, spider.Input{Target: mgl64.Vec3{25, 0, 10}, Ground: terrain.Ice})
	}
	return out
}

func TestBuildSolvesLegs(t *testing.T) {
	out := walk(t, 240)
	f := Build(7, out)

	assert.Equal(t, uint64(7), f.Seq)
	assert.Equal(t, float32(out.AbdomenScale), f.AbdomenScale)
	for i, leg := range f.Legs {
		assert.InDelta(t, out.Legs[i].L1, leg.Elbow.Sub(leg.Shoulder).Len(), 1e-3, "leg %d", i)
		assert.Equal(t, out.Legs[i].Stepping, leg.Stepping)
	}
}

func TestBuildBoundsContainBodyAndFeet(t *testing.T) {
	f := Build(1, walk(t, 120))
	bb := f.Bounds()

	inside := func(p [3]float32) bool {
		for k := 0; k < 3; k++ {
			if p[k] < bb.Min()[k] || p[k] > bb.Max()[k] {
				return false
			}
		}
		return true
	}
	assert.True(t, inside(f.Position))
	for i, leg := range f.Legs {
		assert.True(t, inside(leg.Foot), "foot %d", i)
		assert.True(t, inside(leg.Elbow), "elbow %d", i)
	}
}

func TestQuaternionLayout(t *testing.T) {
	out := spider.Output{Orientation: mgl64.QuatIdent(), HeadOrientation: mgl64.QuatRotate(1, mgl64.Vec3{0, 1, 0})}
	f := Build(0, out)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, f.Orientation)
	assert.InDelta(t, 0.4794, f.Head[1], 1e-4)
	assert.InDelta(t, 0.8776, f.Head[3], 1e-4)
}

func TestEncoderWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	out := walk(t, 10)
	require.NoError(t, enc.Encode(Build(1, out)))
	require.NoError(t, enc.Encode(Build(2, out)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var decoded Frame
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &decoded))
	assert.Equal(t, uint64(2), decoded.Seq)
	assert.Len(t, decoded.Legs, spider.LegCount)
}
