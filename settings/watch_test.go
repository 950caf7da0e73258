package settings

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/skitter/spider"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := spider.DefaultPhysicsConfig()
	b := spider.DefaultPhysicsConfig()
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	b.TurnSpeed += 0.1
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestWatcherForwardsOnlyPhysicsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skitter.toml")
	writeConfig(t, path, "[physics]\nspeed = 5.0\n")

	v, err := NewViper(path)
	require.NoError(t, err)
	current, err := Decode(v)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	var got []spider.PhysicsConfig
	w := NewWatcher(v, current.Physics, log, func(p spider.PhysicsConfig) { got = append(got, p) })

	assert.False(t, w.Reload(), "unchanged physics is not forwarded")

	writeConfig(t, path, "[physics]\nspeed = 5.0\n[scene]\nfps = 30\n")
	require.NoError(t, v.ReadInConfig())
	assert.False(t, w.Reload(), "scene changes are not forwarded")

	writeConfig(t, path, "[physics]\nspeed = 3.0\n")
	require.NoError(t, v.ReadInConfig())
	assert.True(t, w.Reload())
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0].Speed)

	writeConfig(t, path, "[physics]\nspeed = 0.0\nstep_duration = -1.0\n")
	require.NoError(t, v.ReadInConfig())
	assert.False(t, w.Reload(), "invalid configs are ignored")
	assert.Len(t, got, 1)
}
