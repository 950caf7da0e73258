package settings

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/oomph-ac/skitter/spider"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/zeebo/xxh3"
)

// Fingerprint hashes a physics config. Two configs with the same fingerprint are treated as
// the same config by Watch.
func Fingerprint(p spider.PhysicsConfig) uint64 {
	data, err := toml.Marshal(p)
	if err != nil {
		return 0
	}
	return xxh3.Hash(data)
}

// Watcher reports physics changes of a watched config file, skipping writes that do not change
// the physics section.
type Watcher struct {
	v   *viper.Viper
	log *logrus.Logger
	fn  func(spider.PhysicsConfig)

	mu   sync.Mutex
	last uint64
}

// NewWatcher returns a watcher calling fn with every new physics config decoded from v.
// current is the config already in use.
func NewWatcher(v *viper.Viper, current spider.PhysicsConfig, log *logrus.Logger, fn func(spider.PhysicsConfig)) *Watcher {
	return &Watcher{v: v, log: log, fn: fn, last: Fingerprint(current)}
}

// Start begins watching the config file.
func (w *Watcher) Start() {
	w.v.OnConfigChange(func(e fsnotify.Event) {
		w.log.Debugf("config file changed: %s (%s)", e.Name, e.Op)
		w.Reload()
	})
	w.v.WatchConfig()
}

// Reload decodes the current configuration and forwards the physics section if it changed.
// It returns true if fn was called.
func (w *Watcher) Reload() bool {
	s, err := Decode(w.v)
	if err != nil {
		w.log.Warnf("ignoring config change: %v", err)
		return false
	}

	fp := Fingerprint(s.Physics)
	w.mu.Lock()
	if fp == w.last {
		w.mu.Unlock()
		return false
	}
	w.last = fp
	w.mu.Unlock()

	w.log.Infof("physics config reloaded (fingerprint=%x)", fp)
	w.fn(s.Physics)
	return true
}
