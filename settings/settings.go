// Package settings loads the skitter configuration from defaults, a TOML file and SKITTER_*
// environment variables.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oomph-ac/skitter/spider"
	"github.com/oomph-ac/skitter/terrain"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SKITTER_PHYSICS_SPEED.
const EnvPrefix = "SKITTER"

// Settings contains everything that can be configured for a run.
type Settings struct {
	Physics spider.PhysicsConfig `mapstructure:"physics" toml:"physics"`
	Scene   Scene                `mapstructure:"scene" toml:"scene"`
	Logging Logging              `mapstructure:"logging" toml:"logging"`
	Sentry  Sentry               `mapstructure:"sentry" toml:"sentry"`
	Stream  Stream               `mapstructure:"stream" toml:"stream"`
}

// Point is a position in the world. Waypoints and the pointer ignore Y.
type Point struct {
	X float64 `mapstructure:"x" toml:"x"`
	Y float64 `mapstructure:"y" toml:"y"`
	Z float64 `mapstructure:"z" toml:"z"`
}

// Scene selects the terrain and drives the creature around.
type Scene struct {
	// Preset is the environment preset; its biome is used unless Biome is set.
	Preset string `mapstructure:"preset" toml:"preset"`
	Biome  string `mapstructure:"biome" toml:"biome"`
	// Seed seeds the controller's randomness. 0 picks a seed at start-up.
	Seed uint64 `mapstructure:"seed" toml:"seed"`
	FPS  int    `mapstructure:"fps" toml:"fps"`

	Spawn     Point   `mapstructure:"spawn" toml:"spawn"`
	Waypoints []Point `mapstructure:"waypoints" toml:"waypoints"`
	// Loop restarts the route from the first waypoint after the last one is reached.
	Loop bool `mapstructure:"loop" toml:"loop"`
}

// Logging configures the logger.
type Logging struct {
	Level string `mapstructure:"level" toml:"level"`
	// File is an optional log file that is rotated and written alongside stdout.
	File       string `mapstructure:"file" toml:"file"`
	MaxSize    int    `mapstructure:"max_size" toml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" toml:"max_age"`
	Compress   bool   `mapstructure:"compress" toml:"compress"`
	// Debug lists the controller debug modes to enable.
	Debug []string `mapstructure:"debug" toml:"debug"`
}

// Sentry configures panic reporting. An empty DSN disables it.
type Sentry struct {
	DSN         string `mapstructure:"dsn" toml:"dsn"`
	Environment string `mapstructure:"environment" toml:"environment"`
}

// Stream configures the render frame stream.
type Stream struct {
	// Output is a file path, "-" for stdout, or empty to disable the stream.
	Output string `mapstructure:"output" toml:"output"`
	// Every emits one frame out of every Every simulated frames.
	Every int `mapstructure:"every" toml:"every"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Physics: spider.DefaultPhysicsConfig(),
		Scene: Scene{
			Preset: terrain.DefaultPresetID,
			Seed:   0,
			FPS:    60,
			Spawn:  Point{X: spider.DefaultSpawn.X(), Y: spider.DefaultSpawn.Y(), Z: spider.DefaultSpawn.Z()},
			Waypoints: []Point{
				{X: 20, Z: 0},
				{X: 20, Z: 20},
				{X: -20, Z: 20},
				{X: -20, Z: -20},
			},
			Loop: true,
		},
		Logging: Logging{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		},
		Sentry: Sentry{Environment: "development"},
		Stream: Stream{Every: 1},
	}
}

// SetDefaults registers every default with v, so environment overrides apply to every key.
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()

	// -- Physics --
	v.SetDefault("physics.speed", d.Physics.Speed)
	v.SetDefault("physics.turn_speed", d.Physics.TurnSpeed)
	v.SetDefault("physics.body_height", d.Physics.BodyHeight)
	v.SetDefault("physics.step_height", d.Physics.StepHeight)
	v.SetDefault("physics.step_duration", d.Physics.StepDuration)
	v.SetDefault("physics.gait_threshold", d.Physics.GaitThreshold)
	v.SetDefault("physics.gait_recovery", d.Physics.GaitRecovery)
	v.SetDefault("physics.max_active_steps", d.Physics.MaxActiveSteps)
	v.SetDefault("physics.front_leg_reach", d.Physics.FrontLegReach)
	v.SetDefault("physics.front_leg_spread", d.Physics.FrontLegSpread)
	v.SetDefault("physics.front_leg_step_duration_mult", d.Physics.FrontLegStepDurationMult)
	v.SetDefault("physics.front_leg_gait_threshold_mult", d.Physics.FrontLegGaitThresholdMult)
	v.SetDefault("physics.abdomen_scale", d.Physics.AbdomenScale)

	// -- Scene --
	v.SetDefault("scene.preset", d.Scene.Preset)
	v.SetDefault("scene.biome", d.Scene.Biome)
	v.SetDefault("scene.seed", d.Scene.Seed)
	v.SetDefault("scene.fps", d.Scene.FPS)
	v.SetDefault("scene.spawn.x", d.Scene.Spawn.X)
	v.SetDefault("scene.spawn.y", d.Scene.Spawn.Y)
	v.SetDefault("scene.spawn.z", d.Scene.Spawn.Z)
	v.SetDefault("scene.waypoints", d.Scene.Waypoints)
	v.SetDefault("scene.loop", d.Scene.Loop)

	// -- Logging --
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.max_size", d.Logging.MaxSize)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age", d.Logging.MaxAge)
	v.SetDefault("logging.compress", d.Logging.Compress)
	v.SetDefault("logging.debug", []string{})

	// -- Sentry --
	v.SetDefault("sentry.dsn", d.Sentry.DSN)
	v.SetDefault("sentry.environment", d.Sentry.Environment)

	// -- Stream --
	v.SetDefault("stream.output", d.Stream.Output)
	v.SetDefault("stream.every", d.Stream.Every)
}

// NewViper returns a viper instance with the defaults registered, environment overrides
// enabled and, if path is non-empty, the TOML file at path read in. A missing file is not an
// error; the defaults and the environment are used instead.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}
	return v, nil
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}

// Load loads the settings from the file at path, the environment and the defaults.
func Load(path string) (Settings, error) {
	v, err := NewViper(path)
	if err != nil {
		return Settings{}, err
	}
	return Decode(v)
}

// SaveDefault will create and save the default settings file. If the file already exists, it
// will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("settings file %s already exists", path)
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Validate checks every section.
func (s Settings) Validate() error {
	if err := s.Physics.Validate(); err != nil {
		return err
	}
	if s.Scene.FPS <= 0 || s.Scene.FPS > 1000 {
		return fmt.Errorf("scene.fps must be within [1, 1000] (got %d)", s.Scene.FPS)
	}
	if _, err := s.Scene.Ground(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(s.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := s.Logging.DebugModes(); err != nil {
		return err
	}
	if s.Stream.Every < 1 {
		return fmt.Errorf("stream.every must be at least 1 (got %d)", s.Stream.Every)
	}
	return nil
}

// Ground returns the biome the scene walks on: Biome if set, otherwise the preset's biome.
func (s Scene) Ground() (terrain.Biome, error) {
	if s.Biome != "" {
		return terrain.ParseBiome(s.Biome)
	}
	p, err := terrain.PresetByID(s.Preset)
	if err != nil {
		return terrain.Sand, err
	}
	return p.Biome, nil
}

// DebugModes parses the configured debug modes.
func (l Logging) DebugModes() ([]spider.DebugMode, error) {
	modes := make([]spider.DebugMode, 0, len(l.Debug))
	for _, name := range l.Debug {
		m, err := spider.ParseDebugMode(name)
		if err != nil {
			return nil, fmt.Errorf("logging.debug: %w", err)
		}
		modes = append(modes, m)
	}
	return modes, nil
}
