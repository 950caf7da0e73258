package spider

import (
	"math"

	"github.com/oomph-ac/skitter/oerror"
)

// PhysicsConfig holds every tunable of the creature's locomotion. It is replaced as a whole
// through Controller.SetConfig; the controller never mutates a config it has been handed.
type PhysicsConfig struct {
	// Speed is the top horizontal speed of the body in units per second.
	Speed float64 `mapstructure:"speed" toml:"speed" json:"speed"`
	// TurnSpeed is the per-second slerp rate used to turn the body toward its velocity.
	TurnSpeed float64 `mapstructure:"turn_speed" toml:"turn_speed" json:"turn_speed"`
	// BodyHeight is how far the body floats above the average foot height.
	BodyHeight float64 `mapstructure:"body_height" toml:"body_height" json:"body_height"`
	// StepHeight is the nominal apex height of a step.
	StepHeight float64 `mapstructure:"step_height" toml:"step_height" json:"step_height"`
	// StepDuration is the time a regular leg spends in the air for one step.
	StepDuration float64 `mapstructure:"step_duration" toml:"step_duration" json:"step_duration"`
	// GaitThreshold is the distance from home past which a leg wants to step.
	GaitThreshold float64 `mapstructure:"gait_threshold" toml:"gait_threshold" json:"gait_threshold"`
	// GaitRecovery scales how far ahead of home a step lands, relative to the body velocity.
	GaitRecovery float64 `mapstructure:"gait_recovery" toml:"gait_recovery" json:"gait_recovery"`
	// MaxActiveSteps caps how many legs may be in the air for non-critical steps.
	MaxActiveSteps int `mapstructure:"max_active_steps" toml:"max_active_steps" json:"max_active_steps"`

	FrontLegReach             float64 `mapstructure:"front_leg_reach" toml:"front_leg_reach" json:"front_leg_reach"`
	FrontLegSpread            float64 `mapstructure:"front_leg_spread" toml:"front_leg_spread" json:"front_leg_spread"`
	FrontLegStepDurationMult  float64 `mapstructure:"front_leg_step_duration_mult" toml:"front_leg_step_duration_mult" json:"front_leg_step_duration_mult"`
	FrontLegGaitThresholdMult float64 `mapstructure:"front_leg_gait_threshold_mult" toml:"front_leg_gait_threshold_mult" json:"front_leg_gait_threshold_mult"`

	// AbdomenScale is a presentation-only size factor that is passed through to the output.
	AbdomenScale float64 `mapstructure:"abdomen_scale" toml:"abdomen_scale" json:"abdomen_scale"`
}

// DefaultPhysicsConfig returns the tuning the creature ships with.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Speed:                     4.5,
		TurnSpeed:                 2.9,
		BodyHeight:                1.5,
		StepHeight:                1.0,
		StepDuration:              0.29,
		GaitThreshold:             1.5,
		GaitRecovery:              1.4,
		MaxActiveSteps:            3,
		FrontLegReach:             0.6,
		FrontLegSpread:            0.8,
		FrontLegStepDurationMult:  0.9,
		FrontLegGaitThresholdMult: 0.9,
		AbdomenScale:              1.2,
	}
}

// Validate reports the first field that would make the simulation meaningless.
func (c PhysicsConfig) Validate() error {
	fields := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"speed", c.Speed, false},
		{"turn_speed", c.TurnSpeed, false},
		{"body_height", c.BodyHeight, true},
		{"step_height", c.StepHeight, false},
		{"step_duration", c.StepDuration, true},
		{"gait_threshold", c.GaitThreshold, false},
		{"gait_recovery", c.GaitRecovery, false},
		{"front_leg_spread", c.FrontLegSpread, false},
		{"front_leg_step_duration_mult", c.FrontLegStepDurationMult, true},
		{"front_leg_gait_threshold_mult", c.FrontLegGaitThresholdMult, true},
		{"abdomen_scale", c.AbdomenScale, true},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return oerror.New("physics: %s must be finite (got %v)", f.name, f.value)
		}
		if f.positive && f.value <= 0 {
			return oerror.New("physics: %s must be positive (got %v)", f.name, f.value)
		}
		if f.value < 0 {
			return oerror.New("physics: %s must not be negative (got %v)", f.name, f.value)
		}
	}
	if math.IsNaN(c.FrontLegReach) || math.IsInf(c.FrontLegReach, 0) {
		return oerror.New("physics: front_leg_reach must be finite (got %v)", c.FrontLegReach)
	}
	if c.MaxActiveSteps < 1 || c.MaxActiveSteps > LegCount {
		return oerror.New("physics: max_active_steps must be within [1, %d] (got %d)", LegCount, c.MaxActiveSteps)
	}
	return nil
}

// reshapesLegs reports whether two configs lay out the legs' rest offsets differently.
func (c PhysicsConfig) reshapesLegs(o PhysicsConfig) bool {
	return c.FrontLegReach != o.FrontLegReach || c.FrontLegSpread != o.FrontLegSpread || c.BodyHeight != o.BodyHeight
}
