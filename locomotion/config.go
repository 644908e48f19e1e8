package locomotion

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

var (
	ErrInvalidConfig = errors.New("locomotion: invalid config")
	ErrMissingPort   = errors.New("locomotion: missing port")
)

const (
	DefaultGroundRadius  = 0.1
	DefaultCeilingRadius = 0.2
)

// Config holds the tuning of one character. It is copied into the controller
// on construction and never changes afterwards.
type Config struct {
	// JumpHeight is the apex height of a jump in world units.
	JumpHeight float64
	// HighTime is the time to reach the apex, LowTime the time to fall back.
	HighTime float64
	LowTime  float64
	// OverGroundJumpingFrames is how long a jump press stays buffered.
	OverGroundJumpingFrames int
	// AfterGroundJumpingFrames is the coyote window after walking off a ledge.
	AfterGroundJumpingFrames int

	RunningSpeed   float64
	RunningAccTime float64
	RunningDecTime float64
	CrouchingSpeed float64

	// GroundMask selects the collision categories that count as ground and ceiling.
	GroundMask uint
	// GroundCheck and CeilingCheck are probe offsets from the body position.
	GroundCheck   cp.Vector
	CeilingCheck  cp.Vector
	GroundRadius  float64
	CeilingRadius float64

	// FixedDelta is the tick length in seconds.
	FixedDelta float64
}

// DefaultConfig returns the tuning shipped with the player prefab.
func DefaultConfig() Config {
	return Config{
		JumpHeight:               2,
		HighTime:                 0.4,
		LowTime:                  0.3,
		OverGroundJumpingFrames:  6,
		AfterGroundJumpingFrames: 6,
		RunningSpeed:             3,
		RunningAccTime:           0.2,
		RunningDecTime:           0.1,
		CrouchingSpeed:           1.5,
		GroundMask:               cp.ALL_CATEGORIES,
		GroundCheck:              cp.Vector{X: 0, Y: -0.5},
		CeilingCheck:             cp.Vector{X: 0, Y: 0.5},
		GroundRadius:             DefaultGroundRadius,
		CeilingRadius:            DefaultCeilingRadius,
		FixedDelta:               common.FixedDelta,
	}
}

// withDefaults fills zero probe radii, mask and tick length.
func (c Config) withDefaults() Config {
	if c.GroundRadius == 0 {
		c.GroundRadius = DefaultGroundRadius
	}
	if c.CeilingRadius == 0 {
		c.CeilingRadius = DefaultCeilingRadius
	}
	if c.GroundMask == 0 {
		c.GroundMask = cp.ALL_CATEGORIES
	}
	if c.FixedDelta == 0 {
		c.FixedDelta = common.FixedDelta
	}
	return c
}

// Validate reports every field that would make a tick divide by zero or
// produce nonsense. The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidConfig, name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("high_time", c.HighTime)
	positive("low_time", c.LowTime)
	positive("running_acc_time", c.RunningAccTime)
	positive("running_dec_time", c.RunningDecTime)
	positive("fixed_delta", c.FixedDelta)

	nonNegative("jump_height", c.JumpHeight)
	nonNegative("running_speed", c.RunningSpeed)
	nonNegative("crouching_speed", c.CrouchingSpeed)
	nonNegative("ground_radius", c.GroundRadius)
	nonNegative("ceiling_radius", c.CeilingRadius)
	nonNegative("over_ground_jumping_frames", float64(c.OverGroundJumpingFrames))
	nonNegative("after_ground_jumping_frames", float64(c.AfterGroundJumpingFrames))

	return errors.Join(errs...)
}
