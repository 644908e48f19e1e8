package locomotion

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
)

// Controller turns per-tick input into body velocity and position changes
// for a single character.
type Controller struct {
	cfg   Config
	state State

	body     Body
	world    Collisions
	crouchCo Toggle

	landed        component.Signal
	crouchChanged component.BoolSignal
}

// New validates cfg and builds a controller around the given ports.
func New(cfg Config, ports Ports) (*Controller, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ports.Body == nil {
		return nil, fmt.Errorf("%w: body", ErrMissingPort)
	}
	if ports.Collisions == nil {
		return nil, fmt.Errorf("%w: collisions", ErrMissingPort)
	}

	c := &Controller{
		cfg:      cfg,
		body:     ports.Body,
		world:    ports.Collisions,
		crouchCo: ports.CrouchCollider,
	}
	c.state.RunningAcc = rampVector(cfg.RunningAccTime)
	c.state.RunningDec = rampVector(cfg.RunningDecTime)
	c.state.CurrentMaxSpeed = cfg.RunningSpeed
	return c, nil
}

// Tick advances the controller by one fixed step. The physics engine is
// expected to integrate the body after Tick returns.
func (c *Controller) Tick(in component.Input) {
	if c == nil {
		return
	}

	if in.Jump {
		c.Jump()
		c.state.OverGroundTimer = c.cfg.OverGroundJumpingFrames
	}
	c.state.CrouchRequested = in.Crouch

	c.shapeGravity()
	c.advanceJumpTimers()
	c.checkGround()
	c.move(in.Left, in.Right)
	c.crouch(c.state.CrouchRequested)

	c.state.Ticks++
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	if c == nil {
		return State{}
	}
	return c.state
}

// Restore carries the runtime state of another controller into c, so a
// rebuilt controller neither lands again nor restarts its speed ramp. Ramps
// and the speed cap come from c's own tuning; timers and speed are clamped
// to it. No signals fire.
func (c *Controller) Restore(s State) {
	if c == nil {
		return
	}
	c.state.Grounded = s.Grounded
	c.state.OverGroundTimer = min(max(s.OverGroundTimer, 0), c.cfg.OverGroundJumpingFrames)
	c.state.AfterGroundTimer = min(max(s.AfterGroundTimer, 0), c.cfg.AfterGroundJumpingFrames)
	c.state.CrouchRequested = s.CrouchRequested
	c.state.WasCrouching = s.WasCrouching
	c.state.Ticks = s.Ticks

	c.state.CurrentMaxSpeed = c.cfg.RunningSpeed
	if s.WasCrouching {
		c.state.CurrentMaxSpeed = c.cfg.CrouchingSpeed
	}
	c.state.Speed = cp.Vector{X: common.Clamp(s.Speed.X, -c.state.CurrentMaxSpeed, c.state.CurrentMaxSpeed)}

	if c.crouchCo != nil {
		c.crouchCo.SetEnabled(!s.WasCrouching)
	}
}

// Config returns the tuning the controller was built with.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// Body returns the driven body.
func (c *Controller) Body() Body {
	if c == nil {
		return nil
	}
	return c.body
}

// Landed fires on the tick the character touches ground after being airborne.
func (c *Controller) Landed() *component.Signal {
	if c == nil {
		return nil
	}
	return &c.landed
}

// CrouchChanged fires with the new effective crouch state on each transition.
func (c *Controller) CrouchChanged() *component.BoolSignal {
	if c == nil {
		return nil
	}
	return &c.crouchChanged
}
