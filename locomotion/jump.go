package locomotion

// JumpVelocity is the launch speed that reaches JumpHeight in HighTime under
// the rising gravity scale.
func JumpVelocity(cfg Config) float64 {
	return 2 * cfg.JumpHeight / cfg.HighTime
}

// Jump launches the character if it is grounded or inside the coyote window.
// Otherwise it does nothing and returns false.
func (c *Controller) Jump() bool {
	if c == nil || !c.state.CanJump() {
		return false
	}
	v := c.body.Velocity()
	v.Y = JumpVelocity(c.cfg)
	c.body.SetVelocity(v)
	return true
}

func (c *Controller) advanceJumpTimers() {
	if c.state.OverGroundTimer > 0 {
		c.state.OverGroundTimer--
	}
	if c.state.AfterGroundTimer > 0 {
		c.state.AfterGroundTimer--
	}
}
