package locomotion

func (c *Controller) checkGround() {
	wasGrounded := c.state.Grounded
	probe := c.body.Position().Add(c.cfg.GroundCheck)
	c.state.Grounded = c.world.OverlapCircle(probe, c.cfg.GroundRadius, c.cfg.GroundMask, c.body) > 0

	switch {
	case !wasGrounded && c.state.Grounded:
		if c.state.OverGroundTimer > 0 {
			c.Jump()
		}
		c.landed.Emit()
	case wasGrounded && !c.state.Grounded && c.body.Velocity().Y <= 0:
		// walked off a ledge rather than jumped
		c.state.AfterGroundTimer = c.cfg.AfterGroundJumpingFrames
	}
}
