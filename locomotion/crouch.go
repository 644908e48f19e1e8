package locomotion

func (c *Controller) crouch(requested bool) {
	crouch := requested
	if !crouch {
		probe := c.body.Position().Add(c.cfg.CeilingCheck)
		if c.world.OverlapCircle(probe, c.cfg.CeilingRadius, c.cfg.GroundMask, c.body) > 0 {
			crouch = true
		}
	}

	if crouch != c.state.WasCrouching {
		c.state.WasCrouching = crouch
		c.crouchChanged.Emit(crouch)
		if crouch {
			c.state.CurrentMaxSpeed = c.cfg.CrouchingSpeed
		} else {
			c.state.CurrentMaxSpeed = c.cfg.RunningSpeed
		}
	}

	if c.crouchCo != nil {
		c.crouchCo.SetEnabled(!crouch)
	}
}
