package locomotion

import "github.com/milk9111/platformer/common"

// GravityScale returns the gravity multiplier that makes the rising half of a
// jump last HighTime and the falling half LowTime for the configured height.
func GravityScale(cfg Config, vy float64) float64 {
	t := cfg.HighTime
	if vy <= 0 {
		t = cfg.LowTime
	}
	return (1 / common.Gravity) * 2 * cfg.JumpHeight / (t * t)
}

func (c *Controller) shapeGravity() {
	c.body.SetGravityScale(GravityScale(c.cfg, c.body.Velocity().Y))
}
