package locomotion

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// rampVector is the acceleration of a linear ramp that reaches full speed in t.
func rampVector(t float64) cp.Vector {
	return cp.Vector{X: 2 / (t * t)}
}

func (c *Controller) move(left, right bool) {
	v := c.body.Velocity()
	c.body.SetVelocity(cp.Vector{X: 0, Y: v.Y})

	dt := c.cfg.FixedDelta
	maxSpeed := c.state.CurrentMaxSpeed
	x := c.state.Speed.X

	switch {
	case left == right:
		x = common.MoveToward(x, 0, c.state.RunningDec.X*dt)
	case left:
		x -= c.state.RunningAcc.X * dt
	default:
		x += c.state.RunningAcc.X * dt
	}
	c.state.Speed = cp.Vector{X: common.Clamp(x, -maxSpeed, maxSpeed)}

	pos := c.body.Position()
	c.body.SetPosition(pos.Add(c.state.Speed.Mult(c.cfg.RunningSpeed * dt)))
}
