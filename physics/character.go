package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/locomotion"
)

// CharacterSpec sizes a standing character. The body origin is the center
// of the standing box.
type CharacterSpec struct {
	Width        float64
	Height       float64
	CrouchHeight float64
	Mass         float64
}

// Character is a body with a feet collider that is always on and a head
// collider that is switched off while crouching.
type Character struct {
	Body *Body
	Feet *Collider
	Head *Collider
	Spec CharacterSpec
}

// NewCharacter spawns a character standing with its origin at pos.
func (w *World) NewCharacter(pos cp.Vector, spec CharacterSpec) *Character {
	if w == nil {
		return nil
	}
	if spec.CrouchHeight <= 0 || spec.CrouchHeight > spec.Height {
		spec.CrouchHeight = spec.Height
	}
	body := w.NewBody(pos, spec.Mass)

	bottom := -spec.Height / 2
	feet := body.AddBox(BoxSpec{
		Width:   spec.Width,
		Height:  spec.CrouchHeight,
		OffsetY: bottom + spec.CrouchHeight/2,
	}, LayerPlayer)

	var head *Collider
	if headHeight := spec.Height - spec.CrouchHeight; headHeight > 0 {
		head = body.AddBox(BoxSpec{
			Width:   spec.Width,
			Height:  headHeight,
			OffsetY: bottom + spec.CrouchHeight + headHeight/2,
		}, LayerPlayer)
	}

	return &Character{Body: body, Feet: feet, Head: head, Spec: spec}
}

// GroundCheck is the default ground probe offset, just under the feet.
func (s CharacterSpec) GroundCheck() cp.Vector {
	return cp.Vector{X: 0, Y: -s.Height/2 - 0.05}
}

// CeilingCheck is the default ceiling probe offset, just above the crouched
// head.
func (s CharacterSpec) CeilingCheck() cp.Vector {
	crouch := s.CrouchHeight
	if crouch <= 0 || crouch > s.Height {
		crouch = s.Height
	}
	return cp.Vector{X: 0, Y: -s.Height/2 + crouch + locomotion.DefaultCeilingRadius + 0.1}
}

func (c *Character) GroundCheck() cp.Vector {
	return c.Spec.GroundCheck()
}

func (c *Character) CeilingCheck() cp.Vector {
	return c.Spec.CeilingCheck()
}

// Ports wires the character into a locomotion controller.
func (c *Character) Ports(w *World) locomotion.Ports {
	ports := locomotion.Ports{Body: c.Body, Collisions: w}
	if c.Head != nil {
		ports.CrouchCollider = c.Head
	}
	return ports
}

// Crouching reports whether the head collider is switched off.
func (c *Character) Crouching() bool {
	return c != nil && c.Head != nil && !c.Head.Enabled()
}

// BB returns the active collision box in world space.
func (c *Character) BB() cp.BB {
	if c == nil {
		return cp.BB{}
	}
	bb := c.Feet.WorldBB()
	if c.Head != nil && c.Head.Enabled() {
		head := c.Head.WorldBB()
		bb.T = head.T
	}
	return bb
}

// Remove takes the character out of the world.
func (c *Character) Remove() {
	if c == nil {
		return
	}
	c.Body.Remove()
}
