package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body is a dynamic, rotation-locked rigid body with its own gravity scale.
type Body struct {
	world        *World
	body         *cp.Body
	gravityScale float64
	colliders    []*Collider
}

// BoxSpec describes an axis-aligned box relative to the body origin.
type BoxSpec struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

func (s BoxSpec) bb() cp.BB {
	return cp.BB{
		L: s.OffsetX - s.Width/2,
		B: s.OffsetY - s.Height/2,
		R: s.OffsetX + s.Width/2,
		T: s.OffsetY + s.Height/2,
	}
}

// NewBody adds a dynamic body at pos. Its moment is infinite so it never
// rotates.
func (w *World) NewBody(pos cp.Vector, mass float64) *Body {
	if w == nil || w.space == nil {
		return nil
	}
	if mass <= 0 {
		mass = 1
	}
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(pos)

	b := &Body{world: w, body: cpBody, gravityScale: 1}
	cpBody.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
	})
	w.space.AddBody(cpBody)
	return b
}

// AddBox attaches a box collider in layer.
func (b *Body) AddBox(spec BoxSpec, layer Layer) *Collider {
	if b == nil || b.world == nil {
		return nil
	}
	shape := cp.NewBox2(b.body, spec.bb(), 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeCharacter)
	shape.SetFilter(filterFor(layer))
	b.world.space.AddShape(shape)

	c := &Collider{shape: shape, spec: spec, filter: shape.Filter, enabled: true}
	b.colliders = append(b.colliders, c)
	return c
}

// Remove detaches the body and its colliders from the space.
func (b *Body) Remove() {
	if b == nil || b.world == nil || b.world.space == nil {
		return
	}
	for _, c := range b.colliders {
		b.world.space.RemoveShape(c.shape)
	}
	b.world.space.RemoveBody(b.body)
	b.colliders = nil
}

func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

func (b *Body) SetVelocity(v cp.Vector) {
	b.body.SetVelocityVector(v)
}

func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

func (b *Body) SetPosition(p cp.Vector) {
	b.body.SetPosition(p)
}

// SetGravityScale multiplies the space gravity for this body only.
func (b *Body) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

// Colliders returns the attached colliders in creation order.
func (b *Body) Colliders() []*Collider {
	if b == nil {
		return nil
	}
	return b.colliders
}

// Collider is a box shape that can be switched off without removing it.
type Collider struct {
	shape   *cp.Shape
	spec    BoxSpec
	filter  cp.ShapeFilter
	enabled bool
}

// SetEnabled swaps the shape filter so a disabled collider neither collides
// nor shows up in queries.
func (c *Collider) SetEnabled(enabled bool) {
	if c == nil || c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if enabled {
		c.shape.SetFilter(c.filter)
	} else {
		c.shape.SetFilter(cp.SHAPE_FILTER_NONE)
	}
}

func (c *Collider) Enabled() bool {
	return c != nil && c.enabled
}

// Spec returns the box relative to the body origin.
func (c *Collider) Spec() BoxSpec {
	if c == nil {
		return BoxSpec{}
	}
	return c.spec
}

// WorldBB returns the collider box at the body's current position.
func (c *Collider) WorldBB() cp.BB {
	if c == nil {
		return cp.BB{}
	}
	p := c.shape.Body().Position()
	bb := c.spec.bb()
	return cp.BB{L: bb.L + p.X, B: bb.B + p.Y, R: bb.R + p.X, T: bb.T + p.Y}
}
