package locomotion

import "github.com/jakecoffman/cp"

// Body is the rigid body the controller drives. The physics engine owns
// velocity and position integration; the controller reads and overwrites them.
type Body interface {
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	Position() cp.Vector
	SetPosition(p cp.Vector)
	SetGravityScale(scale float64)
}

// Collisions answers overlap queries against the level.
type Collisions interface {
	// OverlapCircle returns how many shapes matching mask overlap the circle,
	// ignoring shapes attached to exclude.
	OverlapCircle(center cp.Vector, radius float64, mask uint, exclude Body) int
}

// Toggle enables or disables a collider.
type Toggle interface {
	SetEnabled(enabled bool)
}

// Ports groups the collaborators a controller is built with.
// CrouchCollider is optional.
type Ports struct {
	Body           Body
	Collisions     Collisions
	CrouchCollider Toggle
}
