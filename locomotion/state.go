package locomotion

import "github.com/jakecoffman/cp"

// State is the mutable per-character state advanced by Controller.Tick.
type State struct {
	Grounded bool

	// OverGroundTimer counts down the ticks a jump press stays buffered.
	OverGroundTimer int
	// AfterGroundTimer counts down the coyote window after leaving a ledge.
	AfterGroundTimer int

	CrouchRequested bool
	WasCrouching    bool

	CurrentMaxSpeed float64
	// Speed is a dimensionless ramp in [-CurrentMaxSpeed, CurrentMaxSpeed].
	// Only X is used.
	Speed cp.Vector

	RunningAcc cp.Vector
	RunningDec cp.Vector

	Ticks uint64
}

// RecentlyGrounded reports whether the coyote window is open.
func (s State) RecentlyGrounded() bool {
	return s.AfterGroundTimer > 0
}

// CanJump reports whether a jump would fire right now.
func (s State) CanJump() bool {
	return s.Grounded || s.RecentlyGrounded()
}
