package component

// Input is a point-in-time snapshot of the buttons the locomotion controller
// reads once per tick.
type Input struct {
	// Jump is true only on the tick the jump button went down.
	Jump bool
	// Left, Right and Crouch are true while held.
	Left   bool
	Right  bool
	Crouch bool
}

// MoveX returns -1, 0 or +1 for the horizontal buttons. Holding both cancels out.
func (in Input) MoveX() float64 {
	switch {
	case in.Left == in.Right:
		return 0
	case in.Left:
		return -1
	default:
		return 1
	}
}
