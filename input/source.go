// Package input produces the per-tick button state fed to a locomotion
// controller.
package input

import "github.com/milk9111/platformer/component"

// Frame is what an input source may look at before choosing buttons for the
// next tick.
type Frame struct {
	Tick     uint64
	Grounded bool
	X, Y     float64
	Speed    float64
}

// Source yields the buttons for one tick.
type Source interface {
	Next(f Frame) (component.Input, error)
}

// Replay plays back a recorded sequence, then releases everything.
type Replay struct {
	inputs []component.Input
	pos    int
}

func NewReplay(inputs []component.Input) *Replay {
	return &Replay{inputs: inputs}
}

func (r *Replay) Next(Frame) (component.Input, error) {
	if r == nil || r.pos >= len(r.inputs) {
		return component.Input{}, nil
	}
	in := r.inputs[r.pos]
	r.pos++
	return in, nil
}

// Done reports whether every recorded tick has been played.
func (r *Replay) Done() bool {
	return r == nil || r.pos >= len(r.inputs)
}
