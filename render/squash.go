// Package render holds the drawing-side state of the demo that does not need
// a graphics context: the camera transform and squash tweens.
package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Squash flattens a sprite for a moment, then springs it back. Scale returns
// 1 while idle.
type Squash struct {
	amount   float32
	duration float32

	seq    *gween.Sequence
	amt    float32
	active bool
}

func NewSquash(amount, duration float32) *Squash {
	if duration <= 0 {
		duration = 0.12
	}
	return &Squash{amount: amount, duration: duration}
}

// Trigger restarts the tween, flattening by the configured amount.
func (s *Squash) Trigger() {
	s.TriggerScaled(1)
}

// TriggerScaled restarts the tween with the amount multiplied by k.
func (s *Squash) TriggerScaled(k float32) {
	if s == nil || s.amount == 0 {
		return
	}
	half := s.duration / 2
	s.seq = gween.NewSequence(
		gween.New(0, s.amount*k, half, ease.OutQuad),
		gween.New(s.amount*k, 0, half, ease.OutBack),
	)
	s.amt = 0
	s.active = true
}

// Update advances the tween by dt seconds.
func (s *Squash) Update(dt float32) {
	if s == nil || !s.active {
		return
	}
	v, _, done := s.seq.Update(dt)
	s.amt = v
	if done {
		s.amt = 0
		s.active = false
	}
}

func (s *Squash) Active() bool {
	return s != nil && s.active
}

// Scale returns the x and y draw scale. Width grows by half of what height
// loses.
func (s *Squash) Scale() (float32, float32) {
	if s == nil {
		return 1, 1
	}
	return 1 + s.amt/2, 1 - s.amt
}
