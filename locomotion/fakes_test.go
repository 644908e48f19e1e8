package locomotion

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
)

type fakeBody struct {
	vel          cp.Vector
	pos          cp.Vector
	gravityScale float64
}

func (b *fakeBody) Velocity() cp.Vector           { return b.vel }
func (b *fakeBody) SetVelocity(v cp.Vector)       { b.vel = v }
func (b *fakeBody) Position() cp.Vector           { return b.pos }
func (b *fakeBody) SetPosition(p cp.Vector)       { b.pos = p }
func (b *fakeBody) SetGravityScale(scale float64) { b.gravityScale = scale }

// fakeWorld answers probes below the body with ground and above it with ceiling.
type fakeWorld struct {
	body    *fakeBody
	ground  bool
	ceiling bool
}

func (w *fakeWorld) OverlapCircle(center cp.Vector, radius float64, mask uint, exclude Body) int {
	hit := w.ceiling
	if center.Y < w.body.pos.Y {
		hit = w.ground
	}
	if hit {
		return 1
	}
	return 0
}

type fakeToggle struct {
	history []bool
}

func (t *fakeToggle) SetEnabled(enabled bool) {
	t.history = append(t.history, enabled)
}

func (t *fakeToggle) last() bool {
	if len(t.history) == 0 {
		return true
	}
	return t.history[len(t.history)-1]
}

type rig struct {
	ctrl    *Controller
	body    *fakeBody
	world   *fakeWorld
	toggle  *fakeToggle
	landed  int
	crouchs []bool
}

func newRig(t *testing.T, cfg Config) *rig {
	t.Helper()
	body := &fakeBody{}
	world := &fakeWorld{body: body}
	toggle := &fakeToggle{}
	ctrl, err := New(cfg, Ports{Body: body, Collisions: world, CrouchCollider: toggle})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := &rig{ctrl: ctrl, body: body, world: world, toggle: toggle}
	ctrl.Landed().Connect(func() { r.landed++ })
	ctrl.CrouchChanged().Connect(func(v bool) { r.crouchs = append(r.crouchs, v) })
	return r
}

func (r *rig) tick(in component.Input) State {
	r.ctrl.Tick(in)
	return r.ctrl.State()
}

// settle puts the character on the ground and clears the landing edge.
func (r *rig) settle(t *testing.T) {
	t.Helper()
	r.world.ground = true
	r.tick(component.Input{})
	if !r.ctrl.State().Grounded {
		t.Fatalf("expected grounded after settle")
	}
	r.landed = 0
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.JumpHeight = 2
	cfg.HighTime = 0.4
	cfg.LowTime = 0.3
	cfg.OverGroundJumpingFrames = 5
	cfg.AfterGroundJumpingFrames = 4
	return cfg
}
