// Package player assembles a controllable character: physics body,
// locomotion controller and squash tween, rebuilt whenever its prefab
// changes or it respawns.
package player

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/locomotion"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/render"
)

type Player struct {
	spec   *prefabs.PlayerSpec
	world  *physics.World
	char   *physics.Character
	ctrl   *locomotion.Controller
	squash *render.Squash
	spawn  cp.Vector

	// ticks survives rebuilds, unlike the controller's own counter
	ticks    uint64
	respawns int
	verbose  bool

	landed        component.Signal
	crouchChanged component.BoolSignal
}

// New spawns a player. With verbose set, controller events are logged.
func New(world *physics.World, spawn cp.Vector, spec *prefabs.PlayerSpec, verbose bool) (*Player, error) {
	if world == nil || spec == nil {
		return nil, fmt.Errorf("player: world and spec are required")
	}
	p := &Player{world: world, spawn: spawn, verbose: verbose}
	if err := p.build(spec, spawn, cp.Vector{}); err != nil {
		return nil, err
	}
	return p, nil
}

// build swaps in a fresh character and controller. Controllers never change
// tuning once built, so a new spec means a new controller.
func (p *Player) build(spec *prefabs.PlayerSpec, pos, vel cp.Vector) error {
	char := p.world.NewCharacter(pos, spec.Character())
	ctrl, err := locomotion.New(spec.Tuning(), char.Ports(p.world))
	if err != nil {
		char.Remove()
		return fmt.Errorf("player: %w", err)
	}
	char.Body.SetVelocity(vel)

	if p.char != nil {
		p.char.Remove()
	}
	p.spec = spec
	p.char = char
	p.ctrl = ctrl
	p.squash = render.NewSquash(spec.Squash.Amount, spec.Squash.Duration)

	ctrl.Landed().Connect(p.onLanded)
	ctrl.CrouchChanged().Connect(p.onCrouchChanged)
	return nil
}

func (p *Player) onLanded() {
	p.squash.Trigger()
	if p.verbose {
		pos := p.Position()
		log.Printf("player: landed at tick %d (%.2f, %.2f)", p.ticks, pos.X, pos.Y)
	}
	p.landed.Emit()
}

func (p *Player) onCrouchChanged(crouching bool) {
	p.squash.TriggerScaled(0.5)
	if p.verbose {
		log.Printf("player: crouch=%v at tick %d", crouching, p.ticks)
	}
	p.crouchChanged.Emit(crouching)
}

// Reload rebuilds the player from spec where it stands, keeping grounding,
// timers, speed and crouch. On error the old player stays.
func (p *Player) Reload(spec *prefabs.PlayerSpec) error {
	if p == nil || spec == nil {
		return fmt.Errorf("player: nothing to reload")
	}
	st := p.ctrl.State()
	if err := p.build(spec, p.char.Body.Position(), p.char.Body.Velocity()); err != nil {
		return err
	}
	p.ctrl.Restore(st)
	return nil
}

// Respawn puts the player back at the spawn point with fresh state.
func (p *Player) Respawn() {
	if p == nil {
		return
	}
	if err := p.build(p.spec, p.spawn, cp.Vector{}); err != nil {
		log.Printf("player: respawn: %v", err)
		return
	}
	p.respawns++
	if p.verbose {
		log.Printf("player: respawned at tick %d", p.ticks)
	}
}

// Tick feeds one tick of input to the controller. The caller steps the
// physics world afterwards and then calls Update.
func (p *Player) Tick(in component.Input) {
	if p == nil {
		return
	}
	p.ctrl.Tick(in)
	p.ticks++
}

// Update runs the per-tick work that follows the physics step.
func (p *Player) Update(bounds cp.BB) {
	if p == nil {
		return
	}
	p.squash.Update(float32(common.FixedDelta))
	if p.Fallen(bounds) {
		p.Respawn()
	}
}

// Fallen reports whether the player dropped below bounds.
func (p *Player) Fallen(bounds cp.BB) bool {
	if bounds.T <= bounds.B {
		return false
	}
	return p.char.BB().T < bounds.B-1
}

func (p *Player) Frame() input.Frame {
	st := p.ctrl.State()
	pos := p.Position()
	return input.Frame{Tick: p.ticks, Grounded: st.Grounded, X: pos.X, Y: pos.Y, Speed: st.Speed.X}
}

func (p *Player) Position() cp.Vector {
	return p.char.Body.Position()
}

func (p *Player) State() locomotion.State {
	return p.ctrl.State()
}

func (p *Player) Config() locomotion.Config {
	return p.ctrl.Config()
}

func (p *Player) Spec() *prefabs.PlayerSpec {
	return p.spec
}

func (p *Player) Character() *physics.Character {
	return p.char
}

func (p *Player) Squash() *render.Squash {
	return p.squash
}

func (p *Player) Ticks() uint64 {
	return p.ticks
}

func (p *Player) Respawns() int {
	return p.respawns
}

// Landed fires on every landing, across rebuilds.
func (p *Player) Landed() *component.Signal {
	return &p.landed
}

// CrouchChanged fires on every effective crouch edge, across rebuilds.
func (p *Player) CrouchChanged() *component.BoolSignal {
	return &p.crouchChanged
}
