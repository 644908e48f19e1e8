package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/player"
	"github.com/milk9111/platformer/prefabs"
)

type Options struct {
	Level   string
	Prefab  string
	Script  string
	Ticks   int
	Trace   int
	Verbose bool

	// Source overrides Script when set.
	Source input.Source
}

// Summary is the outcome of a run.
type Summary struct {
	Ticks      uint64
	Landings   int
	Crouches   int
	Respawns   int
	ScriptDone bool
	X, Y       float64
	Grounded   bool
	Crouching  bool
	Speed      float64
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ticks=%d landings=%d crouches=%d respawns=%d", s.Ticks, s.Landings, s.Crouches, s.Respawns)
	fmt.Fprintf(&b, " pos=(%.2f, %.2f) speed=%.2f grounded=%v crouching=%v", s.X, s.Y, s.Speed, s.Grounded, s.Crouching)
	if s.ScriptDone {
		b.WriteString(" script=done")
	}
	return b.String()
}

// Run steps the world until the script sets done or opts.Ticks ticks pass.
func Run(opts Options) (Summary, error) {
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return Summary{}, err
	}
	spec, err := prefabs.LoadPlayerSpec(opts.Prefab)
	if err != nil {
		return Summary{}, err
	}
	source := opts.Source
	if source == nil {
		script, err := input.LoadScript(opts.Script)
		if err != nil {
			return Summary{}, err
		}
		source = script
	}

	world := physics.NewWorld(lvl)
	p, err := player.New(world, world.TileCenter(lvl.Spawn()), spec, opts.Verbose)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	p.Landed().Connect(func() { summary.Landings++ })
	p.CrouchChanged().Connect(func(crouching bool) {
		if crouching {
			summary.Crouches++
		}
	})

	bounds := world.Bounds()
	for i := 0; i < opts.Ticks; i++ {
		in, err := source.Next(p.Frame())
		if errors.Is(err, input.ErrScriptDone) {
			summary.ScriptDone = true
			break
		}
		if err != nil {
			return summary, err
		}

		p.Tick(in)
		world.Step(common.FixedDelta)
		p.Update(bounds)

		if opts.Trace > 0 && p.Ticks()%uint64(opts.Trace) == 0 {
			st := p.State()
			pos := p.Position()
			log.Printf("sim: tick %d pos=(%.2f, %.2f) speed=%.2f grounded=%v coyote=%d buffer=%d",
				p.Ticks(), pos.X, pos.Y, st.Speed.X, st.Grounded, st.AfterGroundTimer, st.OverGroundTimer)
		}
	}

	st := p.State()
	pos := p.Position()
	summary.Ticks = p.Ticks()
	summary.Respawns = p.Respawns()
	summary.X, summary.Y = pos.X, pos.Y
	summary.Grounded = st.Grounded
	summary.Crouching = p.Character().Crouching()
	summary.Speed = st.Speed.X
	return summary, nil
}
