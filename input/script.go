package input

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

var ErrScriptDone = errors.New("input: script done")

// buttons are the globals a script assigns each tick. They start every run
// released.
var buttons = []string{"left", "right", "jump", "crouch", "done"}

// Script drives the buttons from a tengo script run once per tick. The script
// reads tick, grounded, x, y and speed, and assigns left, right, jump and
// crouch. Setting done ends the run.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// LoadScript compiles a script from prefabs/scripts.
func LoadScript(name string) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("input: load script %s: %w", name, err)
	}
	return NewScript(name, src)
}

func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", int64(0))
	_ = script.Add("grounded", false)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("speed", 0.0)
	for _, b := range buttons {
		_ = script.Add(b, false)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	script.SetMaxAllocs(1 << 16)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Next runs the script for f.Tick. It returns ErrScriptDone alongside the
// buttons once the script sets done.
func (s *Script) Next(f Frame) (component.Input, error) {
	if s == nil || s.compiled == nil {
		return component.Input{}, fmt.Errorf("input: nil script")
	}

	c := s.compiled
	values := map[string]interface{}{
		"tick":     int64(f.Tick),
		"grounded": f.Grounded,
		"x":        f.X,
		"y":        f.Y,
		"speed":    f.Speed,
	}
	for name, v := range values {
		if err := c.Set(name, v); err != nil {
			return component.Input{}, fmt.Errorf("input: script %s: %w", s.name, err)
		}
	}
	for _, b := range buttons {
		if err := c.Set(b, false); err != nil {
			return component.Input{}, fmt.Errorf("input: script %s: %w", s.name, err)
		}
	}

	if err := c.Run(); err != nil {
		return component.Input{}, fmt.Errorf("input: script %s tick %d: %w", s.name, f.Tick, err)
	}

	in := component.Input{
		Left:   c.Get("left").Bool(),
		Right:  c.Get("right").Bool(),
		Jump:   c.Get("jump").Bool(),
		Crouch: c.Get("crouch").Bool(),
	}
	if c.Get("done").Bool() {
		return in, ErrScriptDone
	}
	return in, nil
}
