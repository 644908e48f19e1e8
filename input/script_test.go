package input

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/component"
)

func TestScriptButtons(t *testing.T) {
	src := []byte(`
right = tick >= 2
jump = tick == 3 && grounded
crouch = x > 5.0
`)
	s, err := NewScript("inline", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		name  string
		frame Frame
		want  component.Input
	}{
		{"idle", Frame{Tick: 0, Grounded: true}, component.Input{}},
		{"run", Frame{Tick: 2, Grounded: true}, component.Input{Right: true}},
		{"jump_grounded", Frame{Tick: 3, Grounded: true}, component.Input{Right: true, Jump: true}},
		{"jump_airborne", Frame{Tick: 3}, component.Input{Right: true}},
		{"crouch_far_right", Frame{Tick: 4, X: 6}, component.Input{Right: true, Crouch: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := s.Next(c.frame)
			if err != nil {
				t.Fatalf("next: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestScriptButtonsReleaseEachTick(t *testing.T) {
	s, err := NewScript("inline", []byte(`if tick == 0 { left = true }`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	first, _ := s.Next(Frame{Tick: 0})
	second, _ := s.Next(Frame{Tick: 1})
	if !first.Left || second.Left {
		t.Fatalf("expected left only on tick 0, got %+v then %+v", first, second)
	}
}

func TestScriptDone(t *testing.T) {
	s, err := NewScript("inline", []byte(`done = tick >= 1`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := s.Next(Frame{Tick: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Next(Frame{Tick: 1}); !errors.Is(err, ErrScriptDone) {
		t.Fatalf("expected ErrScriptDone, got %v", err)
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := NewScript("broken", []byte(`right = (`)); err == nil {
		t.Fatalf("expected compile error")
	}

	s, err := NewScript("runtime", []byte(`right = tick()`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := s.Next(Frame{}); err == nil {
		t.Fatalf("expected runtime error")
	}

	var nilScript *Script
	if _, err := nilScript.Next(Frame{}); err == nil {
		t.Fatalf("expected error from nil script")
	}
}

func TestBundledScriptsCompile(t *testing.T) {
	for _, name := range []string{"run_and_jump", "crouch_tunnel"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if _, err := s.Next(Frame{Tick: 100, Grounded: true}); err != nil {
				t.Fatalf("run: %v", err)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	r := NewReplay([]component.Input{{Right: true}, {Jump: true}})
	want := []component.Input{{Right: true}, {Jump: true}, {}}
	for i, w := range want {
		got, err := r.Next(Frame{})
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != w {
			t.Fatalf("tick %d: expected %+v, got %+v", i, w, got)
		}
	}
	if !r.Done() {
		t.Fatalf("expected replay done")
	}
}
