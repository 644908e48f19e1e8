package locomotion

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
)

const eps = 1e-9

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero_high_time", func(c *Config) { c.HighTime = 0 }},
		{"zero_low_time", func(c *Config) { c.LowTime = 0 }},
		{"zero_acc_time", func(c *Config) { c.RunningAccTime = 0 }},
		{"negative_dec_time", func(c *Config) { c.RunningDecTime = -1 }},
		{"nan_high_time", func(c *Config) { c.HighTime = math.NaN() }},
		{"inf_high_time", func(c *Config) { c.HighTime = math.Inf(1) }},
		{"nan_running_speed", func(c *Config) { c.RunningSpeed = math.NaN() }},
		{"inf_running_speed", func(c *Config) { c.RunningSpeed = math.Inf(1) }},
		{"nan_jump_height", func(c *Config) { c.JumpHeight = math.NaN() }},
		{"nan_ground_radius", func(c *Config) { c.GroundRadius = math.NaN() }},
		{"negative_buffer_frames", func(c *Config) { c.OverGroundJumpingFrames = -1 }},
		{"negative_coyote_frames", func(c *Config) { c.AfterGroundJumpingFrames = -2 }},
		{"negative_crouch_speed", func(c *Config) { c.CrouchingSpeed = -3 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			body := &fakeBody{}
			_, err := New(cfg, Ports{Body: body, Collisions: &fakeWorld{body: body}})
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HighTime = 0
	cfg.LowTime = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, field := range []string{"high_time", "low_time"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("expected %q in %q", field, msg)
		}
	}
}

func TestNewRequiresPorts(t *testing.T) {
	body := &fakeBody{}
	if _, err := New(DefaultConfig(), Ports{Collisions: &fakeWorld{body: body}}); !errors.Is(err, ErrMissingPort) {
		t.Fatalf("expected ErrMissingPort for nil body, got %v", err)
	}
	if _, err := New(DefaultConfig(), Ports{Body: body}); !errors.Is(err, ErrMissingPort) {
		t.Fatalf("expected ErrMissingPort for nil collisions, got %v", err)
	}
	if _, err := New(DefaultConfig(), Ports{Body: body, Collisions: &fakeWorld{body: body}}); err != nil {
		t.Fatalf("crouch collider should be optional: %v", err)
	}
}

func TestNewDerivesRamps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RunningAccTime = 0.5
	cfg.RunningDecTime = 0.25
	r := newRig(t, cfg)
	st := r.ctrl.State()
	if math.Abs(st.RunningAcc.X-8) > eps || math.Abs(st.RunningDec.X-32) > eps {
		t.Fatalf("unexpected ramps acc=%v dec=%v", st.RunningAcc, st.RunningDec)
	}
	if st.CurrentMaxSpeed != cfg.RunningSpeed {
		t.Fatalf("expected max speed %v, got %v", cfg.RunningSpeed, st.CurrentMaxSpeed)
	}
}

func TestNewFillsProbeDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroundRadius = 0
	cfg.CeilingRadius = 0
	cfg.FixedDelta = 0
	r := newRig(t, cfg)
	got := r.ctrl.Config()
	if got.GroundRadius != DefaultGroundRadius || got.CeilingRadius != DefaultCeilingRadius || got.FixedDelta <= 0 {
		t.Fatalf("defaults not applied: %+v", got)
	}
}

func TestGravityScaleScenario(t *testing.T) {
	cfg := testConfig()

	if v := JumpVelocity(cfg); math.Abs(v-10) > eps {
		t.Fatalf("expected jump velocity 10, got %v", v)
	}

	cases := []struct {
		name string
		vy   float64
		want float64
	}{
		{"rising", 5, 2.551},
		{"apex", 0, 4.535},
		{"falling", -3, 4.535},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t, cfg)
			r.body.vel = cp.Vector{Y: c.vy}
			r.tick(component.Input{})
			if math.Abs(r.body.gravityScale-c.want) > 1e-3 {
				t.Fatalf("expected gravity scale %.3f, got %.5f", c.want, r.body.gravityScale)
			}
		})
	}
}

func TestGroundedJump(t *testing.T) {
	r := newRig(t, testConfig())
	r.settle(t)
	r.body.vel = cp.Vector{X: 1.5, Y: 0}

	r.tick(component.Input{Jump: true})
	if math.Abs(r.body.vel.Y-10) > eps {
		t.Fatalf("expected vy 10, got %v", r.body.vel.Y)
	}
	if r.landed != 0 {
		t.Fatalf("jump from ground should not fire landed")
	}
}

func TestJumpKeepsHorizontalVelocity(t *testing.T) {
	r := newRig(t, testConfig())
	r.settle(t)
	r.body.vel = cp.Vector{X: 1.5, Y: -0.2}
	if !r.ctrl.Jump() {
		t.Fatalf("expected jump to fire")
	}
	if r.body.vel.X != 1.5 {
		t.Fatalf("expected vx untouched, got %v", r.body.vel.X)
	}
}

func TestAirborneJumpIgnored(t *testing.T) {
	r := newRig(t, testConfig())
	r.body.vel = cp.Vector{Y: -4}

	if r.ctrl.Jump() {
		t.Fatalf("airborne jump should be rejected")
	}
	r.tick(component.Input{Jump: true})
	if r.body.vel.Y != -4 {
		t.Fatalf("expected vy unchanged, got %v", r.body.vel.Y)
	}
	if st := r.ctrl.State(); st.OverGroundTimer != testConfig().OverGroundJumpingFrames-1 {
		t.Fatalf("press should still be buffered, timer=%d", st.OverGroundTimer)
	}
}

func TestBufferedJumpOnLanding(t *testing.T) {
	r := newRig(t, testConfig())
	r.body.vel = cp.Vector{Y: -6}

	var vyAtLanding float64
	r.ctrl.Landed().Connect(func() { vyAtLanding = r.body.vel.Y })

	r.tick(component.Input{Jump: true})
	r.tick(component.Input{})
	if r.body.vel.Y != -6 {
		t.Fatalf("jump fired mid-air")
	}

	r.world.ground = true
	st := r.tick(component.Input{})
	if !st.Grounded {
		t.Fatalf("expected grounded")
	}
	if math.Abs(r.body.vel.Y-10) > eps {
		t.Fatalf("expected buffered jump vy 10, got %v", r.body.vel.Y)
	}
	if math.Abs(vyAtLanding-10) > eps {
		t.Fatalf("landed listeners should run after the buffered jump, saw vy %v", vyAtLanding)
	}
	if r.landed != 1 {
		t.Fatalf("expected exactly one landed event, got %d", r.landed)
	}

	for i := 0; i < 5; i++ {
		r.tick(component.Input{})
	}
	if r.landed != 1 {
		t.Fatalf("landed fired while staying grounded: %d", r.landed)
	}
}

func TestBufferExpires(t *testing.T) {
	cfg := testConfig()
	r := newRig(t, cfg)
	r.body.vel = cp.Vector{Y: -6}

	r.tick(component.Input{Jump: true})
	for i := 0; i < cfg.OverGroundJumpingFrames; i++ {
		r.tick(component.Input{})
	}
	if st := r.ctrl.State(); st.OverGroundTimer != 0 {
		t.Fatalf("expected buffer drained, got %d", st.OverGroundTimer)
	}

	r.world.ground = true
	r.tick(component.Input{})
	if r.body.vel.Y != -6 {
		t.Fatalf("expired buffer should not jump, vy=%v", r.body.vel.Y)
	}
	if r.landed != 1 {
		t.Fatalf("expected landed once, got %d", r.landed)
	}
}

func TestLedgeLeaveStartsCoyote(t *testing.T) {
	cases := []struct {
		name string
		vy   float64
		want int
	}{
		{"walk_off", 0, testConfig().AfterGroundJumpingFrames},
		{"falling_off", -1, testConfig().AfterGroundJumpingFrames},
		{"rising", 3, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t, testConfig())
			r.settle(t)
			r.world.ground = false
			r.body.vel = cp.Vector{Y: c.vy}
			st := r.tick(component.Input{})
			if st.Grounded {
				t.Fatalf("expected airborne")
			}
			if st.AfterGroundTimer != c.want {
				t.Fatalf("expected coyote timer %d, got %d", c.want, st.AfterGroundTimer)
			}
		})
	}
}

func TestCoyoteScenario(t *testing.T) {
	cfg := testConfig()
	cfg.AfterGroundJumpingFrames = 4
	r := newRig(t, cfg)
	r.settle(t)

	r.world.ground = false
	r.tick(component.Input{})
	st := r.tick(component.Input{})
	if st.AfterGroundTimer != 3 || st.Grounded {
		t.Fatalf("expected airborne with coyote timer 3, got %+v", st)
	}

	st = r.tick(component.Input{Jump: true})
	if math.Abs(r.body.vel.Y-10) > eps {
		t.Fatalf("expected coyote jump vy 10, got %v", r.body.vel.Y)
	}

	want := []int{2, 1, 0}
	got := []int{st.AfterGroundTimer}
	for len(got) < len(want) {
		got = append(got, r.tick(component.Input{}).AfterGroundTimer)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected timers %v, got %v", want, got)
		}
	}

	r.body.vel = cp.Vector{Y: -2}
	r.tick(component.Input{Jump: true})
	if r.body.vel.Y != -2 {
		t.Fatalf("jump after coyote window should be ignored, vy=%v", r.body.vel.Y)
	}
}

// lcg is a tiny deterministic generator so the sequences below are stable.
type lcg uint64

func (l *lcg) bit() bool {
	*l = *l*6364136223846793005 + 1442695040888963407
	return (*l>>33)&1 == 1
}

func TestTimersNeverNegative(t *testing.T) {
	cfg := testConfig()
	r := newRig(t, cfg)
	rng := lcg(7)

	prev := r.ctrl.State()
	for i := 0; i < 2000; i++ {
		r.world.ground = rng.bit()
		r.body.vel.Y = -1
		if rng.bit() {
			r.body.vel.Y = 1
		}
		st := r.tick(component.Input{Jump: rng.bit() && rng.bit()})

		if st.OverGroundTimer < 0 || st.AfterGroundTimer < 0 {
			t.Fatalf("tick %d: negative timer %+v", i, st)
		}
		if st.OverGroundTimer < prev.OverGroundTimer-1 {
			t.Fatalf("tick %d: jump buffer dropped by more than one (%d -> %d)", i, prev.OverGroundTimer, st.OverGroundTimer)
		}
		if st.AfterGroundTimer < prev.AfterGroundTimer-1 {
			t.Fatalf("tick %d: coyote timer dropped by more than one (%d -> %d)", i, prev.AfterGroundTimer, st.AfterGroundTimer)
		}
		prev = st
	}
}

func TestJumpOnlyWhenAllowed(t *testing.T) {
	r := newRig(t, testConfig())
	rng := lcg(42)

	for i := 0; i < 2000; i++ {
		r.world.ground = rng.bit() && rng.bit()
		before := r.ctrl.State()
		r.body.vel.Y = -0.5
		if r.ctrl.Jump() != before.CanJump() {
			t.Fatalf("tick %d: jump result disagrees with CanJump %+v", i, before)
		}
		if !before.CanJump() && r.body.vel.Y != -0.5 {
			t.Fatalf("tick %d: velocity changed without permission", i)
		}
		r.body.vel.Y = -0.5
		r.tick(component.Input{})
	}
}

func TestRestoreKeepsRunningState(t *testing.T) {
	cfg := testConfig()
	r := newRig(t, cfg)
	r.settle(t)
	for i := 0; i < 40; i++ {
		r.tick(component.Input{Right: true})
	}
	prev := r.ctrl.State()
	if prev.Speed.X != cfg.RunningSpeed {
		t.Fatalf("expected to reach the cap before restoring, got %v", prev.Speed.X)
	}

	next := newRig(t, cfg)
	next.world.ground = true
	next.ctrl.Restore(prev)
	st := next.tick(component.Input{Right: true})
	if next.landed != 0 {
		t.Fatalf("restored grounded state should not land again, landed %d", next.landed)
	}
	if !st.Grounded || st.Speed.X != cfg.RunningSpeed {
		t.Fatalf("expected grounded at full speed, got grounded=%v speed=%v", st.Grounded, st.Speed.X)
	}
	if st.Ticks != prev.Ticks+1 {
		t.Fatalf("expected tick count to carry over, got %d after %d", st.Ticks, prev.Ticks)
	}
}

func TestRestoreUsesNewTuning(t *testing.T) {
	cfg := testConfig()
	r := newRig(t, cfg)
	r.ctrl.Restore(State{
		Grounded:         true,
		WasCrouching:     true,
		OverGroundTimer:  99,
		AfterGroundTimer: -3,
		Speed:            cp.Vector{X: -cfg.RunningSpeed},
		RunningAcc:       cp.Vector{X: 1000},
		CurrentMaxSpeed:  42,
	})

	st := r.ctrl.State()
	if st.CurrentMaxSpeed != cfg.CrouchingSpeed {
		t.Fatalf("expected crouch cap %v, got %v", cfg.CrouchingSpeed, st.CurrentMaxSpeed)
	}
	if st.Speed.X != -cfg.CrouchingSpeed {
		t.Fatalf("expected speed clamped to %v, got %v", -cfg.CrouchingSpeed, st.Speed.X)
	}
	if st.OverGroundTimer != cfg.OverGroundJumpingFrames || st.AfterGroundTimer != 0 {
		t.Fatalf("expected timers clamped, got %d/%d", st.OverGroundTimer, st.AfterGroundTimer)
	}
	if st.RunningAcc != rampVector(cfg.RunningAccTime) {
		t.Fatalf("ramps must come from the config, got %v", st.RunningAcc)
	}
	if r.toggle.last() {
		t.Fatalf("restored crouch should disable the head collider")
	}

	r.world.ground = true
	r.tick(component.Input{Crouch: true})
	if len(r.crouchs) != 0 || r.landed != 0 {
		t.Fatalf("restore should not replay edges, got crouch %v landed %d", r.crouchs, r.landed)
	}
}
