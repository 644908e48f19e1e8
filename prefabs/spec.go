package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/locomotion"
	"github.com/milk9111/platformer/physics"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec is the player prefab: locomotion tuning, collider sizes and
// how the demo draws it.
type PlayerSpec struct {
	Name string `yaml:"name"`

	JumpHeight       float64 `yaml:"jump_height"`
	HighTime         float64 `yaml:"high_time"`
	LowTime          float64 `yaml:"low_time"`
	JumpBufferFrames int     `yaml:"jump_buffer_frames"`
	CoyoteFrames     int     `yaml:"coyote_frames"`

	RunningSpeed   float64 `yaml:"running_speed"`
	RunningAccTime float64 `yaml:"running_acc_time"`
	RunningDecTime float64 `yaml:"running_dec_time"`
	CrouchingSpeed float64 `yaml:"crouching_speed"`

	Collider     ColliderSpec `yaml:"collider"`
	GroundProbe  *ProbeSpec   `yaml:"ground_probe"`
	CeilingProbe *ProbeSpec   `yaml:"ceiling_probe"`

	Color       *YAMLColor `yaml:"color"`
	CrouchColor *YAMLColor `yaml:"crouch_color"`
	Squash      SquashSpec `yaml:"squash"`
}

type ColliderSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	CrouchHeight float64 `yaml:"crouch_height"`
	Mass         float64 `yaml:"mass"`
}

// ProbeSpec overrides a probe circle. Offsets are from the body center.
type ProbeSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Radius  float64 `yaml:"radius"`
}

// SquashSpec tunes the landing and crouch squash tween.
type SquashSpec struct {
	Amount   float32 `yaml:"amount"`
	Duration float32 `yaml:"duration"`
}

// LoadPlayerSpec loads and validates a player prefab.
func LoadPlayerSpec(filename string) (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *PlayerSpec) Validate() error {
	var errs []error
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: collider %vx%v", ErrInvalidSpec, s.Collider.Width, s.Collider.Height))
	}
	if s.Collider.CrouchHeight < 0 || s.Collider.CrouchHeight > s.Collider.Height {
		errs = append(errs, fmt.Errorf("%w: crouch_height %v", ErrInvalidSpec, s.Collider.CrouchHeight))
	}
	if err := s.Tuning().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *PlayerSpec) Character() physics.CharacterSpec {
	return physics.CharacterSpec{
		Width:        s.Collider.Width,
		Height:       s.Collider.Height,
		CrouchHeight: s.Collider.CrouchHeight,
		Mass:         s.Collider.Mass,
	}
}

// Tuning converts the prefab into controller tuning. Probes left out of the
// prefab are placed from the collider.
func (s *PlayerSpec) Tuning() locomotion.Config {
	char := s.Character()
	cfg := locomotion.Config{
		JumpHeight:               s.JumpHeight,
		HighTime:                 s.HighTime,
		LowTime:                  s.LowTime,
		OverGroundJumpingFrames:  s.JumpBufferFrames,
		AfterGroundJumpingFrames: s.CoyoteFrames,
		RunningSpeed:             s.RunningSpeed,
		RunningAccTime:           s.RunningAccTime,
		RunningDecTime:           s.RunningDecTime,
		CrouchingSpeed:           s.CrouchingSpeed,
		GroundMask:               physics.LayerGround,
		GroundCheck:              char.GroundCheck(),
		CeilingCheck:             char.CeilingCheck(),
		GroundRadius:             locomotion.DefaultGroundRadius,
		CeilingRadius:            locomotion.DefaultCeilingRadius,
		FixedDelta:               common.FixedDelta,
	}
	if p := s.GroundProbe; p != nil {
		cfg.GroundCheck = cp.Vector{X: p.OffsetX, Y: p.OffsetY}
		if p.Radius != 0 {
			cfg.GroundRadius = p.Radius
		}
	}
	if p := s.CeilingProbe; p != nil {
		cfg.CeilingCheck = cp.Vector{X: p.OffsetX, Y: p.OffsetY}
		if p.Radius != 0 {
			cfg.CeilingRadius = p.Radius
		}
	}
	return cfg
}

// YAML renders the prefab back to yaml, for sharing tweaked tuning.
func (s *PlayerSpec) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal player: %w", err)
	}
	return out, nil
}

// ColorOr returns c, or fallback when the prefab left the color out.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c YAMLColor) MarshalYAML() (interface{}, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
