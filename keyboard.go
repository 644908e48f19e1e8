package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/input"
)

const stickDeadzone = 0.3

// Keyboard reads keyboard and the first gamepad. Jump is the press edge,
// the rest are held state.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Next(input.Frame) (component.Input, error) {
	in := component.Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Crouch: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Jump: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		in.Left = in.Left || leftX < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || leftX > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Crouch = in.Crouch || leftY > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	return in, nil
}

// PausePressed reports the pause toggle edge.
func (k *Keyboard) PausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		return inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], ebiten.StandardGamepadButtonCenterRight)
	}
	return false
}

// RespawnPressed reports the respawn key edge.
func (k *Keyboard) RespawnPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
