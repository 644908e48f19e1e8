package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/player"
	"github.com/milk9111/platformer/render"
	"golang.org/x/image/colornames"
)

// drawPlayer fills the active collider box, squashed about the feet.
func drawPlayer(screen *ebiten.Image, cam *render.Camera, p *player.Player) {
	char := p.Character()
	bb := char.BB()
	sx, sy := p.Squash().Scale()
	cx := (bb.L + bb.R) / 2
	w := (bb.R - bb.L) * float64(sx)
	h := (bb.T - bb.B) * float64(sy)
	bb = cp.BB{L: cx - w/2, R: cx + w/2, B: bb.B, T: bb.B + h}

	spec := p.Spec()
	var clr color.Color = spec.Color.ColorOr(colornames.Cornflowerblue)
	if char.Crouching() {
		clr = spec.CrouchColor.ColorOr(colornames.Steelblue)
	}
	x, y, rw, rh := cam.RectToScreen(bb)
	vector.FillRect(screen, float32(x), float32(y), float32(rw), float32(rh), clr, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(rw), float32(rh), 1, colornames.White, false)
}

// drawProbes outlines the ground and ceiling probe circles. The ground probe
// turns green while grounded.
func drawProbes(screen *ebiten.Image, cam *render.Camera, p *player.Player) {
	cfg := p.Config()
	pos := p.Position()

	var groundClr color.Color = colornames.Red
	if p.State().Grounded {
		groundClr = colornames.Lime
	}
	drawCircle(screen, cam, pos.Add(cfg.GroundCheck), cfg.GroundRadius, groundClr)
	drawCircle(screen, cam, pos.Add(cfg.CeilingCheck), cfg.CeilingRadius, colornames.Yellow)
}

func drawCircle(screen *ebiten.Image, cam *render.Camera, center cp.Vector, radius float64, clr color.Color) {
	x, y := cam.ToScreen(center)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius*cam.Scale()), 1, clr, true)
}
