package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/render"
	"golang.org/x/image/colornames"
)

var (
	tileFill    = color.NRGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}
	tileOutline = color.NRGBA{R: 0x1e, G: 0x3c, B: 0x80, A: 0xff}
)

// drawLevel fills the merged level boxes that are on screen.
func drawLevel(screen *ebiten.Image, world *physics.World, cam *render.Camera) {
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	for _, bb := range world.StaticBoxes() {
		x, y, w, h := cam.RectToScreen(bb)
		if x > sw || y > sh || x+w < 0 || y+h < 0 {
			continue
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), tileFill, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, tileOutline, false)
	}
}

// drawSpawn marks the spawn point.
func drawSpawn(screen *ebiten.Image, cam *render.Camera, spawn cp.Vector) {
	x, y := cam.ToScreen(spawn)
	vector.StrokeLine(screen, float32(x-6), float32(y), float32(x+6), float32(y), 1, colornames.Orange, true)
	vector.StrokeLine(screen, float32(x), float32(y-6), float32(x), float32(y+6), 1, colornames.Orange, true)
}
