package render

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// Camera maps y-up world units to y-down screen pixels, following a target
// and staying inside the level.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	scale   float64

	// smoothing factor (0..1), higher follows faster
	smooth float64
	bounds cp.BB
}

// NewCamera creates a camera for a screen of the given size drawing scale
// pixels per world unit.
func NewCamera(screenW, screenH int, scale float64) *Camera {
	if scale <= 0 {
		scale = common.PixelsPerUnit
	}
	return &Camera{screenW: screenW, screenH: screenH, scale: scale, smooth: 0.15}
}

func (c *Camera) SetBounds(bb cp.BB) {
	c.bounds = bb
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

func (c *Camera) Scale() float64 {
	return c.scale
}

// Update moves the camera toward the target. Call once per tick.
func (c *Camera) Update(target cp.Vector) {
	if c.smooth <= 0 {
		c.PosX, c.PosY = target.X, target.Y
	} else {
		c.PosX = common.Lerp(c.PosX, target.X, c.smooth)
		c.PosY = common.Lerp(c.PosY, target.Y, c.smooth)
	}
	c.constrain()
}

// SnapTo centers the camera on target immediately.
func (c *Camera) SnapTo(target cp.Vector) {
	c.PosX, c.PosY = target.X, target.Y
	c.constrain()
}

func (c *Camera) constrain() {
	// align to whole pixels
	c.PosX = math.Round(c.PosX*c.scale) / c.scale
	c.PosY = math.Round(c.PosY*c.scale) / c.scale

	halfW := float64(c.screenW) / c.scale / 2
	halfH := float64(c.screenH) / c.scale / 2
	c.PosX = constrainAxis(c.PosX, c.bounds.L, c.bounds.R, halfW)
	c.PosY = constrainAxis(c.PosY, c.bounds.B, c.bounds.T, halfH)
}

func constrainAxis(v, lo, hi, half float64) float64 {
	if hi <= lo {
		return v
	}
	if hi-lo < 2*half {
		return (lo + hi) / 2
	}
	return common.Clamp(v, lo+half, hi-half)
}

// ToScreen converts a world point to screen pixels.
func (c *Camera) ToScreen(p cp.Vector) (float64, float64) {
	x := (p.X-c.PosX)*c.scale + float64(c.screenW)/2
	y := (c.PosY-p.Y)*c.scale + float64(c.screenH)/2
	return x, y
}

// RectToScreen converts a world box to a screen rectangle (top-left, size).
func (c *Camera) RectToScreen(bb cp.BB) (x, y, w, h float64) {
	x, y = c.ToScreen(cp.Vector{X: bb.L, Y: bb.T})
	return x, y, (bb.R - bb.L) * c.scale, (bb.T - bb.B) * c.scale
}
