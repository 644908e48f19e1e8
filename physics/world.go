package physics

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/locomotion"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
)

// World owns the Chipmunk space and the static level geometry. World space
// is y-up with one unit per tile.
type World struct {
	level *levels.Level
	space *cp.Space

	static []cp.BB
}

// NewWorld builds a space with the level's solid tiles merged into boxes.
// A nil level yields an empty space.
func NewWorld(level *levels.Level) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -common.Gravity})
	space.SetCollisionSlop(0.01)

	w := &World{level: level, space: space}
	w.buildStaticShapes()
	if level != nil {
		log.Printf("physics: built %d static boxes for %dx%d level", len(w.static), level.Width, level.Height)
	}
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// StaticBoxes returns the merged level boxes in world space.
func (w *World) StaticBoxes() []cp.BB {
	if w == nil {
		return nil
	}
	return w.static
}

// Bounds returns the level extents in world space.
func (w *World) Bounds() cp.BB {
	if w == nil || w.level == nil {
		return cp.BB{}
	}
	return cp.BB{L: 0, B: 0, R: float64(w.level.Width) * common.TileSize, T: float64(w.level.Height) * common.TileSize}
}

// TileCenter converts tile coordinates (row 0 at the top) to world space.
func (w *World) TileCenter(tx, ty int) cp.Vector {
	h := 0
	if w != nil && w.level != nil {
		h = w.level.Height
	}
	return cp.Vector{
		X: (float64(tx) + 0.5) * common.TileSize,
		Y: (float64(h-ty) - 0.5) * common.TileSize,
	}
}

// Step advances the simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

// AddStaticBox adds a solid box to the level geometry.
func (w *World) AddStaticBox(bb cp.BB) *cp.Shape {
	if w == nil || w.space == nil {
		return nil
	}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(filterFor(LayerGround))
	w.space.AddShape(shape)
	w.static = append(w.static, bb)
	return shape
}

// OverlapCircle counts shapes in mask overlapping the circle, skipping
// sensors, disabled colliders and shapes attached to exclude.
func (w *World) OverlapCircle(center cp.Vector, radius float64, mask uint, exclude locomotion.Body) int {
	if w == nil || w.space == nil {
		return 0
	}
	var self *cp.Body
	if b, ok := exclude.(*Body); ok && b != nil {
		self = b.body
	}

	count := 0
	w.space.BBQuery(cp.NewBBForCircle(center, radius), queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		if shape.Sensor() || (self != nil && shape.Body() == self) {
			return
		}
		if shape.PointQuery(center).Distance <= radius {
			count++
		}
	}, nil)
	return count
}

func (w *World) buildStaticShapes() {
	if w == nil || w.space == nil || w.level == nil {
		return
	}

	for _, layer := range w.level.PhysicsLayers() {
		w.processLayerTiles(layer)
	}

	worldW := float64(w.level.Width) * common.TileSize
	worldH := float64(w.level.Height) * common.TileSize
	// no floor segment, so pits drop out of the level
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 0.05)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filterFor(LayerGround))
		w.space.AddShape(shape)
	}
}

// processLayerTiles merges solid tiles into as few boxes as possible, growing
// each box right first and then down.
func (w *World) processLayerTiles(layer []int) {
	lw, lh := w.level.Width, w.level.Height
	if len(layer) != lw*lh {
		return
	}
	processed := make([]bool, lw*lh)
	for y := 0; y < lh; y++ {
		for x := 0; x < lw; x++ {
			idx := y*lw + x
			if processed[idx] {
				continue
			}
			if layer[idx] == 0 {
				processed[idx] = true
				continue
			}

			width := 1
			for x+width < lw {
				idx2 := y*lw + x + width
				if processed[idx2] || layer[idx2] == 0 {
					break
				}
				width++
			}

			height := 1
		heightLoop:
			for y+height < lh {
				for xi := x; xi < x+width; xi++ {
					idx2 := (y+height)*lw + xi
					if processed[idx2] || layer[idx2] == 0 {
						break heightLoop
					}
				}
				height++
			}

			// tile rows grow downward, world y grows upward
			bb := cp.BB{
				L: float64(x) * common.TileSize,
				R: float64(x+width) * common.TileSize,
				T: float64(lh-y) * common.TileSize,
				B: float64(lh-y-height) * common.TileSize,
			}
			w.AddStaticBox(bb)

			for yy := y; yy < y+height; yy++ {
				for xx := x; xx < x+width; xx++ {
					processed[yy*lw+xx] = true
				}
			}
		}
	}
}
