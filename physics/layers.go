package physics

import "github.com/jakecoffman/cp"

// Layer is a collision category bit.
type Layer = uint

const (
	LayerGround Layer = 1 << iota
	LayerPlayer
)

// filterFor returns a filter placing shapes in layer and letting them collide
// with everything.
func filterFor(layer Layer) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: layer, Mask: cp.ALL_CATEGORIES}
}

// queryFilter matches shapes in any of mask.
func queryFilter(mask uint) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: mask}
}
