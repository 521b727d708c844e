package canvas

import (
	"math"

	"github.com/matzehuels/skilltree/pkg/tree"
)

// Zoom limits.
const (
	MinZoom  = 0.5
	MaxZoom  = 2.0
	ZoomStep = 0.1
)

// Viewport is the uniform scale and translation applied to the scene.
// The zero value is not usable; start from [NewViewport].
type Viewport struct {
	Zoom float64
	Pan  tree.Point
}

// NewViewport returns the identity view.
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ZoomIn increases zoom by one step, up to MaxZoom.
func (v Viewport) ZoomIn() Viewport {
	v.Zoom = clampZoom(v.Zoom + ZoomStep)
	return v
}

// ZoomOut decreases zoom by one step, down to MinZoom.
func (v Viewport) ZoomOut() Viewport {
	v.Zoom = clampZoom(v.Zoom - ZoomStep)
	return v
}

// Reset returns the identity view.
func (v Viewport) Reset() Viewport {
	return NewViewport()
}

// PanBy moves the scene by d screen pixels.
func (v Viewport) PanBy(d tree.Point) Viewport {
	v.Pan = v.Pan.Add(d)
	return v
}

// Apply maps a world point to the screen.
func (v Viewport) Apply(p tree.Point) tree.Point {
	return tree.Point{X: p.X*v.Zoom + v.Pan.X, Y: p.Y*v.Zoom + v.Pan.Y}
}

// Invert maps a screen point back to the world.
func (v Viewport) Invert(p tree.Point) tree.Point {
	return tree.Point{X: (p.X - v.Pan.X) / v.Zoom, Y: (p.Y - v.Pan.Y) / v.Zoom}
}

// clampZoom bounds z and snaps it to one decimal so repeated steps do not
// accumulate floating point error.
func clampZoom(z float64) float64 {
	return math.Round(math.Min(MaxZoom, math.Max(MinZoom, z))*10) / 10
}
