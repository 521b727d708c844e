package canvas

import "github.com/matzehuels/skilltree/pkg/tree"

// DragState is the state of a [Drag].
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Drag tracks the one node being dragged, if any. The zero value is Idle.
type Drag struct {
	state  DragState
	id     string
	offset tree.Point
}

// State returns the current state.
func (d *Drag) State() DragState { return d.state }

// Target returns the dragged node id, or "" when idle.
func (d *Drag) Target() string { return d.id }

// Press starts dragging id. The offset between pointer and the node's
// origin is captured so the node does not jump under the pointer. Pressing
// while already dragging replaces the target.
func (d *Drag) Press(id string, pointer, origin tree.Point) {
	d.state = Dragging
	d.id = id
	d.offset = pointer.Sub(origin)
}

// MoveTo returns the new origin of the dragged node for the pointer
// position: pointer − offset. The result depends only on the pointer, so
// repeated identical moves converge. ok is false when idle.
func (d *Drag) MoveTo(pointer tree.Point) (id string, origin tree.Point, ok bool) {
	if d.state != Dragging {
		return "", tree.Point{}, false
	}
	return d.id, pointer.Sub(d.offset), true
}

// Release ends the drag.
func (d *Drag) Release() {
	*d = Drag{}
}

// Leave ends the drag when the pointer leaves the canvas.
func (d *Drag) Leave() {
	d.Release()
}
