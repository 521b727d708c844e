package editor

import (
	"context"

	"github.com/matzehuels/skilltree/pkg/observability"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// Select makes id the selected node. An empty id clears the selection.
// It reports whether the selection changed to an existing node or was
// cleared.
func (s *Store) Select(id string) bool {
	if id != "" && !s.tree.Has(id) {
		return false
	}
	s.selected = id
	return true
}

// Selected returns the selected node.
func (s *Store) Selected() (*tree.Node, bool) {
	if s.selected == "" {
		return nil, false
	}
	return s.tree.Find(s.selected)
}

// HitTest returns the topmost node whose card contains the screen point.
// Later nodes in tree order are drawn on top.
func (s *Store) HitTest(screen tree.Point) (string, bool) {
	p := s.view.Invert(screen)
	size := s.opts.CardSize
	nodes := s.tree.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		o, ok := s.positions[nodes[i].ID]
		if !ok {
			continue
		}
		if p.X >= o.X && p.X <= o.X+size.Width && p.Y >= o.Y && p.Y <= o.Y+size.Height {
			return nodes[i].ID, true
		}
	}
	return "", false
}

// PointerDown starts dragging id from the screen point and selects it.
// Presses on unknown or unplaced nodes are ignored.
func (s *Store) PointerDown(ctx context.Context, id string, screen tree.Point) bool {
	origin, ok := s.positions[id]
	if !ok {
		return false
	}
	if s.drag.Target() != "" {
		_ = s.commitDrag(ctx)
	}
	s.drag.Press(id, s.view.Invert(screen), origin)
	s.selected = id
	observability.Editor().OnDragStart(ctx, id)
	return true
}

// PointerMove moves the dragged node so it stays under the pointer at the
// same offset. It reports whether a node moved. Moves while idle are
// ignored.
func (s *Store) PointerMove(screen tree.Point) bool {
	id, origin, ok := s.drag.MoveTo(s.view.Invert(screen))
	if !ok {
		return false
	}
	s.positions[id] = origin
	return true
}

// PointerUp ends the drag and stores the node's final position in the
// tree.
func (s *Store) PointerUp(ctx context.Context) error {
	return s.commitDrag(ctx)
}

// PointerLeave ends the drag when the pointer leaves the canvas. The node
// keeps the last position it was moved to.
func (s *Store) PointerLeave(ctx context.Context) error {
	return s.commitDrag(ctx)
}

func (s *Store) commitDrag(ctx context.Context) error {
	id := s.drag.Target()
	if id == "" {
		return nil
	}
	s.drag.Release()
	observability.Editor().OnDragEnd(ctx, id)
	next, err := s.tree.Move(id, s.positions[id])
	return s.apply(ctx, "move", id, next, err)
}

// ZoomIn zooms in one step.
func (s *Store) ZoomIn() { s.view = s.view.ZoomIn() }

// ZoomOut zooms out one step.
func (s *Store) ZoomOut() { s.view = s.view.ZoomOut() }

// Pan moves the scene by d screen pixels.
func (s *Store) Pan(d tree.Point) { s.view = s.view.PanBy(d) }

// ResetView restores zoom 1 and no pan.
func (s *Store) ResetView() { s.view = s.view.Reset() }
