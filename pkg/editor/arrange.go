package editor

import (
	"context"
	"time"

	"github.com/matzehuels/skilltree/pkg/layout"
	"github.com/matzehuels/skilltree/pkg/observability"
)

// AutoArrange lays the tree out by dependency level and stores the new
// positions. A dependency cycle is returned as CYCLIC_DEPENDENCY and leaves
// every position as it was.
func (s *Store) AutoArrange(ctx context.Context) error {
	start := time.Now()
	grid, err := layout.Arrange(s.tree, s.opts.Layout)
	observability.Editor().OnArrange(ctx, s.tree.Len(), time.Since(start), err)
	if err != nil {
		return s.reject(ctx, "arrange", "", err)
	}

	s.drag.Release()
	next := s.tree
	for _, n := range s.tree.Nodes() {
		if next, err = next.Move(n.ID, grid.Positions[n.ID]); err != nil {
			return s.reject(ctx, "arrange", n.ID, err)
		}
	}
	return s.apply(ctx, "arrange", "", next, nil)
}
