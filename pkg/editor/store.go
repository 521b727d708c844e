package editor

import (
	"context"
	"io"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/skilltree/pkg/canvas"
	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/layout"
	"github.com/matzehuels/skilltree/pkg/library"
	"github.com/matzehuels/skilltree/pkg/observability"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// Options configures a [Store]. Zero fields take the defaults.
type Options struct {
	Layout   layout.Options
	Seed     layout.SeedOptions
	CardSize canvas.CardSize
	Catalog  *library.Catalog
	Logger   *log.Logger
}

// DefaultOptions returns the editor defaults with the embedded catalog.
func DefaultOptions() Options {
	return Options{
		Layout:   layout.DefaultOptions(),
		Seed:     layout.DefaultSeedOptions(),
		CardSize: canvas.DefaultCardSize,
		Catalog:  library.Default(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Layout == (layout.Options{}) {
		o.Layout = d.Layout
	}
	if o.Seed == (layout.SeedOptions{}) {
		o.Seed = d.Seed
	}
	if o.CardSize == (canvas.CardSize{}) {
		o.CardSize = d.CardSize
	}
	if o.Catalog == nil {
		o.Catalog = d.Catalog
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Store is the editor state. Create one with [New].
type Store struct {
	opts   Options
	logger *log.Logger

	tree      *tree.Tree
	positions map[string]tree.Point
	view      canvas.Viewport
	drag      canvas.Drag
	selected  string
}

// New opens t for editing. Progress is recalculated. Nodes with a stored
// position keep it; the rest are seeded.
func New(t *tree.Tree, opts Options) *Store {
	opts = opts.withDefaults()
	s := &Store{
		opts:      opts,
		logger:    opts.Logger,
		tree:      t.Recalc(),
		positions: make(map[string]tree.Point),
		view:      canvas.NewViewport(),
	}
	s.sync()
	return s
}

// Tree returns the current tree.
func (s *Store) Tree() *tree.Tree { return s.tree }

// Positions returns a copy of the current node positions in world
// coordinates.
func (s *Store) Positions() map[string]tree.Point { return maps.Clone(s.positions) }

// Position returns the world position of id.
func (s *Store) Position(id string) (tree.Point, bool) {
	p, ok := s.positions[id]
	return p, ok
}

// View returns the viewport.
func (s *Store) View() canvas.Viewport { return s.view }

// Dragging returns the id of the node being dragged, or "".
func (s *Store) Dragging() string { return s.drag.Target() }

// CardSize returns the card footprint used for hit testing and connections.
func (s *Store) CardSize() canvas.CardSize { return s.opts.CardSize }

// Connections returns the dependency curves between positioned nodes.
func (s *Store) Connections() []canvas.Connection {
	return canvas.Connections(s.tree, s.positions, s.opts.CardSize)
}

// apply installs next after a successful tree operation. NOT_FOUND is
// logged and swallowed; other errors leave the state unchanged and are
// returned.
func (s *Store) apply(ctx context.Context, op, id string, next *tree.Tree, err error) error {
	observability.Editor().OnMutation(ctx, op, id, err)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			s.logger.Debug("ignored", "op", op, "id", id, "err", err)
			return nil
		}
		s.logger.Warn("rejected", "op", op, "id", id, "err", err)
		return err
	}
	s.tree = next.Recalc()
	s.sync()
	s.logger.Debug(op, "id", id, "nodes", s.tree.Len(), "progress", s.tree.Progress)
	return nil
}

// reject reports err for an operation that never reached the tree.
func (s *Store) reject(ctx context.Context, op, id string, err error) error {
	observability.Editor().OnMutation(ctx, op, id, err)
	s.logger.Warn("rejected", "op", op, "id", id, "err", err)
	return err
}

// sync drops state that refers to removed nodes and places new ones.
func (s *Store) sync() {
	for id := range s.positions {
		if !s.tree.Has(id) {
			delete(s.positions, id)
		}
	}
	var seed map[string]tree.Point
	for _, n := range s.tree.Nodes() {
		if n.ID == s.drag.Target() {
			continue
		}
		if n.Position != nil {
			s.positions[n.ID] = *n.Position
			continue
		}
		if _, ok := s.positions[n.ID]; ok {
			continue
		}
		if seed == nil {
			seed = layout.Seed(s.tree, s.opts.Seed)
		}
		s.positions[n.ID] = seed[n.ID]
	}
	if s.selected != "" && !s.tree.Has(s.selected) {
		s.selected = ""
	}
	if t := s.drag.Target(); t != "" && !s.tree.Has(t) {
		s.drag.Release()
	}
}
