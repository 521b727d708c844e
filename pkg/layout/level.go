package layout

import (
	stderrors "errors"

	"github.com/matzehuels/skilltree/pkg/dag"
	"github.com/matzehuels/skilltree/pkg/dag/transform"
	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// Options configures the grid produced by [Arrange].
type Options struct {
	LevelSpacing float64    // Horizontal distance between levels
	RowSpacing   float64    // Vertical distance between nodes of one level
	Origin       tree.Point // Position of the first node of level 0
}

// DefaultOptions returns the editor's auto-arrange spacing.
func DefaultOptions() Options {
	return Options{
		LevelSpacing: 300,
		RowSpacing:   200,
		Origin:       tree.Point{X: 100, Y: 100},
	}
}

// Grid is an arranged tree.
type Grid struct {
	// Levels maps node id to its dependency level.
	Levels map[string]int
	// Columns lists node ids per level, in tree order within each level.
	Columns [][]string
	// Positions maps node id to its arranged canvas position.
	Positions map[string]tree.Point
}

// Level returns the dependency level of every node in t.
func Level(t *tree.Tree) (map[string]int, error) {
	g, err := leveled(t)
	if err != nil {
		return nil, err
	}

	levels := make(map[string]int, g.NodeCount())
	for _, n := range g.Nodes() {
		levels[n.ID] = n.Row
	}
	return levels, nil
}

func leveled(t *tree.Tree) (*dag.DAG, error) {
	g := t.Graph()
	if err := transform.AssignLayers(g); err != nil {
		var ce *transform.CycleError
		if stderrors.As(err, &ce) {
			return nil, errors.Cyclic(ce.Path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "assign levels")
	}
	return g, nil
}

// Arrange levels t and places level L, index i at
// Origin + (L·LevelSpacing, i·RowSpacing).
func Arrange(t *tree.Tree, opts Options) (Grid, error) {
	g, err := leveled(t)
	if err != nil {
		return Grid{}, err
	}

	grid := Grid{
		Levels:    make(map[string]int, g.NodeCount()),
		Positions: make(map[string]tree.Point, g.NodeCount()),
	}
	if g.NodeCount() == 0 {
		return grid, nil
	}
	grid.Columns = make([][]string, g.MaxRow()+1)
	for _, l := range g.RowIDs() {
		ids := dag.NodeIDs(g.NodesInRow(l))
		grid.Columns[l] = ids
		for row, id := range ids {
			grid.Levels[id] = l
			grid.Positions[id] = tree.Point{
				X: opts.Origin.X + float64(l)*opts.LevelSpacing,
				Y: opts.Origin.Y + float64(row)*opts.RowSpacing,
			}
		}
	}
	return grid, nil
}
