package layout

import "github.com/matzehuels/skilltree/pkg/tree"

// SeedOptions configures [Seed].
type SeedOptions struct {
	SectionX  float64 // X of every top-level node
	ChildX    float64 // X of the first descendant
	ChildStep float64 // Horizontal step between descendants
	RowHeight float64 // Vertical step between descendants
	Padding   float64 // Extra gap after each section
	Top       float64 // Y of the first section
}

// DefaultSeedOptions returns the placement used for freshly opened trees.
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		SectionX:  400,
		ChildX:    700,
		ChildStep: 250,
		RowHeight: 150,
		Padding:   100,
		Top:       100,
	}
}

// Seed places every node of t. Top-level nodes are stacked at SectionX.
// The descendants of each, in depth-first order, fan out diagonally: the
// i-th sits at (ChildX + i·ChildStep, y + i·RowHeight), where y is the
// section's own row. Each section then advances y by
// max(1, descendants)·RowHeight + Padding.
//
// Seed ignores stored positions; callers decide which to keep.
func Seed(t *tree.Tree, opts SeedOptions) map[string]tree.Point {
	pos := make(map[string]tree.Point, t.Len())
	y := opts.Top
	for _, root := range t.Roots() {
		pos[root.ID] = tree.Point{X: opts.SectionX, Y: y}

		desc := preorder(t, root.ID, nil)
		for i, id := range desc {
			pos[id] = tree.Point{
				X: opts.ChildX + float64(i)*opts.ChildStep,
				Y: y + float64(i)*opts.RowHeight,
			}
		}
		y += float64(max(1, len(desc)))*opts.RowHeight + opts.Padding
	}
	return pos
}

func preorder(t *tree.Tree, id string, out []string) []string {
	for _, c := range t.Children(id) {
		out = append(out, c.ID)
		out = preorder(t, c.ID, out)
	}
	return out
}
