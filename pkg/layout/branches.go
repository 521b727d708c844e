package layout

import "github.com/matzehuels/skilltree/pkg/tree"

// BranchOptions configures [Branches].
type BranchOptions struct {
	Width, Height float64
	Margin        float64
}

// DefaultBranchOptions returns the 1200×800 diagram frame.
func DefaultBranchOptions() BranchOptions {
	return BranchOptions{Width: 1200, Height: 800, Margin: 60}
}

// Branch is one category column of a branch diagram.
type Branch struct {
	Category string
	X        float64
	IDs      []string
}

// BranchLayout is the result of [Branches].
type BranchLayout struct {
	Branches  []Branch
	Positions map[string]tree.Point
}

// Branches places the skills of t (nodes without children) in one column
// per category, in the order categories first appear. Columns split the
// frame width evenly; within a column the k-th of n skills sits at
// Margin + (k+1)·(Height − 2·Margin)/(n+1). Skills without a category go
// to the [tree.Uncategorized] column.
func Branches(t *tree.Tree, opts BranchOptions) BranchLayout {
	var out BranchLayout
	index := make(map[string]int)
	for _, n := range t.Nodes() {
		if t.HasChildren(n.ID) {
			continue
		}
		cat := n.Category
		if cat == "" {
			cat = tree.Uncategorized
		}
		i, ok := index[cat]
		if !ok {
			i = len(out.Branches)
			index[cat] = i
			out.Branches = append(out.Branches, Branch{Category: cat})
		}
		out.Branches[i].IDs = append(out.Branches[i].IDs, n.ID)
	}

	out.Positions = make(map[string]tree.Point)
	if len(out.Branches) == 0 {
		return out
	}
	colWidth := (opts.Width - 2*opts.Margin) / float64(len(out.Branches))
	inner := opts.Height - 2*opts.Margin
	for i := range out.Branches {
		b := &out.Branches[i]
		b.X = opts.Margin + float64(i)*colWidth + colWidth/2
		step := inner / float64(len(b.IDs)+1)
		for k, id := range b.IDs {
			out.Positions[id] = tree.Point{X: b.X, Y: opts.Margin + float64(k+1)*step}
		}
	}
	return out
}
