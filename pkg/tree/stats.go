package tree

// Uncategorized is the Stats bucket for nodes without a category.
const Uncategorized = "uncategorized"

// Stats summarises a tree for the statistics view.
type Stats struct {
	Nodes      int
	Leaves     int
	Links      int
	Progress   int
	ByStatus   map[Status]int
	ByCategory map[string]int
	Available  int
	Locked     int
}

// Stats counts nodes by status and category. Progress is the tree's stored
// aggregate, so call Recalc first for fresh numbers.
func (t *Tree) Stats() Stats {
	s := Stats{
		Nodes:      len(t.nodes),
		Links:      len(t.links),
		Progress:   t.Progress,
		ByStatus:   make(map[Status]int),
		ByCategory: make(map[string]int),
	}
	t.Walk(func(n *Node, _ int) bool {
		s.ByStatus[n.Status]++
		cat := n.Category
		if cat == "" {
			cat = Uncategorized
		}
		s.ByCategory[cat]++
		if !t.HasChildren(n.ID) {
			s.Leaves++
		}
		switch a, _ := t.Availability(n.ID); a {
		case Available:
			s.Available++
		case Locked:
			s.Locked++
		}
		return true
	})
	return s
}
