package tree

// Availability is the display state used by the dependency diagram.
type Availability string

const (
	// Locked: at least one existing prerequisite is not completed.
	Locked Availability = "locked"
	// Available: every prerequisite is completed but work has not started.
	Available  Availability = "available"
	InProgress Availability = "in-progress"
	Completed  Availability = "completed"
)

// Availability reports whether id can be worked on. Started and completed
// skills report their own status regardless of prerequisites. Dependencies
// on ids that no longer exist are ignored.
func (t *Tree) Availability(id string) (Availability, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return "", false
	}
	switch n.Status {
	case StatusCompleted:
		return Completed, true
	case StatusInProgress:
		return InProgress, true
	}
	for _, d := range t.Dependencies(id) {
		if dep, ok := t.nodes[d]; ok && dep.Status != StatusCompleted {
			return Locked, true
		}
	}
	return Available, true
}

// Frontier returns the nodes that are available to start, in tree order.
func (t *Tree) Frontier() []*Node {
	var out []*Node
	t.Walk(func(n *Node, _ int) bool {
		if a, _ := t.Availability(n.ID); a == Available {
			out = append(out, n)
		}
		return true
	})
	return out
}
