package tree

import "math"

// Recalc recomputes derived progress bottom-up and returns the new tree.
//
// Every node with children gets the rounded mean of its children's progress
// and the status that value implies (see DeriveStatus). Leaves keep their
// own values. The tree's Progress becomes the rounded mean of the top-level
// nodes. Empty collections average to 0. Nodes whose values do not change
// keep their identity.
func (t *Tree) Recalc() *Tree {
	next := t.clone()

	var calc func(id string) int
	calc = func(id string) int {
		n := next.nodes[id]
		kids := next.children[id]
		if len(kids) == 0 {
			return n.Progress
		}
		values := make([]int, len(kids))
		for i, c := range kids {
			values[i] = calc(c)
		}
		p := MeanProgress(values)
		if st := DeriveStatus(p); n.Progress != p || n.Status != st {
			c := n.clone()
			c.Progress, c.Status = p, st
			next.nodes[id] = c
		}
		return p
	}

	values := make([]int, len(next.roots))
	for i, id := range next.roots {
		values[i] = calc(id)
	}
	next.Progress = MeanProgress(values)
	return next
}

// MeanProgress returns the mean of values rounded half up, or 0 when values
// is empty.
func MeanProgress(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Floor(float64(sum)/float64(len(values)) + 0.5))
}

// DeriveStatus maps an aggregate progress value to a status: 100 is
// completed, 0 or less is not started, anything between is in progress.
func DeriveStatus(progress int) Status {
	switch {
	case progress >= 100:
		return StatusCompleted
	case progress <= 0:
		return StatusNotStarted
	default:
		return StatusInProgress
	}
}
