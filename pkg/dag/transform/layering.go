package transform

import (
	"fmt"

	"github.com/matzehuels/skilltree/pkg/dag"
)

// AssignLayers assigns every node a row equal to the length of the longest
// path reaching it from any source.
//
// AssignLayers uses Kahn's algorithm. Each node is placed at one plus the
// maximum row of any of its parents, ensuring that:
//   - Source nodes (no incoming edges) are at row 0
//   - For every edge From→To, row(From) < row(To)
//   - The result does not depend on node insertion order
//
// The last point is what a single linear scan cannot give: a node whose
// prerequisite appears later in the input would otherwise be under-leveled.
//
// # Cycles
//
// If some nodes never reach zero in-degree the graph has a cycle. The rows
// are left untouched and the returned error wraps [dag.ErrGraphHasCycle]
// with the path reported by [dag.DAG.FindCycle].
//
// # Performance
//
// Time complexity is O(V + E). Space complexity is O(V).
func AssignLayers(g *dag.DAG) error {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	processed := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		processed++

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if processed != len(nodes) {
		return &CycleError{Path: g.FindCycle()}
	}

	g.SetRows(rows)
	return nil
}

// CycleError reports a cycle found during layer assignment.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %v", dag.ErrGraphHasCycle, e.Path)
}

// Unwrap lets errors.Is match dag.ErrGraphHasCycle.
func (e *CycleError) Unwrap() error { return dag.ErrGraphHasCycle }
