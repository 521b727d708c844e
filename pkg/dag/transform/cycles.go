package transform

import "github.com/matzehuels/skilltree/pkg/dag"

// WouldCycle reports whether adding the edge from→to would close a cycle,
// i.e. whether from is already reachable from to (or from == to).
// Unknown ids never cycle.
func WouldCycle(g *dag.DAG, from, to string) bool {
	return from == to || Path(g, to, from) != nil
}

// Path returns a shortest directed path from→…→to, both ends included, or
// nil if to is not reachable. Unknown ids are unreachable.
func Path(g *dag.DAG, from, to string) []string {
	if _, ok := g.Node(from); !ok {
		return nil
	}
	if _, ok := g.Node(to); !ok {
		return nil
	}
	if from == to {
		return []string{from}
	}

	prev := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, child := range g.Children(curr) {
			if _, seen := prev[child]; seen {
				continue
			}
			prev[child] = curr
			if child == to {
				var path []string
				for id := to; id != ""; id = prev[id] {
					path = append(path, id)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, child)
		}
	}
	return nil
}
