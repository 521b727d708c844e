package tree

import (
	"github.com/matzehuels/skilltree/pkg/dag"
	"github.com/matzehuels/skilltree/pkg/dag/transform"
)

// Graph returns the dependency edges of t as a DAG. Nodes are added in tree
// order; edges to or from unknown ids are skipped.
func (t *Tree) Graph() *dag.DAG {
	g := dag.New()
	for _, n := range t.Nodes() {
		_ = g.AddNode(dag.Node{ID: n.ID})
	}
	for _, e := range t.links {
		_ = g.AddEdge(dag.Edge{From: e.From, To: e.To})
	}
	return g
}

// closes returns the cycle that the edge from → to would close, starting and
// ending with to, or nil when the edge is safe.
func (t *Tree) closes(from, to string) []string {
	if from == to {
		return []string{from, to}
	}
	g := t.Graph()
	if !transform.WouldCycle(g, from, to) {
		return nil
	}
	return append(transform.Path(g, to, from), to)
}
