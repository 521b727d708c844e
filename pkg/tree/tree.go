package tree

import (
	"maps"
	"slices"
)

// Tree is an immutable skill tree. Use New or Build to create one; the zero
// value is an empty tree without metadata.
type Tree struct {
	ID          string
	Name        string
	Description string

	// Progress is the rounded mean of the top-level nodes' progress as of
	// the last Recalc.
	Progress int

	nodes    map[string]*Node
	roots    []string
	children map[string][]string
	parent   map[string]string
	links    []Edge
}

// New returns an empty tree.
func New(id, name, description string) *Tree {
	return &Tree{ID: id, Name: name, Description: description}
}

// clone returns a shallow copy whose containers may be modified freely.
// Child slices are shared and must be replaced, not appended to in place.
func (t *Tree) clone() *Tree {
	c := *t
	c.nodes = maps.Clone(t.nodes)
	if c.nodes == nil {
		c.nodes = make(map[string]*Node)
	}
	c.roots = slices.Clone(t.roots)
	c.children = maps.Clone(t.children)
	if c.children == nil {
		c.children = make(map[string][]string)
	}
	c.parent = maps.Clone(t.parent)
	if c.parent == nil {
		c.parent = make(map[string]string)
	}
	c.links = slices.Clone(t.links)
	return &c
}

// Len returns the number of nodes at every depth.
func (t *Tree) Len() int { return len(t.nodes) }

// Find returns the node with the given id.
func (t *Tree) Find(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Has reports whether id names a node in the tree.
func (t *Tree) Has(id string) bool {
	_, ok := t.nodes[id]
	return ok
}

// Roots returns the top-level nodes in order.
func (t *Tree) Roots() []*Node { return t.resolve(t.roots) }

// Children returns the owned children of id in order.
func (t *Tree) Children(id string) []*Node { return t.resolve(t.children[id]) }

// HasChildren reports whether id owns at least one child.
func (t *Tree) HasChildren(id string) bool { return len(t.children[id]) > 0 }

// Parent returns the id of the node owning id. Top-level nodes have none.
func (t *Tree) Parent(id string) (string, bool) {
	p, ok := t.parent[id]
	return p, ok
}

// Dependencies returns the ids id depends on, in the order they were added.
// Ids of nodes that no longer exist may appear; callers skip them.
func (t *Tree) Dependencies(id string) []string {
	var out []string
	for _, e := range t.links {
		if e.To == id {
			out = append(out, e.From)
		}
	}
	return out
}

// Dependents returns the ids of nodes that depend on id.
func (t *Tree) Dependents(id string) []string {
	var out []string
	for _, e := range t.links {
		if e.From == id {
			out = append(out, e.To)
		}
	}
	return out
}

// Links returns the dependency edges (the canvas builder's link list).
func (t *Tree) Links() []Edge { return slices.Clone(t.links) }

// Edges returns every edge: containment edges in depth-first order followed
// by dependency edges.
func (t *Tree) Edges() []Edge {
	var out []Edge
	t.Walk(func(n *Node, _ int) bool {
		for _, c := range t.children[n.ID] {
			out = append(out, Edge{From: n.ID, To: c, Kind: EdgeContains})
		}
		return true
	})
	return append(out, t.links...)
}

// Nodes returns every node in depth-first pre-order.
func (t *Tree) Nodes() []*Node {
	out := make([]*Node, 0, len(t.nodes))
	t.Walk(func(n *Node, _ int) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Walk visits nodes depth first, parents before children, top-level nodes
// in order. Returning false from fn skips that node's children.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	var visit func(ids []string, depth int)
	visit = func(ids []string, depth int) {
		for _, id := range ids {
			n := t.nodes[id]
			if fn(n, depth) {
				visit(t.children[id], depth+1)
			}
		}
	}
	visit(t.roots, 0)
}

// Subtree returns id followed by all of its descendants, breadth first.
func (t *Tree) Subtree(id string) []string {
	if !t.Has(id) {
		return nil
	}
	out := []string{id}
	for i := 0; i < len(out); i++ {
		out = append(out, t.children[out[i]]...)
	}
	return out
}

// Spec returns the nested form of the node id, including its subtree.
func (t *Tree) Spec(id string) (Spec, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Spec{}, false
	}
	s := Spec{Node: *n.clone(), Dependencies: t.Dependencies(id)}
	for _, c := range t.children[id] {
		cs, _ := t.Spec(c)
		s.Children = append(s.Children, cs)
	}
	return s, true
}

// Specs returns the nested form of the whole tree.
func (t *Tree) Specs() []Spec {
	out := make([]Spec, 0, len(t.roots))
	for _, id := range t.roots {
		s, _ := t.Spec(id)
		out = append(out, s)
	}
	return out
}

func (t *Tree) resolve(ids []string) []*Node {
	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = t.nodes[id]
	}
	return out
}

// Build creates a tree from nested specs in one step. Dependencies may refer
// to nodes anywhere in specs regardless of order.
func Build(id, name, description string, specs []Spec) (*Tree, error) {
	t := New(id, name, description).clone()
	if err := t.insertAll("", specs); err != nil {
		return nil, err
	}
	return t, nil
}
