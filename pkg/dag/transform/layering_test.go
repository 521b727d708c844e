package transform

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/skilltree/pkg/dag"
)

func rowsOf(g *dag.DAG) map[string]int {
	out := make(map[string]int)
	for _, n := range g.Nodes() {
		out[n.ID] = n.Row
	}
	return out
}

func TestAssignLayers_ReverseInputOrder(t *testing.T) {
	// Z depends on Y depends on X, inserted worst-case first.
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "Z"})
	_ = g.AddNode(dag.Node{ID: "Y"})
	_ = g.AddNode(dag.Node{ID: "X"})
	_ = g.AddEdge(dag.Edge{From: "Y", To: "Z"})
	_ = g.AddEdge(dag.Edge{From: "X", To: "Y"})

	if err := AssignLayers(g); err != nil {
		t.Fatalf("AssignLayers() = %v", err)
	}

	rows := rowsOf(g)
	want := map[string]int{"X": 0, "Y": 1, "Z": 2}
	for id, r := range want {
		if rows[id] != r {
			t.Errorf("row(%s) = %d, want %d", id, rows[id], r)
		}
	}
}

func TestAssignLayers_LongestPath(t *testing.T) {
	// a → b → c, and a → c directly: c must still sit below b.
	g := chain("a", "b", "c")
	_ = g.AddEdge(dag.Edge{From: "a", To: "c"})
	_ = g.AddNode(dag.Node{ID: "lonely"})

	if err := AssignLayers(g); err != nil {
		t.Fatalf("AssignLayers() = %v", err)
	}

	rows := rowsOf(g)
	if rows["c"] != 2 {
		t.Errorf("row(c) = %d, want 2", rows["c"])
	}
	if rows["lonely"] != 0 {
		t.Errorf("row(lonely) = %d, want 0", rows["lonely"])
	}
	for _, n := range g.Nodes() {
		for _, child := range g.Children(n.ID) {
			if rows[n.ID] >= rows[child] {
				t.Errorf("edge %s→%s has rows %d→%d", n.ID, child, rows[n.ID], rows[child])
			}
		}
	}
}

func TestAssignLayers_Cycle(t *testing.T) {
	g := chain("a", "b", "c")
	_ = g.AddEdge(dag.Edge{From: "c", To: "a"})

	err := AssignLayers(g)
	if !errors.Is(err, dag.ErrGraphHasCycle) {
		t.Fatalf("AssignLayers() = %v, want %v", err, dag.ErrGraphHasCycle)
	}

	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("error is not *CycleError: %T", err)
	}
	if !slices.Equal(ce.Path, []string{"a", "b", "c", "a"}) {
		t.Errorf("Path = %v, want [a b c a]", ce.Path)
	}
}

func TestAssignLayers_Empty(t *testing.T) {
	if err := AssignLayers(dag.New()); err != nil {
		t.Errorf("AssignLayers(empty) = %v", err)
	}
}
