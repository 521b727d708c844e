package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) = %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) = %v, want %v", err, ErrDuplicateNodeID)
	}
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want %v", err, ErrInvalidNodeID)
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	if err := g.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(unknown from) = %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(unknown to) = %v", err)
	}

	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	if got := g.Children("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Children(a) = %v, want [b] after duplicate add", got)
	}
	if g.InDegree("b") != 1 || g.InDegree("a") != 0 {
		t.Errorf("InDegree = a %d b %d, want 0/1", g.InDegree("a"), g.InDegree("b"))
	}
}

func TestInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"z", "y", "x", "w"} {
		_ = g.AddNode(Node{ID: id})
	}
	if got := NodeIDs(g.Nodes()); !slices.Equal(got, []string{"z", "y", "x", "w"}) {
		t.Errorf("Nodes() = %v, want insertion order", got)
	}

	g.SetRows(map[string]int{"z": 1, "x": 1, "unknown": 4})
	if got := NodeIDs(g.NodesInRow(1)); !slices.Equal(got, []string{"z", "x"}) {
		t.Errorf("NodesInRow(1) = %v, want [z x]", got)
	}
	if got := g.RowIDs(); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("RowIDs() = %v, want [0 1]", got)
	}
	if g.MaxRow() != 1 {
		t.Errorf("MaxRow() = %d, want 1", g.MaxRow())
	}
}

func TestFindCycle(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  []string
	}{
		{"empty", nil, nil},
		{"chain", []Edge{{"a", "b"}, {"b", "c"}}, nil},
		{"diamond", []Edge{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}}, nil},
		{"self loop", []Edge{{"a", "a"}}, []string{"a", "a"}},
		{"two cycle", []Edge{{"a", "b"}, {"b", "a"}}, []string{"a", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, id := range []string{"a", "b", "c", "d"} {
				_ = g.AddNode(Node{ID: id})
			}
			for _, e := range tt.edges {
				if err := g.AddEdge(e); err != nil {
					t.Fatalf("AddEdge(%v) = %v", e, err)
				}
			}
			if got := g.FindCycle(); !slices.Equal(got, tt.want) {
				t.Errorf("FindCycle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindCyclePath(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "b", To: "c"})
	_ = g.AddEdge(Edge{From: "c", To: "d"})
	_ = g.AddEdge(Edge{From: "d", To: "b"})

	got := g.FindCycle()
	want := []string{"b", "c", "d", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("FindCycle() = %v, want %v", got, want)
	}
}
